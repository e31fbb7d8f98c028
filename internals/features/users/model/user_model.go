package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserUsername string `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_username;column:user_username" json:"user_username"`
	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`

	// siswa | guru | petugas | admin
	UserRole string `gorm:"type:varchar(16);not null;default:siswa;column:user_role" json:"user_role"`

	// SISWA | GURU (kosong untuk akun petugas/admin murni)
	UserType *string `gorm:"type:varchar(8);column:user_type" json:"user_type,omitempty"`

	// FK ke siswa/guru sesuai user_type
	UserPersonID *uuid.UUID `gorm:"type:uuid;column:user_person_id;index:idx_users_person" json:"user_person_id,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
