package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuruModel struct {
	// PK
	GuruID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guru_id" json:"guru_id"`

	GuruNama string `gorm:"type:varchar(100);not null;column:guru_nama" json:"guru_nama"`
	GuruNIP  string `gorm:"type:varchar(30);not null;uniqueIndex:idx_guru_nip;column:guru_nip" json:"guru_nip"`

	// Identifier kanal hardware (nullable, unik bila terisi)
	GuruKartuRFID *string `gorm:"type:varchar(64);uniqueIndex:idx_guru_rfid;column:guru_kartu_rfid" json:"guru_kartu_rfid,omitempty"`
	GuruBarcode   *string `gorm:"type:varchar(64);uniqueIndex:idx_guru_barcode;column:guru_barcode" json:"guru_barcode,omitempty"`

	GuruCreatedAt time.Time      `gorm:"column:guru_created_at;autoCreateTime" json:"guru_created_at"`
	GuruUpdatedAt time.Time      `gorm:"column:guru_updated_at;autoUpdateTime" json:"guru_updated_at"`
	GuruDeletedAt gorm.DeletedAt `gorm:"column:guru_deleted_at;index" json:"guru_deleted_at,omitempty"`
}

func (GuruModel) TableName() string {
	return "guru"
}
