package model

import (
	"time"

	"github.com/google/uuid"

	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
)

// Satu encoding per person; enroll ulang menimpa baris lama.
type FaceEncodingModel struct {
	// PK
	FaceEncodingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:face_encoding_id" json:"face_encoding_id"`

	FaceEncodingPersonID   uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_face_encodings_person;column:face_encoding_person_id" json:"face_encoding_person_id"`
	FaceEncodingPersonType presenceModel.PersonType `gorm:"type:varchar(8);not null;column:face_encoding_person_type;index:idx_face_encodings_person_type" json:"face_encoding_person_type"`

	// Hex sha256 hasil normalisasi gambar, panjang tetap 64
	FaceEncodingValue string `gorm:"type:char(64);not null;column:face_encoding_value" json:"face_encoding_value"`

	FaceEncodingEnrolledAt time.Time `gorm:"not null;column:face_encoding_enrolled_at" json:"face_encoding_enrolled_at"`
}

func (FaceEncodingModel) TableName() string {
	return "face_encodings"
}
