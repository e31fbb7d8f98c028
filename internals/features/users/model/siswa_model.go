package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiswaModel struct {
	// PK
	SiswaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:siswa_id" json:"siswa_id"`

	SiswaNama  string `gorm:"type:varchar(100);not null;column:siswa_nama" json:"siswa_nama"`
	SiswaNIS   string `gorm:"type:varchar(30);not null;uniqueIndex:idx_siswa_nis;column:siswa_nis" json:"siswa_nis"`
	SiswaKelas string `gorm:"type:varchar(30);column:siswa_kelas" json:"siswa_kelas"`

	// Identifier kanal hardware (nullable, unik bila terisi)
	SiswaKartuRFID *string `gorm:"type:varchar(64);uniqueIndex:idx_siswa_rfid;column:siswa_kartu_rfid" json:"siswa_kartu_rfid,omitempty"`
	SiswaBarcode   *string `gorm:"type:varchar(64);uniqueIndex:idx_siswa_barcode;column:siswa_barcode" json:"siswa_barcode,omitempty"`

	SiswaCreatedAt time.Time      `gorm:"column:siswa_created_at;autoCreateTime" json:"siswa_created_at"`
	SiswaUpdatedAt time.Time      `gorm:"column:siswa_updated_at;autoUpdateTime" json:"siswa_updated_at"`
	SiswaDeletedAt gorm.DeletedAt `gorm:"column:siswa_deleted_at;index" json:"siswa_deleted_at,omitempty"`
}

func (SiswaModel) TableName() string {
	return "siswa"
}
