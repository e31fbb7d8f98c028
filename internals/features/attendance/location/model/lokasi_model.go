package model

import (
	"time"

	"github.com/google/uuid"
)

type LokasiPresensiModel struct {
	// PK
	LokasiID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lokasi_id" json:"lokasi_id"`

	LokasiNama       string  `gorm:"type:varchar(100);not null;column:lokasi_nama" json:"lokasi_nama"`
	LokasiLatitude   float64 `gorm:"not null;column:lokasi_latitude" json:"lokasi_latitude"`
	LokasiLongitude  float64 `gorm:"not null;column:lokasi_longitude" json:"lokasi_longitude"`
	LokasiRadiusMeter float64 `gorm:"not null;column:lokasi_radius_meter" json:"lokasi_radius_meter"`

	// Maksimal satu lokasi aktif; aktivasi menonaktifkan lainnya dalam satu transaksi
	LokasiIsActive bool `gorm:"not null;default:false;column:lokasi_is_active;index:idx_lokasi_is_active" json:"lokasi_is_active"`

	LokasiAlamat  *string `gorm:"type:text;column:lokasi_alamat" json:"lokasi_alamat,omitempty"`
	LokasiCatatan *string `gorm:"type:text;column:lokasi_catatan" json:"lokasi_catatan,omitempty"`

	LokasiCreatedAt time.Time `gorm:"column:lokasi_created_at;autoCreateTime" json:"lokasi_created_at"`
	LokasiUpdatedAt time.Time `gorm:"column:lokasi_updated_at;autoUpdateTime" json:"lokasi_updated_at"`
}

func (LokasiPresensiModel) TableName() string {
	return "lokasi_presensi"
}
