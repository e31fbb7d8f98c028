package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AbsensiStatus string

const (
	AbsensiStatusHadir     AbsensiStatus = "HADIR"
	AbsensiStatusTerlambat AbsensiStatus = "TERLAMBAT"
	AbsensiStatusAlpha     AbsensiStatus = "ALPHA"
)

func ValidAbsensiStatus(s AbsensiStatus) bool {
	switch s {
	case AbsensiStatusHadir, AbsensiStatusTerlambat, AbsensiStatusAlpha:
		return true
	}
	return false
}

type AbsensiMetode string

const (
	AbsensiMetodeManual  AbsensiMetode = "MANUAL"
	AbsensiMetodeRFID    AbsensiMetode = "RFID"
	AbsensiMetodeBarcode AbsensiMetode = "BARCODE"
	AbsensiMetodeFace    AbsensiMetode = "FACE"
)

type PersonType string

const (
	PersonTypeSiswa PersonType = "SISWA"
	PersonTypeGuru  PersonType = "GURU"
)

type AbsensiModel struct {
	// PK
	AbsensiID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absensi_id" json:"absensi_id"`

	// Pemilik record: satu baris per (person, tanggal), dijaga unique index DB
	AbsensiPersonID   uuid.UUID      `gorm:"type:uuid;not null;column:absensi_person_id;uniqueIndex:idx_absensi_person_tanggal" json:"absensi_person_id"`
	AbsensiTanggal    datatypes.Date `gorm:"not null;column:absensi_tanggal;uniqueIndex:idx_absensi_person_tanggal" json:"absensi_tanggal"`
	AbsensiPersonType PersonType     `gorm:"type:varchar(8);not null;column:absensi_person_type" json:"absensi_person_type"`
	AbsensiNama       string         `gorm:"type:varchar(100);not null;column:absensi_nama" json:"absensi_nama"`

	AbsensiJamMasuk  time.Time  `gorm:"not null;column:absensi_jam_masuk" json:"absensi_jam_masuk"`
	AbsensiJamKeluar *time.Time `gorm:"column:absensi_jam_keluar" json:"absensi_jam_keluar,omitempty"`

	AbsensiStatus AbsensiStatus `gorm:"type:varchar(16);not null;column:absensi_status;index:idx_absensi_status" json:"absensi_status"`
	AbsensiMetode AbsensiMetode `gorm:"type:varchar(16);not null;column:absensi_metode" json:"absensi_metode"`

	AbsensiLatitude  *float64 `gorm:"column:absensi_latitude" json:"absensi_latitude,omitempty"`
	AbsensiLongitude *float64 `gorm:"column:absensi_longitude" json:"absensi_longitude,omitempty"`

	AbsensiCatatan *string `gorm:"type:text;column:absensi_catatan" json:"absensi_catatan,omitempty"`

	// Referensi sesi mengajar (opsional, hanya absen masuk guru)
	AbsensiKelas *string `gorm:"type:varchar(50);column:absensi_kelas" json:"absensi_kelas,omitempty"`
	AbsensiMapel *string `gorm:"type:varchar(100);column:absensi_mapel" json:"absensi_mapel,omitempty"`
	AbsensiMateri *string `gorm:"type:text;column:absensi_materi" json:"absensi_materi,omitempty"`

	AbsensiCreatedAt time.Time `gorm:"column:absensi_created_at;autoCreateTime" json:"absensi_created_at"`
	AbsensiUpdatedAt time.Time `gorm:"column:absensi_updated_at;autoUpdateTime" json:"absensi_updated_at"`
}

func (AbsensiModel) TableName() string {
	return "absensi"
}
