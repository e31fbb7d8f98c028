package dto

import (
	"time"

	"github.com/google/uuid"

	"absensiku_backend/internals/features/attendance/presence/model"
)

/* ===================== REQUESTS ===================== */

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Catatan   *string  `json:"catatan" validate:"omitempty,max=500"`

	// Opsional, hanya untuk absen masuk guru yang terikat sesi mengajar
	Kelas  *string `json:"kelas" validate:"omitempty,max=50"`
	Mapel  *string `json:"mapel" validate:"omitempty,max=100"`
	Materi *string `json:"materi" validate:"omitempty,max=1000"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Catatan   *string  `json:"catatan" validate:"omitempty,max=500"`
}

// Reader RFID/barcode berada di lokasi tetap: tanpa koordinat.
type CardRequest struct {
	CardID string `json:"card_id" validate:"required,min=4,max=64"`
}

type FaceAttendanceRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type AbsensiResponse struct {
	AbsensiID         uuid.UUID           `json:"absensi_id"`
	AbsensiPersonID   uuid.UUID           `json:"absensi_person_id"`
	AbsensiPersonType model.PersonType    `json:"absensi_person_type"`
	AbsensiNama       string              `json:"absensi_nama"`
	AbsensiTanggal    string              `json:"absensi_tanggal"` // YYYY-MM-DD
	AbsensiJamMasuk   time.Time           `json:"absensi_jam_masuk"`
	AbsensiJamKeluar  *time.Time          `json:"absensi_jam_keluar,omitempty"`
	AbsensiStatus     model.AbsensiStatus `json:"absensi_status"`
	AbsensiMetode     model.AbsensiMetode `json:"absensi_metode"`
	AbsensiLatitude   *float64            `json:"absensi_latitude,omitempty"`
	AbsensiLongitude  *float64            `json:"absensi_longitude,omitempty"`
	AbsensiCatatan    *string             `json:"absensi_catatan,omitempty"`
	AbsensiKelas      *string             `json:"absensi_kelas,omitempty"`
	AbsensiMapel      *string             `json:"absensi_mapel,omitempty"`
	AbsensiMateri     *string             `json:"absensi_materi,omitempty"`
}

func NewAbsensiResponse(m *model.AbsensiModel) *AbsensiResponse {
	if m == nil {
		return nil
	}
	return &AbsensiResponse{
		AbsensiID:         m.AbsensiID,
		AbsensiPersonID:   m.AbsensiPersonID,
		AbsensiPersonType: m.AbsensiPersonType,
		AbsensiNama:       m.AbsensiNama,
		AbsensiTanggal:    time.Time(m.AbsensiTanggal).Format("2006-01-02"),
		AbsensiJamMasuk:   m.AbsensiJamMasuk,
		AbsensiJamKeluar:  m.AbsensiJamKeluar,
		AbsensiStatus:     m.AbsensiStatus,
		AbsensiMetode:     m.AbsensiMetode,
		AbsensiLatitude:   m.AbsensiLatitude,
		AbsensiLongitude:  m.AbsensiLongitude,
		AbsensiCatatan:    m.AbsensiCatatan,
		AbsensiKelas:      m.AbsensiKelas,
		AbsensiMapel:      m.AbsensiMapel,
		AbsensiMateri:     m.AbsensiMateri,
	}
}

func NewAbsensiResponses(ms []model.AbsensiModel) []*AbsensiResponse {
	out := make([]*AbsensiResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAbsensiResponse(&ms[i]))
	}
	return out
}
