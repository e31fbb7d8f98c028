package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"absensiku_backend/internals/features/attendance/location/model"
)

/* ===================== REQUESTS ===================== */

type CreateLokasiRequest struct {
	LokasiNama        string  `json:"lokasi_nama" validate:"required,min=3,max=100"`
	LokasiLatitude    float64 `json:"lokasi_latitude" validate:"latitude"`
	LokasiLongitude   float64 `json:"lokasi_longitude" validate:"longitude"`
	LokasiRadiusMeter float64 `json:"lokasi_radius_meter" validate:"required,gt=0,lte=100000"`
	LokasiAlamat      *string `json:"lokasi_alamat" validate:"omitempty,max=500"`
	LokasiCatatan     *string `json:"lokasi_catatan" validate:"omitempty,max=500"`
}

func (r CreateLokasiRequest) ToModel() *model.LokasiPresensiModel {
	return &model.LokasiPresensiModel{
		LokasiNama:        strings.TrimSpace(r.LokasiNama),
		LokasiLatitude:    r.LokasiLatitude,
		LokasiLongitude:   r.LokasiLongitude,
		LokasiRadiusMeter: r.LokasiRadiusMeter,
		LokasiAlamat:      r.LokasiAlamat,
		LokasiCatatan:     r.LokasiCatatan,
	}
}

/* ===================== UPDATE (partial) ===================== */

type UpdateLokasiRequest struct {
	LokasiNama        *string  `json:"lokasi_nama" validate:"omitempty,min=3,max=100"`
	LokasiLatitude    *float64 `json:"lokasi_latitude" validate:"omitempty,latitude"`
	LokasiLongitude   *float64 `json:"lokasi_longitude" validate:"omitempty,longitude"`
	LokasiRadiusMeter *float64 `json:"lokasi_radius_meter" validate:"omitempty,gt=0,lte=100000"`
	LokasiAlamat      *string  `json:"lokasi_alamat" validate:"omitempty,max=500"`
	LokasiCatatan     *string  `json:"lokasi_catatan" validate:"omitempty,max=500"`
}

// ToUpdates: map agar nilai falsy juga ter-update
func (r UpdateLokasiRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.LokasiNama != nil {
		updates["lokasi_nama"] = strings.TrimSpace(*r.LokasiNama)
	}
	if r.LokasiLatitude != nil {
		updates["lokasi_latitude"] = *r.LokasiLatitude
	}
	if r.LokasiLongitude != nil {
		updates["lokasi_longitude"] = *r.LokasiLongitude
	}
	if r.LokasiRadiusMeter != nil {
		updates["lokasi_radius_meter"] = *r.LokasiRadiusMeter
	}
	if r.LokasiAlamat != nil {
		updates["lokasi_alamat"] = r.LokasiAlamat
	}
	if r.LokasiCatatan != nil {
		updates["lokasi_catatan"] = r.LokasiCatatan
	}
	return updates
}

/* ===================== RESPONSES ===================== */

type LokasiResponse struct {
	LokasiID          uuid.UUID `json:"lokasi_id"`
	LokasiNama        string    `json:"lokasi_nama"`
	LokasiLatitude    float64   `json:"lokasi_latitude"`
	LokasiLongitude   float64   `json:"lokasi_longitude"`
	LokasiRadiusMeter float64   `json:"lokasi_radius_meter"`
	LokasiIsActive    bool      `json:"lokasi_is_active"`
	LokasiAlamat      *string   `json:"lokasi_alamat,omitempty"`
	LokasiCatatan     *string   `json:"lokasi_catatan,omitempty"`
	LokasiCreatedAt   time.Time `json:"lokasi_created_at"`
	LokasiUpdatedAt   time.Time `json:"lokasi_updated_at"`
}

func NewLokasiResponse(m *model.LokasiPresensiModel) *LokasiResponse {
	if m == nil {
		return nil
	}
	return &LokasiResponse{
		LokasiID:          m.LokasiID,
		LokasiNama:        m.LokasiNama,
		LokasiLatitude:    m.LokasiLatitude,
		LokasiLongitude:   m.LokasiLongitude,
		LokasiRadiusMeter: m.LokasiRadiusMeter,
		LokasiIsActive:    m.LokasiIsActive,
		LokasiAlamat:      m.LokasiAlamat,
		LokasiCatatan:     m.LokasiCatatan,
		LokasiCreatedAt:   m.LokasiCreatedAt,
		LokasiUpdatedAt:   m.LokasiUpdatedAt,
	}
}

func NewLokasiResponses(ms []model.LokasiPresensiModel) []*LokasiResponse {
	out := make([]*LokasiResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewLokasiResponse(&ms[i]))
	}
	return out
}
