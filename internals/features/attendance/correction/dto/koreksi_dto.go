package dto

import (
	"time"

	"github.com/google/uuid"

	"absensiku_backend/internals/features/attendance/correction/model"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
)

/* ===================== REQUESTS ===================== */

// Submit: person target default = pengaju; mengisi person_id orang lain
// butuh kapabilitas petugas/admin. Jika absensi_id diisi, tanggal dipaksa
// mengikuti record tersebut.
type SubmitKoreksiRequest struct {
	AbsensiID  *uuid.UUID `json:"absensi_id" validate:"omitempty"`
	PersonID   *uuid.UUID `json:"person_id" validate:"omitempty"`
	PersonType *string    `json:"person_type" validate:"omitempty,oneof=SISWA GURU"`
	Tanggal    string     `json:"tanggal" validate:"required,datetime=2006-01-02"`

	JamMasukBaru  *string `json:"jam_masuk_baru" validate:"omitempty,datetime=15:04"`
	JamKeluarBaru *string `json:"jam_keluar_baru" validate:"omitempty,datetime=15:04"`
	StatusBaru    string  `json:"status_baru" validate:"required,oneof=HADIR TERLAMBAT ALPHA"`

	Alasan       string   `json:"alasan" validate:"required,min=3,max=500"`
	EvidenceURLs []string `json:"evidence_urls" validate:"omitempty,dive,url"`
}

type ResolveKoreksiRequest struct {
	Decision string  `json:"decision" validate:"required"`
	Catatan  *string `json:"catatan" validate:"omitempty,max=500"`
}

/* ===================== RESPONSES ===================== */

type KoreksiResponse struct {
	KoreksiID         uuid.UUID                   `json:"koreksi_id"`
	KoreksiPersonID   uuid.UUID                   `json:"koreksi_person_id"`
	KoreksiPersonType presenceModel.PersonType    `json:"koreksi_person_type"`
	KoreksiTanggal    string                      `json:"koreksi_tanggal"` // YYYY-MM-DD
	KoreksiAbsensiID  *uuid.UUID                  `json:"koreksi_absensi_id,omitempty"`
	JamMasukBaru      *time.Time                  `json:"koreksi_jam_masuk_baru,omitempty"`
	JamKeluarBaru     *time.Time                  `json:"koreksi_jam_keluar_baru,omitempty"`
	StatusBaru        presenceModel.AbsensiStatus `json:"koreksi_status_baru"`
	Alasan            string                      `json:"koreksi_alasan"`
	EvidenceURLs      []string                    `json:"koreksi_evidence_urls,omitempty"`
	Status            model.KoreksiStatus         `json:"koreksi_status"`
	SubmittedBy       uuid.UUID                   `json:"koreksi_submitted_by"`
	ApprovedBy        *uuid.UUID                  `json:"koreksi_approved_by,omitempty"`
	CatatanApprover   *string                     `json:"koreksi_catatan_approver,omitempty"`
	ResolvedAt        *time.Time                  `json:"koreksi_resolved_at,omitempty"`
	CreatedAt         time.Time                   `json:"koreksi_created_at"`
	UpdatedAt         time.Time                   `json:"koreksi_updated_at"`
}

func NewKoreksiResponse(m *model.KoreksiAbsensiModel) *KoreksiResponse {
	if m == nil {
		return nil
	}
	return &KoreksiResponse{
		KoreksiID:         m.KoreksiID,
		KoreksiPersonID:   m.KoreksiPersonID,
		KoreksiPersonType: m.KoreksiPersonType,
		KoreksiTanggal:    time.Time(m.KoreksiTanggal).Format("2006-01-02"),
		KoreksiAbsensiID:  m.KoreksiAbsensiID,
		JamMasukBaru:      m.KoreksiJamMasukBaru,
		JamKeluarBaru:     m.KoreksiJamKeluarBaru,
		StatusBaru:        m.KoreksiStatusBaru,
		Alasan:            m.KoreksiAlasan,
		EvidenceURLs:      m.KoreksiEvidenceURLs,
		Status:            m.KoreksiStatus,
		SubmittedBy:       m.KoreksiSubmittedBy,
		ApprovedBy:        m.KoreksiApprovedBy,
		CatatanApprover:   m.KoreksiCatatanApprover,
		ResolvedAt:        m.KoreksiResolvedAt,
		CreatedAt:         m.KoreksiCreatedAt,
		UpdatedAt:         m.KoreksiUpdatedAt,
	}
}

func NewKoreksiResponses(ms []model.KoreksiAbsensiModel) []*KoreksiResponse {
	out := make([]*KoreksiResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewKoreksiResponse(&ms[i]))
	}
	return out
}
