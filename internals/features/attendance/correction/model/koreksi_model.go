package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
)

type KoreksiStatus string

const (
	KoreksiStatusPending  KoreksiStatus = "PENDING"
	KoreksiStatusApproved KoreksiStatus = "APPROVED"
	KoreksiStatusRejected KoreksiStatus = "REJECTED"
)

type KoreksiAbsensiModel struct {
	// PK
	KoreksiID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:koreksi_id" json:"koreksi_id"`

	// Target: person + tanggal; absensi_id opsional (bila record sudah ada)
	KoreksiPersonID   uuid.UUID                `gorm:"type:uuid;not null;column:koreksi_person_id;index:idx_koreksi_person" json:"koreksi_person_id"`
	KoreksiPersonType presenceModel.PersonType `gorm:"type:varchar(8);not null;column:koreksi_person_type" json:"koreksi_person_type"`
	KoreksiTanggal    datatypes.Date           `gorm:"not null;column:koreksi_tanggal" json:"koreksi_tanggal"`
	KoreksiAbsensiID  *uuid.UUID               `gorm:"type:uuid;column:koreksi_absensi_id;index:idx_koreksi_absensi" json:"koreksi_absensi_id,omitempty"`

	// Usulan perubahan
	KoreksiJamMasukBaru  *time.Time                  `gorm:"column:koreksi_jam_masuk_baru" json:"koreksi_jam_masuk_baru,omitempty"`
	KoreksiJamKeluarBaru *time.Time                  `gorm:"column:koreksi_jam_keluar_baru" json:"koreksi_jam_keluar_baru,omitempty"`
	KoreksiStatusBaru    presenceModel.AbsensiStatus `gorm:"type:varchar(16);not null;column:koreksi_status_baru" json:"koreksi_status_baru"`

	KoreksiAlasan       string         `gorm:"type:text;not null;column:koreksi_alasan" json:"koreksi_alasan"`
	KoreksiEvidenceURLs pq.StringArray `gorm:"type:text[];column:koreksi_evidence_urls" json:"koreksi_evidence_urls,omitempty"`

	// Workflow: PENDING → APPROVED | REJECTED (terminal)
	KoreksiStatus KoreksiStatus `gorm:"type:varchar(16);not null;default:PENDING;column:koreksi_status;index:idx_koreksi_status" json:"koreksi_status"`

	KoreksiSubmittedBy uuid.UUID  `gorm:"type:uuid;not null;column:koreksi_submitted_by" json:"koreksi_submitted_by"`
	KoreksiApprovedBy  *uuid.UUID `gorm:"type:uuid;column:koreksi_approved_by" json:"koreksi_approved_by,omitempty"`
	KoreksiCatatanApprover *string `gorm:"type:text;column:koreksi_catatan_approver" json:"koreksi_catatan_approver,omitempty"`
	KoreksiResolvedAt  *time.Time `gorm:"column:koreksi_resolved_at" json:"koreksi_resolved_at,omitempty"`

	KoreksiCreatedAt time.Time `gorm:"column:koreksi_created_at;autoCreateTime" json:"koreksi_created_at"`
	KoreksiUpdatedAt time.Time `gorm:"column:koreksi_updated_at;autoUpdateTime" json:"koreksi_updated_at"`
}

func (KoreksiAbsensiModel) TableName() string {
	return "koreksi_absensi"
}
