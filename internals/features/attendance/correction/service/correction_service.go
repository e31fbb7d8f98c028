package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/features/attendance/correction/model"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
	presenceService "absensiku_backend/internals/features/attendance/presence/service"
)

// ValidDecision: keputusan resolve hanya APPROVED/REJECTED, tidak pernah
// PENDING.
func ValidDecision(d model.KoreksiStatus) bool {
	return d == model.KoreksiStatusApproved || d == model.KoreksiStatusRejected
}

// CanResolve: hanya request PENDING yang bisa diputuskan; APPROVED/REJECTED
// terminal.
func CanResolve(current model.KoreksiStatus) bool {
	return current == model.KoreksiStatusPending
}

// CorrectionNote menambahkan penanda koreksi ke catatan record tanpa
// membuang catatan lama.
func CorrectionNote(existing *string, reason string) *string {
	return presenceService.AppendNote(existing, "[KOREKSI] "+strings.TrimSpace(reason))
}

// TimesOrdered: jam keluar (bila ada) tidak boleh mendahului jam masuk.
func TimesOrdered(masuk time.Time, keluar *time.Time) bool {
	return keluar == nil || !keluar.Before(masuk)
}

// ApplyToRecord menerapkan koreksi yang disetujui ke record absensi.
// Metode selalu dipaksa MANUAL; jam masuk ditimpa bila diusulkan atau
// bila record belum punya jam masuk sama sekali. Hasil merge yang membuat
// jam keluar mendahului jam masuk ditolak.
func ApplyToRecord(m *presenceModel.AbsensiModel, k *model.KoreksiAbsensiModel, resolvedAt time.Time) error {
	m.AbsensiMetode = presenceModel.AbsensiMetodeManual
	m.AbsensiStatus = k.KoreksiStatusBaru

	if k.KoreksiJamMasukBaru != nil {
		m.AbsensiJamMasuk = *k.KoreksiJamMasukBaru
	} else if m.AbsensiJamMasuk.IsZero() {
		// Record baru hasil koreksi tanpa usulan jam masuk: default ke waktu
		// resolve supaya kolom wajib tidak kosong.
		m.AbsensiJamMasuk = resolvedAt
	}
	if k.KoreksiJamKeluarBaru != nil {
		m.AbsensiJamKeluar = k.KoreksiJamKeluarBaru
	}
	if !TimesOrdered(m.AbsensiJamMasuk, m.AbsensiJamKeluar) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Jam keluar tidak boleh mendahului jam masuk")
	}

	m.AbsensiCatatan = CorrectionNote(m.AbsensiCatatan, k.KoreksiAlasan)
	return nil
}

type CorrectionService struct {
	DB     *gorm.DB
	Policy presenceService.TimePolicy
}

func NewCorrectionService(db *gorm.DB, policy presenceService.TimePolicy) *CorrectionService {
	return &CorrectionService{DB: db, Policy: policy}
}

// Resolve memutuskan satu request koreksi dalam satu transaksi. Baris
// request dikunci FOR UPDATE supaya resolve ganda dan lost-update pada
// record absensi tidak mungkin terjadi.
func (s *CorrectionService) Resolve(
	id uuid.UUID,
	decision model.KoreksiStatus,
	approverID uuid.UUID,
	note *string,
) (*model.KoreksiAbsensiModel, error) {
	if !ValidDecision(decision) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Keputusan harus APPROVED atau REJECTED")
	}

	var k model.KoreksiAbsensiModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("koreksi_id = ?", id).First(&k).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Request koreksi tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca request koreksi")
		}
		if !CanResolve(k.KoreksiStatus) {
			return fiber.NewError(fiber.StatusConflict, "Request koreksi sudah diputuskan")
		}

		now := time.Now().In(s.Policy.Location)

		if decision == model.KoreksiStatusApproved {
			rec, err := s.targetRecord(tx, &k)
			if err != nil {
				return err
			}
			created := rec == nil
			if created {
				rec = &presenceModel.AbsensiModel{
					AbsensiPersonID:   k.KoreksiPersonID,
					AbsensiPersonType: k.KoreksiPersonType,
					AbsensiNama:       s.personName(tx, &k),
					AbsensiTanggal:    k.KoreksiTanggal,
				}
			}
			if err := ApplyToRecord(rec, &k, now); err != nil {
				return err
			}

			if created {
				if err := tx.Create(rec).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat record absensi")
				}
			} else {
				if err := tx.Save(rec).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui record absensi")
				}
			}
			k.KoreksiAbsensiID = &rec.AbsensiID
		}

		k.KoreksiStatus = decision
		k.KoreksiApprovedBy = &approverID
		k.KoreksiCatatanApprover = note
		k.KoreksiResolvedAt = &now
		if err := tx.Save(&k).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keputusan koreksi")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// targetRecord mencari record sasaran: via link bila ada, selain itu
// lookup (person, tanggal); nil berarti belum ada.
func (s *CorrectionService) targetRecord(tx *gorm.DB, k *model.KoreksiAbsensiModel) (*presenceModel.AbsensiModel, error) {
	var rec presenceModel.AbsensiModel
	var err error
	if k.KoreksiAbsensiID != nil {
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("absensi_id = ?", *k.KoreksiAbsensiID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Record absensi yang ditautkan sudah tidak ada")
		}
	} else {
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("absensi_person_id = ? AND absensi_tanggal = ?", k.KoreksiPersonID, k.KoreksiTanggal).
			First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca record absensi")
	}
	return &rec, nil
}

// personName: nama snapshot untuk record baru hasil koreksi.
func (s *CorrectionService) personName(tx *gorm.DB, k *model.KoreksiAbsensiModel) string {
	type row struct{ Nama string }
	var r row
	table, col, id := "siswa", "siswa_nama", "siswa_id"
	if k.KoreksiPersonType == presenceModel.PersonTypeGuru {
		table, col, id = "guru", "guru_nama", "guru_id"
	}
	if err := tx.Table(table).Select(col+" AS nama").Where(id+" = ?", k.KoreksiPersonID).
		Limit(1).Take(&r).Error; err != nil {
		return ""
	}
	return r.Nama
}
