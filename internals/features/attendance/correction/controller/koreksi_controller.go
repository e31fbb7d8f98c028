package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/correction/dto"
	"absensiku_backend/internals/features/attendance/correction/model"
	"absensiku_backend/internals/features/attendance/correction/service"
	identityService "absensiku_backend/internals/features/attendance/identity/service"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

var validate = validator.New()

type KoreksiController struct {
	DB         *gorm.DB
	Correction *service.CorrectionService
	Identity   *identityService.IdentityService
}

func NewKoreksiController(db *gorm.DB, correction *service.CorrectionService, identity *identityService.IdentityService) *KoreksiController {
	return &KoreksiController{DB: db, Correction: correction, Identity: identity}
}

// combineTime menggabungkan tanggal target dengan jam "HH:MM" (sudah lolos
// validasi datetime) di timezone aplikasi.
func (ctl *KoreksiController) combineTime(tanggal time.Time, hhmm *string) *time.Time {
	if hhmm == nil {
		return nil
	}
	parsed, err := time.Parse("15:04", strings.TrimSpace(*hhmm))
	if err != nil {
		return nil
	}
	t := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, ctl.Correction.Policy.Location)
	return &t
}

// ✅ POST /api/u/corrections — ajukan koreksi (status awal PENDING)
func (ctl *KoreksiController) Submit(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitKoreksiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	loc := ctl.Correction.Policy.Location

	var person identityService.Person
	var tanggal time.Time
	var absensiID *uuid.UUID

	if req.AbsensiID != nil {
		// Target dipaksa mengikuti record yang ditautkan.
		var rec presenceModel.AbsensiModel
		if err := ctl.DB.Where("absensi_id = ?", *req.AbsensiID).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Record absensi tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca record absensi")
		}
		person, err = ctl.Identity.ResolveByID(rec.AbsensiPersonID, rec.AbsensiPersonType)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		tanggal = time.Time(rec.AbsensiTanggal).In(loc)
		absensiID = &rec.AbsensiID
	} else {
		tanggal, err = time.ParseInLocation("2006-01-02", req.Tanggal, loc)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal harus YYYY-MM-DD")
		}
		if req.PersonID != nil {
			if req.PersonType == nil {
				return helper.JsonError(c, fiber.StatusUnprocessableEntity, "person_type wajib diisi bersama person_id")
			}
			person, err = ctl.Identity.ResolveByID(*req.PersonID, presenceModel.PersonType(*req.PersonType))
		} else {
			person, err = ctl.Identity.ResolveSession(cu)
		}
		if err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	// Mengoreksi absensi orang lain butuh kapabilitas petugas/admin.
	if person.ID != cu.PersonID && !helperAuth.CanActForOthers(cu) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak berwenang mengajukan koreksi untuk orang lain")
	}

	jamMasukBaru := ctl.combineTime(tanggal, req.JamMasukBaru)
	jamKeluarBaru := ctl.combineTime(tanggal, req.JamKeluarBaru)
	// Cek dini untuk pesan yang ramah; merge terhadap jam masuk yang sudah
	// tercatat tetap divalidasi ulang saat resolve.
	if jamMasukBaru != nil && !service.TimesOrdered(*jamMasukBaru, jamKeluarBaru) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "jam_keluar_baru tidak boleh mendahului jam_masuk_baru")
	}

	k := &model.KoreksiAbsensiModel{
		KoreksiPersonID:      person.ID,
		KoreksiPersonType:    person.Type,
		KoreksiTanggal:       datatypes.Date(tanggal),
		KoreksiAbsensiID:     absensiID,
		KoreksiJamMasukBaru:  jamMasukBaru,
		KoreksiJamKeluarBaru: jamKeluarBaru,
		KoreksiStatusBaru:    presenceModel.AbsensiStatus(req.StatusBaru),
		KoreksiAlasan:        strings.TrimSpace(req.Alasan),
		KoreksiEvidenceURLs:  pq.StringArray(req.EvidenceURLs),
		KoreksiStatus:        model.KoreksiStatusPending,
		KoreksiSubmittedBy:   cu.UserID,
	}
	if err := ctl.DB.Create(k).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan request koreksi")
	}
	return helper.JsonCreated(c, "Request koreksi terkirim, menunggu persetujuan 🕐", dto.NewKoreksiResponse(k))
}

// ✅ GET /api/u/corrections/mine
func (ctl *KoreksiController) Mine(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	person, err := ctl.Identity.ResolveSession(cu)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctl.list(c, map[string]any{"koreksi_person_id": person.ID})
}

// ✅ GET /api/a/corrections/pending
func (ctl *KoreksiController) Pending(c *fiber.Ctx) error {
	if err := ctl.requireApprover(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctl.list(c, map[string]any{"koreksi_status": model.KoreksiStatusPending})
}

// ✅ GET /api/a/corrections?status=
func (ctl *KoreksiController) List(c *fiber.Ctx) error {
	if err := ctl.requireApprover(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	where := map[string]any{}
	if raw := strings.ToUpper(strings.TrimSpace(c.Query("status"))); raw != "" {
		st := model.KoreksiStatus(raw)
		if st != model.KoreksiStatusPending && st != model.KoreksiStatusApproved && st != model.KoreksiStatusRejected {
			return helper.JsonError(c, fiber.StatusBadRequest, "status harus PENDING, APPROVED, atau REJECTED")
		}
		where["koreksi_status"] = st
	}
	return ctl.list(c, where)
}

func (ctl *KoreksiController) requireApprover(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return err
	}
	if !helperAuth.CanApproveCorrections(cu) {
		return fiber.NewError(fiber.StatusForbidden, "Tidak berwenang memproses koreksi")
	}
	return nil
}

func (ctl *KoreksiController) list(c *fiber.Ctx, where map[string]any) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.KoreksiAbsensiModel{})
	if len(where) > 0 {
		q = q.Where(where)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung request koreksi")
	}

	var rows []model.KoreksiAbsensiModel
	if err := q.Order("koreksi_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca request koreksi")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar request koreksi", dto.NewKoreksiResponses(rows), &pg)
}

// ✅ PUT /api/a/corrections/:id/resolve
func (ctl *KoreksiController) Resolve(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !helperAuth.CanApproveCorrections(cu) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak berwenang memproses koreksi")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID koreksi tidak valid")
	}

	var req dto.ResolveKoreksiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	decision := model.KoreksiStatus(strings.ToUpper(strings.TrimSpace(req.Decision)))
	k, err := ctl.Correction.Resolve(id, decision, cu.UserID, req.Catatan)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Request koreksi ditolak"
	if k.KoreksiStatus == model.KoreksiStatusApproved {
		msg = "Request koreksi disetujui dan diterapkan ✅"
	}
	return helper.JsonUpdated(c, msg, dto.NewKoreksiResponse(k))
}
