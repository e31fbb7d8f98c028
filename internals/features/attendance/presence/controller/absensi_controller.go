package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	identityService "absensiku_backend/internals/features/attendance/identity/service"
	locationService "absensiku_backend/internals/features/attendance/location/service"
	"absensiku_backend/internals/features/attendance/presence/dto"
	"absensiku_backend/internals/features/attendance/presence/model"
	"absensiku_backend/internals/features/attendance/presence/service"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

var validate = validator.New()

// geoAwareError merender pelanggaran geofence dengan jarak & radius supaya
// pengguna tahu seberapa jauh dari lokasi presensi; error lain lewat mapping
// standar.
func geoAwareError(c *fiber.Ctx, err error) error {
	var v *locationService.ViolationError
	if errors.As(err, &v) {
		return helper.JsonErrorWithDetails(c, fiber.StatusForbidden, "Di luar area presensi", fiber.Map{
			"distance_meter": v.DistanceM,
			"radius_meter":   v.RadiusM,
		})
	}
	return helper.FromFiberError(c, err)
}

type AbsensiController struct {
	Recorder *service.Recorder
	Identity *identityService.IdentityService
}

func NewAbsensiController(recorder *service.Recorder, identity *identityService.IdentityService) *AbsensiController {
	return &AbsensiController{Recorder: recorder, Identity: identity}
}

// ✅ POST /api/u/attendance/check-in (kanal manual, geofence divalidasi)
func (ctl *AbsensiController) CheckIn(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	person, err := ctl.Identity.ResolveSession(cu)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := ctl.Recorder.CheckIn(service.CheckInInput{
		Person:           person,
		Metode:           model.AbsensiMetodeManual,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Catatan:          req.Catatan,
		Kelas:            req.Kelas,
		Mapel:            req.Mapel,
		Materi:           req.Materi,
		ValidateGeofence: true,
	})
	if err != nil {
		return geoAwareError(c, err)
	}
	return helper.JsonCreated(c, "Absen masuk berhasil dicatat ✅", dto.NewAbsensiResponse(m))
}

// ✅ POST /api/u/attendance/check-out
func (ctl *AbsensiController) CheckOut(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	person, err := ctl.Identity.ResolveSession(cu)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := ctl.Recorder.CheckOut(service.CheckOutInput{
		Person:    person,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Catatan:   req.Catatan,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Absen keluar berhasil dicatat ✅", dto.NewAbsensiResponse(m))
}

// ✅ GET /api/u/attendance/today
func (ctl *AbsensiController) Today(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	person, err := ctl.Identity.ResolveSession(cu)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctl.Recorder.TodayRecord(person.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if m == nil {
		return helper.JsonOK(c, "Belum ada absensi hari ini", nil)
	}
	return helper.JsonOK(c, "Absensi hari ini", dto.NewAbsensiResponse(m))
}

// ✅ GET /api/u/attendance/history — riwayat milik sendiri
func (ctl *AbsensiController) MyHistory(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	person, err := ctl.Identity.ResolveSession(cu)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctl.listHistory(c, &person.ID)
}

// ✅ GET /api/a/attendance — semua record, filter opsional person_id
func (ctl *AbsensiController) List(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !helperAuth.CanActForOthers(cu) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak berwenang melihat absensi semua orang")
	}

	var personID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("person_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "person_id tidak valid")
		}
		personID = &id
	}
	return ctl.listHistory(c, personID)
}

func (ctl *AbsensiController) listHistory(c *fiber.Ctx, personID *uuid.UUID) error {
	p := helper.ResolvePaging(c, 20, 100)

	f := service.HistoryFilter{
		PersonID: personID,
		Offset:   p.Offset,
		Limit:    p.Limit,
	}

	var err error
	if f.DateFrom, err = ctl.parseDateQuery(c, "date_from"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if f.DateTo, err = ctl.parseDateQuery(c, "date_to"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if raw := strings.ToUpper(strings.TrimSpace(c.Query("status"))); raw != "" {
		st := model.AbsensiStatus(raw)
		if !model.ValidAbsensiStatus(st) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status harus HADIR, TERLAMBAT, atau ALPHA")
		}
		f.Status = &st
	}

	rows, total, err := ctl.Recorder.History(f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Riwayat absensi", dto.NewAbsensiResponses(rows), &pg)
}

func (ctl *AbsensiController) parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, ctl.Recorder.Policy.Location)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" harus YYYY-MM-DD")
	}
	return &t, nil
}

// ✅ DELETE /api/a/attendance/:id — hanya admin, hard delete
func (ctl *AbsensiController) Delete(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !helperAuth.CanDeleteAttendance(cu) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin yang boleh menghapus absensi")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}
	if err := ctl.Recorder.Delete(id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"absensi_id": id})
}
