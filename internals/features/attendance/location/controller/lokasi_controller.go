package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/location/dto"
	"absensiku_backend/internals/features/attendance/location/model"
	"absensiku_backend/internals/features/attendance/location/service"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

var validate = validator.New()

type LokasiController struct {
	DB  *gorm.DB
	Geo *service.GeoFenceService
}

func NewLokasiController(db *gorm.DB, geo *service.GeoFenceService) *LokasiController {
	return &LokasiController{DB: db, Geo: geo}
}

func (ctl *LokasiController) requireManager(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return err
	}
	if !helperAuth.CanManageLocations(cu) {
		return fiber.NewError(fiber.StatusForbidden, "Tidak berwenang mengelola lokasi presensi")
	}
	return nil
}

// ✅ POST /api/a/locations
func (ctl *LokasiController) Create(c *fiber.Ctx) error {
	if err := ctl.requireManager(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateLokasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lokasi")
	}
	return helper.JsonCreated(c, "Lokasi presensi berhasil dibuat ✅", dto.NewLokasiResponse(m))
}

// ✅ GET /api/a/locations
func (ctl *LokasiController) List(c *fiber.Ctx) error {
	if err := ctl.requireManager(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.LokasiPresensiModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lokasi")
	}

	var rows []model.LokasiPresensiModel
	if err := ctl.DB.Order("lokasi_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca lokasi")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar lokasi presensi", dto.NewLokasiResponses(rows), &pg)
}

// ✅ GET /api/a/locations/active — lokasi aktif saat ini (null bila tidak ada)
func (ctl *LokasiController) GetActive(c *fiber.Ctx) error {
	m, err := ctl.Geo.ActiveLocation()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca lokasi aktif")
	}
	if m == nil {
		return helper.JsonOK(c, "Tidak ada lokasi presensi aktif", nil)
	}
	return helper.JsonOK(c, "Lokasi presensi aktif", dto.NewLokasiResponse(m))
}

// ✅ PUT /api/a/locations/:id
func (ctl *LokasiController) Update(c *fiber.Ctx) error {
	if err := ctl.requireManager(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}

	var req dto.UpdateLokasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.LokasiPresensiModel
	if err := ctl.DB.Where("lokasi_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca lokasi")
	}

	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lokasi")
		}
	}
	return helper.JsonUpdated(c, "Lokasi presensi berhasil diperbarui ✅", dto.NewLokasiResponse(&m))
}

// ✅ PUT /api/a/locations/:id/activate — aktif tunggal, atomik dalam transaksi
func (ctl *LokasiController) Activate(c *fiber.Ctx) error {
	if err := ctl.requireManager(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}

	var m model.LokasiPresensiModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lokasi_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lokasi tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca lokasi")
		}
		if err := tx.Model(&model.LokasiPresensiModel{}).
			Where("lokasi_is_active = TRUE AND lokasi_id <> ?", id).
			Update("lokasi_is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan lokasi lama")
		}
		if err := tx.Model(&m).Update("lokasi_is_active", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengaktifkan lokasi")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Lokasi presensi diaktifkan: "+m.LokasiNama, dto.NewLokasiResponse(&m))
}

// ✅ DELETE /api/a/locations/:id — ditolak selama lokasi masih aktif
func (ctl *LokasiController) Delete(c *fiber.Ctx) error {
	if err := ctl.requireManager(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}

	var m model.LokasiPresensiModel
	if err := ctl.DB.Where("lokasi_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca lokasi")
	}
	if m.LokasiIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Lokasi aktif tidak bisa dihapus; aktifkan lokasi lain dulu")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lokasi")
	}
	return helper.JsonDeleted(c, "Lokasi presensi berhasil dihapus", fiber.Map{"lokasi_id": id})
}
