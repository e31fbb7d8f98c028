package controller

import (
	"github.com/gofiber/fiber/v2"

	identityService "absensiku_backend/internals/features/attendance/identity/service"
	"absensiku_backend/internals/features/attendance/presence/dto"
	"absensiku_backend/internals/features/attendance/presence/model"
	"absensiku_backend/internals/features/attendance/presence/service"
	helper "absensiku_backend/internals/helpers"
)

// DeviceController melayani reader RFID/barcode di lokasi tetap. Autentikasi
// lewat device key (middleware), bukan JWT; satu endpoint bekerja sebagai
// toggle: event pertama hari itu = absen masuk, event berikutnya = absen
// keluar.
type DeviceController struct {
	Recorder *service.Recorder
	Identity *identityService.IdentityService
}

func NewDeviceController(recorder *service.Recorder, identity *identityService.IdentityService) *DeviceController {
	return &DeviceController{Recorder: recorder, Identity: identity}
}

// ✅ POST /api/device/attendance/rfid
func (ctl *DeviceController) ByRFID(c *fiber.Ctx) error {
	return ctl.tap(c, model.AbsensiMetodeRFID)
}

// ✅ POST /api/device/attendance/barcode
func (ctl *DeviceController) ByBarcode(c *fiber.Ctx) error {
	return ctl.tap(c, model.AbsensiMetodeBarcode)
}

func (ctl *DeviceController) tap(c *fiber.Ctx, metode model.AbsensiMetode) error {
	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var person identityService.Person
	var err error
	if metode == model.AbsensiMetodeRFID {
		person, err = ctl.Identity.ResolveRFID(req.CardID)
	} else {
		person, err = ctl.Identity.ResolveBarcode(req.CardID)
	}
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	today, err := ctl.Recorder.TodayRecord(person.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Reader berada di dalam area: geofence dikecualikan.
	if today == nil {
		m, err := ctl.Recorder.CheckIn(service.CheckInInput{
			Person: person,
			Metode: metode,
		})
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		return helper.JsonCreated(c, "Absen masuk: "+person.Nama, dto.NewAbsensiResponse(m))
	}

	if today.AbsensiJamKeluar != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Sudah absen masuk dan keluar hari ini")
	}

	m, err := ctl.Recorder.CheckOut(service.CheckOutInput{Person: person})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Absen keluar: "+person.Nama, dto.NewAbsensiResponse(m))
}
