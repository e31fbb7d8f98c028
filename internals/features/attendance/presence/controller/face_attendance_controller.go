package controller

import (
	"github.com/gofiber/fiber/v2"

	identityService "absensiku_backend/internals/features/attendance/identity/service"
	"absensiku_backend/internals/features/attendance/presence/dto"
	"absensiku_backend/internals/features/attendance/presence/model"
	"absensiku_backend/internals/features/attendance/presence/service"
	helper "absensiku_backend/internals/helpers"
)

// FaceAttendanceController menerima foto dari kiosk presensi: identitas
// ditentukan dari wajah, bukan dari sesi pemanggil. Kiosk berada di dalam
// area sehingga geofence dikecualikan.
type FaceAttendanceController struct {
	Recorder *service.Recorder
	Identity *identityService.IdentityService
}

func NewFaceAttendanceController(recorder *service.Recorder, identity *identityService.IdentityService) *FaceAttendanceController {
	return &FaceAttendanceController{Recorder: recorder, Identity: identity}
}

func (ctl *FaceAttendanceController) resolvePerson(c *fiber.Ctx) (identityService.Person, error) {
	var req dto.FaceAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return identityService.Person{}, fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return identityService.Person{}, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	payload, err := helper.DecodeImageBase64(req.ImageBase64)
	if err != nil {
		return identityService.Person{}, err
	}
	return ctl.Identity.ResolveFace(payload)
}

// ✅ POST /api/u/attendance/face/check-in
func (ctl *FaceAttendanceController) CheckIn(c *fiber.Ctx) error {
	person, err := ctl.resolvePerson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctl.Recorder.CheckIn(service.CheckInInput{
		Person: person,
		Metode: model.AbsensiMetodeFace,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Absen masuk: "+person.Nama, dto.NewAbsensiResponse(m))
}

// ✅ POST /api/u/attendance/face/check-out
func (ctl *FaceAttendanceController) CheckOut(c *fiber.Ctx) error {
	person, err := ctl.resolvePerson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctl.Recorder.CheckOut(service.CheckOutInput{Person: person})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Absen keluar: "+person.Nama, dto.NewAbsensiResponse(m))
}
