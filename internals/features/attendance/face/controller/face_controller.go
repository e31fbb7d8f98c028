package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/face/dto"
	faceService "absensiku_backend/internals/features/attendance/face/service"
	identityService "absensiku_backend/internals/features/attendance/identity/service"
	presenceModel "absensiku_backend/internals/features/attendance/presence/model"
	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
)

var validate = validator.New()

type FaceController struct {
	Face     *faceService.FaceService
	Identity *identityService.IdentityService
}

func NewFaceController(face *faceService.FaceService, identity *identityService.IdentityService) *FaceController {
	return &FaceController{Face: face, Identity: identity}
}

// ✅ POST /api/a/face/enroll — daftarkan (atau timpa) encoding wajah person
func (ctl *FaceController) Enroll(c *fiber.Ctx) error {
	cu, err := helperAuth.GetCurrentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !helperAuth.CanManageLocations(cu) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak berwenang mendaftarkan wajah")
	}

	var req dto.EnrollFaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Pastikan person terdaftar di direktori sebelum menyimpan encoding.
	person, err := ctl.Identity.ResolveByID(req.PersonID, presenceModel.PersonType(req.PersonType))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	payload, err := helper.DecodeImageBase64(req.ImageBase64)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctl.Face.Enroll(person.ID, person.Type, payload)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Wajah berhasil didaftarkan untuk "+person.Nama, dto.NewEnrollFaceResponse(m, person.Nama))
}
