package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	correctionController "absensiku_backend/internals/features/attendance/correction/controller"
	correctionService "absensiku_backend/internals/features/attendance/correction/service"
	faceController "absensiku_backend/internals/features/attendance/face/controller"
	faceService "absensiku_backend/internals/features/attendance/face/service"
	identityService "absensiku_backend/internals/features/attendance/identity/service"
	locationController "absensiku_backend/internals/features/attendance/location/controller"
	locationService "absensiku_backend/internals/features/attendance/location/service"
	presenceController "absensiku_backend/internals/features/attendance/presence/controller"
	presenceService "absensiku_backend/internals/features/attendance/presence/service"
)

// wiring merakit service graph absensi sekali per grup route.
type wiring struct {
	policy     presenceService.TimePolicy
	geo        *locationService.GeoFenceService
	face       *faceService.FaceService
	identity   *identityService.IdentityService
	recorder   *presenceService.Recorder
	correction *correctionService.CorrectionService
}

func buildWiring(db *gorm.DB) wiring {
	policy := presenceService.LoadTimePolicy()
	geo := locationService.NewGeoFenceService(db)
	face := faceService.NewFaceService(db)
	identity := identityService.NewIdentityService(db, face)
	return wiring{
		policy:     policy,
		geo:        geo,
		face:       face,
		identity:   identity,
		recorder:   presenceService.NewRecorder(db, policy, geo),
		correction: correctionService.NewCorrectionService(db, policy),
	}
}

// AttendanceUserRoutes: operasi atas nama diri sendiri (JWT).
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	w := buildWiring(db)

	absensiCtl := presenceController.NewAbsensiController(w.recorder, w.identity)
	faceAttCtl := presenceController.NewFaceAttendanceController(w.recorder, w.identity)
	koreksiCtl := correctionController.NewKoreksiController(db, w.correction, w.identity)

	att := user.Group("/attendance")
	att.Post("/check-in", absensiCtl.CheckIn)
	att.Post("/check-out", absensiCtl.CheckOut)
	att.Get("/today", absensiCtl.Today)
	att.Get("/history", absensiCtl.MyHistory)
	att.Post("/face/check-in", faceAttCtl.CheckIn)
	att.Post("/face/check-out", faceAttCtl.CheckOut)

	kor := user.Group("/corrections")
	kor.Post("/", koreksiCtl.Submit)
	kor.Get("/mine", koreksiCtl.Mine)
}

// AttendanceDeviceRoutes: reader RFID/barcode di lokasi tetap (device key).
func AttendanceDeviceRoutes(device fiber.Router, db *gorm.DB) {
	w := buildWiring(db)

	deviceCtl := presenceController.NewDeviceController(w.recorder, w.identity)

	att := device.Group("/attendance")
	att.Post("/rfid", deviceCtl.ByRFID)
	att.Post("/barcode", deviceCtl.ByBarcode)
}

// AttendanceAdminRoutes: operasi petugas/admin (kapabilitas dicek per handler).
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	w := buildWiring(db)

	absensiCtl := presenceController.NewAbsensiController(w.recorder, w.identity)
	lokasiCtl := locationController.NewLokasiController(db, w.geo)
	faceCtl := faceController.NewFaceController(w.face, w.identity)
	koreksiCtl := correctionController.NewKoreksiController(db, w.correction, w.identity)

	lok := admin.Group("/locations")
	lok.Post("/", lokasiCtl.Create)
	lok.Get("/", lokasiCtl.List)
	lok.Get("/active", lokasiCtl.GetActive)
	lok.Put("/:id", lokasiCtl.Update)
	lok.Put("/:id/activate", lokasiCtl.Activate)
	lok.Delete("/:id", lokasiCtl.Delete)

	admin.Post("/face/enroll", faceCtl.Enroll)

	kor := admin.Group("/corrections")
	kor.Get("/", koreksiCtl.List)
	kor.Get("/pending", koreksiCtl.Pending)
	kor.Put("/:id/resolve", koreksiCtl.Resolve)

	att := admin.Group("/attendance")
	att.Get("/", absensiCtl.List)
	att.Delete("/:id", absensiCtl.Delete)
}
