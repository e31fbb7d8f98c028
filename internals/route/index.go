package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
	"absensiku_backend/internals/route/details"
)

// SetupRoutes memasang semua grup route:
//   - /api/auth    : publik (login)
//   - /api/u       : user ber-JWT (siswa/guru/petugas/admin)
//   - /api/device  : reader RFID/barcode dengan device key
//   - /api/a       : operasi petugas/admin (kapabilitas dicek per handler)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)

	jwtGuard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", jwtGuard)
	details.AttendanceUserRoutes(user, db)

	device := api.Group("/device", authMiddleware.DeviceKey(configs.DeviceAPIKey))
	details.AttendanceDeviceRoutes(device, db)

	admin := api.Group("/a", jwtGuard)
	details.AttendanceAdminRoutes(admin, db)
}
