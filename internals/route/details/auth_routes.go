package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "absensiku_backend/internals/features/users/controller"
	"absensiku_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
