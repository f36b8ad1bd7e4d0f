package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "monecole_backend/internals/features/users/auth/controller"
	"monecole_backend/internals/middlewares"
)

// AuthRoutes : routes publiques d'authentification.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/logout", ctl.Logout)
}
