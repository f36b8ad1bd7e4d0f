// internals/features/users/user/route/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	userCtl "monecole_backend/internals/features/users/user/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

// UserRoutes : routes protégées du profil utilisateur.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUtilisateurController(db)

	r.Get("/me", ctl.Me)
	r.Get("/eleves",
		authMw.OnlyRolesSlice("Accès réservé au personnel de l'école", constants.StaffRoles),
		ctl.ListEleves,
	)
}
