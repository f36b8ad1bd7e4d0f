// internals/features/school/announcements/route/annonce_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	annonceCtl "monecole_backend/internals/features/school/announcements/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

// AnnonceRoutes : lecture pour tous les rôles connectés,
// publication pour le secrétariat et la direction.
func AnnonceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := annonceCtl.NewAnnonceController(db)

	grp := r.Group("/annonces")
	grp.Get("/", ctl.List)
	grp.Post("/",
		authMw.OnlyRolesSlice("Seuls le secrétariat et la direction publient des annonces", constants.AnnouncementManagerRoles),
		ctl.Create,
	)
}
