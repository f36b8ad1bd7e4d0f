// internals/features/school/classes/route/classe_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	classeCtl "monecole_backend/internals/features/school/classes/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

// ClasseRoutes : création et gestion des inscriptions réservées à
// l'administration de l'école.
func ClasseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classeCtl.NewClasseController(db)

	grp := r.Group("/classes")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.Detail)
	grp.Get("/:id/eleves", ctl.ListEleves)
	grp.Post("/",
		authMw.OnlyRolesSlice("Seule l'administration crée des classes", constants.ClassManagerRoles),
		ctl.Create,
	)
	grp.Put("/:id/eleves",
		authMw.OnlyRolesSlice("Seule l'administration gère les inscriptions", constants.ClassManagerRoles),
		ctl.ReplaceEleves,
	)
}
