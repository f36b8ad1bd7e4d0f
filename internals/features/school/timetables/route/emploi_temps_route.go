// internals/features/school/timetables/route/emploi_temps_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	emploiCtl "monecole_backend/internals/features/school/timetables/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

// EmploiTempsRoutes : création et validation réservées à la vie scolaire.
func EmploiTempsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := emploiCtl.NewEmploiTempsController(db)

	grp := r.Group("/emplois-temps")
	grp.Get("/", ctl.List)
	grp.Post("/",
		authMw.OnlyRolesSlice("Seule la vie scolaire crée des emplois du temps", constants.TimetableManagerRoles),
		ctl.Create,
	)
	grp.Patch("/:id/status",
		authMw.OnlyRolesSlice("Seule la vie scolaire fait avancer un emploi du temps", constants.TimetableManagerRoles),
		ctl.UpdateStatut,
	)
}
