// internals/features/school/stats/route/stats_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	statsCtl "monecole_backend/internals/features/school/stats/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

func StatsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statsCtl.NewStatsController(db)

	r.Get("/stats",
		authMw.OnlyRolesSlice("Accès réservé au personnel de l'école", constants.StaffRoles),
		ctl.Overview,
	)
}
