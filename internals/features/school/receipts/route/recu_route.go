// internals/features/school/receipts/route/recu_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	recuCtl "monecole_backend/internals/features/school/receipts/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

// RecuRoutes : émission et édition réservées à l'économat, aux RH et
// à la direction ; la lecture passe par la portée de session.
func RecuRoutes(r fiber.Router, db *gorm.DB) {
	ctl := recuCtl.NewRecuController(db)

	grp := r.Group("/recus")
	grp.Get("/", ctl.List)
	grp.Post("/",
		authMw.OnlyRolesSlice("Seule la gestion financière émet des reçus", constants.FinanceRoles),
		ctl.Create,
	)
	grp.Put("/:id",
		authMw.OnlyRolesSlice("Seule la gestion financière modifie des reçus", constants.FinanceRoles),
		ctl.Update,
	)
}
