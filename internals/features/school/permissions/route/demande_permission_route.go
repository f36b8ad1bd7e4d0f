// internals/features/school/permissions/route/demande_permission_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	demandeCtl "monecole_backend/internals/features/school/permissions/controller"
	authMw "monecole_backend/internals/middlewares/auth"
)

// DemandePermissionRoutes : dépôt par les demandeurs, décision par
// la direction, le censeur et l'éducateur.
func DemandePermissionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := demandeCtl.NewDemandePermissionController(db)

	grp := r.Group("/permissions")
	grp.Get("/", ctl.List)
	grp.Post("/",
		authMw.OnlyRolesSlice("Seuls les élèves, parents et enseignants déposent des demandes", constants.PermissionRequesterRoles),
		ctl.Create,
	)
	grp.Patch("/:id/decision",
		authMw.OnlyRolesSlice("Seule la vie scolaire tranche les demandes", constants.PermissionApproverRoles),
		ctl.Decide,
	)
}
