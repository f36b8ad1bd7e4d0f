// internals/features/school/documents/route/document_route.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	docCtl "monecole_backend/internals/features/school/documents/controller"
	helperOSS "monecole_backend/internals/helpers/oss"
	authMw "monecole_backend/internals/middlewares/auth"
)

// DocumentRoutes : import de fichiers réservé au personnel concerné.
// Sans configuration OSS, les routes restent montées et répondent
// une erreur de stockage explicite.
func DocumentRoutes(r fiber.Router, db *gorm.DB) {
	var blobs helperOSS.BlobService
	if svc, err := helperOSS.NewOSSBlobServiceFromEnv("documents"); err != nil {
		log.Printf("[ERROR] stockage objet indisponible: %v", err)
	} else {
		blobs = svc
	}
	ctl := docCtl.NewDocumentController(db, blobs)

	grp := r.Group("/documents")
	grp.Get("/",
		authMw.OnlyRolesSlice("Accès réservé au personnel de l'école", constants.StaffRoles),
		ctl.List,
	)
	grp.Post("/",
		authMw.OnlyRolesSlice("Seule la vie scolaire importe des documents", constants.TimetableManagerRoles),
		ctl.Upload,
	)
}
