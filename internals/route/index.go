// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annonceRoutes "monecole_backend/internals/features/school/announcements/route"
	classeRoutes "monecole_backend/internals/features/school/classes/route"
	documentRoutes "monecole_backend/internals/features/school/documents/route"
	demandeRoutes "monecole_backend/internals/features/school/permissions/route"
	recuRoutes "monecole_backend/internals/features/school/receipts/route"
	statsRoutes "monecole_backend/internals/features/school/stats/route"
	emploiRoutes "monecole_backend/internals/features/school/timetables/route"
	authRoutes "monecole_backend/internals/features/users/auth/route"
	userRoutes "monecole_backend/internals/features/users/user/route"
	authMw "monecole_backend/internals/middlewares/auth"
)

/* =========================================================
   Montage des routes
   /api/auth : public (register, login, logout)
   /api/u    : protégé par le middleware JWT
   ========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Public
	authRoutes.AuthRoutes(app, db)

	// Protégé
	u := app.Group("/api/u", authMw.AuthMiddleware(db))

	userRoutes.UserRoutes(u, db)
	annonceRoutes.AnnonceRoutes(u, db)
	demandeRoutes.DemandePermissionRoutes(u, db)
	recuRoutes.RecuRoutes(u, db)
	emploiRoutes.EmploiTempsRoutes(u, db)
	classeRoutes.ClasseRoutes(u, db)
	documentRoutes.DocumentRoutes(u, db)
	statsRoutes.StatsRoutes(u, db)
}
