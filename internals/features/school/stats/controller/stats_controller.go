// internals/features/school/stats/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annonceModel "monecole_backend/internals/features/school/announcements/model"
	classeModel "monecole_backend/internals/features/school/classes/model"
	demandeModel "monecole_backend/internals/features/school/permissions/model"
	statsDTO "monecole_backend/internals/features/school/stats/dto"
	userModel "monecole_backend/internals/features/users/user/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"

	"monecole_backend/internals/constants"
	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

/* =========================================================
   GET /api/u/stats
   Compteurs du tableau de bord, toujours bornés à l'école.
   ========================================================= */

func (ctl *StatsController) Overview(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureStats)
	if !caps.CanViewAll || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}
	ecole := *prof.EcoleID

	db := ctl.DB.WithContext(c.Context())
	var out statsDTO.StatsResponse

	if err := db.Model(&userModel.UtilisateurModel{}).
		Where("utilisateur_ecole_id = ? AND utilisateur_role = ? AND utilisateur_is_active = TRUE", ecole, constants.RoleEleve).
		Count(&out.NbEleves).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage élèves: %v", err))
	}
	if err := db.Model(&userModel.UtilisateurModel{}).
		Where("utilisateur_ecole_id = ? AND utilisateur_role = ? AND utilisateur_is_active = TRUE", ecole, constants.RoleEnseignant).
		Count(&out.NbEnseignants).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage enseignants: %v", err))
	}
	if err := db.Model(&classeModel.ClasseModel{}).
		Where("classe_ecole_id = ?", ecole).
		Count(&out.NbClasses).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage classes: %v", err))
	}
	if err := db.Model(&annonceModel.AnnonceModel{}).
		Where("annonce_ecole_id = ?", ecole).
		Count(&out.NbAnnonces).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage annonces: %v", err))
	}
	if err := db.Model(&demandeModel.DemandePermissionModel{}).
		Where("demande_ecole_id = ? AND demande_status = ?", ecole, demandeModel.StatusEnAttente).
		Count(&out.NbDemandesEnAttente).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage demandes: %v", err))
	}

	return helper.JsonOK(c, "OK", out)
}
