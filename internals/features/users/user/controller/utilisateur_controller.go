// internals/features/users/user/controller/utilisateur_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monecole_backend/internals/constants"
	"monecole_backend/internals/errs"
	userDTO "monecole_backend/internals/features/users/user/dto"
	userModel "monecole_backend/internals/features/users/user/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"
)

type UtilisateurController struct {
	DB *gorm.DB
}

func NewUtilisateurController(db *gorm.DB) *UtilisateurController {
	return &UtilisateurController{DB: db}
}

/* =========================================================
   GET /api/u/me
   ========================================================= */

func (ctl *UtilisateurController) Me(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	var u userModel.UtilisateurModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&u, "utilisateur_id = ?", prof.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture utilisateur: %v", err))
	}

	return helper.JsonOK(c, "OK", userDTO.NewMeResponse(&u))
}

/* =========================================================
   GET /api/u/eleves?q=...
   Liste des élèves de l'école, pour les écrans reçus et classes.
   Réservé au personnel (garde posée sur la route).
   ========================================================= */

func (ctl *UtilisateurController) ListEleves(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}
	if prof.EcoleID == nil {
		return helper.JsonList(c, "OK", []*userDTO.UtilisateurLite{}, helper.BuildMeta(0, helper.Params{Page: 1, PerPage: 20}))
	}

	p := helper.ParseFiber(c, "utilisateur_nom", "asc", helper.DefaultOpts)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UtilisateurModel{}).
		Where("utilisateur_ecole_id = ?", *prof.EcoleID).
		Where("utilisateur_role = ?", constants.RoleEleve).
		Where("utilisateur_is_active = TRUE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("(utilisateur_nom ILIKE ? OR utilisateur_prenom ILIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage élèves: %v", err))
	}

	var rows []userModel.UtilisateurModel
	if err := tx.
		Order("utilisateur_nom " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste élèves: %v", err))
	}

	out := make([]*userDTO.UtilisateurLite, 0, len(rows))
	for i := range rows {
		out = append(out, userDTO.NewUtilisateurLite(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildMeta(total, p))
}
