// internals/features/school/announcements/controller/annonce_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annonceDTO "monecole_backend/internals/features/school/announcements/dto"
	annonceModel "monecole_backend/internals/features/school/announcements/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"

	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type AnnonceController struct {
	DB *gorm.DB
}

func NewAnnonceController(db *gorm.DB) *AnnonceController {
	return &AnnonceController{DB: db}
}

var validate = validator.New()

/* =========================================================
   POST /api/u/annonces
   ========================================================= */

func (ctl *AnnonceController) Create(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureAnnonces)
	if !caps.CanCreate {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}
	if prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	var req annonceDTO.CreateAnnonceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(prof)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("création annonce: %v", err))
	}

	return helper.JsonCreated(c, "Annonce publiée", annonceDTO.NewAnnonceResponse(m))
}

/* =========================================================
   GET /api/u/annonces
   Visible par tous les rôles de l'école (portée tenant).
   ========================================================= */

func (ctl *AnnonceController) List(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	p := helper.ParseFiber(c, "annonce_created_at", "desc", helper.DefaultOpts)

	scope := policy.ScopeFor(prof, policy.FeatureAnnonces, policy.KindTenant,
		"annonce_ecole_id", "annonce_auteur_id")

	tx := scope.Apply(ctl.DB.WithContext(c.Context()).Model(&annonceModel.AnnonceModel{}))

	if urgent := c.Query("urgent"); urgent == "true" {
		tx = tx.Where("annonce_urgent = TRUE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage annonces: %v", err))
	}

	var rows []annonceModel.AnnonceModel
	if err := tx.
		Order("annonce_created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste annonces: %v", err))
	}

	return helper.JsonList(c, "OK", annonceDTO.NewAnnonceResponses(rows), helper.BuildMeta(total, p))
}
