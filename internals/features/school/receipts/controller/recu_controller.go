// internals/features/school/receipts/controller/recu_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	recuDTO "monecole_backend/internals/features/school/receipts/dto"
	recuModel "monecole_backend/internals/features/school/receipts/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"

	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type RecuController struct {
	DB *gorm.DB
}

func NewRecuController(db *gorm.DB) *RecuController {
	return &RecuController{DB: db}
}

var validate = validator.New()

/* =========================================================
   POST /api/u/recus
   ========================================================= */

func (ctl *RecuController) Create(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureRecus)
	if !caps.CanCreate || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	var req recuDTO.CreateRecuRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(prof, time.Now())
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("création reçu: %v", err))
	}

	return helper.JsonCreated(c, "Reçu émis", recuDTO.NewRecuResponse(m))
}

/* =========================================================
   GET /api/u/recus?type_paiement=...&eleve_id=...
   Économat, RH, direction : tous les reçus de l'école.
   Élève : ses propres reçus uniquement.
   ========================================================= */

func (ctl *RecuController) List(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	p := helper.ParseFiber(c, "recu_created_at", "desc", helper.DefaultOpts)

	scope := policy.ScopeFor(prof, policy.FeatureRecus, policy.KindPersonal,
		"recu_ecole_id", "recu_eleve_id")

	tx := scope.Apply(ctl.DB.WithContext(c.Context()).Model(&recuModel.RecuModel{}))

	if typ := c.Query("type_paiement"); typ != "" {
		tx = tx.Where("recu_type_paiement = ?", typ)
	}
	if eleve := c.Query("eleve_id"); eleve != "" {
		if id, perr := uuid.Parse(eleve); perr == nil {
			tx = tx.Where("recu_eleve_id = ?", id)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage reçus: %v", err))
	}

	var rows []recuModel.RecuModel
	if err := tx.
		Order("recu_created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste reçus: %v", err))
	}

	return helper.JsonList(c, "OK", recuDTO.NewRecuResponses(rows), helper.BuildMeta(total, p))
}

/* =========================================================
   PUT /api/u/recus/:id
   Remplacement complet des champs modifiables, une seule écriture.
   ========================================================= */

func (ctl *RecuController) Update(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureRecus)
	if !caps.CanCreate || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	recuID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("identifiant de reçu invalide"))
	}

	var req recuDTO.UpdateRecuRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m recuModel.RecuModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "recu_id = ? AND recu_ecole_id = ?", recuID, *prof.EcoleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Reçu introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture reçu: %v", err))
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&m).
		Updates(req.Columns()).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("mise à jour reçu: %v", err))
	}

	return helper.JsonUpdated(c, "Reçu mis à jour", recuDTO.NewRecuResponse(&m))
}
