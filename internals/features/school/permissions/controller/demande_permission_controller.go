// internals/features/school/permissions/controller/demande_permission_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	demandeDTO "monecole_backend/internals/features/school/permissions/dto"
	demandeModel "monecole_backend/internals/features/school/permissions/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"

	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type DemandePermissionController struct {
	DB *gorm.DB
}

func NewDemandePermissionController(db *gorm.DB) *DemandePermissionController {
	return &DemandePermissionController{DB: db}
}

var validate = validator.New()

/* =========================================================
   POST /api/u/permissions
   ========================================================= */

func (ctl *DemandePermissionController) Create(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeaturePermissions)
	if !caps.CanCreate {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}
	if prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	var req demandeDTO.CreateDemandeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.DateFin != nil && req.DateFin.Before(req.DateDebut) {
		return helper.JsonErr(c, errs.Validationf("date_fin antérieure à date_debut"))
	}

	m := req.ToModel(prof)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("création demande: %v", err))
	}

	return helper.JsonCreated(c, "Demande envoyée", demandeDTO.NewDemandeResponse(m))
}

/* =========================================================
   GET /api/u/permissions?status=...
   Demandeurs : leurs propres demandes uniquement.
   Direction, censeur, éducateur : toutes les demandes de l'école.
   ========================================================= */

func (ctl *DemandePermissionController) List(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	p := helper.ParseFiber(c, "demande_created_at", "desc", helper.DefaultOpts)

	scope := policy.ScopeFor(prof, policy.FeaturePermissions, policy.KindPersonal,
		"demande_ecole_id", "demande_demandeur_id")

	tx := scope.Apply(ctl.DB.WithContext(c.Context()).Model(&demandeModel.DemandePermissionModel{}))

	if st := c.Query("status"); st != "" {
		tx = tx.Where("demande_status = ?", st)
	}
	if typ := c.Query("type"); typ != "" {
		tx = tx.Where("demande_type = ?", typ)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage demandes: %v", err))
	}

	var rows []demandeModel.DemandePermissionModel
	if err := tx.
		Order("demande_created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste demandes: %v", err))
	}

	return helper.JsonList(c, "OK", demandeDTO.NewDemandeResponses(rows), helper.BuildMeta(total, p))
}

/* =========================================================
   PATCH /api/u/permissions/:id/decision
   UPDATE conditionnel sur demande_status = 'en_attente' :
   une demande déjà tranchée ne change plus jamais d'état.
   ========================================================= */

func (ctl *DemandePermissionController) Decide(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeaturePermissions)
	if !caps.CanApprove || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	demandeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("identifiant de demande invalide"))
	}

	var req demandeDTO.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m demandeModel.DemandePermissionModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "demande_id = ? AND demande_ecole_id = ?", demandeID, *prof.EcoleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Demande introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture demande: %v", err))
	}

	maintenant := time.Now()
	if err := m.ApplyDecision(req.Status, prof.UserID, maintenant, req.Commentaire); err != nil {
		return helper.JsonErr(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&demandeModel.DemandePermissionModel{}).
		Where("demande_id = ? AND demande_status = ?", demandeID, demandeModel.StatusEnAttente).
		Updates(map[string]any{
			"demande_status":              m.DemandeStatus,
			"demande_traite_par_id":       m.DemandeTraiteParID,
			"demande_traite_le":           m.DemandeTraiteLe,
			"demande_commentaire_reponse": m.DemandeCommentaireReponse,
		})
	if res.Error != nil {
		return helper.JsonErr(c, errs.Storef("décision demande: %v", res.Error))
	}
	if res.RowsAffected == 0 {
		// Tranchée entre la lecture et l'écriture.
		return helper.JsonErr(c, errs.ErrInvalidTransition)
	}

	return helper.JsonUpdated(c, "Décision enregistrée", demandeDTO.NewDemandeResponse(&m))
}
