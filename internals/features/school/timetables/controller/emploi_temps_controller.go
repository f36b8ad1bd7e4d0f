// internals/features/school/timetables/controller/emploi_temps_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	emploiDTO "monecole_backend/internals/features/school/timetables/dto"
	emploiModel "monecole_backend/internals/features/school/timetables/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"

	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type EmploiTempsController struct {
	DB *gorm.DB
}

func NewEmploiTempsController(db *gorm.DB) *EmploiTempsController {
	return &EmploiTempsController{DB: db}
}

var validate = validator.New()

/* =========================================================
   POST /api/u/emplois-temps
   ========================================================= */

func (ctl *EmploiTempsController) Create(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureEmploisTemps)
	if !caps.CanCreate || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	var req emploiDTO.CreateEmploiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.SemaineFin.Before(req.SemaineDebut) {
		return helper.JsonErr(c, errs.Validationf("semaine_fin antérieure à semaine_debut"))
	}

	m := req.ToModel(prof)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("création emploi du temps: %v", err))
	}

	return helper.JsonCreated(c, "Emploi du temps créé", emploiDTO.NewEmploiResponse(m))
}

/* =========================================================
   GET /api/u/emplois-temps?statut=...&classe_nom=...
   Lecture pour toute l'école ; les brouillons ne sont visibles
   que par la vie scolaire.
   ========================================================= */

func (ctl *EmploiTempsController) List(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	p := helper.ParseFiber(c, "emploi_semaine_debut", "desc", helper.DefaultOpts)

	scope := policy.ScopeFor(prof, policy.FeatureEmploisTemps, policy.KindTenant,
		"emploi_ecole_id", "emploi_cree_par_id")

	tx := scope.Apply(ctl.DB.WithContext(c.Context()).Model(&emploiModel.EmploiTempsModel{}))

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureEmploisTemps)
	if !caps.CanCreate {
		tx = tx.Where("emploi_statut = ?", emploiModel.StatutValide)
	} else if st := c.Query("statut"); st != "" {
		tx = tx.Where("emploi_statut = ?", st)
	}
	if cl := c.Query("classe_nom"); cl != "" {
		tx = tx.Where("emploi_classe_nom = ?", cl)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage emplois du temps: %v", err))
	}

	var rows []emploiModel.EmploiTempsModel
	if err := tx.
		Order("emploi_semaine_debut " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste emplois du temps: %v", err))
	}

	return helper.JsonList(c, "OK", emploiDTO.NewEmploiResponses(rows), helper.BuildMeta(total, p))
}

/* =========================================================
   PATCH /api/u/emplois-temps/:id/status
   brouillon -> soumis -> valide, avancée seule. L'écriture reste
   conditionnée au statut lu pour absorber les décisions croisées.
   ========================================================= */

func (ctl *EmploiTempsController) UpdateStatut(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureEmploisTemps)
	if !caps.CanApprove || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	emploiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("identifiant d'emploi du temps invalide"))
	}

	var req emploiDTO.StatutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m emploiModel.EmploiTempsModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "emploi_id = ? AND emploi_ecole_id = ?", emploiID, *prof.EcoleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Emploi du temps introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture emploi du temps: %v", err))
	}

	depuis := m.EmploiStatut
	if err := m.ApplyStatut(req.Statut); err != nil {
		return helper.JsonErr(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&emploiModel.EmploiTempsModel{}).
		Where("emploi_id = ? AND emploi_statut = ?", emploiID, depuis).
		Update("emploi_statut", m.EmploiStatut)
	if res.Error != nil {
		return helper.JsonErr(c, errs.Storef("changement de statut: %v", res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonErr(c, errs.ErrInvalidTransition)
	}

	return helper.JsonUpdated(c, "Statut mis à jour", emploiDTO.NewEmploiResponse(&m))
}
