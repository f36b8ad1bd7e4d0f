// internals/features/school/classes/controller/classe_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classeDTO "monecole_backend/internals/features/school/classes/dto"
	classeModel "monecole_backend/internals/features/school/classes/model"
	userDTO "monecole_backend/internals/features/users/user/dto"
	userModel "monecole_backend/internals/features/users/user/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"

	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type ClasseController struct {
	DB *gorm.DB
}

func NewClasseController(db *gorm.DB) *ClasseController {
	return &ClasseController{DB: db}
}

var validate = validator.New()

/* =========================================================
   POST /api/u/classes
   La classe et ses inscriptions partent dans la même transaction.
   ========================================================= */

func (ctl *ClasseController) Create(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureClasses)
	if !caps.CanCreate || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	var req classeDTO.CreateClasseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(prof)
	var nbInscrits int64
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		rows := classeDTO.Memberships(m.ClasseID, m.ClasseEcoleID, req.EleveIDs)
		nbInscrits = int64(len(rows))
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helper.JsonErr(c, errs.Storef("création classe: %v", err))
	}

	return helper.JsonCreated(c, "Classe créée",
		classeDTO.NewClasseResponse(m, req.EleveIDs, nbInscrits))
}

/* =========================================================
   GET /api/u/classes?annee_scolaire=...
   ========================================================= */

func (ctl *ClasseController) List(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	p := helper.ParseFiber(c, "classe_nom", "asc", helper.DefaultOpts)

	scope := policy.ScopeFor(prof, policy.FeatureClasses, policy.KindTenant,
		"classe_ecole_id", "classe_cree_par_id")

	tx := scope.Apply(ctl.DB.WithContext(c.Context()).Model(&classeModel.ClasseModel{}))

	if annee := c.Query("annee_scolaire"); annee != "" {
		tx = tx.Where("classe_annee_scolaire = ?", annee)
	}
	if niveau := c.Query("niveau"); niveau != "" {
		tx = tx.Where("classe_niveau = ?", niveau)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage classes: %v", err))
	}

	var rows []classeModel.ClasseModel
	if err := tx.
		Order("classe_nom " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste classes: %v", err))
	}

	out := make([]*classeDTO.ClasseResponse, 0, len(rows))
	for i := range rows {
		var nb int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&classeModel.ClasseEleveModel{}).
			Where("classe_eleve_classe_id = ?", rows[i].ClasseID).
			Count(&nb).Error; err != nil {
			return helper.JsonErr(c, errs.Storef("comptage inscriptions: %v", err))
		}
		out = append(out, classeDTO.NewClasseResponse(&rows[i], nil, nb))
	}

	return helper.JsonList(c, "OK", out, helper.BuildMeta(total, p))
}

/* =========================================================
   GET /api/u/classes/:id
   ========================================================= */

func (ctl *ClasseController) Detail(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}
	if prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	classeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("identifiant de classe invalide"))
	}

	var m classeModel.ClasseModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "classe_id = ? AND classe_ecole_id = ?", classeID, *prof.EcoleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Classe introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture classe: %v", err))
	}

	var eleveIDs []uuid.UUID
	if err := ctl.DB.WithContext(c.Context()).
		Model(&classeModel.ClasseEleveModel{}).
		Where("classe_eleve_classe_id = ?", m.ClasseID).
		Pluck("classe_eleve_eleve_id", &eleveIDs).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("lecture inscriptions: %v", err))
	}

	return helper.JsonOK(c, "OK", classeDTO.NewClasseResponse(&m, eleveIDs, int64(len(eleveIDs))))
}

/* =========================================================
   GET /api/u/classes/:id/eleves
   ========================================================= */

func (ctl *ClasseController) ListEleves(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}
	if prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	classeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("identifiant de classe invalide"))
	}

	var m classeModel.ClasseModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "classe_id = ? AND classe_ecole_id = ?", classeID, *prof.EcoleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Classe introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture classe: %v", err))
	}

	var eleves []userModel.UtilisateurModel
	if err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UtilisateurModel{}).
		Joins("JOIN classe_eleves ON classe_eleves.classe_eleve_eleve_id = utilisateurs_ecole.utilisateur_id").
		Where("classe_eleves.classe_eleve_classe_id = ?", classeID).
		Order("utilisateur_nom ASC").
		Find(&eleves).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("lecture inscriptions: %v", err))
	}

	out := make([]*userDTO.UtilisateurLite, 0, len(eleves))
	for i := range eleves {
		out = append(out, userDTO.NewUtilisateurLite(&eleves[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   PUT /api/u/classes/:id/eleves
   Remplacement en bloc des inscriptions de la classe.
   ========================================================= */

func (ctl *ClasseController) ReplaceEleves(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureClasses)
	if !caps.CanCreate || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}

	classeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("identifiant de classe invalide"))
	}

	var req classeDTO.UpdateElevesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErr(c, errs.Validationf("corps de requête illisible"))
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m classeModel.ClasseModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "classe_id = ? AND classe_ecole_id = ?", classeID, *prof.EcoleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Classe introuvable")
		}
		return helper.JsonErr(c, errs.Storef("lecture classe: %v", err))
	}

	rows := classeDTO.Memberships(classeID, m.ClasseEcoleID, req.EleveIDs)
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("classe_eleve_classe_id = ?", classeID).
			Delete(&classeModel.ClasseEleveModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helper.JsonErr(c, errs.Storef("mise à jour inscriptions: %v", err))
	}

	return helper.JsonUpdated(c, "Inscriptions mises à jour",
		classeDTO.NewClasseResponse(&m, req.EleveIDs, int64(len(rows))))
}
