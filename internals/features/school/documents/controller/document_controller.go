// internals/features/school/documents/controller/document_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docDTO "monecole_backend/internals/features/school/documents/dto"
	docModel "monecole_backend/internals/features/school/documents/model"
	helper "monecole_backend/internals/helpers"
	helperAuth "monecole_backend/internals/helpers/auth"
	helperOSS "monecole_backend/internals/helpers/oss"

	"monecole_backend/internals/errs"
	"monecole_backend/internals/policy"
)

type DocumentController struct {
	DB    *gorm.DB
	Blobs helperOSS.BlobService
}

func NewDocumentController(db *gorm.DB, blobs helperOSS.BlobService) *DocumentController {
	return &DocumentController{DB: db, Blobs: blobs}
}

/* =========================================================
   POST /api/u/documents  (multipart: fichier, type)
   Le blob part d'abord vers le stockage objet, puis les métadonnées
   en base. Si l'écriture des métadonnées échoue, on compense : le
   blob est supprimé, ou marqué orphelin pour le nettoyeur nocturne
   si la suppression échoue aussi.
   ========================================================= */

func (ctl *DocumentController) Upload(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	caps := policy.CapabilitiesFor(prof.Role, policy.FeatureDocuments)
	if !caps.CanCreate || prof.EcoleID == nil {
		return helper.JsonErr(c, errs.ErrNotPermitted)
	}
	if ctl.Blobs == nil {
		return helper.JsonErr(c, errs.Storef("stockage objet non configuré"))
	}

	docType := strings.TrimSpace(strings.ToLower(c.FormValue("type")))
	if !docModel.IsKnownType(docType) {
		return helper.JsonErr(c, errs.Validationf("type de document invalide: %s", docType))
	}

	fh, err := c.FormFile("fichier")
	if err != nil {
		return helper.JsonErr(c, errs.Validationf("fichier manquant"))
	}

	url, objectKey, contentType, err := ctl.Blobs.UploadToEcoleDir(c.Context(), *prof.EcoleID, docType, fh)
	if err != nil {
		return helper.JsonErr(c, errs.Storef("téléversement: %v", err))
	}

	m := &docModel.DocumentImporteModel{
		DocumentEcoleID:      *prof.EcoleID,
		DocumentType:         docType,
		DocumentNomFichier:   fh.Filename,
		DocumentObjectKey:    objectKey,
		DocumentURL:          url,
		DocumentContentType:  contentType,
		DocumentTaille:       fh.Size,
		DocumentStatut:       docModel.StatutImporte,
		DocumentImporteParID: prof.UserID,
	}

	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		ctl.compensate(c, m)
		return helper.JsonErr(c, errs.Storef("enregistrement document: %v", err))
	}

	return helper.JsonCreated(c, "Document importé", docDTO.NewDocumentResponse(m))
}

// compensate : le blob ne doit pas survivre sans métadonnées.
func (ctl *DocumentController) compensate(c *fiber.Ctx, m *docModel.DocumentImporteModel) {
	if err := ctl.Blobs.DeleteByObjectKey(c.Context(), m.DocumentObjectKey); err == nil {
		return
	}
	marker := *m
	marker.DocumentStatut = docModel.StatutOrphelin
	if err := ctl.DB.WithContext(c.Context()).Create(&marker).Error; err != nil {
		log.Printf("[ERROR] blob orphelin non traçable key=%s: %v", m.DocumentObjectKey, err)
	}
}

/* =========================================================
   GET /api/u/documents?type=...
   ========================================================= */

func (ctl *DocumentController) List(c *fiber.Ctx) error {
	prof, err := helperAuth.GetSessionProfile(c)
	if err != nil {
		return helper.JsonErr(c, err)
	}

	p := helper.ParseFiber(c, "document_created_at", "desc", helper.DefaultOpts)

	scope := policy.ScopeFor(prof, policy.FeatureDocuments, policy.KindTenant,
		"document_ecole_id", "document_importe_par_id")

	tx := scope.Apply(ctl.DB.WithContext(c.Context()).Model(&docModel.DocumentImporteModel{})).
		Where("document_statut = ?", docModel.StatutImporte)

	if typ := c.Query("type"); typ != "" {
		tx = tx.Where("document_type = ?", typ)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("comptage documents: %v", err))
	}

	var rows []docModel.DocumentImporteModel
	if err := tx.
		Order("document_created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonErr(c, errs.Storef("liste documents: %v", err))
	}

	return helper.JsonList(c, "OK", docDTO.NewDocumentResponses(rows), helper.BuildMeta(total, p))
}
