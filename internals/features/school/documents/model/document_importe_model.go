// internals/features/school/documents/model/document_importe_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatutImporte  = "importe"
	StatutOrphelin = "orphelin"
)

const (
	TypeClasses     = "classes"
	TypeEmploiTemps = "emploi_temps"
)

func IsKnownType(s string) bool {
	return s == TypeClasses || s == TypeEmploiTemps
}

// DocumentImporteModel : fichier importé vers le stockage objet.
// Une ligne orpheline garde la trace d'un blob dont les métadonnées
// n'ont pas pu être finalisées ; le nettoyeur nocturne la récolte.
type DocumentImporteModel struct {
	DocumentID      uuid.UUID `json:"document_id" gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DocumentEcoleID uuid.UUID `json:"document_ecole_id" gorm:"column:document_ecole_id;type:uuid;not null;index"`

	DocumentType       string `json:"document_type" gorm:"column:document_type;type:varchar(30);not null"`
	DocumentNomFichier string `json:"document_nom_fichier" gorm:"column:document_nom_fichier;type:varchar(255);not null"`

	DocumentObjectKey   string `json:"-" gorm:"column:document_object_key;type:varchar(512);not null;index"`
	DocumentURL         string `json:"document_url" gorm:"column:document_url;type:text;not null"`
	DocumentContentType string `json:"document_content_type" gorm:"column:document_content_type;type:varchar(100);not null;default:''"`
	DocumentTaille      int64  `json:"document_taille" gorm:"column:document_taille;type:bigint;not null;default:0"`

	DocumentStatut string `json:"document_statut" gorm:"column:document_statut;type:varchar(20);not null;default:'importe'"`

	DocumentImporteParID uuid.UUID `json:"document_importe_par_id" gorm:"column:document_importe_par_id;type:uuid;not null"`

	DocumentCreatedAt time.Time      `json:"document_created_at" gorm:"column:document_created_at;autoCreateTime"`
	DocumentDeletedAt gorm.DeletedAt `json:"-" gorm:"column:document_deleted_at;index"`
}

func (DocumentImporteModel) TableName() string { return "documents_importes" }
