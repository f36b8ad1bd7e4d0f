// internals/features/school/classes/model/classe_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClasseModel : classe d'une année scolaire.
type ClasseModel struct {
	ClasseID      uuid.UUID `json:"classe_id" gorm:"column:classe_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClasseEcoleID uuid.UUID `json:"classe_ecole_id" gorm:"column:classe_ecole_id;type:uuid;not null;index"`

	ClasseNom           string `json:"classe_nom" gorm:"column:classe_nom;type:varchar(80);not null"`
	ClasseNiveau        string `json:"classe_niveau" gorm:"column:classe_niveau;type:varchar(40);not null"`
	ClasseAnneeScolaire string `json:"classe_annee_scolaire" gorm:"column:classe_annee_scolaire;type:varchar(12);not null"`

	ClasseCreeParID uuid.UUID `json:"classe_cree_par_id" gorm:"column:classe_cree_par_id;type:uuid;not null"`

	ClasseCreatedAt time.Time      `json:"classe_created_at" gorm:"column:classe_created_at;autoCreateTime"`
	ClasseUpdatedAt time.Time      `json:"classe_updated_at" gorm:"column:classe_updated_at;autoUpdateTime"`
	ClasseDeletedAt gorm.DeletedAt `json:"-" gorm:"column:classe_deleted_at;index"`
}

func (ClasseModel) TableName() string { return "classes" }
