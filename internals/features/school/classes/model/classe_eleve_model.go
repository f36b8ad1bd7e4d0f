// internals/features/school/classes/model/classe_eleve_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClasseEleveModel : inscription d'un élève dans une classe.
// L'appartenance est remplacée en bloc à chaque mise à jour.
// L'ecole_id est recopié depuis la classe pour que la table reste
// filtrable par école sans jointure.
type ClasseEleveModel struct {
	ClasseEleveID       uuid.UUID `json:"classe_eleve_id" gorm:"column:classe_eleve_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClasseEleveEcoleID  uuid.UUID `json:"classe_eleve_ecole_id" gorm:"column:classe_eleve_ecole_id;type:uuid;not null;index"`
	ClasseEleveClasseID uuid.UUID `json:"classe_eleve_classe_id" gorm:"column:classe_eleve_classe_id;type:uuid;not null;index:idx_classe_eleve,unique"`
	ClasseEleveEleveID  uuid.UUID `json:"classe_eleve_eleve_id" gorm:"column:classe_eleve_eleve_id;type:uuid;not null;index:idx_classe_eleve,unique"`

	ClasseEleveCreatedAt time.Time `json:"classe_eleve_created_at" gorm:"column:classe_eleve_created_at;autoCreateTime"`
}

func (ClasseEleveModel) TableName() string { return "classe_eleves" }
