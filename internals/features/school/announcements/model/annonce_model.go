// internals/features/school/announcements/model/annonce_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnonceModel : annonce publiée à toute l'école. Immuable après création.
type AnnonceModel struct {
	AnnonceID      uuid.UUID `json:"annonce_id" gorm:"column:annonce_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AnnonceEcoleID uuid.UUID `json:"annonce_ecole_id" gorm:"column:annonce_ecole_id;type:uuid;not null;index"`

	AnnonceTitre   string `json:"annonce_titre" gorm:"column:annonce_titre;type:varchar(200);not null"`
	AnnonceContenu string `json:"annonce_contenu" gorm:"column:annonce_contenu;type:text;not null"`
	AnnonceUrgent  bool   `json:"annonce_urgent" gorm:"column:annonce_urgent;not null;default:false"`

	AnnonceAuteurID uuid.UUID `json:"annonce_auteur_id" gorm:"column:annonce_auteur_id;type:uuid;not null"`
	AnnonceAuteur   string    `json:"annonce_auteur" gorm:"column:annonce_auteur;type:varchar(120);not null;default:''"`

	AnnonceCreatedAt time.Time      `json:"annonce_created_at" gorm:"column:annonce_created_at;autoCreateTime"`
	AnnonceDeletedAt gorm.DeletedAt `json:"-" gorm:"column:annonce_deleted_at;index"`
}

func (AnnonceModel) TableName() string { return "annonces" }
