// internals/features/users/user/model/utilisateur_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UtilisateurModel : profil d'un membre de l'école (personnel, élève,
// parent). Le rôle et l'ecole_id sont posés à l'inscription puis gérés
// par les flux d'administration ; le coeur les lit, ne les modifie pas.
type UtilisateurModel struct {
	UtilisateurID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:utilisateur_id" json:"utilisateur_id"`
	UtilisateurEcoleID *uuid.UUID `gorm:"type:uuid;column:utilisateur_ecole_id;index" json:"utilisateur_ecole_id,omitempty"`

	UtilisateurNom    string `gorm:"size:100;not null;column:utilisateur_nom" json:"utilisateur_nom"`
	UtilisateurPrenom string `gorm:"size:100;not null;column:utilisateur_prenom" json:"utilisateur_prenom"`
	UtilisateurEmail  string `gorm:"size:255;unique;not null;column:utilisateur_email" json:"utilisateur_email"`

	// rôle libre en base : un rôle hors énumération retombe sur les
	// capacités minimales, il ne bloque jamais l'authentification
	UtilisateurRole string `gorm:"type:varchar(30);not null;default:'eleve';column:utilisateur_role" json:"utilisateur_role"`

	UtilisateurPasswordHash string `gorm:"not null;column:utilisateur_password_hash" json:"-"`
	UtilisateurTelephone    *string `gorm:"size:30;column:utilisateur_telephone" json:"utilisateur_telephone,omitempty"`
	UtilisateurIsActive     bool    `gorm:"not null;default:true;column:utilisateur_is_active" json:"utilisateur_is_active"`

	UtilisateurCreatedAt time.Time      `gorm:"autoCreateTime;column:utilisateur_created_at" json:"utilisateur_created_at"`
	UtilisateurUpdatedAt time.Time      `gorm:"autoUpdateTime;column:utilisateur_updated_at" json:"utilisateur_updated_at"`
	UtilisateurDeletedAt gorm.DeletedAt `gorm:"column:utilisateur_deleted_at;index" json:"-"`
}

func (UtilisateurModel) TableName() string { return "utilisateurs_ecole" }

// DisplayName : "Prénom Nom" pour l'affichage et les claims.
func (u UtilisateurModel) DisplayName() string {
	return u.UtilisateurPrenom + " " + u.UtilisateurNom
}
