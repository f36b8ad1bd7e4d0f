// internals/features/school/timetables/model/emploi_temps_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"monecole_backend/internals/errs"
)

const (
	StatutBrouillon = "brouillon"
	StatutSoumis    = "soumis"
	StatutValide    = "valide"
)

// transitions : avancée seule, jamais de retour en arrière.
var transitions = map[string]string{
	StatutBrouillon: StatutSoumis,
	StatutSoumis:    StatutValide,
}

func IsKnownStatut(s string) bool {
	return s == StatutBrouillon || s == StatutSoumis || s == StatutValide
}

// EmploiTempsModel : emploi du temps hebdomadaire d'une classe.
type EmploiTempsModel struct {
	EmploiID      uuid.UUID `json:"emploi_id" gorm:"column:emploi_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EmploiEcoleID uuid.UUID `json:"emploi_ecole_id" gorm:"column:emploi_ecole_id;type:uuid;not null;index"`

	EmploiTitre     string `json:"emploi_titre" gorm:"column:emploi_titre;type:varchar(200);not null"`
	EmploiClasseNom string `json:"emploi_classe_nom" gorm:"column:emploi_classe_nom;type:varchar(80);not null"`

	EmploiSemaineDebut time.Time `json:"emploi_semaine_debut" gorm:"column:emploi_semaine_debut;not null"`
	EmploiSemaineFin   time.Time `json:"emploi_semaine_fin" gorm:"column:emploi_semaine_fin;not null"`

	EmploiStatut string `json:"emploi_statut" gorm:"column:emploi_statut;type:varchar(20);not null;default:'brouillon'"`

	EmploiCreeParID  uuid.UUID `json:"emploi_cree_par_id" gorm:"column:emploi_cree_par_id;type:uuid;not null"`
	EmploiCreeParNom string    `json:"emploi_cree_par_nom" gorm:"column:emploi_cree_par_nom;type:varchar(120);not null;default:''"`

	EmploiCreatedAt time.Time      `json:"emploi_created_at" gorm:"column:emploi_created_at;autoCreateTime"`
	EmploiUpdatedAt time.Time      `json:"emploi_updated_at" gorm:"column:emploi_updated_at;autoUpdateTime"`
	EmploiDeletedAt gorm.DeletedAt `json:"-" gorm:"column:emploi_deleted_at;index"`
}

func (EmploiTempsModel) TableName() string { return "emplois_temps" }

/* =========================================================
   Machine à états (pure, testable sans base)
   ========================================================= */

// NextStatut : statut suivant autorisé, vide si l'état est final.
func NextStatut(depuis string) string { return transitions[depuis] }

// ApplyStatut avance l'emploi du temps vers le statut demandé.
// Seule la transition immédiate suivante est acceptée.
func (m *EmploiTempsModel) ApplyStatut(vers string) error {
	if !IsKnownStatut(vers) {
		return errs.Validationf("statut inconnu: %s", vers)
	}
	if transitions[m.EmploiStatut] != vers {
		return errs.ErrInvalidTransition
	}
	m.EmploiStatut = vers
	return nil
}
