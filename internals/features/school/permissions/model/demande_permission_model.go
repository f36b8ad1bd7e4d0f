// internals/features/school/permissions/model/demande_permission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"monecole_backend/internals/errs"
)

/* =========================================================
   Statuts et types de demande
   ========================================================= */

const (
	StatusEnAttente = "en_attente"
	StatusApprouvee = "approuvee"
	StatusRefusee   = "refusee"
)

const (
	TypeAbsenceEleve      = "absence_eleve"
	TypeAbsenceEnseignant = "absence_enseignant"
	TypeSortieAnticipee   = "sortie_anticipee"
	TypeAutre             = "autre"
)

// DecisionStatuses : seuls états acceptés comme décision.
var DecisionStatuses = []string{StatusApprouvee, StatusRefusee}

func IsDecisionStatus(s string) bool {
	return s == StatusApprouvee || s == StatusRefusee
}

/* =========================================================
   Modèle
   ========================================================= */

// DemandePermissionModel : demande d'autorisation d'absence ou de sortie.
// en_attente -> approuvee | refusee, états de décision terminaux.
type DemandePermissionModel struct {
	DemandeID      uuid.UUID `json:"demande_id" gorm:"column:demande_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DemandeEcoleID uuid.UUID `json:"demande_ecole_id" gorm:"column:demande_ecole_id;type:uuid;not null;index"`

	DemandeDemandeurID  uuid.UUID `json:"demande_demandeur_id" gorm:"column:demande_demandeur_id;type:uuid;not null;index"`
	DemandeDemandeurNom string    `json:"demande_demandeur_nom" gorm:"column:demande_demandeur_nom;type:varchar(120);not null;default:''"`

	DemandeType  string `json:"demande_type" gorm:"column:demande_type;type:varchar(30);not null"`
	DemandeMotif string `json:"demande_motif" gorm:"column:demande_motif;type:text;not null"`

	DemandeDateDebut time.Time  `json:"demande_date_debut" gorm:"column:demande_date_debut;not null"`
	DemandeDateFin   *time.Time `json:"demande_date_fin,omitempty" gorm:"column:demande_date_fin"`

	DemandeStatus string `json:"demande_status" gorm:"column:demande_status;type:varchar(20);not null;default:'en_attente'"`

	DemandeTraiteParID        *uuid.UUID `json:"demande_traite_par_id,omitempty" gorm:"column:demande_traite_par_id;type:uuid"`
	DemandeTraiteLe           *time.Time `json:"demande_traite_le,omitempty" gorm:"column:demande_traite_le"`
	DemandeCommentaireReponse *string    `json:"demande_commentaire_reponse,omitempty" gorm:"column:demande_commentaire_reponse;type:text"`

	DemandeCreatedAt time.Time      `json:"demande_created_at" gorm:"column:demande_created_at;autoCreateTime"`
	DemandeUpdatedAt time.Time      `json:"demande_updated_at" gorm:"column:demande_updated_at;autoUpdateTime"`
	DemandeDeletedAt gorm.DeletedAt `json:"-" gorm:"column:demande_deleted_at;index"`
}

func (DemandePermissionModel) TableName() string { return "demandes_permission" }

/* =========================================================
   Machine à états (pure, testable sans base)
   ========================================================= */

// CanDecide : vrai si la demande accepte encore une décision.
func (m *DemandePermissionModel) CanDecide() bool {
	return m.DemandeStatus == StatusEnAttente
}

// ApplyDecision applique une décision en mémoire. Le commentaire est
// optionnel (vide = non renseigné). Retourne ErrInvalidTransition si
// la demande est déjà tranchée ou si le statut demandé n'est pas une
// décision.
func (m *DemandePermissionModel) ApplyDecision(status string, decideur uuid.UUID, quand time.Time, commentaire string) error {
	if !IsDecisionStatus(status) {
		return errs.Validationf("statut de décision invalide: %s", status)
	}
	if !m.CanDecide() {
		return errs.ErrInvalidTransition
	}
	m.DemandeStatus = status
	m.DemandeTraiteParID = &decideur
	m.DemandeTraiteLe = &quand
	if commentaire != "" {
		m.DemandeCommentaireReponse = &commentaire
	}
	return nil
}
