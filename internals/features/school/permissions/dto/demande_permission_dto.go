// internals/features/school/permissions/dto/demande_permission_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "monecole_backend/internals/features/school/permissions/model"
	"monecole_backend/internals/policy"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateDemandeRequest struct {
	Type      string     `json:"type" validate:"required,oneof=absence_eleve absence_enseignant sortie_anticipee autre"`
	Motif     string     `json:"motif" validate:"required,min=3"`
	DateDebut time.Time  `json:"date_debut" validate:"required"`
	DateFin   *time.Time `json:"date_fin,omitempty"`
}

func (r *CreateDemandeRequest) Normalize() {
	r.Type = strings.TrimSpace(strings.ToLower(r.Type))
	r.Motif = strings.TrimSpace(r.Motif)
}

// ToModel : le demandeur et l'école sont estampillés depuis la session,
// le statut démarre toujours à en_attente.
func (r *CreateDemandeRequest) ToModel(prof policy.SessionProfile) *model.DemandePermissionModel {
	m := &model.DemandePermissionModel{
		DemandeDemandeurID:  prof.UserID,
		DemandeDemandeurNom: prof.DisplayName,
		DemandeType:         r.Type,
		DemandeMotif:        r.Motif,
		DemandeDateDebut:    r.DateDebut,
		DemandeDateFin:      r.DateFin,
		DemandeStatus:       model.StatusEnAttente,
	}
	if prof.EcoleID != nil {
		m.DemandeEcoleID = *prof.EcoleID
	}
	return m
}

type DecisionRequest struct {
	Status      string `json:"status" validate:"required,oneof=approuvee refusee"`
	Commentaire string `json:"commentaire" validate:"omitempty,max=500"`
}

func (r *DecisionRequest) Normalize() {
	r.Status = strings.TrimSpace(strings.ToLower(r.Status))
	r.Commentaire = strings.TrimSpace(r.Commentaire)
}

/* =========================================================
   Responses
   ========================================================= */

type DemandeResponse struct {
	DemandeID    uuid.UUID  `json:"demande_id"`
	EcoleID      uuid.UUID  `json:"ecole_id"`
	DemandeurID  uuid.UUID  `json:"demandeur_id"`
	DemandeurNom string     `json:"demandeur_nom"`
	Type         string     `json:"type"`
	Motif        string     `json:"motif"`
	DateDebut    time.Time  `json:"date_debut"`
	DateFin      *time.Time `json:"date_fin,omitempty"`
	Status       string     `json:"status"`
	TraiteParID  *uuid.UUID `json:"traite_par_id,omitempty"`
	TraiteLe     *time.Time `json:"traite_le,omitempty"`
	Commentaire  *string    `json:"commentaire,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewDemandeResponse(m *model.DemandePermissionModel) *DemandeResponse {
	if m == nil {
		return nil
	}
	return &DemandeResponse{
		DemandeID:    m.DemandeID,
		EcoleID:      m.DemandeEcoleID,
		DemandeurID:  m.DemandeDemandeurID,
		DemandeurNom: m.DemandeDemandeurNom,
		Type:         m.DemandeType,
		Motif:        m.DemandeMotif,
		DateDebut:    m.DemandeDateDebut,
		DateFin:      m.DemandeDateFin,
		Status:       m.DemandeStatus,
		TraiteParID:  m.DemandeTraiteParID,
		TraiteLe:     m.DemandeTraiteLe,
		Commentaire:  m.DemandeCommentaireReponse,
		CreatedAt:    m.DemandeCreatedAt,
	}
}

func NewDemandeResponses(ms []model.DemandePermissionModel) []*DemandeResponse {
	out := make([]*DemandeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewDemandeResponse(&ms[i]))
	}
	return out
}
