// internals/features/school/timetables/dto/emploi_temps_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "monecole_backend/internals/features/school/timetables/model"
	"monecole_backend/internals/policy"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateEmploiRequest struct {
	Titre        string    `json:"titre" validate:"required,min=3,max=200"`
	ClasseNom    string    `json:"classe_nom" validate:"required,min=1,max=80"`
	SemaineDebut time.Time `json:"semaine_debut" validate:"required"`
	SemaineFin   time.Time `json:"semaine_fin" validate:"required"`
}

func (r *CreateEmploiRequest) Normalize() {
	r.Titre = strings.TrimSpace(r.Titre)
	r.ClasseNom = strings.TrimSpace(r.ClasseNom)
}

func (r *CreateEmploiRequest) ToModel(prof policy.SessionProfile) *model.EmploiTempsModel {
	m := &model.EmploiTempsModel{
		EmploiTitre:        r.Titre,
		EmploiClasseNom:    r.ClasseNom,
		EmploiSemaineDebut: r.SemaineDebut,
		EmploiSemaineFin:   r.SemaineFin,
		EmploiStatut:       model.StatutBrouillon,
		EmploiCreeParID:    prof.UserID,
		EmploiCreeParNom:   prof.DisplayName,
	}
	if prof.EcoleID != nil {
		m.EmploiEcoleID = *prof.EcoleID
	}
	return m
}

type StatutRequest struct {
	Statut string `json:"statut" validate:"required,oneof=soumis valide"`
}

func (r *StatutRequest) Normalize() {
	r.Statut = strings.TrimSpace(strings.ToLower(r.Statut))
}

/* =========================================================
   Responses
   ========================================================= */

type EmploiResponse struct {
	EmploiID     uuid.UUID `json:"emploi_id"`
	EcoleID      uuid.UUID `json:"ecole_id"`
	Titre        string    `json:"titre"`
	ClasseNom    string    `json:"classe_nom"`
	SemaineDebut time.Time `json:"semaine_debut"`
	SemaineFin   time.Time `json:"semaine_fin"`
	Statut       string    `json:"statut"`
	CreeParID    uuid.UUID `json:"cree_par_id"`
	CreeParNom   string    `json:"cree_par_nom"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewEmploiResponse(m *model.EmploiTempsModel) *EmploiResponse {
	if m == nil {
		return nil
	}
	return &EmploiResponse{
		EmploiID:     m.EmploiID,
		EcoleID:      m.EmploiEcoleID,
		Titre:        m.EmploiTitre,
		ClasseNom:    m.EmploiClasseNom,
		SemaineDebut: m.EmploiSemaineDebut,
		SemaineFin:   m.EmploiSemaineFin,
		Statut:       m.EmploiStatut,
		CreeParID:    m.EmploiCreeParID,
		CreeParNom:   m.EmploiCreeParNom,
		CreatedAt:    m.EmploiCreatedAt,
	}
}

func NewEmploiResponses(ms []model.EmploiTempsModel) []*EmploiResponse {
	out := make([]*EmploiResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewEmploiResponse(&ms[i]))
	}
	return out
}
