// internals/features/school/announcements/dto/annonce_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "monecole_backend/internals/features/school/announcements/model"
	"monecole_backend/internals/policy"
)

/* =========================================================
   Requests
   ========================================================= */

// CreateAnnonceRequest : l'école et l'auteur viennent de la session,
// jamais du corps de la requête.
type CreateAnnonceRequest struct {
	Titre   string `json:"titre" validate:"required,min=3,max=200"`
	Contenu string `json:"contenu" validate:"required,min=3"`
	Urgent  bool   `json:"urgent"`
}

func (r *CreateAnnonceRequest) Normalize() {
	r.Titre = strings.TrimSpace(r.Titre)
	r.Contenu = strings.TrimSpace(r.Contenu)
}

func (r *CreateAnnonceRequest) ToModel(prof policy.SessionProfile) *model.AnnonceModel {
	m := &model.AnnonceModel{
		AnnonceTitre:    r.Titre,
		AnnonceContenu:  r.Contenu,
		AnnonceUrgent:   r.Urgent,
		AnnonceAuteurID: prof.UserID,
		AnnonceAuteur:   prof.DisplayName,
	}
	if prof.EcoleID != nil {
		m.AnnonceEcoleID = *prof.EcoleID
	}
	return m
}

/* =========================================================
   Responses
   ========================================================= */

type AnnonceResponse struct {
	AnnonceID uuid.UUID `json:"annonce_id"`
	EcoleID   uuid.UUID `json:"ecole_id"`
	Titre     string    `json:"titre"`
	Contenu   string    `json:"contenu"`
	Urgent    bool      `json:"urgent"`
	AuteurID  uuid.UUID `json:"auteur_id"`
	Auteur    string    `json:"auteur"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAnnonceResponse(m *model.AnnonceModel) *AnnonceResponse {
	if m == nil {
		return nil
	}
	return &AnnonceResponse{
		AnnonceID: m.AnnonceID,
		EcoleID:   m.AnnonceEcoleID,
		Titre:     m.AnnonceTitre,
		Contenu:   m.AnnonceContenu,
		Urgent:    m.AnnonceUrgent,
		AuteurID:  m.AnnonceAuteurID,
		Auteur:    m.AnnonceAuteur,
		CreatedAt: m.AnnonceCreatedAt,
	}
}

func NewAnnonceResponses(ms []model.AnnonceModel) []*AnnonceResponse {
	out := make([]*AnnonceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAnnonceResponse(&ms[i]))
	}
	return out
}
