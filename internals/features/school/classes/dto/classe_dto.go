// internals/features/school/classes/dto/classe_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "monecole_backend/internals/features/school/classes/model"
	"monecole_backend/internals/policy"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateClasseRequest struct {
	Nom           string      `json:"nom" validate:"required,min=1,max=80"`
	Niveau        string      `json:"niveau" validate:"required,min=1,max=40"`
	AnneeScolaire string      `json:"annee_scolaire" validate:"required,min=4,max=12"`
	EleveIDs      []uuid.UUID `json:"eleve_ids" validate:"omitempty,dive,required"`
}

func (r *CreateClasseRequest) Normalize() {
	r.Nom = strings.TrimSpace(r.Nom)
	r.Niveau = strings.TrimSpace(r.Niveau)
	r.AnneeScolaire = strings.TrimSpace(r.AnneeScolaire)
}

func (r *CreateClasseRequest) ToModel(prof policy.SessionProfile) *model.ClasseModel {
	m := &model.ClasseModel{
		ClasseNom:           r.Nom,
		ClasseNiveau:        r.Niveau,
		ClasseAnneeScolaire: r.AnneeScolaire,
		ClasseCreeParID:     prof.UserID,
	}
	if prof.EcoleID != nil {
		m.ClasseEcoleID = *prof.EcoleID
	}
	return m
}

// Memberships : lignes d'inscription pour l'insertion en bloc,
// dédoublonnées côté serveur. L'ecole_id vient de la classe chargée
// sous filtre tenant, jamais du client.
func Memberships(classeID, ecoleID uuid.UUID, eleveIDs []uuid.UUID) []model.ClasseEleveModel {
	vus := make(map[uuid.UUID]struct{}, len(eleveIDs))
	out := make([]model.ClasseEleveModel, 0, len(eleveIDs))
	for _, id := range eleveIDs {
		if id == uuid.Nil {
			continue
		}
		if _, ok := vus[id]; ok {
			continue
		}
		vus[id] = struct{}{}
		out = append(out, model.ClasseEleveModel{
			ClasseEleveEcoleID:  ecoleID,
			ClasseEleveClasseID: classeID,
			ClasseEleveEleveID:  id,
		})
	}
	return out
}

type UpdateElevesRequest struct {
	EleveIDs []uuid.UUID `json:"eleve_ids" validate:"required,dive,required"`
}

/* =========================================================
   Responses
   ========================================================= */

type ClasseResponse struct {
	ClasseID      uuid.UUID   `json:"classe_id"`
	EcoleID       uuid.UUID   `json:"ecole_id"`
	Nom           string      `json:"nom"`
	Niveau        string      `json:"niveau"`
	AnneeScolaire string      `json:"annee_scolaire"`
	EleveIDs      []uuid.UUID `json:"eleve_ids,omitempty"`
	NbEleves      int64       `json:"nb_eleves"`
	CreatedAt     time.Time   `json:"created_at"`
}

func NewClasseResponse(m *model.ClasseModel, eleveIDs []uuid.UUID, nbEleves int64) *ClasseResponse {
	if m == nil {
		return nil
	}
	return &ClasseResponse{
		ClasseID:      m.ClasseID,
		EcoleID:       m.ClasseEcoleID,
		Nom:           m.ClasseNom,
		Niveau:        m.ClasseNiveau,
		AnneeScolaire: m.ClasseAnneeScolaire,
		EleveIDs:      eleveIDs,
		NbEleves:      nbEleves,
		CreatedAt:     m.ClasseCreatedAt,
	}
}
