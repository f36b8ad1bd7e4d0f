// internals/features/school/receipts/dto/recu_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "monecole_backend/internals/features/school/receipts/model"
	"monecole_backend/internals/policy"
)

/* =========================================================
   Requests
   ========================================================= */

// CreateRecuRequest : le montant arrive en francs entiers. L'école et
// l'émetteur sont estampillés depuis la session.
type CreateRecuRequest struct {
	EleveID      uuid.UUID `json:"eleve_id" validate:"required"`
	EleveNom     string    `json:"eleve_nom" validate:"required,min=2,max=120"`
	MontantFCFA  int64     `json:"montant_fcfa" validate:"required,gt=0"`
	TypePaiement string    `json:"type_paiement" validate:"required,oneof=inscription scolarite cantine transport evenement autre"`
	Description  string    `json:"description"`
}

func (r *CreateRecuRequest) Normalize() {
	r.EleveNom = strings.TrimSpace(r.EleveNom)
	r.TypePaiement = strings.TrimSpace(strings.ToLower(r.TypePaiement))
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateRecuRequest) ToModel(prof policy.SessionProfile, quand time.Time) *model.RecuModel {
	m := &model.RecuModel{
		RecuNumero:       NumeroRecu(quand),
		RecuEleveID:      r.EleveID,
		RecuEleveNom:     r.EleveNom,
		RecuMontantFCFA:  r.MontantFCFA,
		RecuTypePaiement: r.TypePaiement,
		RecuDescription:  r.Description,
		RecuEmetteurID:   prof.UserID,
		RecuEmetteurNom:  prof.DisplayName,
		RecuStatut:       model.StatutEmis,
	}
	if prof.EcoleID != nil {
		m.RecuEcoleID = *prof.EcoleID
	}
	return m
}

// UpdateRecuRequest : remplacement complet des champs modifiables,
// appliqué en une seule écriture.
type UpdateRecuRequest struct {
	EleveID      uuid.UUID `json:"eleve_id" validate:"required"`
	EleveNom     string    `json:"eleve_nom" validate:"required,min=2,max=120"`
	MontantFCFA  int64     `json:"montant_fcfa" validate:"required,gt=0"`
	TypePaiement string    `json:"type_paiement" validate:"required,oneof=inscription scolarite cantine transport evenement autre"`
	Description  string    `json:"description"`
	Statut       string    `json:"statut" validate:"required,oneof=emis annule"`
}

func (r *UpdateRecuRequest) Normalize() {
	r.EleveNom = strings.TrimSpace(r.EleveNom)
	r.TypePaiement = strings.TrimSpace(strings.ToLower(r.TypePaiement))
	r.Description = strings.TrimSpace(r.Description)
	r.Statut = strings.TrimSpace(strings.ToLower(r.Statut))
}

// Columns : mise à jour atomique, colonnes explicites.
func (r *UpdateRecuRequest) Columns() map[string]any {
	return map[string]any{
		"recu_eleve_id":      r.EleveID,
		"recu_eleve_nom":     r.EleveNom,
		"recu_montant_fcfa":  r.MontantFCFA,
		"recu_type_paiement": r.TypePaiement,
		"recu_description":   r.Description,
		"recu_statut":        r.Statut,
	}
}

// NumeroRecu : numéro lisible, horodaté à la création.
func NumeroRecu(quand time.Time) string {
	return fmt.Sprintf("REC-%s-%06d", quand.Format("20060102"), quand.UnixNano()%1000000)
}

/* =========================================================
   Responses
   ========================================================= */

type RecuResponse struct {
	RecuID       uuid.UUID `json:"recu_id"`
	EcoleID      uuid.UUID `json:"ecole_id"`
	Numero       string    `json:"numero"`
	EleveID      uuid.UUID `json:"eleve_id"`
	EleveNom     string    `json:"eleve_nom"`
	MontantFCFA  int64     `json:"montant_fcfa"`
	TypePaiement string    `json:"type_paiement"`
	Description  string    `json:"description"`
	EmetteurID   uuid.UUID `json:"emetteur_id"`
	EmetteurNom  string    `json:"emetteur_nom"`
	Statut       string    `json:"statut"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewRecuResponse(m *model.RecuModel) *RecuResponse {
	if m == nil {
		return nil
	}
	return &RecuResponse{
		RecuID:       m.RecuID,
		EcoleID:      m.RecuEcoleID,
		Numero:       m.RecuNumero,
		EleveID:      m.RecuEleveID,
		EleveNom:     m.RecuEleveNom,
		MontantFCFA:  m.RecuMontantFCFA,
		TypePaiement: m.RecuTypePaiement,
		Description:  m.RecuDescription,
		EmetteurID:   m.RecuEmetteurID,
		EmetteurNom:  m.RecuEmetteurNom,
		Statut:       m.RecuStatut,
		CreatedAt:    m.RecuCreatedAt,
	}
}

func NewRecuResponses(ms []model.RecuModel) []*RecuResponse {
	out := make([]*RecuResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewRecuResponse(&ms[i]))
	}
	return out
}
