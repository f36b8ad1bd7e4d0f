// internals/features/users/user/dto/utilisateur_dto.go
package dto

import (
	"github.com/google/uuid"

	model "monecole_backend/internals/features/users/user/model"
)

// UtilisateurLite : projection minimale pour les listes de sélection
// (recherche d'élèves dans les reçus et la gestion de classes).
type UtilisateurLite struct {
	UtilisateurID uuid.UUID `json:"utilisateur_id"`
	Nom           string    `json:"nom"`
	Prenom        string    `json:"prenom"`
	Role          string    `json:"role"`
}

func NewUtilisateurLite(m *model.UtilisateurModel) *UtilisateurLite {
	if m == nil {
		return nil
	}
	return &UtilisateurLite{
		UtilisateurID: m.UtilisateurID,
		Nom:           m.UtilisateurNom,
		Prenom:        m.UtilisateurPrenom,
		Role:          m.UtilisateurRole,
	}
}

type MeResponse struct {
	UtilisateurID uuid.UUID  `json:"utilisateur_id"`
	EcoleID       *uuid.UUID `json:"ecole_id,omitempty"`
	Nom           string     `json:"nom"`
	Prenom        string     `json:"prenom"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
}

func NewMeResponse(m *model.UtilisateurModel) *MeResponse {
	if m == nil {
		return nil
	}
	return &MeResponse{
		UtilisateurID: m.UtilisateurID,
		EcoleID:       m.UtilisateurEcoleID,
		Nom:           m.UtilisateurNom,
		Prenom:        m.UtilisateurPrenom,
		Email:         m.UtilisateurEmail,
		Role:          m.UtilisateurRole,
	}
}
