// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	userModel "monecole_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

// RegisterRequest : inscription publique. Le rôle et l'école ne
// viennent JAMAIS du client : tout nouveau compte démarre "eleve"
// sans école, l'affectation relève d'un flux d'administration.
type RegisterRequest struct {
	Nom      string `json:"nom" validate:"required,min=2,max=100"`
	Prenom   string `json:"prenom" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r RegisterRequest) ToModel(passwordHash string) *userModel.UtilisateurModel {
	return &userModel.UtilisateurModel{
		UtilisateurNom:          strings.TrimSpace(r.Nom),
		UtilisateurPrenom:       strings.TrimSpace(r.Prenom),
		UtilisateurEmail:        strings.ToLower(strings.TrimSpace(r.Email)),
		UtilisateurRole:         "eleve",
		UtilisateurPasswordHash: passwordHash,
		UtilisateurIsActive:     true,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UtilisateurResponse struct {
	UtilisateurID      uuid.UUID  `json:"utilisateur_id"`
	UtilisateurEcoleID *uuid.UUID `json:"utilisateur_ecole_id,omitempty"`
	Nom                string     `json:"nom"`
	Prenom             string     `json:"prenom"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
}

func NewUtilisateurResponse(m *userModel.UtilisateurModel) *UtilisateurResponse {
	if m == nil {
		return nil
	}
	return &UtilisateurResponse{
		UtilisateurID:      m.UtilisateurID,
		UtilisateurEcoleID: m.UtilisateurEcoleID,
		Nom:                m.UtilisateurNom,
		Prenom:             m.UtilisateurPrenom,
		Email:              m.UtilisateurEmail,
		Role:               m.UtilisateurRole,
	}
}
