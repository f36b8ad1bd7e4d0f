package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monecole_backend/internals/policy"
)

func TestCreateAnnonceRequest_ToModel_StampsSession(t *testing.T) {
	ecole := uuid.New()
	auteur := uuid.New()

	req := CreateAnnonceRequest{
		Titre:   "  Réunion des parents  ",
		Contenu: "Samedi à 9h dans la grande salle.",
		Urgent:  true,
	}
	req.Normalize()

	m := req.ToModel(policy.SessionProfile{
		UserID:      auteur,
		Role:        "secretariat",
		EcoleID:     &ecole,
		DisplayName: "Mme Diallo",
	})

	require.NotNil(t, m)
	assert.Equal(t, "Réunion des parents", m.AnnonceTitre)
	assert.Equal(t, ecole, m.AnnonceEcoleID)
	assert.Equal(t, auteur, m.AnnonceAuteurID)
	assert.Equal(t, "Mme Diallo", m.AnnonceAuteur)
	assert.True(t, m.AnnonceUrgent)
}

func TestCreateAnnonceRequest_ToModel_SansEcole(t *testing.T) {
	req := CreateAnnonceRequest{Titre: "Titre", Contenu: "Contenu"}
	m := req.ToModel(policy.SessionProfile{UserID: uuid.New(), Role: "direction"})

	assert.Equal(t, uuid.Nil, m.AnnonceEcoleID)
}
