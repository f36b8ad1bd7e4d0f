package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_IgnoreRoleEtEcoleClient(t *testing.T) {
	// Un appelant non authentifié ne peut pas se fabriquer un rôle
	// privilégié ni une appartenance à une école existante.
	payload := []byte(`{
		"nom": "Keita",
		"prenom": "Fanta",
		"email": "Fanta.Keita@Example.org",
		"password": "motdepasse1",
		"role": "direction",
		"ecole_id": "6f1e2d3c-4b5a-4697-8899-aabbccddeeff"
	}`)

	var req RegisterRequest
	require.NoError(t, sonic.Unmarshal(payload, &req))

	m := req.ToModel("hash")
	assert.Equal(t, "eleve", m.UtilisateurRole)
	assert.Nil(t, m.UtilisateurEcoleID)
	assert.Equal(t, "fanta.keita@example.org", m.UtilisateurEmail)
	assert.True(t, m.UtilisateurIsActive)
}

func TestRegisterRequest_ToModel_Normalise(t *testing.T) {
	req := RegisterRequest{
		Nom:      "  Keita ",
		Prenom:   " Fanta",
		Email:    " FANTA@ecole.sn ",
		Password: "motdepasse1",
	}
	m := req.ToModel("hash")
	assert.Equal(t, "Keita", m.UtilisateurNom)
	assert.Equal(t, "Fanta", m.UtilisateurPrenom)
	assert.Equal(t, "fanta@ecole.sn", m.UtilisateurEmail)
	assert.Equal(t, "eleve", m.UtilisateurRole)
}
