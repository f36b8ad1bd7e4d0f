package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"monecole_backend/internals/policy"
)

func TestMemberships_Dedoublonne(t *testing.T) {
	classe := uuid.New()
	ecole := uuid.New()
	a, b := uuid.New(), uuid.New()

	rows := Memberships(classe, ecole, []uuid.UUID{a, b, a, uuid.Nil, b})

	assert.Len(t, rows, 2)
	assert.Equal(t, a, rows[0].ClasseEleveEleveID)
	assert.Equal(t, b, rows[1].ClasseEleveEleveID)
	for _, r := range rows {
		assert.Equal(t, classe, r.ClasseEleveClasseID)
		assert.Equal(t, ecole, r.ClasseEleveEcoleID)
	}
}

func TestMemberships_Vide(t *testing.T) {
	assert.Empty(t, Memberships(uuid.New(), uuid.New(), nil))
	assert.Empty(t, Memberships(uuid.New(), uuid.New(), []uuid.UUID{uuid.Nil}))
}

func TestCreateClasseRequest_ToModel(t *testing.T) {
	ecole := uuid.New()
	createur := uuid.New()

	req := CreateClasseRequest{
		Nom:           " 6e A ",
		Niveau:        "6e",
		AnneeScolaire: "2026-2027",
	}
	req.Normalize()

	m := req.ToModel(policy.SessionProfile{UserID: createur, Role: "secretariat", EcoleID: &ecole})

	assert.Equal(t, "6e A", m.ClasseNom)
	assert.Equal(t, "6e", m.ClasseNiveau)
	assert.Equal(t, "2026-2027", m.ClasseAnneeScolaire)
	assert.Equal(t, ecole, m.ClasseEcoleID)
	assert.Equal(t, createur, m.ClasseCreeParID)
}
