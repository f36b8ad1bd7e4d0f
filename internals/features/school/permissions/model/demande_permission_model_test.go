package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monecole_backend/internals/errs"
)

func demandeEnAttente() *DemandePermissionModel {
	return &DemandePermissionModel{
		DemandeID:          uuid.New(),
		DemandeEcoleID:     uuid.New(),
		DemandeDemandeurID: uuid.New(),
		DemandeType:        TypeAbsenceEleve,
		DemandeMotif:       "Rendez-vous médical",
		DemandeDateDebut:   time.Now(),
		DemandeStatus:      StatusEnAttente,
	}
}

func TestApplyDecision_Approuve(t *testing.T) {
	m := demandeEnAttente()
	decideur := uuid.New()
	quand := time.Now()

	require.NoError(t, m.ApplyDecision(StatusApprouvee, decideur, quand, ""))

	assert.Equal(t, StatusApprouvee, m.DemandeStatus)
	require.NotNil(t, m.DemandeTraiteParID)
	assert.Equal(t, decideur, *m.DemandeTraiteParID)
	require.NotNil(t, m.DemandeTraiteLe)
	assert.Equal(t, quand, *m.DemandeTraiteLe)
	assert.Nil(t, m.DemandeCommentaireReponse)
}

func TestApplyDecision_RefuseAvecCommentaire(t *testing.T) {
	m := demandeEnAttente()
	require.NoError(t, m.ApplyDecision(StatusRefusee, uuid.New(), time.Now(), "Période d'examens"))
	assert.Equal(t, StatusRefusee, m.DemandeStatus)
	require.NotNil(t, m.DemandeCommentaireReponse)
	assert.Equal(t, "Période d'examens", *m.DemandeCommentaireReponse)
	assert.False(t, m.CanDecide())
}

func TestApplyDecision_DejaTranchee(t *testing.T) {
	m := demandeEnAttente()
	premierDecideur := uuid.New()
	premierMoment := time.Now()
	require.NoError(t, m.ApplyDecision(StatusApprouvee, premierDecideur, premierMoment, "Bon rétablissement"))

	// Une seconde décision ne change rien, quel que soit le sens.
	err := m.ApplyDecision(StatusRefusee, uuid.New(), time.Now().Add(time.Hour), "Trop tard")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))

	assert.Equal(t, StatusApprouvee, m.DemandeStatus)
	assert.Equal(t, premierDecideur, *m.DemandeTraiteParID)
	assert.Equal(t, premierMoment, *m.DemandeTraiteLe)
	assert.Equal(t, "Bon rétablissement", *m.DemandeCommentaireReponse)
}

func TestApplyDecision_StatutInvalide(t *testing.T) {
	m := demandeEnAttente()
	err := m.ApplyDecision("en_attente", uuid.New(), time.Now(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.Equal(t, StatusEnAttente, m.DemandeStatus)
	assert.Nil(t, m.DemandeTraiteParID)
}

func TestIsDecisionStatus(t *testing.T) {
	assert.True(t, IsDecisionStatus(StatusApprouvee))
	assert.True(t, IsDecisionStatus(StatusRefusee))
	assert.False(t, IsDecisionStatus(StatusEnAttente))
	assert.False(t, IsDecisionStatus(""))
	assert.False(t, IsDecisionStatus("annulee"))
}
