package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monecole_backend/internals/errs"
)

func TestApplyStatut_AvanceeNormale(t *testing.T) {
	m := &EmploiTempsModel{EmploiStatut: StatutBrouillon}

	require.NoError(t, m.ApplyStatut(StatutSoumis))
	assert.Equal(t, StatutSoumis, m.EmploiStatut)

	require.NoError(t, m.ApplyStatut(StatutValide))
	assert.Equal(t, StatutValide, m.EmploiStatut)
}

func TestApplyStatut_SautInterdit(t *testing.T) {
	m := &EmploiTempsModel{EmploiStatut: StatutBrouillon}
	err := m.ApplyStatut(StatutValide)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	assert.Equal(t, StatutBrouillon, m.EmploiStatut)
}

func TestApplyStatut_RetourInterdit(t *testing.T) {
	m := &EmploiTempsModel{EmploiStatut: StatutValide}

	for _, vers := range []string{StatutBrouillon, StatutSoumis, StatutValide} {
		err := m.ApplyStatut(vers)
		require.Error(t, err, vers)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition), vers)
	}
	assert.Equal(t, StatutValide, m.EmploiStatut)
}

func TestApplyStatut_StatutInconnu(t *testing.T) {
	m := &EmploiTempsModel{EmploiStatut: StatutBrouillon}
	err := m.ApplyStatut("publie")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestNextStatut(t *testing.T) {
	assert.Equal(t, StatutSoumis, NextStatut(StatutBrouillon))
	assert.Equal(t, StatutValide, NextStatut(StatutSoumis))
	assert.Equal(t, "", NextStatut(StatutValide))
}
