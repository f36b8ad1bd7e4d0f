package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monecole_backend/internals/constants"
)

func profileWith(role string, ecole *uuid.UUID) SessionProfile {
	return SessionProfile{UserID: uuid.New(), Role: role, EcoleID: ecole}
}

func TestScopePersonalEntityWithoutViewAllFiltersByOwner(t *testing.T) {
	ecole := uuid.New()
	p := profileWith(constants.RoleEleve, &ecole)

	s := ScopeFor(p, FeaturePermissions, KindPersonal, "demande_ecole_id", "demande_demandeur_id")
	require.NotNil(t, s.OwnerID)
	assert.Equal(t, p.UserID, *s.OwnerID)
	assert.Equal(t, "demande_demandeur_id", s.OwnerColumn)
	// l'école est ignorée même si présente sur le profil
	assert.Nil(t, s.TenantID)
}

func TestScopePersonalEntityWithViewAllFiltersByTenant(t *testing.T) {
	ecole := uuid.New()
	p := profileWith(constants.RoleDirection, &ecole)

	s := ScopeFor(p, FeaturePermissions, KindPersonal, "demande_ecole_id", "demande_demandeur_id")
	require.NotNil(t, s.TenantID)
	assert.Equal(t, ecole, *s.TenantID)
	assert.Nil(t, s.OwnerID)
}

func TestScopeTenantEntityFiltersByTenant(t *testing.T) {
	ecole := uuid.New()
	p := profileWith(constants.RoleEleve, &ecole)

	s := ScopeFor(p, FeatureAnnonces, KindTenant, "annonce_ecole_id", "annonce_auteur_id")
	require.NotNil(t, s.TenantID)
	assert.Equal(t, ecole, *s.TenantID)
}

func TestScopeNoSchoolSeesNothingOnTenantEntities(t *testing.T) {
	p := profileWith(constants.RoleDirection, nil)

	s := ScopeFor(p, FeatureAnnonces, KindTenant, "annonce_ecole_id", "annonce_auteur_id")
	assert.True(t, s.Empty)
	assert.False(t, s.Allows(nil, p.UserID))
}

func TestScopeAllows(t *testing.T) {
	ecoleA, ecoleB := uuid.New(), uuid.New()
	eleve := profileWith(constants.RoleEleve, &ecoleA)

	own := ScopeFor(eleve, FeatureRecus, KindPersonal, "recu_ecole_id", "recu_eleve_id")
	// S1 voit son reçu
	assert.True(t, own.Allows(&ecoleA, eleve.UserID))
	// S2 ne voit pas le reçu de S1, même école ou pas
	assert.False(t, own.Allows(&ecoleA, uuid.New()))
	assert.False(t, own.Allows(&ecoleB, uuid.New()))

	direction := profileWith(constants.RoleDirection, &ecoleA)
	all := ScopeFor(direction, FeatureRecus, KindPersonal, "recu_ecole_id", "recu_eleve_id")
	// l'émetteur voit tout reçu de son école, jamais ceux d'une autre
	assert.True(t, all.Allows(&ecoleA, uuid.New()))
	assert.False(t, all.Allows(&ecoleB, uuid.New()))
	assert.False(t, all.Allows(nil, uuid.New()))
}

func TestStampTenant(t *testing.T) {
	ecole := uuid.New()
	assert.Equal(t, ecole, *StampTenant(profileWith(constants.RoleSecretariat, &ecole)))
	assert.Nil(t, StampTenant(profileWith(constants.RoleSecretariat, nil)))

	zero := uuid.Nil
	assert.Nil(t, StampTenant(profileWith(constants.RoleSecretariat, &zero)))
}

func TestScopeUnknownRoleIsOwnerOnlyOnPersonalEntities(t *testing.T) {
	ecole := uuid.New()
	p := profileWith("role_migration_2019", &ecole)

	s := ScopeFor(p, FeatureRecus, KindPersonal, "recu_ecole_id", "recu_eleve_id")
	require.NotNil(t, s.OwnerID)
	assert.Equal(t, p.UserID, *s.OwnerID)
}
