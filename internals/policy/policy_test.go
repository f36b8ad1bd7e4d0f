package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"monecole_backend/internals/constants"
)

func TestCapabilitiesForIsTotal(t *testing.T) {
	roles := append([]string{}, constants.AllRoles...)
	roles = append(roles, "", "super_admin", "ROLE_INCONNU")

	for _, role := range roles {
		for _, f := range Features() {
			// ne doit jamais paniquer ni renvoyer autre chose qu'une valeur
			caps := CapabilitiesFor(role, f)
			if !constants.IsKnownRole(role) {
				assert.Equal(t, Capabilities{}, caps,
					"rôle inconnu %q doit recevoir la capacité minimale sur %s", role, f)
			}
		}
	}
}

func TestCapabilitiesForUnknownFeature(t *testing.T) {
	assert.Equal(t, Capabilities{}, CapabilitiesFor(constants.RoleDirection, Feature("inexistant")))
}

func TestAnnouncementCapabilities(t *testing.T) {
	for _, role := range []string{constants.RoleSecretariat, constants.RoleDirection, constants.RoleCenseur} {
		assert.True(t, CapabilitiesFor(role, FeatureAnnonces).CanCreate, role)
	}
	for _, role := range []string{constants.RoleEleve, constants.RoleParent, constants.RoleEnseignant, constants.RoleRH, constants.RoleEconome, constants.RoleEducateur} {
		assert.False(t, CapabilitiesFor(role, FeatureAnnonces).CanCreate, role)
	}
	// lecture école entière pour tous les rôles connus
	for _, role := range constants.AllRoles {
		assert.True(t, CapabilitiesFor(role, FeatureAnnonces).CanViewAll, role)
	}
	// jamais d'approbation sur les annonces
	for _, role := range constants.AllRoles {
		assert.False(t, CapabilitiesFor(role, FeatureAnnonces).CanApprove, role)
	}
}

func TestPermissionCapabilities(t *testing.T) {
	cases := []struct {
		role       string
		canCreate  bool
		canApprove bool
		canViewAll bool
	}{
		{constants.RoleEleve, true, false, false},
		{constants.RoleParent, true, false, false},
		{constants.RoleEnseignant, true, false, false},
		{constants.RoleDirection, false, true, true},
		{constants.RoleCenseur, false, true, true},
		{constants.RoleEducateur, false, true, true},
		{constants.RoleSecretariat, false, false, false},
		{constants.RoleRH, false, false, false},
		{constants.RoleEconome, false, false, false},
	}
	for _, tc := range cases {
		caps := CapabilitiesFor(tc.role, FeaturePermissions)
		assert.Equal(t, tc.canCreate, caps.CanCreate, "%s create", tc.role)
		assert.Equal(t, tc.canApprove, caps.CanApprove, "%s approve", tc.role)
		assert.Equal(t, tc.canViewAll, caps.CanViewAll, "%s viewAll", tc.role)
	}
}

func TestReceiptCapabilities(t *testing.T) {
	for _, role := range []string{constants.RoleEconome, constants.RoleRH, constants.RoleDirection} {
		caps := CapabilitiesFor(role, FeatureRecus)
		assert.True(t, caps.CanCreate, role)
		assert.True(t, caps.CanViewAll, role)
	}
	for _, role := range []string{constants.RoleEleve, constants.RoleParent} {
		caps := CapabilitiesFor(role, FeatureRecus)
		assert.False(t, caps.CanCreate, role)
		assert.False(t, caps.CanViewAll, role)
	}
}

func TestTimetableAndClassCapabilities(t *testing.T) {
	for _, role := range []string{constants.RoleDirection, constants.RoleCenseur, constants.RoleEducateur, constants.RoleSecretariat} {
		assert.True(t, CapabilitiesFor(role, FeatureEmploisTemps).CanCreate, role)
	}
	assert.False(t, CapabilitiesFor(constants.RoleEnseignant, FeatureEmploisTemps).CanCreate)

	for _, role := range []string{constants.RoleDirection, constants.RoleCenseur, constants.RoleSecretariat} {
		assert.True(t, CapabilitiesFor(role, FeatureClasses).CanCreate, role)
	}
	assert.False(t, CapabilitiesFor(constants.RoleEducateur, FeatureClasses).CanCreate)
}
