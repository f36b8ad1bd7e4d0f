// internals/policy/policy.go
package policy

import (
	"monecole_backend/internals/constants"
)

/* =========================================================
   Role Policy — table centrale rôle → capacités par domaine.

   Remplace les listes de rôles en dur éparpillées dans chaque
   panneau ( ["a","b"].includes(role) ) par un seul point de
   vérité, appliqué côté serveur à chaque requête.
========================================================= */

type Feature string

const (
	FeatureAnnonces     Feature = "annonces"
	FeaturePermissions  Feature = "permissions"
	FeatureRecus        Feature = "recus"
	FeatureEmploisTemps Feature = "emplois_temps"
	FeatureClasses      Feature = "classes"
	FeatureDocuments    Feature = "documents"
	FeatureStats        Feature = "stats"
)

// Capabilities décrit ce qu'un rôle peut faire sur un domaine.
// CanViewAll = lecture à l'échelle de l'école ; sinon lecture
// restreinte aux enregistrements dont l'appelant est propriétaire.
type Capabilities struct {
	CanCreate  bool
	CanApprove bool
	CanViewAll bool
}

// minimal : capacité par défaut d'un rôle inconnu. On ne peut pas
// rejeter un rôle authentifié mais non reconnu sans verrouiller le
// compte, donc il voit uniquement ses propres enregistrements.
var minimal = Capabilities{}

var capabilityTable = map[Feature]map[string]Capabilities{
	FeatureAnnonces: buildFeature(featureSpec{
		create:  constants.AnnouncementManagerRoles,
		viewAll: constants.AllRoles, // lecture école entière pour tous
	}),
	FeaturePermissions: buildFeature(featureSpec{
		create:  constants.PermissionRequesterRoles,
		approve: constants.PermissionApproverRoles,
		viewAll: constants.PermissionApproverRoles, // demandeur : les siennes
	}),
	FeatureRecus: buildFeature(featureSpec{
		create:  constants.FinanceRoles,
		viewAll: constants.FinanceRoles, // élève/parent : les siens
	}),
	FeatureEmploisTemps: buildFeature(featureSpec{
		create:  constants.TimetableManagerRoles,
		approve: constants.TimetableManagerRoles, // soumission et validation
		viewAll: constants.AllRoles,
	}),
	FeatureClasses: buildFeature(featureSpec{
		create:  constants.ClassManagerRoles,
		viewAll: constants.AllRoles,
	}),
	FeatureDocuments: buildFeature(featureSpec{
		create:  constants.TimetableManagerRoles, // import = gestion EDT/classes
		viewAll: constants.StaffRoles,
	}),
	FeatureStats: buildFeature(featureSpec{
		viewAll: constants.StaffRoles,
	}),
}

type featureSpec struct {
	create  []string
	approve []string
	viewAll []string
}

func buildFeature(spec featureSpec) map[string]Capabilities {
	out := make(map[string]Capabilities, len(constants.AllRoles))
	for _, r := range spec.create {
		c := out[r]
		c.CanCreate = true
		out[r] = c
	}
	for _, r := range spec.approve {
		c := out[r]
		c.CanApprove = true
		out[r] = c
	}
	for _, r := range spec.viewAll {
		c := out[r]
		c.CanViewAll = true
		out[r] = c
	}
	return out
}

// CapabilitiesFor est totale : tout couple (rôle, domaine) a une
// réponse, un rôle ou domaine inconnu donne la capacité minimale.
func CapabilitiesFor(role string, feature Feature) Capabilities {
	table, ok := capabilityTable[feature]
	if !ok {
		return minimal
	}
	caps, ok := table[role]
	if !ok {
		return minimal
	}
	return caps
}

// Features liste les domaines connus (utile pour les tests de totalité).
func Features() []Feature {
	return []Feature{
		FeatureAnnonces,
		FeaturePermissions,
		FeatureRecus,
		FeatureEmploisTemps,
		FeatureClasses,
		FeatureDocuments,
		FeatureStats,
	}
}
