package constants

// Rôles reconnus du portail. La liste n'est pas extensible à chaud,
// mais un rôle inconnu ne doit jamais bloquer une requête : il retombe
// sur les capacités minimales (voir internals/policy).
const (
	RoleDirection   = "direction"
	RoleCenseur     = "censeur"
	RoleEducateur   = "educateur"
	RoleSecretariat = "secretariat"
	RoleRH          = "rh"
	RoleEconome     = "econome"
	RoleEnseignant  = "enseignant"
	RoleEleve       = "eleve"
	RoleParent      = "parent"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleDirection,
		RoleCenseur,
		RoleEducateur,
		RoleSecretariat,
		RoleRH,
		RoleEconome,
		RoleEnseignant,
		RoleEleve,
		RoleParent,
	}

	// Personnel administratif et pédagogique (tout sauf élève/parent).
	StaffRoles = []string{
		RoleDirection,
		RoleCenseur,
		RoleEducateur,
		RoleSecretariat,
		RoleRH,
		RoleEconome,
		RoleEnseignant,
	}

	// Élève ou parent : accès "mes données" uniquement.
	StudentParentRoles = []string{
		RoleEleve,
		RoleParent,
	}

	AnnouncementManagerRoles = []string{
		RoleSecretariat,
		RoleDirection,
		RoleCenseur,
	}

	PermissionRequesterRoles = []string{
		RoleEleve,
		RoleParent,
		RoleEnseignant,
	}

	PermissionApproverRoles = []string{
		RoleDirection,
		RoleCenseur,
		RoleEducateur,
	}

	FinanceRoles = []string{
		RoleEconome,
		RoleRH,
		RoleDirection,
	}

	TimetableManagerRoles = []string{
		RoleDirection,
		RoleCenseur,
		RoleEducateur,
		RoleSecretariat,
	}

	ClassManagerRoles = []string{
		RoleDirection,
		RoleCenseur,
		RoleSecretariat,
	}
)

// IsKnownRole indique si le rôle fait partie de l'énumération courante.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
