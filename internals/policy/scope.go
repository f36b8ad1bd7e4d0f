// internals/policy/scope.go
package policy

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Tenant Scoping — dérive le filtre appliqué à chaque accès
   aux données à partir du profil de session.

   Règles (dans l'ordre) :
   1. entité "personnelle" + pas de CanViewAll → filtre
      propriétaire == appelant, l'ecole_id est ignoré ;
   2. sinon filtre ecole_id == école du profil ;
   3. profil sans école sur une entité d'école → aucun accès
      (aucun rôle actuel n'est un admin plateforme) ;
   4. la création estampille toujours ecole_id + propriétaire
      depuis le profil, jamais depuis le client.
========================================================= */

// EntityKind distingue les enregistrements personnels (demandes,
// reçus) des données partagées de l'école.
type EntityKind int

const (
	KindTenant EntityKind = iota
	KindPersonal
)

// SessionProfile est le triplet rôle/école/utilisateur résolu une
// fois par session par le middleware d'authentification, puis passé
// tel quel à chaque contrôleur. Immuable.
type SessionProfile struct {
	UserID      uuid.UUID
	Role        string
	EcoleID     *uuid.UUID
	DisplayName string
}

// Scope est le filtre dérivé. Exactement un des deux modes est actif :
// propriétaire (OwnerID+OwnerColumn) ou école (TenantID+TenantColumn).
// Empty=true signifie "aucune ligne visible".
type Scope struct {
	TenantColumn string
	TenantID     *uuid.UUID
	OwnerColumn  string
	OwnerID      *uuid.UUID
	Empty        bool
}

// ScopeFor applique les règles ci-dessus. tenantColumn/ownerColumn
// sont les noms de colonnes de l'entité visée.
func ScopeFor(p SessionProfile, feature Feature, kind EntityKind, tenantColumn, ownerColumn string) Scope {
	caps := CapabilitiesFor(p.Role, feature)

	if kind == KindPersonal && !caps.CanViewAll {
		owner := p.UserID
		return Scope{OwnerColumn: ownerColumn, OwnerID: &owner}
	}

	if p.EcoleID == nil || *p.EcoleID == uuid.Nil {
		// Pas d'école assignée : rien à voir côté données d'école.
		return Scope{Empty: true}
	}
	id := *p.EcoleID
	return Scope{TenantColumn: tenantColumn, TenantID: &id}
}

// Apply traduit le scope en clauses GORM.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	switch {
	case s.Empty:
		return tx.Where("1 = 0")
	case s.OwnerID != nil:
		return tx.Where(s.OwnerColumn+" = ?", *s.OwnerID)
	case s.TenantID != nil:
		return tx.Where(s.TenantColumn+" = ?", *s.TenantID)
	default:
		return tx.Where("1 = 0")
	}
}

// Allows vérifie qu'une ligne déjà chargée est visible sous ce scope
// (garde serveur avant une mutation ciblée par id).
func (s Scope) Allows(tenantID *uuid.UUID, ownerID uuid.UUID) bool {
	switch {
	case s.Empty:
		return false
	case s.OwnerID != nil:
		return ownerID == *s.OwnerID
	case s.TenantID != nil:
		return tenantID != nil && *tenantID == *s.TenantID
	default:
		return false
	}
}

// StampTenant renvoie l'ecole_id à écrire sur une création, toujours
// celui du profil (l'entrée client est ignorée).
func StampTenant(p SessionProfile) *uuid.UUID {
	if p.EcoleID == nil || *p.EcoleID == uuid.Nil {
		return nil
	}
	id := *p.EcoleID
	return &id
}
