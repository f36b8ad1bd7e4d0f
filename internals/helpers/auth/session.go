// internals/helpers/auth/session.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"monecole_backend/internals/policy"
)

// Clés Locals posées par le middleware d'authentification.
const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "userRole"
	LocalsEcoleID  = "ecole_id"
	LocalsUserName = "user_name"
)

// GetSessionProfile reconstruit le profil de session depuis les Locals.
// Résolu une seule fois par requête par le middleware ; les contrôleurs
// ne re-dérivent jamais le triplet rôle/école/utilisateur eux-mêmes.
func GetSessionProfile(c *fiber.Ctx) (policy.SessionProfile, error) {
	raw, _ := c.Locals(LocalsUserID).(string)
	userID, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || userID == uuid.Nil {
		return policy.SessionProfile{}, fiber.NewError(fiber.StatusUnauthorized, "Session invalide")
	}

	role, _ := c.Locals(LocalsUserRole).(string)
	role = strings.TrimSpace(role)
	if role == "" {
		return policy.SessionProfile{}, fiber.NewError(fiber.StatusUnauthorized, "Session invalide")
	}

	p := policy.SessionProfile{UserID: userID, Role: role}

	if name, ok := c.Locals(LocalsUserName).(string); ok {
		p.DisplayName = strings.TrimSpace(name)
	}
	if rawEcole, ok := c.Locals(LocalsEcoleID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(rawEcole)); err == nil && id != uuid.Nil {
			p.EcoleID = &id
		}
	}
	return p, nil
}
