// internals/errs/errs.go
package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

/* ==============================
   Taxonomie d'erreurs du portail
============================== */

var (
	// ErrValidation : champ requis manquant ou invalide. Affiché inline,
	// jamais retenté automatiquement.
	ErrValidation = errors.New("validation")

	// ErrNotPermitted : contrôle de capacité échoué. Le message exposé au
	// client reste opaque pour ne pas révéler la structure rôles/écoles.
	ErrNotPermitted = errors.New("non autorisé")

	// ErrInvalidTransition : précondition de machine à états violée
	// (ex. décision sur une demande déjà traitée).
	ErrInvalidTransition = errors.New("transition invalide")

	// ErrStore : échec du stockage distant. Non fatal pour la session,
	// le réessai est laissé à l'utilisateur.
	ErrStore = errors.New("erreur de stockage")
)

// Validationf enveloppe ErrValidation avec un détail de champ.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Storef enveloppe ErrStore avec la cause distante.
func Storef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrStore}, args...)...)
}

// HTTPStatus mappe la taxonomie vers un statut HTTP.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrNotPermitted):
		return fiber.StatusForbidden
	case errors.Is(err, ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, ErrStore):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// PublicMessage renvoie le message exposable au client.
// Les erreurs d'autorisation restent volontairement muettes.
func PublicMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotPermitted):
		return "Non autorisé"
	case errors.Is(err, ErrInvalidTransition):
		return "Opération impossible dans l'état actuel"
	case errors.Is(err, ErrStore):
		return "Service momentanément indisponible, réessayez"
	default:
		return err.Error()
	}
}
