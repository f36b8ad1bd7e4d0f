// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"monecole_backend/internals/configs"
	authDTO "monecole_backend/internals/features/users/auth/dto"
	authModel "monecole_backend/internals/features/users/auth/model"
	authService "monecole_backend/internals/features/users/auth/service"
	userModel "monecole_backend/internals/features/users/user/model"
	helper "monecole_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

var validateAuth = validator.New()

// ===================== REGISTER =====================
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec du hachage du mot de passe")
	}

	m := req.ToModel(string(hash))
	if err := h.DB.Create(m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Un compte existe déjà avec cet email")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la création du compte")
	}

	return helper.JsonCreated(c, "Compte créé", authDTO.NewUtilisateurResponse(m))
}

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UtilisateurModel
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.DB.Where("utilisateur_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// même message que mot de passe faux : pas d'énumération d'emails
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifiants invalides")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur interne")
	}
	if !user.UtilisateurIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Votre compte a été désactivé")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UtilisateurPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifiants invalides")
	}

	access, refresh, err := authService.IssueTokens(h.DB, user, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de la création des jetons")
	}

	setAuthCookies(c, access, refresh)
	return helper.JsonOK(c, "Connexion réussie", fiber.Map{
		"user":          authDTO.NewUtilisateurResponse(&user),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// ===================== LOGOUT =====================
// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("Authorization"))
	if fields := strings.Fields(tok); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tok = fields[1]
	} else if cookieTok := c.Cookies("access_token"); cookieTok != "" {
		tok = cookieTok
	} else {
		tok = ""
	}

	if tok != "" {
		expiredAt := time.Now().Add(authService.AccessTTL)
		if claims := parseUnverifiedClaims(tok); claims != nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		entry := authModel.TokenBlacklistModel{Token: tok, ExpiredAt: expiredAt}
		// conflit = déjà blacklisté, rien à faire
		_ = h.DB.Where("token = ?", tok).FirstOrCreate(&entry).Error
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Déconnexion réussie", nil)
}

/* ===================== Utils ===================== */

func parseUnverifiedClaims(tok string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return nil
	}
	return claims
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: access,
		Expires: now.Add(authService.AccessTTL), HTTPOnly: true, Secure: true, SameSite: "Lax", Path: "/",
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: refresh,
		Expires: now.Add(authService.RefreshTTL), HTTPOnly: true, Secure: true, SameSite: "Lax", Path: "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name: name, Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true, Secure: true, SameSite: "Lax", Path: "/",
		})
	}
}
