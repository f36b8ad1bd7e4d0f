// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"monecole_backend/internals/configs"
	authModel "monecole_backend/internals/features/users/auth/model"
	userModel "monecole_backend/internals/features/users/user/model"
)

const (
	AccessTTL  = 2 * time.Hour
	RefreshTTL = 30 * 24 * time.Hour
)

// buildAccessClaims : le jeton transporte le profil de session complet
// (id, rôle, ecole_id, nom affiché) pour que le middleware n'ait à le
// résoudre qu'une fois.
func buildAccessClaims(u userModel.UtilisateurModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        u.UtilisateurID.String(),
		"role":      u.UtilisateurRole,
		"user_name": u.DisplayName(),
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTL).Unix(),
	}
	if u.UtilisateurEcoleID != nil {
		claims["ecole_id"] = u.UtilisateurEcoleID.String()
	}
	return claims
}

func buildRefreshClaims(u userModel.UtilisateurModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":  u.UtilisateurID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
}

// IssueTokens signe les deux jetons et persiste le refresh (hashé).
func IssueTokens(db *gorm.DB, u userModel.UtilisateurModel, userAgent, ip string) (access, refresh string, err error) {
	now := time.Now().UTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	rt := &authModel.RefreshTokenModel{
		UserID:    u.UtilisateurID,
		TokenHash: ComputeRefreshHash(refresh),
		ExpiresAt: now.Add(RefreshTTL),
	}
	if userAgent != "" {
		rt.UserAgent = &userAgent
	}
	if ip != "" {
		rt.IP = &ip
	}
	if err := db.Create(rt).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ComputeRefreshHash : HMAC-SHA256 du refresh token, clé = secret refresh.
func ComputeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}
