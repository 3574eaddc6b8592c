package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"budgetapp/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AccessAuth is the access class carried by session tokens.
const AccessAuth = "auth"

// ErrInvalidToken covers malformed, forged and revoked tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates session tokens. Validity is double-gated:
// the HS256 signature rejects forgeries statelessly, and a per-user allow-list
// row (a SHA-256 digest of the signed token) makes logout possible. A token
// whose row has been deleted fails Validate even though its signature checks
// out.
type TokenManager struct {
	db     *gorm.DB
	secret []byte
}

func NewTokenManager(db *gorm.DB, secret []byte) *TokenManager {
	return &TokenManager{db: db, secret: secret}
}

// Issue signs a token for the user and persists its allow-list row.
func (m *TokenManager) Issue(userID uint) (string, error) {
	// random jti so concurrent logins never collide on the token hash
	nonce := make([]byte, 8)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"access":  AccessAuth,
		"iat":     time.Now().Unix(),
		"jti":     hex.EncodeToString(nonce),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}
	row := models.AuthToken{UserID: userID, Access: AccessAuth, TokenHash: hashToken(signed)}
	if err := m.db.Create(&row).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// Validate returns the owning user id and access class for a live token.
func (m *TokenManager) Validate(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return 0, "", ErrInvalidToken
	}
	access, _ := claims["access"].(string)
	if access != AccessAuth {
		return 0, "", ErrInvalidToken
	}
	userID := uint(rawID)
	var row models.AuthToken
	if err := m.db.Where("user_id = ? AND token_hash = ?", userID, hashToken(tokenString)).First(&row).Error; err != nil {
		return 0, "", ErrInvalidToken
	}
	return userID, access, nil
}

// Revoke removes exactly the given token from the user's active sessions.
// Revoking an already-absent token is a no-op.
func (m *TokenManager) Revoke(userID uint, tokenString string) error {
	return m.db.Where("user_id = ? AND token_hash = ?", userID, hashToken(tokenString)).
		Delete(&models.AuthToken{}).Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
