package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ViewerClaims represents the claims in a viewer token
type ViewerClaims struct {
	ViewerID string `json:"viewer_id"`
	jwt.RegisteredClaims
}

// Secret returns the signing secret from the environment. An empty secret
// means token auth is disabled and the viewer socket is open.
func Secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Enabled reports whether viewer token auth is configured.
func Enabled() bool {
	return len(Secret()) > 0
}

// GenerateViewerToken generates a JWT token for a viewer session
func GenerateViewerToken(viewerID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(24 * time.Hour)
	claims := &ViewerClaims{
		ViewerID: viewerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(Secret())
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken validates a viewer token and returns the claims
func ValidateToken(tokenString string) (*ViewerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ViewerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return Secret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ViewerClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
