package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity for a browser session.
// Admin sessions set Admin and leave the user fields zero.
type Claims struct {
	UserID int64  `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Admin  bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSession issues a signed session token for a regular user.
// expiration — token lifetime. If <= 0, 24h is used.
func GenerateSession(secret string, userID int64, name, role string, expiration time.Duration) (string, error) {
	return sign(secret, Claims{UserID: userID, Name: name, Role: role}, expiration)
}

// GenerateAdminSession issues a signed session token with the admin flag set.
func GenerateAdminSession(secret string, adminID int64, username string, expiration time.Duration) (string, error) {
	return sign(secret, Claims{UserID: adminID, Name: username, Admin: true}, expiration)
}

func sign(secret string, claims Claims, expiration time.Duration) (string, error) {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "promopulse",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSession(secret string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
