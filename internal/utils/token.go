package utils // package utils provides helpers for admin token issuing and PIN hashing

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim carried by tokens issued after a
// successful PIN unlock.
const AdminRole = "ADMIN"

// AccessToken represents a signed JWT along with its expiry.  Admin
// sessions are stateless: locking again is simply discarding the token
// client-side, and the token expires on its own.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an HS256 JWT granting the ADMIN role
// for ttlMin minutes.  The JWT carries standard claims: subject, role,
// expiration (exp) and issued at (iat).
func NewAdminToken(secret string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": AdminRole,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
