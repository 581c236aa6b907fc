package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry reports the exp claim of a JWT access token without
// verifying its signature. It is a display aid only: requests always trust
// the server's 401 over a locally computed expiry. Returns the zero time
// when the token is missing, malformed, or carries no exp claim.
func AccessTokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
