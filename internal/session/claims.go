package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// userIDFromToken extracts the identity claim from a bearer token without
// verifying the signature. The backend is the sole authority on the token;
// the client-side decode is advisory, used only for display and payload
// construction, and is never a security boundary. Any decode failure is
// treated as "no session".
func userIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	id, _ := claims["_id"].(string)
	return id
}
