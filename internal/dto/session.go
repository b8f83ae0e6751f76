package dto

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claim set supplied by the external identity
// collaborator: the subject identifies the caller, the custom claims carry
// display name, contact and role.
type SessionClaims struct {
	DisplayName string `json:"name"`
	Contact     string `json:"contact"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}
