package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims are the claims expected in the webhook bearer token issued
// by the dialogue engine deployment.
type AppClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
