package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLen is the minimum HS256 secret length accepted by New.
const MinSecretKeyLen = 32

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
}

// Claims represents JWT claims structure.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
