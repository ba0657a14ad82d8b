package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the bearer tokens that carry a caller's
// ledger address. Identity is self-asserted at mint time; what an address is
// allowed to do is decided by the role table, not by the token.
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Address              string `json:"address" example:"0xabc123"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenRequest represents the request to mint a token
type TokenRequest struct {
	Address string `json:"address" binding:"required"`
}

// TokenResponse represents the response for token operations
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	Address     string `json:"address"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateJWT creates a JWT token for the given address
func (s *AuthService) GenerateJWT(address string) (*TokenResponse, error) {
	now := time.Now()
	claims := &AuthClaims{
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "dao-governance-backend",
			Subject:   address,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		Address:     address,
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
