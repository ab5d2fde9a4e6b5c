package mockapi

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// ErrToken cubre cualquier token inválido, vencido o mal firmado.
var ErrToken = errors.New("mockapi: invalid token")

// TokenIssuer firma y valida los access tokens del mock con HS512,
// mismo algoritmo y claims que el backend original (sub=email,
// roles=[ROLE_*]).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer crea un issuer con el secreto y TTL dados.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Sign emite un token para el usuario.
func (t *TokenIssuer) Sign(u User) (string, error) {
	now := time.Now()
	claims := jwtv5.MapClaims{
		"sub":   u.Email,
		"roles": u.Roles,
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS512, claims).SignedString(t.secret)
}

// Parse valida firma y expiración; retorna el email del subject.
func (t *TokenIssuer) Parse(token string) (string, error) {
	parsed, err := jwtv5.Parse(token,
		func(*jwtv5.Token) (any, error) { return t.secret, nil },
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS512.Alg()}),
		jwtv5.WithLeeway(30*time.Second),
	)
	if err != nil || !parsed.Valid {
		return "", ErrToken
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrToken
	}
	return sub, nil
}
