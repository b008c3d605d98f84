package jwt

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const issuerName = "crudapi"

// Authority issues bearer tokens and validates the ones presented back.
type Authority struct {
	issuer *TokenIssuer
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthority(secret []byte, ttl time.Duration, opts ...tokenIssuerOption) *Authority {
	return &Authority{
		issuer: NewTokenIssuer(secret, opts...),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (a *Authority) Issue(name string, roles ...Role) (string, time.Time, error) {
	now := a.now()
	expiresAt := now.Add(a.ttl)

	claims := UserClaims{
		Name:  name,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := a.issuer.New(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not generate token: %w", err)
	}
	return token, expiresAt, nil
}

func (a *Authority) Validate(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		a.issuer.keyFunc,
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(a.now),
		jwt.WithValidMethods([]string{
			a.issuer.signingMethod.Alg(),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims: unable to locate user claims section")
	}
	return claims, nil
}
