package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
)

const tokenTypeBearer = "Bearer"

type JWTConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 access tokens. The subject carries the
// user id.
type JWTIssuer struct {
	config JWTConfig
	now    func() time.Time
}

func NewJWTIssuer(config JWTConfig) *JWTIssuer {
	return &JWTIssuer{config: config, now: time.Now}
}

func (i *JWTIssuer) Issue(user domain.User) (domain.Token, error) {
	now := i.now()
	claims := tokenClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.config.Issuer,
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.config.TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.config.Secret))
	if err != nil {
		return domain.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return domain.Token{
		AccessToken: signed,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(i.config.TokenTTL.Seconds()),
	}, nil
}

func (i *JWTIssuer) Parse(token string) (domain.Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&tokenClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domain.ErrInvalidToken
			}
			return []byte(i.config.Secret), nil
		},
		jwt.WithIssuer(i.config.Issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return domain.Claims{}, errors.Join(domain.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.Email == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{UserID: userID, Email: claims.Email}, nil
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)
