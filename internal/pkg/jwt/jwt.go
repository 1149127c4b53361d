package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNotAnArtist  = errors.New("token does not belong to an artist")
)

const RoleArtist = "artist"

// Claims mirror what the external auth service puts into dashboard tokens.
type Claims struct {
	ArtistID uuid.UUID `json:"artist_id"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
}

func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
	}
}

// GenerateToken is used by tooling and tests; production tokens come from the auth service.
func (s *Service) GenerateToken(artistID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ArtistID: artistID,
		Role:     RoleArtist,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   artistID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleArtist || claims.ArtistID == uuid.Nil {
		return nil, ErrNotAnArtist
	}

	return claims, nil
}
