package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken dikembalikan untuk SEMUA kegagalan verifikasi (signature
// salah, expired, malformed) supaya client tidak bisa membedakannya
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims berisi registered claims standar plus user id
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service menandatangani dan memverifikasi access/refresh token dengan
// secret yang terpisah
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssuePair menerbitkan pasangan access+refresh token. Pure: caller yang
// bertanggung jawab menyimpan refresh token di user record.
func (s *Service) IssuePair(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = sign(userID, s.accessSecret, s.accessTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = sign(userID, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// VerifyAccess memvalidasi access token dan mengembalikan user id
func (s *Service) VerifyAccess(tokenString string) (string, error) {
	return verify(tokenString, s.accessSecret)
}

// VerifyRefresh memvalidasi refresh token dan mengembalikan user id
func (s *Service) VerifyRefresh(tokenString string) (string, error) {
	return verify(tokenString, s.refreshSecret)
}

func sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti unik per token: iat/exp dipotong ke detik oleh jwt/v5,
			// jadi tanpa jti dua token dalam detik yang sama identik dan
			// rotasi refresh token tidak pernah benar-benar mengganti token
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString(secret)
}

func verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
