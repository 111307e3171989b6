package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VerifyStatus classifies the outcome of token verification so callers can
// produce distinct user-facing messages for expiry vs tampering.
type VerifyStatus int

const (
	TokenValid VerifyStatus = iota
	TokenExpired
	TokenInvalid
	TokenUnknown
)

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and verification
type JWTUtil struct {
	secretKey string
	ttl       time.Duration
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, ttl: ttl}
}

// GenerateToken generates a new signed JWT embedding the user id
func (ju *JWTUtil) GenerateToken(userID int) (string, error) {
	claims := &JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ju.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.Itoa(userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken validates signature and expiry and returns a tagged result
// instead of an error. Claims are trusted as-is once TokenValid is returned;
// there is no revocation list.
func (ju *JWTUtil) VerifyToken(tokenString string) (*JWTClaims, VerifyStatus) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, TokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, TokenInvalid
		default:
			return nil, TokenUnknown
		}
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, TokenValid
	}
	return nil, TokenInvalid
}
