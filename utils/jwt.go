package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the resolved identity: role and canonical branch are fixed
// at login so downstream code never re-derives them.
type Claims struct {
	UserID     uint   `json:"userId"`
	Role       string `json:"role"`
	BranchID   uint   `json:"branchId"`
	BranchName string `json:"branchName"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, branchID uint, branchName, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:     userID,
		Role:       role,
		BranchID:   branchID,
		BranchName: branchName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
