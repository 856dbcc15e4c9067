package util

import (
	"errors"
	"fmt"
	"showtracker/configs"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

type MyJwtClaims struct {
	UserId      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	SessionId   string `json:"sessionId"`
	TokenType   string `json:"tokenType"`
	jwt.RegisteredClaims
}

type TokenDetail struct {
	AccessToken      string
	AccessExpiresAt  int64
	RefreshToken     string
	RefreshExpiresAt int64
}

type TokenSubject struct {
	UserId      string
	Email       string
	DisplayName string
	Role        string
	SessionId   string
}

func CreateTokens(subject TokenSubject) (*TokenDetail, error) {
	conf := configs.GetConfigs()
	if conf.AccessTokenSecret == "" || conf.RefreshTokenSecret == "" {
		return nil, errors.New("token secrets are not configured")
	}
	now := time.Now()
	accessExp := now.Add(conf.AccessTokenTTL)
	refreshExp := now.Add(conf.RefreshTokenTTL)

	accessToken, err := sign(subject, accessTokenType, now, accessExp, conf.AccessTokenSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := sign(subject, refreshTokenType, now, refreshExp, conf.RefreshTokenSecret)
	if err != nil {
		return nil, err
	}

	return &TokenDetail{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp.UnixMilli(),
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp.UnixMilli(),
	}, nil
}

func sign(subject TokenSubject, tokenType string, now time.Time, exp time.Time, secret string) (string, error) {
	claims := MyJwtClaims{
		UserId:      subject.UserId,
		Email:       subject.Email,
		DisplayName: subject.DisplayName,
		Role:        subject.Role,
		SessionId:   subject.SessionId,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UserId,
			ID:        subject.SessionId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func VerifyToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	return verify(tokenString, configs.GetConfigs().AccessTokenSecret, accessTokenType)
}

func VerifyRefreshToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	return verify(tokenString, configs.GetConfigs().RefreshTokenSecret, refreshTokenType)
}

func verify(tokenString string, secret string, tokenType string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, nil, err
	}
	if claims.TokenType != tokenType {
		return nil, nil, fmt.Errorf("expected %s token, got %q", tokenType, claims.TokenType)
	}

	return token, &claims, nil
}
