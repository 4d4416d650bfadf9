// Package services содержит адаптеры вспомогательных сервисов.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	svc "jobdesk/internal/ports/services"
	"jobdesk/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateToken = "Generate"
	methodValidateToken = "Validate"
	msgGeneratingToken  = "generating access token"
	msgTokenGenerated   = "access token generated"
	msgValidatingToken  = "validating access token"
	msgTokenExpired     = "token has expired"
	msgInvalidToken     = "invalid token"

	errCtxGeneratingToken = "generating token"
	errCtxValidatingToken = "validating token"
)

// Ошибки токенов доступа.
var (
	ErrEmptySecret      = errors.New("empty secret key")
	ErrInvalidToken     = errors.New("invalid access token")
	ErrExpiredToken     = errors.New("access token has expired")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
)

// ServiceJWT реализует интерфейс TokenService поверх HS256.
type ServiceJWT struct {
	secret []byte
	ttl    time.Duration
}

// NewJWT создает новый экземпляр сервиса токенов доступа.
func NewJWT(secret string, ttl time.Duration) svc.TokenService {
	return &ServiceJWT{secret: []byte(secret), ttl: ttl}
}

// Generate выпускает токен доступа с идентификатором учетной записи в
// субъекте.
func (s *ServiceJWT) Generate(ctx context.Context, userID int64) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGenerateToken), zap.Int64("userId", userID))
	log.Debug(ctx, msgGeneratingToken)

	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxGeneratingToken, ErrEmptySecret)
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		log.Error(ctx, msgInvalidToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))
	return signed, expiresAt, nil
}

// Validate проверяет подпись и срок токена и возвращает идентификатор
// учетной записи из субъекта.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString string) (int64, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateToken))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return 0, fmt.Errorf("%s: %w", errCtxValidatingToken, ErrExpiredToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return 0, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("%s: %w", errCtxValidatingToken, ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.String("subject", claims.Subject))
		return 0, fmt.Errorf("%s: %w", errCtxValidatingToken, ErrInvalidToken)
	}

	log.Debug(ctx, "token validated", zap.Int64("userId", userID))
	return userID, nil
}
