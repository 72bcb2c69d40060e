package services

import (
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService проверяет токены, выданные сервисом аутентификации.
// Выпуск токенов остается за auth-сервисом, здесь только валидация.
type JWTService struct {
	secretKey []byte
}

// Claims полезная нагрузка токена
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTService создает сервис проверки токенов
func NewJWTService(secret string) *JWTService {
	if secret == "" {
		secret = "your-super-secret-jwt-key-change-in-production"
		slog.Warn("Using default JWT secret - change in production!")
	}

	return &JWTService{
		secretKey: []byte(secret),
	}
}

// ValidateToken проверяет подпись и срок действия токена
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("неожиданный метод подписи токена")
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("некорректный токен")
	}

	return claims, nil
}
