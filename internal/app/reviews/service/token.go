package service

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// CheckSender сравнивает заявленный id автора с claim из bearer-токена
// Подпись здесь не проверяется: токен уже верифицирован middleware'ом,
// это только извлечение claim, а не граница безопасности
// Любая проблема с разбором токена дает false, ошибок не бывает
func (s *ReviewService) CheckSender(claimedID string, bearerToken string) bool {
	parts := strings.Split(bearerToken, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(parts[1], claims); err != nil {
		return false
	}

	subject, ok := claims[s.principleAttribute].(string)
	if !ok {
		return false
	}

	return subject == claimedID
}
