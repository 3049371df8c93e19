package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ResourceRoles - роли клиента внутри claim resource_access
type ResourceRoles struct {
	Roles []string `json:"roles"`
}

// JWTClaims структура claims для JWT токена
// Роли лежат в resource_access.<resource_id>.roles (формат Keycloak)
type JWTClaims struct {
	ResourceAccess map[string]ResourceRoles `json:"resource_access"`
	jwt.RegisteredClaims
}

// AuthMiddleware проверяет JWT токен в запросах для Gin
type AuthMiddleware struct {
	jwtSecret  string
	resourceID string
}

// NewAuthMiddleware создает новый middleware для аутентификации
func NewAuthMiddleware(jwtSecret string, resourceID string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret:  jwtSecret,
		resourceID: resourceID,
	}
}

// Authenticate проверяет JWT токен и добавляет данные пользователя в контекст Gin
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Извлекаем токен из заголовка Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Проверяем формат "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Парсим и валидируем токен
		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(m.jwtSecret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*JWTClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Добавляем данные пользователя в контекст Gin
		c.Set("user_id", claims.Subject)
		c.Set("roles", claims.ResourceAccess[m.resourceID].Roles)

		c.Next()
	}
}

// RequireAnyRole пропускает запрос, только если у пользователя
// есть хотя бы одна из перечисленных ролей
func (m *AuthMiddleware) RequireAnyRole(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("roles")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		roles, ok := value.([]string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		for _, role := range roles {
			for _, want := range required {
				if role == want {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		c.Abort()
	}
}
