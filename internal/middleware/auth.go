package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
)

const (
	ContextSubject    = "subject"
	ContextProviderID = "providerID"
	ContextRole       = "role"
)

const (
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// AuthMiddleware valida o Bearer JWT (HS256). Os tokens são emitidos fora deste serviço.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho Authorization inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(
			parts[1],
			func(token *jwt.Token) (interface{}, error) { return key, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token inválido.")
			c.Abort()
			return
		}

		sub, err := claims.GetSubject()
		role, _ := claims["role"].(string)
		if err != nil || sub == "" || role == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
			c.Abort()
			return
		}

		c.Set(ContextSubject, sub)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// RequireRole barra quem não tem um dos papéis. Para provider,
// o sub precisa ser o uuid do provider.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)

		allowed := false
		for _, r := range roles {
			if r == role {
				allowed = true
				break
			}
		}
		if !allowed {
			httperr.Forbidden(c, "forbidden", "Acesso negado.")
			c.Abort()
			return
		}

		if role == RoleProvider {
			id, err := uuid.Parse(c.GetString(ContextSubject))
			if err != nil {
				httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
				c.Abort()
				return
			}
			c.Set(ContextProviderID, id)
		}

		c.Next()
	}
}

// ProviderID devolve o provider autenticado (após RequireRole).
func ProviderID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextProviderID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
