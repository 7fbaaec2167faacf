package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	ContextActorID = "actorID"
	ContextRole    = "role"

	RoleAdmin = "admin"
)

// AdminOnly accepts HS256 tokens issued by the gateway that carry role=admin.
// Authentication itself happens upstream; this only checks the privilege.
func AdminOnly(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token de acesso ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		if role != RoleAdmin {
			httperr.Forbidden(c, "admin_required", "Acesso restrito a administradores.")
			c.Abort()
			return
		}

		sub, _ := claims.GetSubject()

		c.Set(ContextActorID, sub)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// ActorID returns the admin subject set by AdminOnly, or "" on public routes.
func ActorID(c *gin.Context) string {
	return c.GetString(ContextActorID)
}
