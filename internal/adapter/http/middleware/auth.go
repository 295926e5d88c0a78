package middleware

import (
	"net/http"
	"strings"

	"odonto_docs/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID = "X-User-ID"
	ctxActorKey  = "actor_id"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errMissingActor = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing acting user", http.StatusUnauthorized)
)

// RequireIdentity checks that the request carries a bearer token and the acting
// user forwarded by the gateway. The token itself is verified upstream.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		actor := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if actor == "" {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// ActorID returns the acting user stored by RequireIdentity.
func ActorID(c *gin.Context) string {
	return c.GetString(ctxActorKey)
}
