package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/pkg"
)

// ActorRoleHeader identifies the caller's role. Authentication happens
// upstream; by the time a request reaches this service the gateway has
// already resolved the user, so the role travels as a trusted header.
const ActorRoleHeader = "X-Actor-Role"

const actorRoleKey = "actorRole"

var errMissingActorRole = pkg.NewDomainErrorSimple("MISSING_ACTOR_ROLE", "X-Actor-Role header is required and must be one of: sales_rep, team_lead, office, owner", http.StatusForbidden)

// RequireActorRole rejects requests without a valid X-Actor-Role header
// and stores the parsed role on the gin context for handlers.
func RequireActorRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.Role(strings.TrimSpace(strings.ToLower(c.GetHeader(ActorRoleHeader))))
		if !entities.ValidRole(role) {
			c.AbortWithStatusJSON(errMissingActorRole.HTTPStatus, errMissingActorRole.ToHTTPError())
			return
		}
		c.Set(actorRoleKey, role)
		c.Next()
	}
}

// ActorRole returns the role stored by RequireActorRole. The zero value
// means the middleware did not run on this route.
func ActorRole(c *gin.Context) entities.Role {
	if v, ok := c.Get(actorRoleKey); ok {
		if role, ok := v.(entities.Role); ok {
			return role
		}
	}
	return ""
}
