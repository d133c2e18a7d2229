package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func TestRequireActorRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func() (*gin.Engine, *entities.Role) {
		var seen entities.Role
		r := gin.New()
		r.GET("/ping", RequireActorRole(), func(c *gin.Context) {
			seen = ActorRole(c)
			c.Status(http.StatusOK)
		})
		return r, &seen
	}

	t.Run("missing header", func(t *testing.T) {
		r, _ := build()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		r, _ := build()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(ActorRoleHeader, "manager")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("role is normalized and exposed", func(t *testing.T) {
		r, seen := build()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(ActorRoleHeader, "  Team_Lead ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *seen != entities.RoleTeamLead {
			t.Fatalf("expected team_lead, got %q", *seen)
		}
	})
}

func TestActorRoleWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := ActorRole(c); got != "" {
		t.Fatalf("expected empty role, got %q", got)
	}
}
