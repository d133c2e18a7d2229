package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grupo95/job-ledger-service/internal/adapter/http/handlers/mocks"
	"github.com/grupo95/job-ledger-service/internal/adapter/http/middleware"
	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func pricingRouter(uc usecase.IPricingUseCase) *gin.Engine {
	h := NewPricingHandler(uc)
	r := gin.New()
	proposal := r.Group("/v1/jobs/:job_id/proposal", middleware.RequireActorRole())
	proposal.POST("", h.SubmitProposal)
	proposal.PATCH("/approve", h.ApproveProposal)
	proposal.PATCH("/counter", h.CounterProposal)
	proposal.PATCH("/counter/accept", h.AcceptCounter)
	proposal.PATCH("/counter/deny", h.DenyCounter)
	return r
}

func TestPricingHandler_SubmitProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/proposal", bytes.NewBufferString(`{"price_per_square":5.00}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/proposal", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ActorRoleHeader, "sales_rep")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("below floor maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "job-1", entities.RoleSalesRep, entities.Cents(44999)).Return(entities.Job{}, usecase.ErrPriceBelowFloor)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/proposal", bytes.NewBufferString(`{"price_per_square":449.99}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ActorRoleHeader, "sales_rep")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PRICE_BELOW_FLOOR" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "job-1", entities.RoleTeamLead, entities.Cents(47500)).Return(entities.Job{ID: "job-1", PriceStatus: entities.PriceStatusPendingApproval}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/proposal", bytes.NewBufferString(`{"price_per_square":475.00}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ActorRoleHeader, "team_lead")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["price_status"] != "pending_approval" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPricingHandler_Negotiation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "job-1", entities.RoleOwner).Return(entities.Job{ID: "job-1", PriceStatus: entities.PriceStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/proposal/approve", nil)
		req.Header.Set(middleware.ActorRoleHeader, "owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve role not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "job-1", entities.RoleSalesRep).Return(entities.Job{}, usecase.ErrRoleNotAllowed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/proposal/approve", nil)
		req.Header.Set(middleware.ActorRoleHeader, "sales_rep")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("counter invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/proposal/counter", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ActorRoleHeader, "owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("counter success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().Counter(gomock.Any(), "job-1", entities.RoleOwner, entities.Cents(48000)).Return(entities.Job{ID: "job-1", PriceStatus: entities.PriceStatusNegotiation}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/proposal/counter", bytes.NewBufferString(`{"counter_price":480.00}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.ActorRoleHeader, "owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept counter no counter on record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().AcceptCounter(gomock.Any(), "job-1", entities.RoleSalesRep).Return(entities.Job{}, usecase.ErrNoCounterOnRecord)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/proposal/counter/accept", nil)
		req.Header.Set(middleware.ActorRoleHeader, "sales_rep")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deny counter resets to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := pricingRouter(uc)

		uc.EXPECT().DenyCounter(gomock.Any(), "job-1", entities.RoleSalesRep).Return(entities.Job{ID: "job-1", PriceStatus: entities.PriceStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/proposal/counter/deny", nil)
		req.Header.Set(middleware.ActorRoleHeader, "sales_rep")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["price_status"] != "draft" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
