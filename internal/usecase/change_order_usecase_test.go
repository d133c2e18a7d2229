package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	mock_interfaces "github.com/grupo95/job-ledger-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingChangeOrder(id, jobID string) entities.ChangeOrder {
	return entities.ChangeOrder{
		ID:          id,
		JobID:       jobID,
		Type:        entities.ChangeOrderTypeRetail,
		Description: "extra ridge vent",
		Amount:      150000,
		Status:      entities.ChangeOrderStatusPending,
	}
}

func TestChangeOrderUseCase_Create(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewChangeOrderUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "job-1", "discount", "desc", 1000)
		if !errors.Is(err, ErrInvalidChangeOrderType) {
			t.Fatalf("expected ErrInvalidChangeOrderType, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewChangeOrderUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "job-1", entities.ChangeOrderTypeSupplement, "desc", 0)
		if !errors.Is(err, ErrInvalidChangeOrderAmt) {
			t.Fatalf("expected ErrInvalidChangeOrderAmt, got %v", err)
		}
	})

	t.Run("job must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		uc := NewChangeOrderUseCase(nil, jobRepo, nil, nil)
		_, err := uc.Create(context.Background(), "job-1", entities.ChangeOrderTypeSupplement, "desc", 1000)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("creates pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
				if co.Status != entities.ChangeOrderStatusPending {
					t.Fatalf("status = %s, want pending", co.Status)
				}
				if co.ID == "" {
					t.Fatal("expected generated id")
				}
				return co, nil
			})

		uc := NewChangeOrderUseCase(repo, jobRepo, nil, nil)
		co, err := uc.Create(context.Background(), "job-1", entities.ChangeOrderTypeInsuranceSupplement, "hail damage", 250000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if co.Amount != 250000 {
			t.Fatalf("amount = %d, want 250000", co.Amount)
		}
	})
}

func TestChangeOrderUseCase_Resolve(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(pendingChangeOrder("co-1", "job-1"), nil)
		approved := pendingChangeOrder("co-1", "job-1")
		approved.Status = entities.ChangeOrderStatusApproved
		repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusApproved, "ok").Return(approved, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		got, err := uc.Approve(context.Background(), "co-1", "ok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusApproved {
			t.Fatalf("status = %s, want approved", got.Status)
		}
	})

	t.Run("re-approving approved is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		co := pendingChangeOrder("co-1", "job-1")
		co.Status = entities.ChangeOrderStatusApproved
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		got, err := uc.Approve(context.Background(), "co-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusApproved {
			t.Fatalf("status = %s, want approved", got.Status)
		}
	})

	t.Run("approving rejected conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		co := pendingChangeOrder("co-1", "job-1")
		co.Status = entities.ChangeOrderStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		_, err := uc.Approve(context.Background(), "co-1", "")
		if !errors.Is(err, ErrChangeOrderConflict) {
			t.Fatalf("expected ErrChangeOrderConflict, got %v", err)
		}
	})

	t.Run("lost race to same resolution is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(pendingChangeOrder("co-1", "job-1"), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusRejected, "dup").Return(entities.ChangeOrder{}, nil)
		rejected := pendingChangeOrder("co-1", "job-1")
		rejected.Status = entities.ChangeOrderStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(rejected, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		got, err := uc.Reject(context.Background(), "co-1", "dup")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusRejected {
			t.Fatalf("status = %s, want rejected", got.Status)
		}
	})
}

func TestChangeOrderUseCase_Delete(t *testing.T) {
	t.Run("billed change order cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		invID := "inv-1"
		co := pendingChangeOrder("co-1", "job-1")
		co.Status = entities.ChangeOrderStatusApproved
		co.InvoiceID = &invID
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		if err := uc.Delete(context.Background(), "co-1"); !errors.Is(err, ErrChangeOrderBilled) {
			t.Fatalf("expected ErrChangeOrderBilled, got %v", err)
		}
	})

	t.Run("deletes unbilled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(pendingChangeOrder("co-1", "job-1"), nil)
		repo.EXPECT().Delete(gomock.Any(), "co-1").Return(true, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		if err := uc.Delete(context.Background(), "co-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("billed between read and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(pendingChangeOrder("co-1", "job-1"), nil)
		repo.EXPECT().Delete(gomock.Any(), "co-1").Return(false, nil)
		invID := "inv-9"
		billed := pendingChangeOrder("co-1", "job-1")
		billed.Status = entities.ChangeOrderStatusApproved
		billed.InvoiceID = &invID
		repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(billed, nil)

		uc := NewChangeOrderUseCase(repo, nil, nil, nil)
		if err := uc.Delete(context.Background(), "co-1"); !errors.Is(err, ErrChangeOrderBilled) {
			t.Fatalf("expected ErrChangeOrderBilled, got %v", err)
		}
	})
}
