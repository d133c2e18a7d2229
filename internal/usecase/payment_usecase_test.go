package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	mock_interfaces "github.com/grupo95/job-ledger-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_Record(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Record(context.Background(), "job-1", 0, time.Time{}, entities.PaymentMethodCheck, "", "")
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Record(context.Background(), "job-1", 1000, time.Time{}, "bitcoin", "", "")
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		uc := NewPaymentUseCase(nil, jobRepo, nil, nil)
		_, err := uc.Record(context.Background(), "job-1", 1000, time.Time{}, entities.PaymentMethodCash, "", "")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("defaults payment date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.PaymentDate.IsZero() {
					t.Fatal("expected defaulted payment date")
				}
				if p.CheckNumber != "1042" {
					t.Fatalf("check number = %q, want 1042", p.CheckNumber)
				}
				return p, nil
			})

		uc := NewPaymentUseCase(repo, jobRepo, nil, nil)
		p, err := uc.Record(context.Background(), "job-1", 250000, time.Time{}, entities.PaymentMethodCheck, " 1042 ", "first draw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 250000 {
			t.Fatalf("amount = %d, want 250000", p.Amount)
		}
	})
}

func TestPaymentUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		uc := NewPaymentUseCase(repo, nil, nil, nil)
		if err := uc.Delete(context.Background(), "pay-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("deletes and invalidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		cache := mock_interfaces.NewMockILedgerCache(ctrl)
		events := mock_interfaces.NewMockILedgerEventPublisher(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", JobID: "job-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "pay-1").Return(true, nil)
		cache.EXPECT().Invalidate(gomock.Any(), "job-1").Return(nil)
		events.EXPECT().LedgerUpdated("job-1", "payment_deleted")

		uc := NewPaymentUseCase(repo, nil, cache, events)
		if err := uc.Delete(context.Background(), "pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
