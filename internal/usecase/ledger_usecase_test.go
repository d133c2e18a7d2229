package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	mock_interfaces "github.com/grupo95/job-ledger-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLedgerUseCase_GetSummary(t *testing.T) {
	t.Run("aggregates from repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		coRepo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		cache := mock_interfaces.NewMockILedgerCache(ctrl)

		total := entities.Cents(1000000)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
			ID:         "job-1",
			JobType:    entities.JobTypeRetail,
			TotalPrice: &total,
		}, nil)
		coRepo.EXPECT().GetJobSummary(gomock.Any(), "job-1").Return(entities.ChangeOrderSummary{TotalApproved: 150000, ApprovedCount: 1}, nil)
		invRepo.EXPECT().SumByJobID(gomock.Any(), "job-1").Return(entities.InvoiceSums{TotalNonCancelled: 500000, NonSupplementNonCancelled: 500000}, nil)
		payRepo.EXPECT().GetSummary(gomock.Any(), "job-1").Return(entities.PaymentSummary{TotalPaid: 300000, PaymentCount: 2}, nil)
		cache.EXPECT().GetSummary(gomock.Any(), "job-1").Return(entities.LedgerSummary{}, false, nil)
		cache.EXPECT().SetSummary(gomock.Any(), "job-1", gomock.Any()).Return(nil)

		uc := NewLedgerUseCase(jobRepo, coRepo, invRepo, payRepo, cache)
		s, err := uc.GetSummary(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalContractValue != 1150000 {
			t.Fatalf("contract = %d, want 1150000", s.TotalContractValue)
		}
		if s.UnbilledRevenue != 650000 {
			t.Fatalf("unbilled = %d, want 650000", s.UnbilledRevenue)
		}
		if s.TotalCollected != 300000 || s.PaymentCount != 2 {
			t.Fatalf("collected = %d/%d, want 300000/2", s.TotalCollected, s.PaymentCount)
		}
		if s.SuggestedDepositCents != 575000 {
			t.Fatalf("suggested deposit = %d, want 575000", s.SuggestedDepositCents)
		}
	})

	t.Run("legacy fallback without approved price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		coRepo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", JobType: entities.JobTypeInsurance}, nil)
		coRepo.EXPECT().GetJobSummary(gomock.Any(), "job-1").Return(entities.ChangeOrderSummary{}, nil)
		// Base falls back to the non-supplement, non-cancelled invoice sum.
		invRepo.EXPECT().SumByJobID(gomock.Any(), "job-1").Return(entities.InvoiceSums{TotalNonCancelled: 800000, NonSupplementNonCancelled: 800000}, nil)
		payRepo.EXPECT().GetSummary(gomock.Any(), "job-1").Return(entities.PaymentSummary{}, nil)

		uc := NewLedgerUseCase(jobRepo, coRepo, invRepo, payRepo, nil)
		s, err := uc.GetSummary(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.BaseContractValue != 800000 {
			t.Fatalf("base = %d, want legacy 800000", s.BaseContractValue)
		}
		if !s.IsFullyInvoiced {
			t.Fatal("legacy job with base == invoiced should read as fully invoiced")
		}
		if s.SuggestedDepositCents != 0 {
			t.Fatalf("insurance job deposit = %d, want 0", s.SuggestedDepositCents)
		}
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockILedgerCache(ctrl)
		cached := entities.LedgerSummary{JobID: "job-1"}
		cached.TotalContractValue = 1150000
		cache.EXPECT().GetSummary(gomock.Any(), "job-1").Return(cached, true, nil)

		uc := NewLedgerUseCase(nil, nil, nil, nil, cache)
		s, err := uc.GetSummary(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalContractValue != 1150000 {
			t.Fatalf("contract = %d, want cached 1150000", s.TotalContractValue)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		uc := NewLedgerUseCase(jobRepo, nil, nil, nil, nil)
		if _, err := uc.GetSummary(context.Background(), "job-1"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}
