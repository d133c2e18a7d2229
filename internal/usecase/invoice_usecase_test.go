package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"
	mock_interfaces "github.com/grupo95/job-ledger-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func centsPtr(v int64) *entities.Cents {
	c := entities.Cents(v)
	return &c
}

func TestInvoiceUseCase_Generate_Validations(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", "credit_memo", GenerateInvoiceOptions{})
		if !errors.Is(err, ErrInvalidInvoiceType) {
			t.Fatalf("expected ErrInvalidInvoiceType, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		uc := NewInvoiceUseCase(nil, jobRepo, nil, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeDeposit, GenerateInvoiceOptions{CustomAmount: centsPtr(1000)})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("deposit requires positive custom amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil).Times(2)

		uc := NewInvoiceUseCase(nil, jobRepo, nil, nil, nil)
		if _, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeDeposit, GenerateInvoiceOptions{}); !errors.Is(err, ErrCustomAmountRequired) {
			t.Fatalf("expected ErrCustomAmountRequired, got %v", err)
		}
		if _, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeDeposit, GenerateInvoiceOptions{CustomAmount: centsPtr(0)}); !errors.Is(err, ErrCustomAmountRequired) {
			t.Fatalf("expected ErrCustomAmountRequired for zero amount, got %v", err)
		}
	})

	t.Run("supplement requires change orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)

		uc := NewInvoiceUseCase(nil, jobRepo, nil, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeSupplement, GenerateInvoiceOptions{})
		if !errors.Is(err, ErrNoChangeOrdersSelected) {
			t.Fatalf("expected ErrNoChangeOrdersSelected, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Generate_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
	jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
	repo.EXPECT().CreateFixed(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			if inv.TotalAmount != 500000 {
				t.Fatalf("total = %d, want 500000", inv.TotalAmount)
			}
			if inv.Status != entities.InvoiceStatusDraft {
				t.Fatalf("status = %s, want draft", inv.Status)
			}
			if inv.DueDate.Before(time.Now().UTC().AddDate(0, 0, 29)) {
				t.Fatal("expected due date to default to ~30 days out")
			}
			inv.InvoiceNumber = 7
			return inv, nil
		})

	uc := NewInvoiceUseCase(repo, jobRepo, nil, nil, nil)
	inv, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeDeposit, GenerateInvoiceOptions{CustomAmount: centsPtr(500000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.InvoiceNumber != 7 {
		t.Fatalf("invoice number = %d, want 7", inv.InvoiceNumber)
	}
}

func TestInvoiceUseCase_Generate_Supplement(t *testing.T) {
	billable := func(id string) entities.ChangeOrder {
		return entities.ChangeOrder{
			ID:     id,
			JobID:  "job-1",
			Type:   entities.ChangeOrderTypeSupplement,
			Amount: 100000,
			Status: entities.ChangeOrderStatusApproved,
		}
	}

	t.Run("bills selected orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		coRepo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		coRepo.EXPECT().GetByID(gomock.Any(), "co-1").Return(billable("co-1"), nil)
		coRepo.EXPECT().GetByID(gomock.Any(), "co-2").Return(billable("co-2"), nil)
		repo.EXPECT().CreateSupplement(gomock.Any(), gomock.Any(), []string{"co-1", "co-2"}).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, ids []string) (entities.Invoice, error) {
				inv.TotalAmount = 200000
				return inv, nil
			})

		uc := NewInvoiceUseCase(repo, jobRepo, coRepo, nil, nil)
		inv, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeSupplement, GenerateInvoiceOptions{ChangeOrderIDs: []string{"co-1", "co-2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.TotalAmount != 200000 {
			t.Fatalf("total = %d, want 200000", inv.TotalAmount)
		}
	})

	t.Run("duplicate selection rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)

		uc := NewInvoiceUseCase(nil, jobRepo, nil, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeSupplement, GenerateInvoiceOptions{ChangeOrderIDs: []string{"co-1", "co-1"}})
		if !errors.Is(err, ErrInvalidChangeOrderID) {
			t.Fatalf("expected ErrInvalidChangeOrderID, got %v", err)
		}
	})

	t.Run("order from another job rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		coRepo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		other := billable("co-1")
		other.JobID = "job-2"
		coRepo.EXPECT().GetByID(gomock.Any(), "co-1").Return(other, nil)

		uc := NewInvoiceUseCase(nil, jobRepo, coRepo, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeSupplement, GenerateInvoiceOptions{ChangeOrderIDs: []string{"co-1"}})
		if !errors.Is(err, ErrChangeOrderWrongJob) {
			t.Fatalf("expected ErrChangeOrderWrongJob, got %v", err)
		}
	})

	t.Run("unbillable order rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		coRepo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		pending := billable("co-1")
		pending.Status = entities.ChangeOrderStatusPending
		coRepo.EXPECT().GetByID(gomock.Any(), "co-1").Return(pending, nil)

		uc := NewInvoiceUseCase(nil, jobRepo, coRepo, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeSupplement, GenerateInvoiceOptions{ChangeOrderIDs: []string{"co-1"}})
		if !errors.Is(err, ErrChangeOrderNotBillable) {
			t.Fatalf("expected ErrChangeOrderNotBillable, got %v", err)
		}
	})

	t.Run("race inside transaction maps to not billable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		coRepo := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		coRepo.EXPECT().GetByID(gomock.Any(), "co-1").Return(billable("co-1"), nil)
		repo.EXPECT().CreateSupplement(gomock.Any(), gomock.Any(), []string{"co-1"}).Return(entities.Invoice{}, interfaces.ErrChangeOrderNotBillable)

		uc := NewInvoiceUseCase(repo, jobRepo, coRepo, nil, nil)
		_, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeSupplement, GenerateInvoiceOptions{ChangeOrderIDs: []string{"co-1"}})
		if !errors.Is(err, ErrChangeOrderNotBillable) {
			t.Fatalf("expected ErrChangeOrderNotBillable, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Generate_Final(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
	jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
	repo.EXPECT().CreateFinal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			// Over-invoiced job: the remaining balance is negative and is
			// recorded as-is.
			inv.TotalAmount = -50000
			return inv, nil
		})

	uc := NewInvoiceUseCase(repo, jobRepo, nil, nil, nil)
	inv, err := uc.Generate(context.Background(), "job-1", entities.InvoiceTypeFinal, GenerateInvoiceOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.TotalAmount != -50000 {
		t.Fatalf("total = %d, want -50000", inv.TotalAmount)
	}
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", JobID: "job-1", Status: entities.InvoiceStatusDraft}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusDraft, entities.InvoiceStatusSent).
			Return(entities.Invoice{ID: "inv-1", JobID: "job-1", Status: entities.InvoiceStatusSent}, nil)

		uc := NewInvoiceUseCase(repo, nil, nil, nil, nil)
		inv, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusSent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusSent {
			t.Fatalf("status = %s, want sent", inv.Status)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		uc := NewInvoiceUseCase(repo, nil, nil, nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusPaid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid transition conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		uc := NewInvoiceUseCase(repo, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "inv-1", entities.InvoiceStatusCancelled)
		if !errors.Is(err, ErrInvoiceStatusConflict) {
			t.Fatalf("expected ErrInvoiceStatusConflict, got %v", err)
		}
	})
}
