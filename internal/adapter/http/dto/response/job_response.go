package response

import (
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// Money fields carry both canonical cents and display dollars so API
// consumers never re-derive one from the other.

type JobResponse struct {
	ID                  string    `json:"id"`
	CustomerName        string    `json:"customer_name"`
	Address             string    `json:"address"`
	JobType             string    `json:"job_type"`
	SquareCount         float64   `json:"square_count"`
	PriceStatus         string    `json:"price_status"`
	PricePerSquareCents *int64    `json:"price_per_square_cents,omitempty"`
	PricePerSquare      *float64  `json:"price_per_square,omitempty"`
	TotalPriceCents     *int64    `json:"total_price_cents,omitempty"`
	TotalPrice          *float64  `json:"total_price,omitempty"`
	CounterPriceCents   *int64    `json:"counter_price_cents,omitempty"`
	CounterPrice        *float64  `json:"counter_price,omitempty"`
	PriceSubmittedBy    string    `json:"price_submitted_by,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:               j.ID,
		CustomerName:     j.CustomerName,
		Address:          j.Address,
		JobType:          string(j.JobType),
		SquareCount:      float64(j.SquareCountHundredths) / 100,
		PriceStatus:      string(j.PriceStatus),
		PriceSubmittedBy: string(j.PriceSubmittedBy),
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
	resp.PricePerSquareCents, resp.PricePerSquare = moneyPair(j.PricePerSquare)
	resp.TotalPriceCents, resp.TotalPrice = moneyPair(j.TotalPrice)
	resp.CounterPriceCents, resp.CounterPrice = moneyPair(j.CounterPrice)
	return resp
}

func moneyPair(c *entities.Cents) (*int64, *float64) {
	if c == nil {
		return nil, nil
	}
	cents := int64(*c)
	dollars := c.Dollars()
	return &cents, &dollars
}
