package request

import (
	"math"
	"strings"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
)

// CreateJobRequest opens a job. SquareCount comes from the external
// roof-measurement service and may be fractional (e.g. 24.33 squares).
type CreateJobRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	JobType      string  `json:"job_type" binding:"required"`
	SquareCount  float64 `json:"square_count" binding:"required"`
}

func (r CreateJobRequest) ResolveJobType() entities.JobType {
	return entities.JobType(strings.TrimSpace(strings.ToLower(r.JobType)))
}

// SquareCountHundredths converts the decimal square count to the integer
// hundredths the domain carries.
func (r CreateJobRequest) SquareCountHundredths() int64 {
	return int64(math.Round(r.SquareCount * 100))
}
