package repository

import "github.com/grupo95/job-ledger-service/internal/domain/entities"

// Nullable cents columns are scanned as *int64 and converted here so the
// entities never deal with database null handling.

func toCentsPtr(v *int64) *entities.Cents {
	if v == nil {
		return nil
	}
	c := entities.Cents(*v)
	return &c
}

func fromCentsPtr(c *entities.Cents) *int64 {
	if c == nil {
		return nil
	}
	v := int64(*c)
	return &v
}
