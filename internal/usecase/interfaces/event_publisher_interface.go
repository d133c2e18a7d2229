package interfaces

// ILedgerEventPublisher announces committed ledger writes so downstream
// consumers (document rendering, dashboards) refresh their view of a job.
//
// Publishing is fire-and-forget: the write has already committed and must
// not fail because the broker is unavailable.

type ILedgerEventPublisher interface {
	LedgerUpdated(jobID, reason string)
}
