package ports

import (
	"context"

	"github.com/aretw0/dfa/pkg/domain"
)

// ReportStore defines the interface for persisting evaluation reports.
// This lets external tooling inspect activity counters after the run returned.
type ReportStore interface {
	// Save persists the report under report.ID.
	Save(ctx context.Context, report *domain.Report) error

	// Load retrieves a report by ID.
	// Returns domain.ErrReportNotFound if the report does not exist.
	Load(ctx context.Context, id string) (*domain.Report, error)

	// Delete removes a report by ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored reports.
	List(ctx context.Context) ([]string, error)
}
