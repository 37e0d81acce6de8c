package ports

import (
	"context"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

// AuditRecorder accepts auth activity events for asynchronous persistence.
// Record must never block the request path.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
