package interfaces

import (
	"context"

	"sales_associate/internal/domain/entities"
)

// IDispatchLedger abstracts DynamoDB persistence for EmailDispatch.
//
// The pipeline must be able to:
//   - record every notification it sends
//   - ask whether a given kind was already sent for a client (resend guard)
//   - list a client's notification history

type IDispatchLedger interface {
	Record(ctx context.Context, d entities.EmailDispatch) (entities.EmailDispatch, error)
	Has(ctx context.Context, clientID string, kind entities.DispatchKind) (bool, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.EmailDispatch, error)
}
