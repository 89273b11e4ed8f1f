package repository

import "context"

// StatusRepository persists the current status per order id.
type StatusRepository interface {
	// Upsert inserts a status row for an unseen order id or overwrites the
	// existing one. The write is a single atomic conditional statement so
	// concurrent upserts for the same order id cannot both insert.
	Upsert(ctx context.Context, orderID, status string) error
}
