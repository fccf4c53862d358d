package client

import "context"

// Repository abstracts client and communication log storage.
type Repository interface {
	All() []Client
	Get(id string) (Client, bool)
	Logs() []CommunicationLog

	Create(ctx context.Context, row InsertRow) (Client, error)
	Update(ctx context.Context, id string, row UpdateRow) (Client, error)
	Delete(ctx context.Context, id string) error
	CreateLog(ctx context.Context, row InsertLogRow) (CommunicationLog, error)

	Refresh(ctx context.Context) error
}
