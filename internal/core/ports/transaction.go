package ports

import "context"

// TxManager runs fn as one atomic unit. Repository calls made with the ctx
// handed to fn participate in the transaction; any error aborts it.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
