package model

import "context"

// TxManager runs a function inside a storage transaction. Store calls made
// with the context passed to fn join the transaction; the whole unit commits
// if fn returns nil and rolls back otherwise.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
