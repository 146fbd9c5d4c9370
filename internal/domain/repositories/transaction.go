package repositories

import "context"

// TxFn runs inside a transaction; ctx carries the transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs functions atomically against the store
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
