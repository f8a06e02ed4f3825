package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrAlreadySettled 挂账已被其他结算轮次处理
var ErrAlreadySettled = errors.New("entry already settled")

// SettleEntryTxParams contains the input parameters for settling one pending entry
type SettleEntryTxParams struct {
	EntryID int64
	// 税后净额与税款由调用方按月累计额算好
	AmountAfterTax int64
	TaxWithheld    int64
	TxType         string
	// 结算月 YYYY-MM
	SettlementMonth string
}

// SettleEntryTxResult contains the result of the settle entry transaction
type SettleEntryTxResult struct {
	Entry       SettlementPendingEntry
	User        User
	Transaction TransactionRecord
}

// SettleEntryTx 结算一条挂账：settled_at IS NULL 条件更新保证同一条
// 挂账只会发放一次，余额与流水随之原子更新。
func (store *SQLStore) SettleEntryTx(ctx context.Context, arg SettleEntryTxParams) (SettleEntryTxResult, error) {
	var result SettleEntryTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Entry, err = q.MarkEntrySettled(ctx, MarkEntrySettledParams{
			AmountAfterTax: arg.AmountAfterTax,
			ID:             arg.EntryID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAlreadySettled
			}
			return fmt.Errorf("mark entry settled: %w", err)
		}

		result.User, err = q.AddUserBalance(ctx, AddUserBalanceParams{
			Amount: arg.AmountAfterTax,
			ID:     result.Entry.UserID,
		})
		if err != nil {
			return fmt.Errorf("add balance: %w", err)
		}

		month := pgtypeTextValue(arg.SettlementMonth)
		result.Transaction, err = q.CreateTransactionRecord(ctx, CreateTransactionRecordParams{
			UserID:          result.Entry.UserID,
			TxType:          arg.TxType,
			Amount:          arg.AmountAfterTax,
			TaxWithheld:     arg.TaxWithheld,
			RelatedType:     "pending_entry",
			RelatedID:       result.Entry.ID,
			SettlementMonth: month,
		})
		if err != nil {
			return fmt.Errorf("create transaction record: %w", err)
		}

		return nil
	})

	return result, err
}
