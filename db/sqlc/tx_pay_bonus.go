package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// PayBonusTxParams contains the input parameters for paying a bonus
type PayBonusTxParams struct {
	UserID      int64
	TxType      string
	Amount      int64
	TaxWithheld int64
	RelatedType string
	RelatedID   int64

	// 结算月 YYYY-MM；为空表示非月结入账
	SettlementMonth string
	// 为 true 时按 (tx_type, related, month) 幂等，重复入账直接跳过
	IdempotentPerMonth bool
}

// PayBonusTxResult contains the result of the pay bonus transaction
type PayBonusTxResult struct {
	Skipped     bool
	User        User
	Transaction TransactionRecord
}

// PayBonusTx 奖励入账：余额原子累加并写流水。
// 金额为税后净额，税款单独记在流水上。
func (store *SQLStore) PayBonusTx(ctx context.Context, arg PayBonusTxParams) (PayBonusTxResult, error) {
	var result PayBonusTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		month := pgtype.Text{}
		if arg.SettlementMonth != "" {
			month = pgtype.Text{String: arg.SettlementMonth, Valid: true}
		}

		if arg.IdempotentPerMonth {
			exists, err := q.ExistsTransactionForRelatedMonth(ctx, ExistsTransactionForRelatedMonthParams{
				TxType:          arg.TxType,
				RelatedType:     arg.RelatedType,
				RelatedID:       arg.RelatedID,
				SettlementMonth: month,
			})
			if err != nil {
				return fmt.Errorf("check existing transaction: %w", err)
			}
			if exists {
				result.Skipped = true
				return nil
			}
		}

		result.User, err = q.AddUserBalance(ctx, AddUserBalanceParams{
			Amount: arg.Amount,
			ID:     arg.UserID,
		})
		if err != nil {
			return fmt.Errorf("add balance: %w", err)
		}

		result.Transaction, err = q.CreateTransactionRecord(ctx, CreateTransactionRecordParams{
			UserID:          arg.UserID,
			TxType:          arg.TxType,
			Amount:          arg.Amount,
			TaxWithheld:     arg.TaxWithheld,
			RelatedType:     arg.RelatedType,
			RelatedID:       arg.RelatedID,
			SettlementMonth: month,
		})
		if err != nil {
			return fmt.Errorf("create transaction record: %w", err)
		}

		return nil
	})

	return result, err
}
