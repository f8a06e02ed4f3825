package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestSettleEntryTx(t *testing.T) {
	owner := createRandomUser(t)
	merchant := createRandomUser(t)
	shop := createRandomShop(t, merchant)

	bidding := createRandomBidding(t, owner)
	quote := createRandomQuote(t, bidding, shop, 50000)
	order := selectQuoteForOrder(t, owner, quote)

	entry, err := testStore.CreateSettlementPendingEntry(context.Background(), CreateSettlementPendingEntryParams{
		UserID:       owner.ID,
		OrderID:      order.ID,
		BonusType:    "stage_followup",
		AmountPreTax: 3000,
		TriggerMonth: "2025-07",
	})
	require.NoError(t, err)
	require.NotZero(t, entry.ID)

	result, err := testStore.SettleEntryTx(context.Background(), SettleEntryTxParams{
		EntryID:         entry.ID,
		AmountAfterTax:  3000,
		TaxWithheld:     0,
		TxType:          "stage_payout",
		SettlementMonth: "2025-07",
	})
	require.NoError(t, err)
	require.True(t, result.Entry.SettledAt.Valid)
	require.Equal(t, int64(3000), result.Entry.AmountAfterTax)
	require.Equal(t, owner.Balance+3000, result.User.Balance)

	// 二次结算同一条挂账直接拒绝
	_, err = testStore.SettleEntryTx(context.Background(), SettleEntryTxParams{
		EntryID:         entry.ID,
		AmountAfterTax:  3000,
		TxType:          "stage_payout",
		SettlementMonth: "2025-07",
	})
	require.ErrorIs(t, err, ErrAlreadySettled)
}

func TestCreateSettlementPendingEntryIdempotent(t *testing.T) {
	owner := createRandomUser(t)
	merchant := createRandomUser(t)
	shop := createRandomShop(t, merchant)

	bidding := createRandomBidding(t, owner)
	quote := createRandomQuote(t, bidding, shop, 50000)
	order := selectQuoteForOrder(t, owner, quote)

	arg := CreateSettlementPendingEntryParams{
		UserID:       owner.ID,
		OrderID:      order.ID,
		ReviewID:     pgtype.Int8{},
		BonusType:    "upgrade_diff",
		AmountPreTax: 2000,
		TriggerMonth: "2025-08",
	}

	first, err := testStore.CreateSettlementPendingEntry(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// 唯一约束下的重复挂账不产生新行
	_, err = testStore.CreateSettlementPendingEntry(context.Background(), arg)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestPayBonusTxIdempotentPerMonth(t *testing.T) {
	user := createRandomUser(t)

	arg := PayBonusTxParams{
		UserID:             user.ID,
		TxType:             "like_bonus",
		Amount:             500,
		RelatedType:        "review",
		RelatedID:          user.ID, // 任意关联键，测试幂等用
		SettlementMonth:    "2025-07",
		IdempotentPerMonth: true,
	}

	first, err := testStore.PayBonusTx(context.Background(), arg)
	require.NoError(t, err)
	require.False(t, first.Skipped)
	require.Equal(t, user.Balance+500, first.User.Balance)

	second, err := testStore.PayBonusTx(context.Background(), arg)
	require.NoError(t, err)
	require.True(t, second.Skipped)
}
