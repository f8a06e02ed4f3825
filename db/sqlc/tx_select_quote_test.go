package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectQuoteTx(t *testing.T) {
	owner := createRandomUser(t)
	merchant := createRandomUser(t)
	shop := createRandomShop(t, merchant)
	other := createRandomShop(t, createRandomUser(t))

	bidding := createRandomBidding(t, owner)
	quote := createRandomQuote(t, bidding, shop, 80000)
	loser := createRandomQuote(t, bidding, other, 90000)

	order := selectQuoteForOrder(t, owner, quote)
	require.Equal(t, quote.ID, order.QuoteID)
	require.Equal(t, shop.ID, order.ShopID)
	require.Equal(t, quote.Amount, order.Amount)
	require.Equal(t, "in_progress", order.Status)

	// 竞价关闭，其余报价作废
	updatedBidding, err := testStore.GetBidding(context.Background(), bidding.ID)
	require.NoError(t, err)
	require.Equal(t, "selected", updatedBidding.Status)
	require.True(t, updatedBidding.ClosedAt.Valid)

	updatedLoser, err := testStore.GetQuote(context.Background(), loser.ID)
	require.NoError(t, err)
	require.Equal(t, "invalidated", updatedLoser.Status)

	// 重复选标失败：报价不再是 active
	_, err = testStore.SelectQuoteTx(context.Background(), SelectQuoteTxParams{
		QuoteID: quote.ID,
		UserID:  owner.ID,
	})
	require.Error(t, err)
}

func TestCompleteOrderTx(t *testing.T) {
	owner := createRandomUser(t)
	merchant := createRandomUser(t)
	shop := createRandomShop(t, merchant)

	bidding := createRandomBidding(t, owner)
	quote := createRandomQuote(t, bidding, shop, 120000)
	order := selectQuoteForOrder(t, owner, quote)

	result, err := testStore.CompleteOrderTx(context.Background(), CompleteOrderTxParams{
		OrderID:        order.ID,
		ShopID:         shop.ID,
		EscalatedLevel: 3,
	})
	require.NoError(t, err)
	require.Equal(t, "completed", result.Order.Status)
	require.True(t, result.Order.CompletedAt.Valid)
	require.Equal(t, int16(3), result.Order.ComplexityLevel)
	require.True(t, result.Order.WasEscalated)

	updatedOwner, err := testStore.GetUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Equal(t, owner.CompletedOrders+1, updatedOwner.CompletedOrders)

	// 他店不能替本店完单
	_, err = testStore.CompleteOrderTx(context.Background(), CompleteOrderTxParams{
		OrderID: order.ID,
		ShopID:  shop.ID + 1,
	})
	require.Error(t, err)
}
