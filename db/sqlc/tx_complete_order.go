package db

import (
	"context"
	"fmt"
)

// CompleteOrderTxParams contains the input parameters for completing an order
type CompleteOrderTxParams struct {
	OrderID int64
	ShopID  int64

	// 完单过程中复杂度被上调（维修中发现新损伤）
	EscalatedLevel int16
}

// CompleteOrderTxResult contains the result of the complete order transaction
type CompleteOrderTxResult struct {
	Order Order
}

// CompleteOrderTx 完工确认：订单进入完成态并累加用户完单数。
// 分期奖励挂账在评价提交时创建，这里只固化完成时间。
func (store *SQLStore) CompleteOrderTx(ctx context.Context, arg CompleteOrderTxParams) (CompleteOrderTxResult, error) {
	var result CompleteOrderTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		order, err := q.GetOrder(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.ShopID != arg.ShopID {
			return fmt.Errorf("order %d does not belong to shop %d", arg.OrderID, arg.ShopID)
		}

		if arg.EscalatedLevel > order.ComplexityLevel {
			if err = q.EscalateOrderComplexity(ctx, EscalateOrderComplexityParams{
				ComplexityLevel: arg.EscalatedLevel,
				ID:              arg.OrderID,
			}); err != nil {
				return fmt.Errorf("escalate complexity: %w", err)
			}
		}

		result.Order, err = q.CompleteOrder(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("complete order: %w", err)
		}

		if err = q.IncrementUserCompletedOrders(ctx, result.Order.UserID); err != nil {
			return fmt.Errorf("increment completed orders: %w", err)
		}

		return nil
	})

	return result, err
}
