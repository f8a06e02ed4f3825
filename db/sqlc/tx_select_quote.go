package db

import (
	"context"
	"fmt"
)

// SelectQuoteTxParams contains the input parameters for the owner accepting a quote
type SelectQuoteTxParams struct {
	QuoteID int64
	UserID  int64

	// 订单定价与奖励预估，由调用方按当前规则快照算好
	OrderTier        int16
	CommissionRate   float64
	CommissionAmount int64
	RewardPreview    int64
	RewardStages     []byte
	RulesVersion     int64
}

// SelectQuoteTxResult contains the result of the select quote transaction
type SelectQuoteTxResult struct {
	Quote   Quote
	Bidding Bidding
	Order   Order
}

// SelectQuoteTx 车主选标：接受报价、作废同单其余报价、关闭竞价并生成订单。
// 竞价与报价的状态条件保证重复选标会直接报错而不是生成第二张订单。
func (store *SQLStore) SelectQuoteTx(ctx context.Context, arg SelectQuoteTxParams) (SelectQuoteTxResult, error) {
	var result SelectQuoteTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Quote, err = q.AcceptQuote(ctx, arg.QuoteID)
		if err != nil {
			return fmt.Errorf("accept quote: %w", err)
		}

		if err = q.InvalidateOtherQuotes(ctx, InvalidateOtherQuotesParams{
			BiddingID: result.Quote.BiddingID,
			QuoteID:   result.Quote.ID,
		}); err != nil {
			return fmt.Errorf("invalidate other quotes: %w", err)
		}

		result.Bidding, err = q.CloseBidding(ctx, CloseBiddingParams{
			Status: "selected",
			ID:     result.Quote.BiddingID,
		})
		if err != nil {
			return fmt.Errorf("close bidding: %w", err)
		}

		if result.Bidding.OwnerID != arg.UserID {
			return fmt.Errorf("bidding %d does not belong to user %d", result.Bidding.ID, arg.UserID)
		}

		result.Order, err = q.CreateOrder(ctx, CreateOrderParams{
			QuoteID:          result.Quote.ID,
			BiddingID:        result.Bidding.ID,
			UserID:           arg.UserID,
			ShopID:           result.Quote.ShopID,
			Amount:           result.Quote.Amount,
			ComplexityLevel:  result.Bidding.ComplexityLevel,
			IsInsuranceClaim: result.Bidding.IsInsuranceClaim,
			VehicleBrand:     result.Bidding.VehicleBrand,
			PlateNumber:      result.Bidding.PlateNumber,
			VehiclePriceTier: result.Bidding.VehiclePriceTier,
			Items:            result.Bidding.Items,
			OrderTier:        arg.OrderTier,
			CommissionRate:   arg.CommissionRate,
			CommissionAmount: arg.CommissionAmount,
			RewardPreview:    arg.RewardPreview,
			RewardStages:     arg.RewardStages,
			RulesVersion:     arg.RulesVersion,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return nil
	})

	return result, err
}
