package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixbid/repairbid/algorithm"
	mockdb "github.com/fixbid/repairbid/db/mock"
	db "github.com/fixbid/repairbid/db/sqlc"
)

func newTestBatch(store *mockdb.MockStore) *Batch {
	// 配置表读不到时回退内置默认规则
	store.EXPECT().
		GetLatestPlatformConfig(gomock.Any()).
		Return(db.PlatformConfig{}, errors.New("no rows")).
		AnyTimes()
	return NewBatch(store, algorithm.NewRuleSource(store, time.Minute))
}

func TestBatchRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	batch := newTestBatch(store)

	month := "2026-08"

	// 阶段一：到期的阶段挂账和升档差额挂账
	store.EXPECT().
		ListUnsettledEntriesForMonth(gomock.Any(), month).
		Return([]db.SettlementPendingEntry{
			{ID: 1, UserID: 5, OrderID: 11, BonusType: db.BonusTypeStageFollowup, AmountPreTax: 3000, TriggerMonth: month},
			{ID: 2, UserID: 5, OrderID: 11, BonusType: db.BonusTypeUpgradeDiff, AmountPreTax: 300, TriggerMonth: month},
		}, nil)
	store.EXPECT().
		SumUserSettledInMonth(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		AnyTimes()
	store.EXPECT().
		SettleEntryTx(gomock.Any(), db.SettleEntryTxParams{
			EntryID:         1,
			AmountAfterTax:  3000,
			TaxWithheld:     0,
			TxType:          db.BonusTypeStageFollowup,
			SettlementMonth: month,
		}).
		Return(db.SettleEntryTxResult{}, nil)
	store.EXPECT().
		SettleEntryTx(gomock.Any(), db.SettleEntryTxParams{
			EntryID:         2,
			AmountAfterTax:  300,
			TaxWithheld:     0,
			TxType:          db.BonusTypeUpgradeDiff,
			SettlementMonth: month,
		}).
		Return(db.SettleEntryTxResult{}, nil)

	// 阶段二/三共用当月有效点赞清单
	likes := []db.ListBonusEligibleLikesBetweenRow{
		{
			ReviewLike:     db.ReviewLike{ID: 1, ReviewID: 9, UserID: 20, Kind: "normal", BonusEligible: true, DecisionWeight: 2.5},
			ReviewAuthorID: 5,
			ReviewOrderID:  11,
		},
		{
			ReviewLike:     db.ReviewLike{ID: 2, ReviewID: 10, UserID: 21, Kind: "post_verify", BonusEligible: true},
			ReviewAuthorID: 7,
			ReviewOrderID:  12,
		},
	}
	store.EXPECT().
		ListBonusEligibleLikesBetween(gomock.Any(), gomock.Any()).
		Return(likes, nil).
		Times(2)

	// 普通点赞：2.5 权重点折 250 分，远在 80% 佣金上限内
	store.EXPECT().
		GetOrder(gomock.Any(), int64(11)).
		Return(db.Order{ID: 11, UserID: 5, CommissionAmount: 10000}, nil)
	store.EXPECT().
		SumReviewDeferredPaid(gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	store.EXPECT().
		PayBonusTx(gomock.Any(), db.PayBonusTxParams{
			UserID:             5,
			TxType:             db.TxTypeOrdinaryLikeBonus,
			Amount:             250,
			RelatedType:        "review",
			RelatedID:          9,
			SettlementMonth:    month,
			IdempotentPerMonth: true,
		}).
		Return(db.PayBonusTxResult{}, nil)

	// 购后验证：佣金 20000 的 50%，一单一次
	store.EXPECT().
		ExistsTransactionForRelated(gomock.Any(), db.ExistsTransactionForRelatedParams{
			TxType:      db.TxTypePostVerifyBonus,
			RelatedType: "order",
			RelatedID:   12,
		}).
		Return(false, nil)
	store.EXPECT().
		GetOrder(gomock.Any(), int64(12)).
		Return(db.Order{ID: 12, UserID: 8, CommissionAmount: 20000}, nil)
	store.EXPECT().
		PayBonusTx(gomock.Any(), db.PayBonusTxParams{
			UserID:          7,
			TxType:          db.TxTypePostVerifyBonus,
			Amount:          10000,
			RelatedType:     "order",
			RelatedID:       12,
			SettlementMonth: month,
		}).
		Return(db.PayBonusTxResult{}, nil)

	store.EXPECT().
		CreateSettlementRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateSettlementRunParams) (db.SettlementRun, error) {
			require.Equal(t, month, arg.Month)
			require.Equal(t, int32(2), arg.EntriesPaid)
			require.Equal(t, int32(1), arg.LikesPaid)
			require.Equal(t, int32(1), arg.PostVerifyPaid)
			require.Equal(t, int64(13550), arg.TotalAmount)
			require.Equal(t, int32(0), arg.ErrorCount)
			return db.SettlementRun{ID: 1, Month: month}, nil
		})

	summary, err := batch.Run(context.Background(), month)
	require.NoError(t, err)
	require.Equal(t, 2, summary.EntriesPaid)
	require.Equal(t, 1, summary.LikesPaid)
	require.Equal(t, 1, summary.PostVerifyPaid)
	require.Equal(t, int64(13550), summary.TotalAmount)
	require.Empty(t, summary.Errors)
}

func TestBatchRunIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	batch := newTestBatch(store)

	month := "2026-08"

	// 挂账已被上一轮结清
	store.EXPECT().
		ListUnsettledEntriesForMonth(gomock.Any(), month).
		Return([]db.SettlementPendingEntry{
			{ID: 1, UserID: 5, OrderID: 11, BonusType: db.BonusTypeConversion, AmountPreTax: 3000, TriggerMonth: month},
		}, nil)
	store.EXPECT().
		SumUserSettledInMonth(gomock.Any(), gomock.Any()).
		Return(int64(13250), nil).
		AnyTimes()
	store.EXPECT().
		SettleEntryTx(gomock.Any(), gomock.Any()).
		Return(db.SettleEntryTxResult{}, db.ErrAlreadySettled)

	likes := []db.ListBonusEligibleLikesBetweenRow{
		{
			ReviewLike:     db.ReviewLike{ID: 1, ReviewID: 9, Kind: "normal", BonusEligible: true, DecisionWeight: 2.5},
			ReviewAuthorID: 5,
			ReviewOrderID:  11,
		},
		{
			ReviewLike:     db.ReviewLike{ID: 2, ReviewID: 10, Kind: "post_verify", BonusEligible: true},
			ReviewAuthorID: 7,
			ReviewOrderID:  12,
		},
	}
	store.EXPECT().
		ListBonusEligibleLikesBetween(gomock.Any(), gomock.Any()).
		Return(likes, nil).
		Times(2)

	// 普通点赞按 (tx_type, related, month) 幂等跳过
	store.EXPECT().
		GetOrder(gomock.Any(), int64(11)).
		Return(db.Order{ID: 11, CommissionAmount: 10000}, nil)
	store.EXPECT().
		SumReviewDeferredPaid(gomock.Any(), gomock.Any()).
		Return(int64(250), nil)
	store.EXPECT().
		PayBonusTx(gomock.Any(), gomock.Any()).
		Return(db.PayBonusTxResult{Skipped: true}, nil)

	// 购后验证已在历史轮次发放
	store.EXPECT().
		ExistsTransactionForRelated(gomock.Any(), gomock.Any()).
		Return(true, nil)

	store.EXPECT().
		CreateSettlementRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateSettlementRunParams) (db.SettlementRun, error) {
			require.Equal(t, int64(0), arg.TotalAmount)
			return db.SettlementRun{ID: 2, Month: month}, nil
		})

	summary, err := batch.Run(context.Background(), month)
	require.NoError(t, err)
	require.Zero(t, summary.EntriesPaid)
	require.Zero(t, summary.LikesPaid)
	require.Zero(t, summary.PostVerifyPaid)
	require.Zero(t, summary.TotalAmount)
}

func TestBatchLikeBonusCapAndTax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	batch := newTestBatch(store)

	month := "2026-08"

	store.EXPECT().
		ListUnsettledEntriesForMonth(gomock.Any(), month).
		Return([]db.SettlementPendingEntry{}, nil)

	likes := []db.ListBonusEligibleLikesBetweenRow{
		{
			ReviewLike:     db.ReviewLike{ID: 1, ReviewID: 9, Kind: "normal", BonusEligible: true, DecisionWeight: 2.5},
			ReviewAuthorID: 5,
			ReviewOrderID:  11,
		},
	}
	store.EXPECT().
		ListBonusEligibleLikesBetween(gomock.Any(), gomock.Any()).
		Return(likes, nil).
		Times(2)

	// 80% 上限 8000，历史已发 7900：只剩 100 可发
	store.EXPECT().
		GetOrder(gomock.Any(), int64(11)).
		Return(db.Order{ID: 11, CommissionAmount: 10000}, nil)
	store.EXPECT().
		SumReviewDeferredPaid(gomock.Any(), gomock.Any()).
		Return(int64(7900), nil)

	// 当月累计 79950，100 中有 50 落在免税线上方，代扣 20%
	store.EXPECT().
		SumUserSettledInMonth(gomock.Any(), gomock.Any()).
		Return(int64(79950), nil)
	store.EXPECT().
		PayBonusTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.PayBonusTxParams) (db.PayBonusTxResult, error) {
			require.Equal(t, int64(90), arg.Amount)
			require.Equal(t, int64(10), arg.TaxWithheld)
			return db.PayBonusTxResult{}, nil
		})

	store.EXPECT().
		CreateSettlementRun(gomock.Any(), gomock.Any()).
		Return(db.SettlementRun{ID: 3, Month: month}, nil)

	summary, err := batch.Run(context.Background(), month)
	require.NoError(t, err)
	require.Equal(t, 1, summary.LikesPaid)
	require.Equal(t, int64(90), summary.TotalAmount)
}

func TestMonthWindow(t *testing.T) {
	start, end, err := monthWindow("2026-08")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = monthWindow("2026/08")
	require.Error(t, err)
}
