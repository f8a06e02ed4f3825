package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 延迟奖励类型（settlement_pending_entries.bonus_type）。
// 挂账结算时同一字符串直接作为流水 tx_type 落账。
const (
	BonusTypeStageFollowup = "stage_followup"
	BonusTypeConversion    = "conversion"
	BonusTypeUpgradeDiff   = "upgrade_diff"
)

// 即时与月结流水类型（transaction_records.tx_type）
const (
	TxTypeReviewReward      = "review_reward"
	TxTypeOrdinaryLikeBonus = "ordinary_like_bonus"
	TxTypePostVerifyBonus   = "post_verify_bonus"
)

// Store defines all functions to execute db queries and transactions
type Store interface {
	Querier
	// Ping checks the database connection
	Ping(ctx context.Context) error
	// 竞价分发：落库梯队分配并标记一梯队已通知
	DistributeBiddingTx(ctx context.Context, arg DistributeBiddingTxParams) (DistributeBiddingTxResult, error)
	// 车主选标：接受报价、作废其余报价、关闭竞价、生成订单
	SelectQuoteTx(ctx context.Context, arg SelectQuoteTxParams) (SelectQuoteTxResult, error)
	// 完工：订单完成、计数、生成分期奖励挂账
	CompleteOrderTx(ctx context.Context, arg CompleteOrderTxParams) (CompleteOrderTxResult, error)
	// 评价提交：冻结权重落库、计数、即时奖励入账
	SubmitReviewTx(ctx context.Context, arg SubmitReviewTxParams) (SubmitReviewTxResult, error)
	// 奖励入账：余额变动 + 流水，按关联键幂等
	PayBonusTx(ctx context.Context, arg PayBonusTxParams) (PayBonusTxResult, error)
	// 结算单条挂账
	SettleEntryTx(ctx context.Context, arg SettleEntryTxParams) (SettleEntryTxResult, error)
	// 店铺口碑分重算（advisory lock 串行化）
	UpdateShopScoreTx(ctx context.Context, arg UpdateShopScoreTxParams) (UpdateShopScoreTxResult, error)
	// 申诉裁决：排除评价并关闭申诉
	ResolveAppealTx(ctx context.Context, arg ResolveAppealTxParams) (ResolveAppealTxResult, error)
	// 评价升档：改判优质、更新冻结权重、差额挂账
	UpgradeReviewTx(ctx context.Context, arg UpgradeReviewTxParams) (UpgradeReviewTxResult, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	connPool *pgxpool.Pool
	*Queries
}

// NewStore creates a new store
func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Ping checks the database connection
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}
