package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// AssignmentInput 单个店铺的梯队分配输入
type AssignmentInput struct {
	ShopID     int64
	Tier       int16
	MatchScore float64
	Notify     bool // 一梯队立即通知，其余等待扫描
}

// DistributeBiddingTxParams contains the input parameters for persisting a distribution round
type DistributeBiddingTxParams struct {
	BiddingID          int64
	SearchRadiusMeters int32
	Assignments        []AssignmentInput

	// 通知文案
	NotifyTitle string
	NotifyBody  string
}

// DistributeBiddingTxResult contains the result of the distribution transaction
type DistributeBiddingTxResult struct {
	Assignments   []BiddingAssignment
	Notifications []Notification
}

// DistributeBiddingTx 把一轮匹配结果原子落库：
// 更新搜索半径、写入梯队分配，并为需要立即可见的店铺生成通知。
// 分配表带 (bidding_id, shop_id) 唯一约束，扩圈重跑不会重复插入。
func (store *SQLStore) DistributeBiddingTx(ctx context.Context, arg DistributeBiddingTxParams) (DistributeBiddingTxResult, error) {
	var result DistributeBiddingTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		if err := q.UpdateBiddingRadius(ctx, UpdateBiddingRadiusParams{
			SearchRadiusMeters: arg.SearchRadiusMeters,
			ID:                 arg.BiddingID,
		}); err != nil {
			return fmt.Errorf("update bidding radius: %w", err)
		}

		for _, in := range arg.Assignments {
			notifiedAt := pgtype.Timestamptz{}
			if in.Notify {
				notifiedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
			}

			assignment, err := q.CreateBiddingAssignment(ctx, CreateBiddingAssignmentParams{
				BiddingID:  arg.BiddingID,
				ShopID:     in.ShopID,
				Tier:       in.Tier,
				MatchScore: in.MatchScore,
				NotifiedAt: notifiedAt,
			})
			if err != nil {
				// ON CONFLICT DO NOTHING：扩圈重跑撞到已有分配，跳过
				if errors.Is(err, pgx.ErrNoRows) {
					continue
				}
				return fmt.Errorf("create assignment shop %d: %w", in.ShopID, err)
			}
			result.Assignments = append(result.Assignments, assignment)

			if in.Notify {
				notification, err := q.CreateNotification(ctx, CreateNotificationParams{
					ShopID:      in.ShopID,
					NotifType:   "bidding_assigned",
					Title:       arg.NotifyTitle,
					Body:        arg.NotifyBody,
					RelatedType: "bidding",
					RelatedID:   arg.BiddingID,
				})
				if err != nil {
					return fmt.Errorf("create notification shop %d: %w", in.ShopID, err)
				}
				result.Notifications = append(result.Notifications, notification)
			}
		}

		return nil
	})

	return result, err
}
