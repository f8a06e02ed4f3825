package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
)

const (
	TaskSendNotification = "notification:send"
)

// SendNotificationPayload 商户通知任务载荷
type SendNotificationPayload struct {
	ShopID      int64  `json:"shop_id"`
	NotifType   string `json:"notif_type"` // bidding/appeal/settlement/system
	Title       string `json:"title"`
	Body        string `json:"body"`
	RelatedType string `json:"related_type,omitempty"`
	RelatedID   int64  `json:"related_id,omitempty"`
}

// DistributeTaskSendNotification 分发商户通知任务
func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *SendNotificationPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("shop_id", payload.ShopID).
		Str("notif_type", payload.NotifType).
		Msg("enqueued notification task")

	return nil
}

// ProcessTaskSendNotification 处理商户通知：先落库，再尽力实时推送
func (processor *RedisTaskProcessor) ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error {
	var payload SendNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	notification, err := processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		ShopID:      payload.ShopID,
		NotifType:   payload.NotifType,
		Title:       payload.Title,
		Body:        payload.Body,
		RelatedType: payload.RelatedType,
		RelatedID:   payload.RelatedID,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	log.Info().
		Int64("notification_id", notification.ID).
		Int64("shop_id", payload.ShopID).
		Str("notif_type", payload.NotifType).
		Msg("notification created")

	// WebSocket实时推送：通过Redis Pub/Sub通知API服务器
	// 推送失败不影响主流程，通知已经存入数据库
	if err := processor.tryWebSocketPush(ctx, notification); err != nil {
		log.Error().Err(err).Int64("notification_id", notification.ID).Msg("websocket push failed (non-critical)")
	}

	return nil
}

// tryWebSocketPush 把通知发布到店铺频道，由API侧的WS Hub转发
func (processor *RedisTaskProcessor) tryWebSocketPush(ctx context.Context, notification db.Notification) error {
	if processor.redisClient == nil {
		return nil
	}

	notificationData, _ := json.Marshal(map[string]any{
		"id":         notification.ID,
		"shop_id":    notification.ShopID,
		"notif_type": notification.NotifType,
		"title":      notification.Title,
		"body":       notification.Body,
		"is_read":    notification.IsRead,
		"created_at": notification.CreatedAt,
	})

	wsMessage, _ := json.Marshal(map[string]any{
		"type":      "notification",
		"data":      json.RawMessage(notificationData),
		"timestamp": time.Now(),
	})

	channel := fmt.Sprintf("notification:shop:%d", notification.ShopID)
	if err := processor.redisClient.Publish(ctx, channel, wsMessage).Err(); err != nil {
		return fmt.Errorf("publish to redis: %w", err)
	}

	log.Debug().Int64("shop_id", notification.ShopID).Msg("published notification push request")
	return nil
}
