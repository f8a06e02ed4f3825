package websocket

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	// Redis频道前缀，worker 往 notification:shop:{shop_id} 发布
	channelPrefixShop = "notification:shop:"
)

// PubSubManager 管理Redis Pub/Sub，把worker进程的推送请求转发到本进程的WS连接
type PubSubManager struct {
	redisClient *redis.Client
	hub         *Hub
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewPubSubManager 创建PubSub管理器
func NewPubSubManager(redisAddr, redisPassword string, hub *Hub) (*PubSubManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &PubSubManager{
		redisClient: client,
		hub:         hub,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Start 启动订阅，监听所有店铺的通知频道
func (m *PubSubManager) Start() {
	pubsub := m.redisClient.PSubscribe(m.ctx, channelPrefixShop+"*")

	go func() {
		defer pubsub.Close()

		log.Info().Msg("websocket pubsub started")

		for {
			select {
			case <-m.ctx.Done():
				log.Info().Msg("websocket pubsub stopped")
				return
			default:
				msg, err := pubsub.ReceiveMessage(m.ctx)
				if err != nil {
					if m.ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Msg("receive pubsub message failed")
					time.Sleep(time.Second)
					continue
				}

				m.handlePubSubMessage(msg.Channel, msg.Payload)
			}
		}
	}()
}

// Stop 停止订阅
func (m *PubSubManager) Stop() {
	m.cancel()
	m.redisClient.Close()
}

func (m *PubSubManager) handlePubSubMessage(channel, payload string) {
	shopID, err := strconv.ParseInt(strings.TrimPrefix(channel, channelPrefixShop), 10, 64)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("parse shop id from channel failed")
		return
	}

	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal pubsub message failed")
		return
	}

	if !m.hub.IsShopOnline(shopID) {
		log.Debug().Int64("shop_id", shopID).Msg("shop offline, skip websocket push")
		return
	}

	m.hub.SendToShop(shopID, msg)
	log.Debug().
		Int64("shop_id", shopID).
		Str("type", msg.Type).
		Msg("pushed notification to shop via websocket")
}
