package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	gorilla_websocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Message 通过WebSocket发送的消息结构
type Message struct {
	Type      string          `json:"type"`      // 消息类型：notification/ping/pong
	Data      json.RawMessage `json:"data"`      // 消息数据
	Timestamp time.Time       `json:"timestamp"` // 消息时间戳
}

// ClientInfo 客户端信息
type ClientInfo struct {
	UserID int64 // 店主用户ID
	ShopID int64 // 店铺ID
}

// Client 表示一个WebSocket客户端连接
type Client struct {
	info      ClientInfo
	hub       *Hub
	send      chan Message
	done      chan struct{}
	conn      *gorilla_websocket.Conn
	closeOnce sync.Once // 确保 send channel 只关闭一次
}

// Hub 管理所有在线店铺的WebSocket连接
type Hub struct {
	shops map[int64]*Client // key: shop_id

	register   chan *Client
	unregister chan *Client
	broadcast  chan BroadcastMessage

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// BroadcastMessage 广播消息
type BroadcastMessage struct {
	ShopID  int64 // 目标店铺ID，0表示广播给所有在线店铺
	Message Message
}

// NewHub 创建新的Hub
func NewHub(ctx context.Context) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		shops:      make(map[int64]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan BroadcastMessage, 100),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run 启动Hub，处理注册、注销和广播
func (h *Hub) Run() {
	log.Info().Msg("websocket hub started")
	defer log.Info().Msg("websocket hub stopped")

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.shops[client.info.ShopID]; exists {
		// 同店新连接顶掉旧连接
		close(old.done)
	}
	h.shops[client.info.ShopID] = client
	log.Info().
		Int64("shop_id", client.info.ShopID).
		Int64("user_id", client.info.UserID).
		Msg("shop connected via websocket")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// 只有 map 中就是当前连接时才删除，避免旧连接注销时误删新连接
	if existing, exists := h.shops[client.info.ShopID]; exists && existing == client {
		delete(h.shops, client.info.ShopID)
		client.closeOnce.Do(func() {
			close(client.send)
		})
		log.Info().
			Int64("shop_id", client.info.ShopID).
			Msg("shop disconnected from websocket")
	}
}

func (h *Hub) broadcastMessage(msg BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.ShopID == 0 {
		for _, client := range h.shops {
			h.trySend(client, msg.Message)
		}
		return
	}

	if client, exists := h.shops[msg.ShopID]; exists {
		h.trySend(client, msg.Message)
	}
}

func (h *Hub) trySend(client *Client, msg Message) {
	select {
	case client.send <- msg:
	default:
		log.Warn().
			Int64("shop_id", client.info.ShopID).
			Msg("shop send buffer full, dropping message")
	}
}

// Register 注册客户端到Hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 从Hub注销客户端
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast 广播消息
func (h *Hub) Broadcast(msg BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Msg("broadcast channel full, dropping message")
	}
}

// SendToShop 发送消息给指定店铺
func (h *Hub) SendToShop(shopID int64, msg Message) {
	h.Broadcast(BroadcastMessage{
		ShopID:  shopID,
		Message: msg,
	})
}

// IsShopOnline 检查店铺是否在线
func (h *Hub) IsShopOnline(shopID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.shops[shopID]
	return exists
}

// GetOnlineShopCount 获取在线店铺数量
func (h *Hub) GetOnlineShopCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.shops)
}

// Shutdown 关闭Hub
func (h *Hub) Shutdown() {
	log.Info().Msg("shutting down websocket hub")
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.shops {
		client.closeOnce.Do(func() {
			close(client.send)
		})
	}
}
