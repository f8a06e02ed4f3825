package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID, shopID int64) *Client {
	return &Client{
		info: ClientInfo{
			UserID: userID,
			ShopID: shopID,
		},
		hub:  hub,
		send: make(chan Message, 256),
		done: make(chan struct{}),
	}
}

func TestNewHub(t *testing.T) {
	hub := NewHub(context.Background())

	require.NotNil(t, hub)
	require.NotNil(t, hub.shops)
	require.NotNil(t, hub.register)
	require.NotNil(t, hub.unregister)
	require.NotNil(t, hub.broadcast)
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	client := newTestClient(hub, 1, 100)

	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	require.True(t, hub.IsShopOnline(100))
	require.Equal(t, 1, hub.GetOnlineShopCount())

	hub.Unregister(client)
	time.Sleep(50 * time.Millisecond)

	require.False(t, hub.IsShopOnline(100))
	require.Equal(t, 0, hub.GetOnlineShopCount())
}

func TestHubReplaceOldConnection(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	oldClient := newTestClient(hub, 1, 100)
	newClient := newTestClient(hub, 1, 100)

	hub.Register(oldClient)
	time.Sleep(50 * time.Millisecond)
	hub.Register(newClient)
	time.Sleep(50 * time.Millisecond)

	// 旧连接被顶掉
	select {
	case <-oldClient.done:
	default:
		t.Fatal("old connection should have been closed")
	}

	// 旧连接注销不应该误删新连接
	hub.Unregister(oldClient)
	time.Sleep(50 * time.Millisecond)

	require.True(t, hub.IsShopOnline(100))
	require.Equal(t, 1, hub.GetOnlineShopCount())
}

func TestHubSendToShop(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	client := newTestClient(hub, 1, 100)
	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	data, err := json.Marshal(map[string]any{"title": "新竞价单"})
	require.NoError(t, err)

	hub.SendToShop(100, Message{
		Type:      "notification",
		Data:      data,
		Timestamp: time.Now(),
	})

	select {
	case msg := <-client.send:
		require.Equal(t, "notification", msg.Type)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}

	// 离线店铺消息直接丢弃，不阻塞
	hub.SendToShop(999, Message{Type: "notification"})
}
