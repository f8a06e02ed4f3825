package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorilla_websocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/websocket"
)

type notificationResponse struct {
	ID          int64     `json:"id"`
	NotifType   string    `json:"notif_type"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	RelatedType string    `json:"related_type"`
	RelatedID   int64     `json:"related_id"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func newNotificationResponse(n db.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		NotifType:   n.NotifType,
		Title:       n.Title,
		Body:        n.Body,
		RelatedType: n.RelatedType,
		RelatedID:   n.RelatedID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

type listShopNotificationsRequest struct {
	Limit  int32 `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int32 `form:"offset,default=0" binding:"min=0"`
}

// listShopNotifications godoc
// @Summary 店铺通知列表
// @Description 按时间倒序返回店铺通知，支持分页
// @Tags 通知
// @Produce json
// @Param limit query int false "每页数量(默认20, 最大100)"
// @Param offset query int false "分页偏移量(默认0)"
// @Success 200 {array} notificationResponse "通知列表"
// @Router /v1/shop/notifications [get]
// @Security BearerAuth
func (server *Server) listShopNotifications(ctx *gin.Context) {
	var req listShopNotificationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	notifications, err := server.store.ListShopNotifications(ctx, db.ListShopNotificationsParams{
		ShopID: authPayload.ShopID,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = newNotificationResponse(n)
	}

	ctx.JSON(http.StatusOK, resp)
}

type notificationIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// markNotificationRead godoc
// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Param id path int true "通知ID"
// @Success 200 {object} map[string]string "已读"
// @Router /v1/shop/notifications/{id}/read [put]
// @Security BearerAuth
func (server *Server) markNotificationRead(ctx *gin.Context) {
	var req notificationIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if err := server.store.MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     req.ID,
		ShopID: authPayload.ShopID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "read"})
}

var upgrader = gorilla_websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 生产环境需要验证Origin
	},
}

// handleWebSocket godoc
// @Summary WebSocket连接端点
// @Description 将HTTP连接升级为WebSocket，用于店铺实时接单与申诉通知推送
// @Tags 通知
// @Accept json
// @Produce json
// @Param token query string false "Authentication token (required if Authorization header is missing)"
// @Success 101 "协议升级成功"
// @Failure 403 {object} ErrorResponse "仅店铺账号可连接"
// @Router /v1/ws [get]
// @Security BearerAuth
func (server *Server) handleWebSocket(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if authPayload.Role != RoleShop || authPayload.ShopID == 0 {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("only shop accounts can establish WebSocket connection")))
		return
	}

	shop, err := server.store.GetShop(ctx, authPayload.ShopID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if shop.Status != "active" {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("shop is not active")))
		return
	}

	// 升级到WebSocket
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	// 创建客户端并注册
	client := websocket.NewClient(server.wsHub, conn, websocket.ClientInfo{
		UserID: authPayload.UserID,
		ShopID: authPayload.ShopID,
	})

	server.wsHub.Register(client)

	UpdateWSMetrics(server.wsHub.GetOnlineShopCount())

	// 启动读写协程
	go client.WritePump()
	go client.ReadPump()
}
