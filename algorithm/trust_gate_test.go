package algorithm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/fixbid/repairbid/db/mock"
	db "github.com/fixbid/repairbid/db/sqlc"
)

func TestTrustGateEvaluate(t *testing.T) {
	user := db.User{
		ID:              42,
		Phone:           "13800138000",
		PlateNumber:     "川A12345",
		CompletedOrders: 5,
		ReviewCount:     3,
		CreatedAt:       time.Now().AddDate(-1, 0, 0),
	}

	t.Run("MatchesAllDimensions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		// 黑名单按用户ID、手机号、车牌、来源IP一起查
		store.EXPECT().
			CountBlacklistMatches(gomock.Any(), gomock.Eq(db.CountBlacklistMatchesParams{
				UserID: "42",
				Phone:  user.Phone,
				Plate:  user.PlateNumber,
				Ip:     "203.0.113.9",
			})).
			Times(1).
			Return(int64(0), nil)

		gate := NewTrustGate(store).Evaluate(context.Background(), user, "203.0.113.9")
		require.False(t, gate.Blocked)
		require.Equal(t, TrustTierNormalActive, gate.Tier)
		require.Equal(t, 1.0, gate.Weight)
	})

	t.Run("Blacklisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().
			CountBlacklistMatches(gomock.Any(), gomock.Any()).
			Times(1).
			Return(int64(1), nil)

		gate := NewTrustGate(store).Evaluate(context.Background(), user, "")
		require.True(t, gate.Blocked)
		require.Equal(t, TrustTierHighRisk, gate.Tier)
		require.Zero(t, gate.Weight)
	})

	t.Run("FailOpen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().
			CountBlacklistMatches(gomock.Any(), gomock.Any()).
			Times(1).
			Return(int64(0), errors.New("connection refused"))

		gate := NewTrustGate(store).Evaluate(context.Background(), user, "")
		require.False(t, gate.Blocked)
		require.Equal(t, TrustTierNewUser, gate.Tier)
	})
}

func TestClassifyTrust(t *testing.T) {
	now := time.Now()

	// 新注册、无完单无评价
	require.Equal(t, TrustTierNewUser, ClassifyTrust(now.AddDate(0, 0, -3), 0, 0, now))
	// 注册7天内但完单数超过新手线，走普通路径
	require.Equal(t, TrustTierNormalActive, ClassifyTrust(now.AddDate(0, 0, -3), 5, 2, now))

	// 核心可信：完单≥10 且评价≥3
	require.Equal(t, TrustTierCoreTrusted, ClassifyTrust(now.AddDate(-1, 0, 0), 10, 3, now))
	// 评价不够只能普通活跃
	require.Equal(t, TrustTierNormalActive, ClassifyTrust(now.AddDate(-1, 0, 0), 15, 2, now))

	// 老账号但几乎没活动，按新用户计
	require.Equal(t, TrustTierNewUser, ClassifyTrust(now.AddDate(-2, 0, 0), 1, 0, now))
}

func TestTrustTierWeight(t *testing.T) {
	require.Equal(t, 0.0, TrustTierHighRisk.Weight())
	require.Equal(t, 0.3, TrustTierNewUser.Weight())
	require.Equal(t, 1.0, TrustTierNormalActive.Weight())
	require.Equal(t, 2.0, TrustTierCoreTrusted.Weight())
}
