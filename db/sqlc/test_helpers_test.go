package db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fixbid/repairbid/util"
)

func createRandomUser(t *testing.T) User {
	user, err := testStore.CreateUser(context.Background(), CreateUserParams{
		Phone:        util.RandomPhone(),
		Nickname:     util.RandomString(8),
		PlateNumber:  util.RandomPlate(),
		VehicleBrand: "本田",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	return user
}

func createRandomShop(t *testing.T, owner User) Shop {
	shop, err := testStore.CreateShop(context.Background(), CreateShopParams{
		Name:                  util.RandomString(10),
		OwnerUserID:           owner.ID,
		QualificationClass:    "class_two",
		QualificationApproved: true,
		ServiceCategories:     []string{"钣金喷漆", "机修"},
		Longitude:             116.40 + util.RandomFloat(0, 0.05),
		Latitude:              39.90 + util.RandomFloat(0, 0.05),
	})
	require.NoError(t, err)
	require.NotZero(t, shop.ID)
	return shop
}

func createRandomBidding(t *testing.T, owner User) Bidding {
	bidding, err := testStore.CreateBidding(context.Background(), CreateBiddingParams{
		OwnerID:            owner.ID,
		VehicleBrand:       owner.VehicleBrand,
		PlateNumber:        owner.PlateNumber,
		VehiclePriceTier:   "mid",
		Items:              []string{"左后门钣金喷漆"},
		Description:        "剐蹭修复",
		Longitude:          116.41,
		Latitude:           39.91,
		SearchRadiusMeters: 10000,
		ComplexityLevel:    2,
		Tier1Deadline:      time.Now().Add(2 * time.Hour),
		RulesVersion:       1,
	})
	require.NoError(t, err)
	require.Equal(t, "open", bidding.Status)
	return bidding
}

func createRandomQuote(t *testing.T, bidding Bidding, shop Shop, amount int64) Quote {
	quote, err := testStore.CreateQuote(context.Background(), CreateQuoteParams{
		BiddingID:       bidding.ID,
		ShopID:          shop.ID,
		Amount:          amount,
		Note:            "原厂漆",
		ResponseSeconds: 120,
	})
	require.NoError(t, err)
	require.Equal(t, "active", quote.Status)
	return quote
}

func selectQuoteForOrder(t *testing.T, owner User, quote Quote) Order {
	stages, err := json.Marshal([]rewardStage{
		{Stage: 1, Ratio: 1.0, Amount: 1500, OffsetMonths: 0},
	})
	require.NoError(t, err)

	result, err := testStore.SelectQuoteTx(context.Background(), SelectQuoteTxParams{
		QuoteID:          quote.ID,
		UserID:           owner.ID,
		OrderTier:        1,
		CommissionRate:   0.08,
		CommissionAmount: quote.Amount * 8 / 100,
		RewardPreview:    1500,
		RewardStages:     stages,
		RulesVersion:     1,
	})
	require.NoError(t, err)
	return result.Order
}
