package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/fixbid/repairbid/db/mock"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/util"
)

func TestSelectQuoteAPI(t *testing.T) {
	owner := randomUser(t)
	author := randomUser(t)
	author.ID = owner.ID + 1000
	shopOwner := randomUser(t)
	shop := randomShop(t, shopOwner.ID)
	bidding := randomBidding(t, owner.ID)

	quote := db.Quote{
		ID:        util.RandomInt(1, 1000),
		BiddingID: bidding.ID,
		ShopID:    shop.ID,
		Amount:    88800,
		Status:    "active",
		CreatedAt: time.Now().Add(-time.Hour),
	}

	orderTime := time.Now()
	order := db.Order{
		ID:               util.RandomInt(1, 1000),
		QuoteID:          quote.ID,
		BiddingID:        bidding.ID,
		UserID:           owner.ID,
		ShopID:           shop.ID,
		Amount:           quote.Amount,
		ComplexityLevel:  bidding.ComplexityLevel,
		VehicleBrand:     bidding.VehicleBrand,
		PlateNumber:      bidding.PlateNumber,
		VehiclePriceTier: bidding.VehiclePriceTier,
		Items:            bidding.Items,
		OrderTier:        1,
		CommissionRate:   0.08,
		CommissionAmount: 10000,
		RewardPreview:    1500,
		RulesVersion:     1,
		Status:           "in_progress",
		CreatedAt:        orderTime,
	}

	// 买家在该店评价上的两个有效赞，静态权重相同，只差点赞时间
	freshLike := db.ListUserLikesOnShopReviewsRow{
		ReviewLike: db.ReviewLike{
			ID:             501,
			ReviewID:       71,
			UserID:         owner.ID,
			Kind:           "normal",
			BonusEligible:  true,
			DecisionWeight: 1.8,
			CreatedAt:      orderTime.Add(-time.Hour),
		},
		ReviewAuthorID: author.ID,
		ReviewOrderID:  util.RandomInt(1, 1000),
		ReviewQuality:  "normal",
	}
	staleLike := db.ListUserLikesOnShopReviewsRow{
		ReviewLike: db.ReviewLike{
			ID:             502,
			ReviewID:       72,
			UserID:         owner.ID,
			Kind:           "normal",
			BonusEligible:  true,
			DecisionWeight: 1.8,
			CreatedAt:      orderTime.Add(-480 * time.Hour),
		},
		ReviewAuthorID: author.ID,
		ReviewOrderID:  util.RandomInt(1, 1000),
		ReviewQuality:  "normal",
	}

	testCases := []struct {
		name          string
		quoteID       int64
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "OK",
			quoteID: quote.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, owner.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetQuote(gomock.Any(), gomock.Eq(quote.ID)).
					Times(1).
					Return(quote, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(bidding, nil)

				store.EXPECT().
					GetShop(gomock.Any(), gomock.Eq(shop.ID)).
					Times(1).
					Return(shop, nil)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					CountShopViolationsSince(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(0), nil)

				store.EXPECT().
					SelectQuoteTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SelectQuoteTxResult{Quote: quote, Bidding: bidding, Order: order}, nil)

				store.EXPECT().
					ListUserLikesOnShopReviews(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.ListUserLikesOnShopReviewsParams) ([]db.ListUserLikesOnShopReviewsRow, error) {
						require.Equal(t, owner.ID, arg.UserID)
						require.Equal(t, shop.ID, arg.ShopID)
						return []db.ListUserLikesOnShopReviewsRow{freshLike, staleLike}, nil
					})

				store.EXPECT().
					MarkLikePostVerify(gomock.Any(), gomock.Eq(freshLike.ReviewLike.ID)).
					Times(1).
					Return(db.ReviewLike{}, nil)

				store.EXPECT().
					MarkLikePostVerify(gomock.Any(), gomock.Eq(staleLike.ReviewLike.ID)).
					Times(1).
					Return(db.ReviewLike{}, nil)

				month := time.Now().Format("2006-01")

				// 池子 5000 分：临近下单的赞权重 1.8，20天前的赞折到 0.36，
				// 份额 4166+833，尾差 1 分归最大贡献者
				store.EXPECT().
					CreateSettlementPendingEntry(gomock.Any(), gomock.Eq(db.CreateSettlementPendingEntryParams{
						UserID:       author.ID,
						OrderID:      order.ID,
						ReviewID:     pgtype.Int8{Int64: freshLike.ReviewLike.ReviewID, Valid: true},
						BonusType:    db.BonusTypeConversion,
						AmountPreTax: 4167,
						TriggerMonth: month,
					})).
					Times(1).
					Return(db.SettlementPendingEntry{}, nil)

				store.EXPECT().
					CreateSettlementPendingEntry(gomock.Any(), gomock.Eq(db.CreateSettlementPendingEntryParams{
						UserID:       author.ID,
						OrderID:      order.ID,
						ReviewID:     pgtype.Int8{Int64: staleLike.ReviewLike.ReviewID, Valid: true},
						BonusType:    db.BonusTypeConversion,
						AmountPreTax: 833,
						TriggerMonth: month,
					})).
					Times(1).
					Return(db.SettlementPendingEntry{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp orderResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, order.ID, resp.ID)
				require.Equal(t, order.CommissionAmount, resp.CommissionAmount)
			},
		},
		{
			name:    "QuoteNoLongerActive",
			quoteID: quote.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, owner.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				withdrawn := quote
				withdrawn.Status = "withdrawn"

				store.EXPECT().
					GetQuote(gomock.Any(), gomock.Eq(quote.ID)).
					Times(1).
					Return(withdrawn, nil)

				store.EXPECT().
					SelectQuoteTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:    "OtherUsersBidding",
			quoteID: quote.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, owner.ID+999, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetQuote(gomock.Any(), gomock.Eq(quote.ID)).
					Times(1).
					Return(quote, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(bidding, nil)

				store.EXPECT().
					SelectQuoteTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/quotes/%d/select", tc.quoteID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
