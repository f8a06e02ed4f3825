package api

import (
	"bytes"
	"encoding/json"
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

func randomCompletedOrder(t *testing.T, userID, shopID int64) db.Order {
	stages, err := json.Marshal([]map[string]interface{}{
		{"stage": 1, "ratio": 0.4, "amount": 600, "offset_months": 0},
		{"stage": 2, "ratio": 0.3, "amount": 450, "offset_months": 1},
		{"stage": 3, "ratio": 0.3, "amount": 450, "offset_months": 3},
	})
	require.NoError(t, err)

	return db.Order{
		ID:               util.RandomInt(1, 1000),
		QuoteID:          util.RandomInt(1, 1000),
		BiddingID:        util.RandomInt(1, 1000),
		UserID:           userID,
		ShopID:           shopID,
		Amount:           88800,
		ComplexityLevel:  2,
		VehicleBrand:     "BYD",
		PlateNumber:      util.RandomPlate(),
		VehiclePriceTier: "mid",
		Items:            []string{"前保险杠剐蹭补漆"},
		OrderTier:        1,
		CommissionRate:   0.08,
		CommissionAmount: 7104,
		RewardPreview:    1500,
		RewardStages:     stages,
		RulesVersion:     1,
		Status:           "completed",
		CreatedAt:        time.Now().Add(-72 * time.Hour),
		CompletedAt:      pgtype.Timestamptz{Time: time.Now().Add(-24 * time.Hour), Valid: true},
	}
}

func TestCreateReviewAPI(t *testing.T) {
	user := randomUser(t)
	shopOwner := randomUser(t)
	shop := randomShop(t, shopOwner.ID)
	order := randomCompletedOrder(t, user.ID, shop.ID)

	review := db.Review{
		ID:           util.RandomInt(1, 1000),
		OrderID:      order.ID,
		UserID:       user.ID,
		ShopID:       shop.ID,
		Rating:       5,
		Content:      "补漆色差很小，老板还帮忙处理了旁边的小划痕",
		CorePhotos:   2,
		QualityLevel: "normal",
		Weight:       1.0,
		WeightFrozen: true,
		RulesVersion: 1,
		CreatedAt:    time.Now(),
	}

	body := map[string]interface{}{
		"order_id":    order.ID,
		"rating":      5,
		"content":     review.Content,
		"core_photos": 2,
	}

	testCases := []struct {
		name          string
		body          map[string]interface{}
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(order, nil)

				store.EXPECT().
					GetReviewByOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(db.Review{}, pgx.ErrNoRows)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).
					Return(user, nil)

				store.EXPECT().
					CountBlacklistMatches(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(0), nil)

				store.EXPECT().
					GetShop(gomock.Any(), gomock.Eq(shop.ID)).
					Times(1).
					Return(shop, nil)

				store.EXPECT().
					SubmitReviewTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.SubmitReviewTxParams) (db.SubmitReviewTxResult, error) {
						// 首期即时发放，2、3期转挂账
						require.Equal(t, int64(600), arg.ImmediateAmount)
						require.Len(t, arg.StageMonths, 2)
						return db.SubmitReviewTxResult{
							Review:         review,
							PendingEntries: make([]db.SettlementPendingEntry, 2),
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp createReviewResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, review.ID, resp.Review.ID)
				require.Equal(t, int64(600), resp.ImmediateAmount)
				require.Equal(t, 2, resp.PendingStages)
			},
		},
		{
			name: "InsufficientEvidence",
			body: map[string]interface{}{
				"order_id": order.ID,
				"rating":   5,
				"content":  review.Content,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(order, nil)

				store.EXPECT().
					GetReviewByOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(db.Review{}, pgx.ErrNoRows)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					SubmitReviewTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "OrderNotCompleted",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				inProgress := order
				inProgress.Status = "in_progress"

				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(inProgress, nil)

				store.EXPECT().
					SubmitReviewTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "AlreadyReviewed",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(order, nil)

				store.EXPECT().
					GetReviewByOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(review, nil)

				store.EXPECT().
					SubmitReviewTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "OtherUsersOrder",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID+999, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(order, nil)

				store.EXPECT().
					SubmitReviewTx(gomock.Any(), gomock.Any()).
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

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := "/v1/reviews"
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
