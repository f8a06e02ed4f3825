package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/fixbid/repairbid/db/mock"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/util"
)

func TestUpgradeReviewQualityAPI(t *testing.T) {
	operator := randomUser(t)
	author := randomUser(t)
	shopOwner := randomUser(t)
	shop := randomShop(t, shopOwner.ID)
	order := randomCompletedOrder(t, author.ID, shop.ID)

	review := db.Review{
		ID:           util.RandomInt(1, 1000),
		OrderID:      order.ID,
		UserID:       author.ID,
		ShopID:       shop.ID,
		Rating:       5,
		Content:      "换了原厂大灯总成，定损流程也写得很细",
		QualityLevel: "normal",
		Weight:       2.4,
		WeightFrozen: true,
		RulesVersion: 1,
		CreatedAt:    time.Now().Add(-48 * time.Hour),
	}

	upgraded := review
	upgraded.QualityLevel = "premium"
	upgraded.Weight = 7.2

	testCases := []struct {
		name          string
		reviewID      int64
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "OK",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, operator.ID, RoleOperator, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(review, nil)

				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(order.ID)).
					Times(1).
					Return(order, nil)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					UpgradeReviewTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.UpgradeReviewTxParams) (db.UpgradeReviewTxResult, error) {
						require.Equal(t, review.ID, arg.ReviewID)
						// 冻结权重补乘优质档因子 3.0
						require.InDelta(t, 7.2, arg.NewWeight, 1e-9)
						// 差额按订单奖励总额的 20%：1500 × 0.2
						require.Equal(t, int64(300), arg.DiffAmount)
						require.Equal(t, time.Now().Format("2006-01"), arg.TriggerMonth)
						return db.UpgradeReviewTxResult{
							Review: upgraded,
							Entry: db.SettlementPendingEntry{
								ID:           util.RandomInt(1, 1000),
								UserID:       author.ID,
								OrderID:      order.ID,
								BonusType:    db.BonusTypeUpgradeDiff,
								AmountPreTax: arg.DiffAmount,
								TriggerMonth: arg.TriggerMonth,
							},
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp upgradeReviewResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, review.ID, resp.ReviewID)
				require.Equal(t, "premium", resp.QualityLevel)
				require.InDelta(t, 7.2, resp.Weight, 1e-9)
				require.Equal(t, int64(300), resp.DiffAmount)
			},
		},
		{
			name:     "AlreadyPremium",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, operator.ID, RoleOperator, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(upgraded, nil)

				store.EXPECT().
					UpgradeReviewTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:     "ExcludedReview",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, operator.ID, RoleOperator, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				excluded := review
				excluded.Excluded = true

				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(excluded, nil)

				store.EXPECT().
					UpgradeReviewTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:     "NotFound",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, operator.ID, RoleOperator, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(db.Review{}, pgx.ErrNoRows)

				store.EXPECT().
					UpgradeReviewTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
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

			url := fmt.Sprintf("/v1/operator/reviews/%d/upgrade", tc.reviewID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
