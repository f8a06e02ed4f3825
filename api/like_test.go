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

func TestLikeReviewAPI(t *testing.T) {
	liker := randomUser(t)
	author := randomUser(t)
	author.ID = liker.ID + 1000
	shopOwner := randomUser(t)
	shop := randomShop(t, shopOwner.ID)

	reviewedOrder := randomCompletedOrder(t, author.ID, shop.ID)
	reviewedOrder.PlateNumber = liker.PlateNumber

	review := db.Review{
		ID:           util.RandomInt(1, 1000),
		OrderID:      reviewedOrder.ID,
		UserID:       author.ID,
		ShopID:       shop.ID,
		Rating:       5,
		Content:      "定损报价透明，换的都是原厂配件",
		QualityLevel: "normal",
		Weight:       1.0,
		CreatedAt:    time.Now().Add(-25 * 24 * time.Hour),
	}

	// 点赞人自己在同店的完单：20天前下单、10天前完工
	now := time.Now()
	ownOrder := db.Order{
		ID:           util.RandomInt(1, 1000),
		UserID:       liker.ID,
		ShopID:       shop.ID,
		VehicleBrand: reviewedOrder.VehicleBrand,
		Status:       "completed",
		CreatedAt:    now.Add(-20 * 24 * time.Hour),
		CompletedAt:  pgtype.Timestamptz{Time: now.Add(-10 * 24 * time.Hour), Valid: true},
	}

	testCases := []struct {
		name          string
		reviewID      int64
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "PostVerify",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, liker.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(review, nil)

				store.EXPECT().
					GetReviewLike(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ReviewLike{}, pgx.ErrNoRows)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(liker.ID)).
					Times(1).
					Return(liker, nil)

				store.EXPECT().
					CountBlacklistMatches(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(0), nil)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					SumReadSeconds(gomock.Any(), gomock.Eq(db.SumReadSecondsParams{
						ReviewID: review.ID,
						UserID:   liker.ID,
					})).
					Times(1).
					Return(int64(150), nil)

				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(review.OrderID)).
					Times(1).
					Return(reviewedOrder, nil)

				store.EXPECT().
					ListUserOrdersCompletedBetween(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Order{ownOrder}, nil)

				// 下单前的阅读记录必须落在被点赞的这条评价上
				store.EXPECT().
					GetLastReadBefore(gomock.Any(), gomock.Eq(db.GetLastReadBeforeParams{
						UserID:   liker.ID,
						ReviewID: review.ID,
						Before:   ownOrder.CreatedAt,
					})).
					Times(1).
					Return(db.ReviewReadSession{
						ReviewID:  review.ID,
						UserID:    liker.ID,
						CreatedAt: ownOrder.CreatedAt.Add(-2 * 24 * time.Hour),
					}, nil)

				store.EXPECT().
					CreateReviewLike(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.CreateReviewLikeParams) (db.ReviewLike, error) {
						require.Equal(t, "post_verify", arg.Kind)
						require.True(t, arg.BonusEligible)
						// 冻结的是静态三因子：1.2 × 1.5 × 1.0，时效因子留到成交归因
						require.InDelta(t, 1.8, arg.DecisionWeight, 1e-9)
						return db.ReviewLike{
							ID:             util.RandomInt(1, 1000),
							ReviewID:       arg.ReviewID,
							UserID:         arg.UserID,
							Kind:           arg.Kind,
							BonusEligible:  arg.BonusEligible,
							DecisionWeight: arg.DecisionWeight,
							CreatedAt:      time.Now(),
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp reviewLikeResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, "post_verify", resp.Kind)
				require.True(t, resp.BonusEligible)
				require.InDelta(t, 1.8, resp.DecisionWeight, 1e-9)
			},
		},
		{
			name:     "ReadAnotherReviewOnly",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, liker.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(review, nil)

				store.EXPECT().
					GetReviewLike(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ReviewLike{}, pgx.ErrNoRows)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(liker.ID)).
					Times(1).
					Return(liker, nil)

				store.EXPECT().
					CountBlacklistMatches(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(0), nil)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					SumReadSeconds(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(150), nil)

				store.EXPECT().
					GetOrder(gomock.Any(), gomock.Eq(review.OrderID)).
					Times(1).
					Return(reviewedOrder, nil)

				store.EXPECT().
					ListUserOrdersCompletedBetween(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Order{ownOrder}, nil)

				// 下单前只读过同店的其他评价，本条查不到阅读记录，不算购后验证
				store.EXPECT().
					GetLastReadBefore(gomock.Any(), gomock.Eq(db.GetLastReadBeforeParams{
						UserID:   liker.ID,
						ReviewID: review.ID,
						Before:   ownOrder.CreatedAt,
					})).
					Times(1).
					Return(db.ReviewReadSession{}, pgx.ErrNoRows)

				store.EXPECT().
					CreateReviewLike(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.CreateReviewLikeParams) (db.ReviewLike, error) {
						require.Equal(t, "normal", arg.Kind)
						return db.ReviewLike{
							ID:        util.RandomInt(1, 1000),
							ReviewID:  arg.ReviewID,
							UserID:    arg.UserID,
							Kind:      arg.Kind,
							CreatedAt: time.Now(),
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp reviewLikeResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, "normal", resp.Kind)
			},
		},
		{
			name:     "OwnReview",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, author.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(review, nil)

				store.EXPECT().
					CreateReviewLike(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:     "AlreadyLiked",
			reviewID: review.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, liker.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetReview(gomock.Any(), gomock.Eq(review.ID)).
					Times(1).
					Return(review, nil)

				store.EXPECT().
					GetReviewLike(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ReviewLike{ID: 1, ReviewID: review.ID, UserID: liker.ID}, nil)

				store.EXPECT().
					CreateReviewLike(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
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

			url := fmt.Sprintf("/v1/reviews/%d/likes", tc.reviewID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
