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

func TestCreateQuoteAPI(t *testing.T) {
	owner := randomUser(t)
	shopOwner := randomUser(t)
	shop := randomShop(t, shopOwner.ID)
	bidding := randomBidding(t, owner.ID)

	assignment := db.BiddingAssignment{
		ID:         util.RandomInt(1, 1000),
		BiddingID:  bidding.ID,
		ShopID:     shop.ID,
		Tier:       1,
		MatchScore: 0.8,
		NotifiedAt: pgtype.Timestamptz{Time: time.Now().Add(-10 * time.Minute), Valid: true},
		CreatedAt:  time.Now().Add(-10 * time.Minute),
	}

	quote := db.Quote{
		ID:              util.RandomInt(1, 1000),
		BiddingID:       bidding.ID,
		ShopID:          shop.ID,
		Amount:          88800,
		Note:            "原厂漆，两天交车",
		ResponseSeconds: 600,
		Status:          "active",
		CreatedAt:       time.Now(),
	}

	body := map[string]interface{}{
		"bidding_id": bidding.ID,
		"amount":     quote.Amount,
		"note":       quote.Note,
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
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, shopOwner.ID, RoleShop, shop.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBiddingAssignment(gomock.Any(), gomock.Eq(db.GetBiddingAssignmentParams{
						BiddingID: bidding.ID,
						ShopID:    shop.ID,
					})).
					Times(1).
					Return(assignment, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(bidding, nil)

				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Times(1).
					Return(quote, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp quoteResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, quote.ID, resp.ID)
				require.Equal(t, quote.Amount, resp.Amount)
				require.Equal(t, "active", resp.Status)
			},
		},
		{
			name: "NotAssignedToShop",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, shopOwner.ID, RoleShop, shop.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBiddingAssignment(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.BiddingAssignment{}, pgx.ErrNoRows)

				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "BiddingClosed",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, shopOwner.ID, RoleShop, shop.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				closed := bidding
				closed.Status = "closed"

				store.EXPECT().
					GetBiddingAssignment(gomock.Any(), gomock.Any()).
					Times(1).
					Return(assignment, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(closed, nil)

				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "Tier2BeforeWindowOpens",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, shopOwner.ID, RoleShop, shop.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				tier2 := assignment
				tier2.Tier = 2

				store.EXPECT().
					GetBiddingAssignment(gomock.Any(), gomock.Any()).
					Times(1).
					Return(tier2, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(bidding, nil)

				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "Tier3EnoughActiveQuotes",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, shopOwner.ID, RoleShop, shop.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				tier3 := assignment
				tier3.Tier = 3
				expired := bidding
				expired.Tier1Deadline = time.Now().Add(-time.Minute)

				store.EXPECT().
					GetBiddingAssignment(gomock.Any(), gomock.Any()).
					Times(1).
					Return(tier3, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(expired, nil)

				store.EXPECT().
					ListQuotesForBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return([]db.Quote{
						{ID: 1, Status: "active"},
						{ID: 2, Status: "active"},
						{ID: 3, Status: "active"},
					}, nil)

				store.EXPECT().
					GetLatestPlatformConfig(gomock.Any()).
					AnyTimes().
					Return(db.PlatformConfig{}, pgx.ErrNoRows)

				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "DuplicateQuote",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, shopOwner.ID, RoleShop, shop.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBiddingAssignment(gomock.Any(), gomock.Any()).
					Times(1).
					Return(assignment, nil)

				store.EXPECT().
					GetBidding(gomock.Any(), gomock.Eq(bidding.ID)).
					Times(1).
					Return(bidding, nil)

				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Quote{}, db.ErrUniqueViolation)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "OwnerRoleForbidden",
			body: body,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, owner.ID, RoleOwner, 0, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
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

			url := "/v1/shop/quotes"
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
