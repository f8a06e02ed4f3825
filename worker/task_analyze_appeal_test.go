package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixbid/repairbid/ai"
	mockai "github.com/fixbid/repairbid/ai/mock"
	"github.com/fixbid/repairbid/algorithm"
	mockdb "github.com/fixbid/repairbid/db/mock"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/worker"
	mockwk "github.com/fixbid/repairbid/worker/mock"
)

func newAppealTask(t *testing.T, payload worker.AnalyzeAppealPayload) *asynq.Task {
	jsonPayload, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(worker.TaskAnalyzeAppeal, jsonPayload)
}

func TestProcessTaskAnalyzeAppeal(t *testing.T) {
	testCases := []struct {
		name        string
		payload     worker.AnalyzeAppealPayload
		buildStubs  func(store *mockdb.MockStore, oracle *mockai.MockClient, distributor *mockwk.MockTaskDistributor)
		checkResult func(t *testing.T, err error)
	}{
		{
			name:    "申诉成立_排除评价并触发重算",
			payload: worker.AnalyzeAppealPayload{AppealID: 7},
			buildStubs: func(store *mockdb.MockStore, oracle *mockai.MockClient, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetAppeal(gomock.Any(), int64(7)).
					Return(db.Appeal{
						ID:       7,
						ReviewID: 42,
						ShopID:   3,
						Reason:   "问题当场已返修解决，车主认可",
						Status:   "pending",
					}, nil)
				store.EXPECT().
					GetReview(gomock.Any(), int64(42)).
					Return(db.Review{
						ID:      42,
						ShopID:  3,
						Rating:  1,
						Content: "喷漆色差严重",
					}, nil)
				oracle.EXPECT().
					JudgeAppeal(gomock.Any(), gomock.Any()).
					Return(ai.AppealVerdict{Upheld: true, Confidence: 0.92, Summary: "返修记录与车主确认一致"}, nil)
				store.EXPECT().
					ResolveAppealTx(gomock.Any(), db.ResolveAppealTxParams{AppealID: 7, Upheld: true}).
					Return(db.ResolveAppealTxResult{
						Appeal: db.Appeal{ID: 7, ReviewID: 42, ShopID: 3, Status: "upheld"},
					}, nil)
				distributor.EXPECT().
					DistributeTaskRecomputeShopScore(gomock.Any(), &worker.RecomputeShopScorePayload{ShopID: 3}).
					Return(nil)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			checkResult: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:    "申诉驳回_只发结果通知",
			payload: worker.AnalyzeAppealPayload{AppealID: 8},
			buildStubs: func(store *mockdb.MockStore, oracle *mockai.MockClient, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetAppeal(gomock.Any(), int64(8)).
					Return(db.Appeal{ID: 8, ReviewID: 43, ShopID: 3, Status: "pending"}, nil)
				store.EXPECT().
					GetReview(gomock.Any(), int64(43)).
					Return(db.Review{ID: 43, ShopID: 3, Rating: 2, Content: "工期拖了两周"}, nil)
				oracle.EXPECT().
					JudgeAppeal(gomock.Any(), gomock.Any()).
					Return(ai.AppealVerdict{Upheld: false, Confidence: 0.81, Summary: "无返修或协商解决证据"}, nil)
				store.EXPECT().
					ResolveAppealTx(gomock.Any(), db.ResolveAppealTxParams{AppealID: 8, Upheld: false}).
					Return(db.ResolveAppealTxResult{
						Appeal: db.Appeal{ID: 8, ReviewID: 43, ShopID: 3, Status: "rejected"},
					}, nil)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			checkResult: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:    "申诉已处理_幂等跳过",
			payload: worker.AnalyzeAppealPayload{AppealID: 9},
			buildStubs: func(store *mockdb.MockStore, oracle *mockai.MockClient, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetAppeal(gomock.Any(), int64(9)).
					Return(db.Appeal{ID: 9, ReviewID: 44, ShopID: 3, Status: "upheld"}, nil)
			},
			checkResult: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:    "预言机故障_返回错误等待重试",
			payload: worker.AnalyzeAppealPayload{AppealID: 10},
			buildStubs: func(store *mockdb.MockStore, oracle *mockai.MockClient, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetAppeal(gomock.Any(), int64(10)).
					Return(db.Appeal{ID: 10, ReviewID: 45, ShopID: 3, Status: "pending"}, nil)
				store.EXPECT().
					GetReview(gomock.Any(), int64(45)).
					Return(db.Review{ID: 45, ShopID: 3, Content: "配件以次充好"}, nil)
				oracle.EXPECT().
					JudgeAppeal(gomock.Any(), gomock.Any()).
					Return(ai.AppealVerdict{}, errors.New("oracle status 503"))
			},
			checkResult: func(t *testing.T, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			oracle := mockai.NewMockClient(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, oracle, distributor)

			rules := algorithm.NewRuleSource(store, time.Minute)
			processor := worker.NewTestTaskProcessor(store, distributor, oracle, rules)

			err := processor.ProcessTaskAnalyzeAppeal(context.Background(), newAppealTask(t, tc.payload))
			tc.checkResult(t, err)
		})
	}
}

func TestProcessTaskDamageAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	oracle := mockai.NewMockClient(ctrl)
	distributor := mockwk.NewMockTaskDistributor(ctrl)

	bidding := db.Bidding{
		ID:              21,
		Items:           []string{"前保险杠", "左前大灯"},
		Description:     "追尾，大灯碎裂",
		ComplexityLevel: 1,
		Status:          "open",
	}

	store.EXPECT().GetBidding(gomock.Any(), int64(21)).Return(bidding, nil)
	oracle.EXPECT().
		AnalyzeDamage(gomock.Any(), gomock.Any()).
		Return(ai.DamageVerdict{Level: 3, Confidence: 0.88, Summary: "疑似纵梁变形"}, nil)
	store.EXPECT().
		UpdateAnalysisTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAnalysisTaskParams) (db.AnalysisTask, error) {
			require.Equal(t, "done", arg.Status)
			require.Equal(t, int64(5), arg.ID)
			return db.AnalysisTask{ID: 5, Status: "done"}, nil
		})
	// AI判级高于规则估级，竞价单复杂度上调
	store.EXPECT().
		SetBiddingComplexity(gomock.Any(), db.SetBiddingComplexityParams{ComplexityLevel: 3, ID: 21}).
		Return(nil)

	rules := algorithm.NewRuleSource(store, time.Minute)
	processor := worker.NewTestTaskProcessor(store, distributor, oracle, rules)

	payload, err := json.Marshal(worker.DamageAnalysisPayload{
		TaskID:    5,
		BiddingID: 21,
		PhotoURLs: []string{"https://cdn.example.com/p1.jpg"},
	})
	require.NoError(t, err)

	err = processor.ProcessTaskDamageAnalysis(context.Background(), asynq.NewTask(worker.TaskDamageAnalysis, payload))
	require.NoError(t, err)
}
