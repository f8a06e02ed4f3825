package api

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/util"
)

// 测试用的 Casbin 模型定义
const testCasbinModelDef = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// 测试用的 Casbin 策略定义（精简版）
const testCasbinPolicyDef = `
# Role inheritance
g, shop, owner
g, operator, owner

# Owner policies
p, owner, /v1/users/me, GET
p, owner, /v1/users/me/vehicle, PATCH
p, owner, /v1/users/me/transactions, GET
p, owner, /v1/biddings, GET
p, owner, /v1/biddings, POST
p, owner, /v1/biddings/:id, GET
p, owner, /v1/biddings/:id/quotes, GET
p, owner, /v1/biddings/:id/close, POST
p, owner, /v1/quotes/:id/select, POST
p, owner, /v1/orders, GET
p, owner, /v1/orders/:id, GET
p, owner, /v1/reviews, POST
p, owner, /v1/reviews/:id, GET
p, owner, /v1/reviews/:id/read-sessions, POST
p, owner, /v1/reviews/:id/likes, POST
p, owner, /v1/shops, POST
p, owner, /v1/shops/:id, GET
p, owner, /v1/shops/:id/reviews, GET
p, owner, /v1/ws, GET

# Shop policies
p, shop, /v1/shop/*, GET
p, shop, /v1/shop/*, POST
p, shop, /v1/shop/*, PUT

# Operator policies
p, operator, /v1/operator/*, GET
p, operator, /v1/operator/*, POST
p, operator, /v1/operator/*, DELETE
`

// initTestCasbin 初始化测试用的 Casbin enforcer
func initTestCasbin() error {
	enforcer, err := NewCasbinEnforcerFromString(testCasbinModelDef, testCasbinPolicyDef)
	if err != nil {
		return err
	}
	SetGlobalCasbinEnforcer(enforcer)
	return nil
}

func newTestServer(t *testing.T, store db.Store) *Server {
	config := util.Config{
		TokenSymmetricKey:   util.RandomString(32),
		AccessTokenDuration: time.Minute,
	}

	server, err := NewServer(config, store, nil)
	require.NoError(t, err)

	return server
}

func addAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker token.Maker,
	authorizationType string,
	userID int64,
	role string,
	shopID int64,
	duration time.Duration,
) {
	accessToken, payload, err := tokenMaker.CreateToken(userID, role, shopID, duration, token.TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationHeaderKey, authorizationHeader)
}

func randomUser(t *testing.T) db.User {
	return db.User{
		ID:              util.RandomInt(1, 1000),
		Phone:           util.RandomPhone(),
		Nickname:        util.RandomString(6),
		PlateNumber:     util.RandomPlate(),
		VehicleBrand:    "BYD",
		Balance:         0,
		CompletedOrders: 5,
		ReviewCount:     3,
		CreatedAt:       time.Now().Add(-200 * 24 * time.Hour),
	}
}

func randomShop(t *testing.T, ownerUserID int64) db.Shop {
	return db.Shop{
		ID:                    util.RandomInt(1, 1000),
		Name:                  util.RandomString(8),
		OwnerUserID:           ownerUserID,
		Status:                "active",
		QualificationClass:    "class_two",
		QualificationApproved: true,
		ServiceCategories:     []string{"钣金", "喷漆"},
		ComplianceRate:        95,
		AvgResponseSeconds:    600,
		Longitude:             116.40,
		Latitude:              39.90,
		Score:                 4.5,
		CreatedAt:             time.Now().Add(-400 * 24 * time.Hour),
	}
}

func randomBidding(t *testing.T, ownerID int64) db.Bidding {
	now := time.Now()
	return db.Bidding{
		ID:                 util.RandomInt(1, 1000),
		OwnerID:            ownerID,
		VehicleBrand:       "BYD",
		PlateNumber:        util.RandomPlate(),
		VehiclePriceTier:   "mid",
		Items:              []string{"前保险杠剐蹭补漆"},
		Description:        "倒车剐蹭，保险杠掉漆",
		Longitude:          116.40,
		Latitude:           39.90,
		SearchRadiusMeters: 5000,
		ComplexityLevel:    2,
		Status:             "open",
		Tier1Deadline:      now.Add(30 * time.Minute),
		RulesVersion:       1,
		CreatedAt:          now,
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// 初始化测试用 Casbin enforcer
	if err := initTestCasbin(); err != nil {
		panic("failed to initialize test Casbin: " + err.Error())
	}

	os.Exit(m.Run())
}
