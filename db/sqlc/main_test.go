package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testStore Store

func TestMain(m *testing.M) {
	testDBSource := os.Getenv("TEST_DB_SOURCE")
	if testDBSource == "" {
		// 显式走 unix socket，避免空 host 被解析成 TCP/localhost 导致认证失败
		testDBSource = "postgresql:///repairbid_dev?sslmode=disable&host=/var/run/postgresql"
	}

	connPool, err := pgxpool.New(context.Background(), testDBSource)
	if err != nil {
		log.Fatal("cannot connect to test db:", err)
	}

	testStore = NewStore(connPool)
	os.Exit(m.Run())
}
