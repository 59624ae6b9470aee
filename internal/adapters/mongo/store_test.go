package mongo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/akramov/telepos/internal/adapters/mongo"
)

var testDB *mongo.Database
var testClient *mongo.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start mongodb container: %v", err)
	}

	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	clientOpts := options.Client().
		ApplyURI(endpoint).
		SetDirect(true).
		SetConnectTimeout(30 * time.Second).
		SetServerSelectionTimeout(30 * time.Second)

	testClient, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}

	if err := testClient.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongodb: %v", err)
	}

	testDB = testClient.Database("test_db")

	code := m.Run()

	_ = testClient.Disconnect(ctx)
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := mongoadapter.NewStore(testDB, "snapshots")

	t.Run("should return not found for an absent key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Error("expected key to be absent")
		}
	})

	t.Run("should upsert and read back a value", func(t *testing.T) {
		if err := store.Set(ctx, "productsData", `[{"id":"1"}]`); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		value, ok, err := store.Get(ctx, "productsData")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ok {
			t.Fatal("expected key to be present")
		}
		if value != `[{"id":"1"}]` {
			t.Errorf("unexpected value: %s", value)
		}
	})

	t.Run("should overwrite on repeated set", func(t *testing.T) {
		if err := store.Set(ctx, "productsData", `[]`); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		value, _, err := store.Get(ctx, "productsData")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if value != `[]` {
			t.Errorf("expected empty snapshot, got %s", value)
		}
	})

	t.Run("should delete a key", func(t *testing.T) {
		if err := store.Delete(ctx, "productsData"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, ok, err := store.Get(ctx, "productsData")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Error("expected key to be deleted")
		}
	})
}
