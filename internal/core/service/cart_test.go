package service

import (
	"context"
	"math"
	"testing"

	"github.com/akramov/telepos/internal/core/port/mock"
	"github.com/akramov/telepos/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

// setupCartService builds a cart over a catalog seeded with the
// default products; snapshot writes are absorbed by the store mock.
func setupCartService(t *testing.T) (*CartService, *CatalogService) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStorePort(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil).AnyTimes()
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	importer := mock.NewMockImporterPort(ctrl)

	catalog := NewCatalogService(store, importer, testStorageKey)
	catalog.Load(context.Background())
	return NewCartService(catalog), catalog
}

func TestCartService_AddOrIncrement(t *testing.T) {
	t.Run("quantity equals add count", func(t *testing.T) {
		cart, _ := setupCartService(t)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			if _, err := cart.AddOrIncrement(ctx, "1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}
		line, _ := cart.Line("1")
		if line.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %v", line.Quantity)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		cart, _ := setupCartService(t)

		_, err := cart.AddOrIncrement(context.Background(), "no-such-id")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("line survives catalog delete", func(t *testing.T) {
		cart, catalog := setupCartService(t)
		ctx := context.Background()

		if _, err := cart.AddOrIncrement(ctx, "1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		catalog.Remove(ctx, "1")

		line, ok := cart.Line("1")
		if !ok {
			t.Fatal("expected line to survive catalog delete")
		}
		if _, err := cart.Increment(ctx, "1"); err != nil {
			t.Fatalf("expected increment to still work, got %v", err)
		}
		line, _ = cart.Line("1")
		if line.Quantity != 2 {
			t.Fatalf("expected quantity 2, got %v", line.Quantity)
		}
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("zero removes the line", func(t *testing.T) {
		cart, _ := setupCartService(t)
		cart.AddOrIncrement(ctx, "1")

		if err := cart.SetQuantity(ctx, "1", 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := cart.Line("1"); ok {
			t.Fatal("expected line removed")
		}
	})

	t.Run("negative rejected without mutation", func(t *testing.T) {
		cart, _ := setupCartService(t)
		cart.AddOrIncrement(ctx, "1")

		err := cart.SetQuantity(ctx, "1", -1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		line, _ := cart.Line("1")
		if line.Quantity != 1 {
			t.Fatalf("expected quantity untouched, got %v", line.Quantity)
		}
	})

	t.Run("NaN rejected", func(t *testing.T) {
		cart, _ := setupCartService(t)
		cart.AddOrIncrement(ctx, "1")

		err := cart.SetQuantity(ctx, "1", math.NaN())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("decimal accepted at the model level", func(t *testing.T) {
		cart, _ := setupCartService(t)
		cart.AddOrIncrement(ctx, "1")

		if err := cart.SetQuantity(ctx, "1", 2.5); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		line, _ := cart.Line("1")
		if line.Quantity != 2.5 {
			t.Fatalf("expected quantity 2.5, got %v", line.Quantity)
		}
	})
}

func TestCartService_SetPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("negative rejected", func(t *testing.T) {
		cart, _ := setupCartService(t)
		cart.AddOrIncrement(ctx, "1")

		err := cart.SetPrice(ctx, "1", -5)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		line, _ := cart.Line("1")
		if line.Price != 12 {
			t.Fatalf("expected price untouched, got %v", line.Price)
		}
	})

	t.Run("stored unrounded", func(t *testing.T) {
		cart, _ := setupCartService(t)
		cart.AddOrIncrement(ctx, "1")

		if err := cart.SetPrice(ctx, "1", 10.4); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		line, _ := cart.Line("1")
		if line.Price != 10.4 {
			t.Fatalf("expected stored price 10.4, got %v", line.Price)
		}
		if cart.Total() != 10 {
			t.Fatalf("expected rounded total 10, got %v", cart.Total())
		}
	})
}

func TestCartService_Scenario(t *testing.T) {
	// catalog has Pizza at 12; two adds give one line with quantity 2
	// and total 24.
	cart, _ := setupCartService(t)
	ctx := context.Background()

	cart.AddOrIncrement(ctx, "1")
	cart.AddOrIncrement(ctx, "1")

	if len(cart.Lines()) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines()))
	}
	line, _ := cart.Line("1")
	if line.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %v", line.Quantity)
	}
	if cart.Total() != 24 {
		t.Fatalf("expected total 24, got %v", cart.Total())
	}
}

func TestCartService_Decrement(t *testing.T) {
	cart, _ := setupCartService(t)
	ctx := context.Background()

	cart.AddOrIncrement(ctx, "1")
	cart.AddOrIncrement(ctx, "1")

	if err := cart.Decrement(ctx, "1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	line, _ := cart.Line("1")
	if line.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %v", line.Quantity)
	}

	// decrementing the last unit removes the line
	if err := cart.Decrement(ctx, "1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := cart.Line("1"); ok {
		t.Fatal("expected line removed")
	}

	err := cart.Decrement(ctx, "1")
	if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
