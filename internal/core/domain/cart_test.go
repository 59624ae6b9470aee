package domain

import "testing"

func testProduct(id ID, name string, price float64) Product {
	return Product{ID: id, Name: name, Price: price}
}

func TestCart_AddOrIncrement(t *testing.T) {
	cart := NewCart()
	pizza := testProduct("1", "Pizza", 12)

	cart.AddOrIncrement(pizza)
	cart.AddOrIncrement(pizza)

	if cart.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", cart.Len())
	}
	line, ok := cart.Get("1")
	if !ok {
		t.Fatal("expected line for product 1")
	}
	if line.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %v", line.Quantity)
	}
	if cart.Total() != 24 {
		t.Fatalf("expected total 24, got %v", cart.Total())
	}
}

func TestCart_AddOrIncrement_SnapshotIndependence(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", "Pizza", 12)
	cart.AddOrIncrement(p)

	// mutating the product after the add must not touch the line
	p.Price = 999
	p.Name = "Changed"

	line, _ := cart.Get("1")
	if line.Price != 12 {
		t.Fatalf("expected snapshot price 12, got %v", line.Price)
	}
	if line.Name != "Pizza" {
		t.Fatalf("expected snapshot name Pizza, got %q", line.Name)
	}
}

func TestCart_Decrement(t *testing.T) {
	cart := NewCart()
	cart.AddOrIncrement(testProduct("1", "Pizza", 12))
	cart.AddOrIncrement(testProduct("1", "Pizza", 12))

	if !cart.Decrement("1") {
		t.Fatal("expected decrement to succeed")
	}
	line, _ := cart.Get("1")
	if line.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %v", line.Quantity)
	}

	// dropping below 1 deletes the line
	cart.Decrement("1")
	if _, ok := cart.Get("1"); ok {
		t.Fatal("expected line removed after decrement to zero")
	}

	if cart.Decrement("missing") {
		t.Fatal("expected decrement of absent line to report false")
	}
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		cart := NewCart()
		cart.AddOrIncrement(testProduct("1", "Pizza", 12))

		if !cart.SetQuantity("1", 0) {
			t.Fatal("expected SetQuantity to find the line")
		}
		if cart.Len() != 0 {
			t.Fatalf("expected empty cart, got %d lines", cart.Len())
		}
	})

	t.Run("overwrites quantity", func(t *testing.T) {
		cart := NewCart()
		cart.AddOrIncrement(testProduct("1", "Pizza", 12))

		cart.SetQuantity("1", 7)
		line, _ := cart.Get("1")
		if line.Quantity != 7 {
			t.Fatalf("expected quantity 7, got %v", line.Quantity)
		}
	})

	t.Run("absent line", func(t *testing.T) {
		cart := NewCart()
		if cart.SetQuantity("nope", 3) {
			t.Fatal("expected false for absent line")
		}
	})
}

func TestCart_SetPrice_NotRoundedAtStorage(t *testing.T) {
	cart := NewCart()
	cart.AddOrIncrement(testProduct("1", "Pizza", 12))

	cart.SetPrice("1", 10.4)
	line, _ := cart.Get("1")
	if line.Price != 10.4 {
		t.Fatalf("expected stored price 10.4, got %v", line.Price)
	}
	// rounding happens at compute time
	if cart.Total() != 10 {
		t.Fatalf("expected total 10, got %v", cart.Total())
	}
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.AddOrIncrement(testProduct("1", "Pizza", 12))
	cart.AddOrIncrement(testProduct("2", "Burger", 8))

	cart.Remove("1")
	if cart.Len() != 1 {
		t.Fatalf("expected 1 line after remove, got %d", cart.Len())
	}
	cart.Remove("1") // absent, no-op

	cart.Clear()
	if cart.Len() != 0 || cart.Total() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestCart_LinesOrder(t *testing.T) {
	cart := NewCart()
	cart.AddOrIncrement(testProduct("2", "Burger", 8))
	cart.AddOrIncrement(testProduct("1", "Pizza", 12))
	cart.AddOrIncrement(testProduct("3", "Salad", 7))
	cart.Remove("1")
	cart.AddOrIncrement(testProduct("1", "Pizza", 12))

	lines := cart.Lines()
	got := make([]ID, len(lines))
	for i, l := range lines {
		got[i] = l.ProductID
	}
	want := []ID{"2", "3", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestCart_Total(t *testing.T) {
	tests := []struct {
		name     string
		lines    []CartLine
		expected float64
	}{
		{"empty", nil, 0},
		{"single line", []CartLine{{ProductID: "1", Price: 1200, Quantity: 2}}, 2400},
		{
			"rounding per line",
			[]CartLine{
				{ProductID: "1", Price: 10.6, Quantity: 3},
				{ProductID: "2", Price: 2.4, Quantity: 1},
			},
			35, // round(10.6)*3 + round(2.4)*1
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			for _, l := range tt.lines {
				cart.AddOrIncrement(Product{ID: l.ProductID, Name: "p", Price: l.Price})
				cart.SetQuantity(l.ProductID, l.Quantity)
			}
			if got := cart.Total(); got != tt.expected {
				t.Errorf("Total() = %v, want %v", got, tt.expected)
			}
			// recomputation is idempotent
			if got := cart.Total(); got != tt.expected {
				t.Errorf("second Total() = %v, want %v", got, tt.expected)
			}
		})
	}
}
