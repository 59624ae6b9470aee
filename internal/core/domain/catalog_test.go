package domain

import (
	"testing"
	"time"
)

func TestCatalog_AddRemove(t *testing.T) {
	cat := NewCatalog(nil)
	cat.Add(*NewProduct("a", "Чай", 3.4))
	cat.Add(*NewProduct("b", "Кофе", 5))

	if cat.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", cat.Len())
	}
	p, ok := cat.Get("a")
	if !ok {
		t.Fatal("expected product a")
	}
	if p.Price != 3 {
		t.Fatalf("expected price rounded to 3, got %v", p.Price)
	}

	if !cat.Remove("a") {
		t.Fatal("expected remove to report true")
	}
	// removing again is a no-op
	if cat.Remove("a") {
		t.Fatal("expected second remove to report false")
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 product, got %d", cat.Len())
	}
}

func TestCatalog_Filter(t *testing.T) {
	cat := NewCatalog(DefaultProducts())

	tests := []struct {
		query string
		count int
	}{
		{"пицца", 1},
		{"ПИЦЦА", 1},
		{"ка", 3}, // Картофель фри, Кока-кола, Паста Карбонара
		{"", 8},
		{"нет такого", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := cat.Filter(tt.query); len(got) != tt.count {
				t.Errorf("Filter(%q) returned %d products, want %d", tt.query, len(got), tt.count)
			}
		})
	}
}

func TestCatalog_FilterPreservesOrder(t *testing.T) {
	cat := NewCatalog(DefaultProducts())
	got := cat.Filter("")
	for i, p := range DefaultProducts() {
		if got[i].ID != p.ID {
			t.Fatalf("expected id %s at index %d, got %s", p.ID, i, got[i].ID)
		}
	}
}

func TestCatalog_SnapshotRoundTrip(t *testing.T) {
	cat := NewCatalog(DefaultProducts())

	data, err := cat.MarshalSnapshot()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	products, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(products) != cat.Len() {
		t.Fatalf("expected %d products, got %d", cat.Len(), len(products))
	}
	for i, p := range cat.Products() {
		if products[i] != p {
			t.Fatalf("round-trip mismatch at %d: %+v != %+v", i, products[i], p)
		}
	}
}

func TestCatalog_UnmarshalSnapshot_Corrupt(t *testing.T) {
	if _, err := UnmarshalSnapshot([]byte("{not json")); err == nil {
		t.Fatal("expected error for corrupt snapshot")
	}
}

func TestNewIDs(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	if got := NewManualID(now); got != "manual-1700000000000" {
		t.Fatalf("unexpected manual id %q", got)
	}
	if got := NewImportID(now, 3); got != "excel-1700000000000-3" {
		t.Fatalf("unexpected import id %q", got)
	}
}

func TestValidProduct(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		valid bool
	}{
		{"Чай", 3, true},
		{"Чай", 0, true},
		{"", 3, false},
		{"Чай", -1, false},
	}
	for _, tt := range tests {
		if got := ValidProduct(tt.name, tt.price); got != tt.valid {
			t.Errorf("ValidProduct(%q, %v) = %v, want %v", tt.name, tt.price, got, tt.valid)
		}
	}
}
