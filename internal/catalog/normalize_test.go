package catalog

import (
	"math"
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	tests := map[string]struct {
		in   any
		want float64
	}{
		"plain number":            {2.99, 2.99},
		"integer":                 {3, 3},
		"dollar string":           {"$2.99", 2.99},
		"pound string":            {"£1.50", 1.50},
		"euro with thousands":     {"€1,299.50", 1299.50},
		"garbage string":          {"abc", 0},
		"empty string":            {"", 0},
		"missing":                 {nil, 0},
		"negative number":         {-3.0, 0},
		"negative string":         {"-3.00", 0},
		"nan":                     {math.NaN(), 0},
		"unexpected type":         {true, 0},
		"whitespace around price": {" $4.20 ", 4.20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NormalizePrice(tt.in); got != tt.want {
				t.Fatalf("NormalizePrice(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeStock(t *testing.T) {
	tests := map[string]struct {
		in   any
		want int
	}{
		"number":          {12.0, 12},
		"string":          {"7", 7},
		"garbage string":  {"many", 0},
		"missing":         {nil, 0},
		"negative":        {-4.0, 0},
		"negative string": {"-4", 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NormalizeStock(tt.in); got != tt.want {
				t.Fatalf("NormalizeStock(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("loose record", func(t *testing.T) {
		p := NormalizeRecord(map[string]any{
			"id":       5.0,
			"name":     "Orange Juice",
			"price":    "$3.49",
			"stock":    "9",
			"category": "drinks",
			"imageUrl": "https://example.com/oj.png",
		})

		if p.ID != "5" {
			t.Fatalf("id = %q, want 5", p.ID)
		}
		if p.Price != 3.49 || p.Stock != 9 {
			t.Fatalf("unexpected price/stock %v/%d", p.Price, p.Stock)
		}
		if p.Image != "https://example.com/oj.png" {
			t.Fatalf("image = %q", p.Image)
		}
	})

	t.Run("missing id is synthesized", func(t *testing.T) {
		a := NormalizeRecord(map[string]any{"name": "Milk", "price": 1.20})
		b := NormalizeRecord(map[string]any{"name": "Milk", "price": 1.20})
		if a.ID == "" || b.ID == "" {
			t.Fatalf("expected synthesized ids, got %q and %q", a.ID, b.ID)
		}
		if a.ID == b.ID {
			t.Fatalf("synthesized ids must be unique, both %q", a.ID)
		}
	})

	t.Run("missing image becomes category placeholder", func(t *testing.T) {
		p := NormalizeRecord(map[string]any{
			"id":       "7",
			"name":     "Green Apple",
			"price":    0.99,
			"category": "fruit",
		})
		want := "https://placehold.co/300x200/4ADE80/FFFFFF?text=Green+Apple"
		if p.Image != want {
			t.Fatalf("image = %q, want %q", p.Image, want)
		}
	})

	t.Run("unknown category uses default color", func(t *testing.T) {
		p := NormalizeRecord(map[string]any{"id": "8", "name": "Soap", "category": "household"})
		want := "https://placehold.co/300x200/8B5CF6/FFFFFF?text=Soap"
		if p.Image != want {
			t.Fatalf("image = %q, want %q", p.Image, want)
		}
	})

	t.Run("alternate image keys", func(t *testing.T) {
		for _, key := range []string{"image", "imageUrl", "img", "picture"} {
			p := NormalizeRecord(map[string]any{"id": "9", "name": "Tea", key: "https://example.com/tea.png"})
			if p.Image != "https://example.com/tea.png" {
				t.Fatalf("key %s: image = %q", key, p.Image)
			}
		}
	})

	t.Run("malformed numerics never propagate", func(t *testing.T) {
		p := NormalizeRecord(map[string]any{"id": "10", "name": "Mystery", "price": "??", "stock": "??"})
		if p.Price != 0 || p.Stock != 0 {
			t.Fatalf("expected zero defaults, got %v/%d", p.Price, p.Stock)
		}
	})
}
