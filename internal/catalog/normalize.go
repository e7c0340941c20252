package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// The upstream catalog is loosely typed: prices arrive as numbers or strings
// with currency symbols, stock may be a string, the image lives under one of
// several keys and the id can be missing entirely. Everything is normalized
// here so the rest of the service only ever sees valid Products.

var categoryColors = map[string]string{
	CategoryFruit:  "4ADE80/FFFFFF",
	CategoryDrinks: "3B82F6/FFFFFF",
	CategoryBakery: "F59E0B/FFFFFF",
}

const defaultColor = "8B5CF6/FFFFFF"

// NormalizePrice converts a raw price value into a safe non-negative float.
// Strings may carry currency symbols ($, £, €) and thousands separators.
// Anything unparseable, missing, NaN or negative becomes 0.
func NormalizePrice(v any) float64 {
	switch p := v.(type) {
	case float64:
		return safePrice(p)
	case int:
		return safePrice(float64(p))
	case string:
		cleaned := strings.TrimSpace(strings.Map(func(r rune) rune {
			switch r {
			case '$', '£', '€', ',':
				return -1
			}
			return r
		}, p))
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return safePrice(f)
	default:
		return 0
	}
}

func safePrice(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// NormalizeStock converts a raw stock value into a non-negative integer,
// defaulting to 0 on any parse failure.
func NormalizeStock(v any) int {
	switch s := v.(type) {
	case float64:
		if math.IsNaN(s) || s < 0 {
			return 0
		}
		return int(s)
	case int:
		if s < 0 {
			return 0
		}
		return s
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}

// PlaceholderImage builds a placeholder URL keyed by category color when the
// upstream record carries no image.
func PlaceholderImage(category, name string) string {
	color, ok := categoryColors[category]
	if !ok {
		color = defaultColor
	}
	if name == "" {
		name = "Product"
	}
	return "https://placehold.co/300x200/" + color + "?text=" + url.QueryEscape(name)
}

// NormalizeRecord turns one raw upstream record into a strict Product.
// A missing id is synthesized so every product is addressable for the
// lifetime of the session.
func NormalizeRecord(rec map[string]any) Product {
	p := Product{
		Name:     stringField(rec, "name"),
		Price:    NormalizePrice(rec["price"]),
		Stock:    NormalizeStock(rec["stock"]),
		Category: stringField(rec, "category"),
	}

	p.ID = normalizeID(rec["id"])
	p.Image = firstString(rec, "image", "imageUrl", "img", "picture")
	if p.Image == "" {
		p.Image = PlaceholderImage(p.Category, p.Name)
	}

	return p
}

func normalizeID(v any) string {
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	}
	return uuid.NewString()
}

func stringField(rec map[string]any, key string) string {
	if s, ok := rec[key].(string); ok {
		return s
	}
	return ""
}

func firstString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
