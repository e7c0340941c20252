package catalog

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	logger := log.New(io.Discard, "", 0)
	return NewClient(baseURL, &http.Client{Timeout: 2 * time.Second}, logger)
}

func TestFetchProducts(t *testing.T) {
	t.Run("normalizes upstream records", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("category")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":1,"name":"Coca-Cola","price":"$2.99","stock":"15","category":"drinks"},
				{"name":"Croissant","price":1.49,"stock":12,"category":"bakery","img":"https://example.com/c.png"}
			]`))
		}))
		defer srv.Close()

		products := newTestClient(srv.URL).FetchProducts(context.Background(), "drinks")

		if gotQuery != "drinks" {
			t.Fatalf("category query = %q, want drinks", gotQuery)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].ID != "1" || products[0].Price != 2.99 || products[0].Stock != 15 {
			t.Fatalf("unexpected first product %+v", products[0])
		}
		if products[1].ID == "" {
			t.Fatalf("expected synthesized id for second product")
		}
		if products[1].Image != "https://example.com/c.png" {
			t.Fatalf("unexpected image %q", products[1].Image)
		}
	})

	t.Run("empty category defaults to all", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("category")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		products := newTestClient(srv.URL).FetchProducts(context.Background(), "")
		if gotQuery != CategoryAll {
			t.Fatalf("category query = %q, want all", gotQuery)
		}
		if len(products) != 0 {
			t.Fatalf("expected empty list, got %d", len(products))
		}
	})

	t.Run("server error falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		products := newTestClient(srv.URL).FetchProducts(context.Background(), "fruit")
		assertFallback(t, products)
	})

	t.Run("malformed payload falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"`))
		}))
		defer srv.Close()

		products := newTestClient(srv.URL).FetchProducts(context.Background(), "fruit")
		assertFallback(t, products)
	})

	t.Run("unreachable endpoint falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		products := newTestClient(srv.URL).FetchProducts(context.Background(), "fruit")
		assertFallback(t, products)
	})
}

func assertFallback(t *testing.T, products []Product) {
	t.Helper()
	want := Fallback()
	if len(products) != len(want) {
		t.Fatalf("expected fallback of %d products, got %d", len(want), len(products))
	}
	if products[0].Name != "Coca-Cola" || products[0].Price != 2.99 {
		t.Fatalf("unexpected fallback head %+v", products[0])
	}
}
