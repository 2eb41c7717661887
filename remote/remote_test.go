package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"suite46-pickup/models"

	"github.com/goccy/go-json"
)

func TestIntakeSubmit(t *testing.T) {
	var got models.OrderRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected request %s %s", r.Method, r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = io.WriteString(w, "ok, not json")
	}))
	defer srv.Close()

	c := NewIntakeClient(srv.URL, srv.Client())
	rec := models.OrderRecord{OrderID: "S46-240101-1234", Total: 14.12, OrderStatus: models.StatusQueued}
	if err := c.Submit(context.Background(), rec); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.OrderID != rec.OrderID || got.Total != 14.12 || got.OrderStatus != models.StatusQueued {
		t.Fatalf("server received %+v", got)
	}
}

func TestIntakeNon2xxIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewIntakeClient(srv.URL, nil).Submit(context.Background(), models.OrderRecord{})
	var te *TransportError
	if !errors.As(err, &te) || te.Status != http.StatusInternalServerError {
		t.Fatalf("expected TransportError with status 500, got %v", err)
	}
}

func TestIntakeNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewIntakeClient(url, nil).Submit(context.Background(), models.OrderRecord{})
	var te *TransportError
	if !errors.As(err, &te) || te.Status != 0 || te.Err == nil {
		t.Fatalf("expected network TransportError, got %v", err)
	}
}

func TestIntakeHonoursDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewIntakeClient(srv.URL, nil).Submit(ctx, models.OrderRecord{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestCreateSession(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantURL string
		wantErr bool
	}{
		{name: "returns url", status: http.StatusOK, body: `{"url":"https://pay.example/x"}`, wantURL: "https://pay.example/x"},
		{name: "missing url", status: http.StatusOK, body: `{}`, wantErr: true},
		{name: "non-success status", status: http.StatusBadGateway, body: `{"url":"https://pay.example/x"}`, wantErr: true},
		{name: "garbage body", status: http.StatusOK, body: `<html>`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got models.CheckoutSessionRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			url, err := NewCheckoutClient(srv.URL, nil).CreateSession(context.Background(), models.CheckoutSessionRequest{
				OrderID: "S46-240101-1234", AmountTotal: 1412, Currency: "usd",
			})
			if tc.wantErr {
				var te *TransportError
				if !errors.As(err, &te) {
					t.Fatalf("expected TransportError, got %v", err)
				}
				return
			}
			if err != nil || url != tc.wantURL {
				t.Fatalf("got %q, %v", url, err)
			}
			if got.OrderID != "S46-240101-1234" || got.AmountTotal != 1412 {
				t.Fatalf("server received %+v", got)
			}
		})
	}
}

func TestTransportErrorMessage(t *testing.T) {
	e := &TransportError{Endpoint: "https://intake", Status: 503}
	if !strings.Contains(e.Error(), "503") {
		t.Fatalf("message %q", e.Error())
	}
}
