package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kasozi/homefind/internal/access"
)

// fakeOracle serves the provider's verification endpoint with a canned
// amount and currency.
func fakeOracle(t *testing.T, txStatus string, amount float64, currency string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"status":"error"}`)
			return
		}
		fmt.Fprintf(w, `{"status":"success","data":{"status":%q,"amount":%v,"currency":%q}}`,
			txStatus, amount, currency)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestVerifyStandardTier(t *testing.T) {
	server := fakeOracle(t, "successful", 10000, "UGX")
	client := NewClient(server.URL, "test-key")

	v, err := client.Verify(context.Background(), "tx-123")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if v.Tier != access.TierStandard {
		t.Errorf("expected standard tier, got %q", v.Tier)
	}
	if v.Amount != 10000 || v.Currency != "UGX" {
		t.Errorf("expected confirmed 10000 UGX, got %d %s", v.Amount, v.Currency)
	}
}

func TestVerifyPremiumTier(t *testing.T) {
	server := fakeOracle(t, "successful", 30000, "UGX")
	client := NewClient(server.URL, "test-key")

	v, err := client.Verify(context.Background(), "tx-456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if v.Tier != access.TierPremium {
		t.Errorf("expected premium tier, got %q", v.Tier)
	}
}

func TestVerifyAmountMismatch(t *testing.T) {
	// A successful transaction at the wrong price must not grant.
	server := fakeOracle(t, "successful", 5000, "UGX")
	client := NewClient(server.URL, "test-key")

	_, err := client.Verify(context.Background(), "tx-789")
	if !errors.Is(err, ErrAmountMismatch) {
		t.Errorf("expected ErrAmountMismatch, got %v", err)
	}
}

func TestVerifyFractionalAmount(t *testing.T) {
	// Truncating 10000.5 would land on the standard price point; the
	// raw confirmed amount is what must match.
	for _, amount := range []float64{10000.5, 30000.9, 9999.999} {
		server := fakeOracle(t, "successful", amount, "UGX")
		client := NewClient(server.URL, "test-key")

		_, err := client.Verify(context.Background(), "tx-frac")
		if !errors.Is(err, ErrAmountMismatch) {
			t.Errorf("amount %v: expected ErrAmountMismatch, got %v", amount, err)
		}
	}
}

func TestVerifyWrongCurrency(t *testing.T) {
	server := fakeOracle(t, "successful", 10000, "USD")
	client := NewClient(server.URL, "test-key")

	_, err := client.Verify(context.Background(), "tx-usd")
	if !errors.Is(err, ErrAmountMismatch) {
		t.Errorf("expected ErrAmountMismatch, got %v", err)
	}
}

func TestVerifyUnsuccessfulTransaction(t *testing.T) {
	server := fakeOracle(t, "failed", 10000, "UGX")
	client := NewClient(server.URL, "test-key")

	_, err := client.Verify(context.Background(), "tx-bad")
	if !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("expected ErrVerificationFailed, got %v", err)
	}
}

func TestVerifyOracleUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := NewClient(server.URL, "test-key")

	_, err := client.Verify(context.Background(), "tx-down")
	if !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("expected ErrVerificationFailed, got %v", err)
	}
}

func TestTierForAmount(t *testing.T) {
	tests := []struct {
		amount   int64
		currency string
		tier     access.Tier
		wantErr  bool
	}{
		{10000, "UGX", access.TierStandard, false},
		{30000, "UGX", access.TierPremium, false},
		{5000, "UGX", "", true},
		{0, "UGX", "", true},
		{10000, "USD", "", true},
		{30000, "KES", "", true},
		{20000, "UGX", "", true},
	}

	for _, tt := range tests {
		tier, err := TierForAmount(tt.amount, tt.currency)
		if tt.wantErr {
			if !errors.Is(err, ErrAmountMismatch) {
				t.Errorf("TierForAmount(%d, %q): expected ErrAmountMismatch, got %v", tt.amount, tt.currency, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("TierForAmount(%d, %q): %v", tt.amount, tt.currency, err)
			continue
		}
		if tier != tt.tier {
			t.Errorf("TierForAmount(%d, %q) = %q, want %q", tt.amount, tt.currency, tier, tt.tier)
		}
	}
}
