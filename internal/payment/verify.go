// Package payment talks to the payment provider's transaction
// verification API and maps confirmed amounts to viewing-package tiers.
// The provider is treated as an untrusted oracle: even a "successful"
// verification only produces a grant if the confirmed amount and currency
// match one of the known package price points.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kasozi/homefind/internal/access"
)

// Known package price points.
const (
	Currency      = "UGX"
	StandardPrice = 10000
	PremiumPrice  = 30000
)

var (
	// ErrVerificationFailed means the oracle was unreachable or reported
	// a non-successful transaction.
	ErrVerificationFailed = errors.New("payment verification failed")

	// ErrAmountMismatch means the transaction succeeded but its amount or
	// currency does not match a known viewing package. Must never grant.
	ErrAmountMismatch = errors.New("payment amount does not match a known package")
)

// Verification is a confirmed payment mapped to a viewing tier.
type Verification struct {
	Tier     access.Tier
	Amount   int64
	Currency string
}

// TierForAmount maps a confirmed amount/currency pair to a tier. This
// check is deliberately independent of anything the oracle reports beyond
// the raw amount, so a misreporting oracle cannot mint grants.
func TierForAmount(amount int64, currency string) (access.Tier, error) {
	if currency != Currency {
		return "", ErrAmountMismatch
	}
	switch amount {
	case StandardPrice:
		return access.TierStandard, nil
	case PremiumPrice:
		return access.TierPremium, nil
	}
	return "", ErrAmountMismatch
}

// Verifier confirms a transaction reference with the payment provider.
type Verifier interface {
	Verify(ctx context.Context, transactionRef string) (*Verification, error)
}

// Client verifies transactions against a Flutterwave-compatible API.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

// NewClient creates a verification client with a sane request timeout.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		SecretKey:  secretKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// verifyResponse mirrors the provider's transaction verification payload.
type verifyResponse struct {
	Status string `json:"status"`
	Data   struct {
		Status   string  `json:"status"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"data"`
}

// Verify confirms the transaction with the provider and re-validates the
// amount against the known price points. Any failure leaves the caller
// with no grant: fail closed.
func (c *Client) Verify(ctx context.Context, transactionRef string) (*Verification, error) {
	endpoint := fmt.Sprintf("%s/v3/transactions/%s/verify", c.BaseURL, url.PathEscape(transactionRef))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building verification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrVerificationFailed, err)
	}

	if resp.StatusCode != http.StatusOK || body.Status != "success" || body.Data.Status != "successful" {
		return nil, ErrVerificationFailed
	}

	// The provider reports amounts as floats. A fractional amount can
	// never equal a package price, so it must fail the match rather than
	// be truncated into one.
	amount := int64(body.Data.Amount)
	if float64(amount) != body.Data.Amount {
		return nil, ErrAmountMismatch
	}
	tier, err := TierForAmount(amount, body.Data.Currency)
	if err != nil {
		return nil, err
	}

	return &Verification{
		Tier:     tier,
		Amount:   amount,
		Currency: body.Data.Currency,
	}, nil
}
