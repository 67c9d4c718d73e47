// Package auction implements the bidding rules for bank-sale properties.
// Whether an auction is open is computed from the stored status and
// scheduled date at read time; the status field never flips on a timer,
// which keeps the check immune to clock-sync drift between a background
// job and request handling.
package auction

import (
	"errors"
	"time"

	"github.com/kasozi/homefind/internal/model"
)

var (
	// ErrNotAuction means the property is not a bank-sale auction.
	ErrNotAuction = errors.New("property is not an auction")

	// ErrAuctionClosed means the auction is not accepting bids: either
	// its status is not active or its scheduled time has passed.
	ErrAuctionClosed = errors.New("auction is closed for bidding")
)

// IsOpen reports whether the auction accepts bids at the given time.
func IsOpen(p model.Property, now time.Time) bool {
	return p.IsAuction() &&
		p.AuctionStatus == model.AuctionActive &&
		p.AuctionDate.After(now)
}

// NextBid validates a bid attempt and returns the new bid amount.
// Bids always advance by exactly the property's increment, so the
// current bid stays a starting-bid-plus-increment-multiples value.
func NextBid(p model.Property, now time.Time) (int64, error) {
	if !p.IsAuction() {
		return 0, ErrNotAuction
	}
	if !IsOpen(p, now) {
		return 0, ErrAuctionClosed
	}
	return p.CurrentBid + p.BidIncrement, nil
}
