package store

import (
	"context"
	"testing"
	"time"

	"github.com/kasozi/homefind/internal/db"
)

func TestRecordBid(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	date := time.Now().Add(24 * time.Hour)
	p, _ := CreateProperty(ctx, database, testAuction("Buziga Hill Mansion", date))

	bid, err := RecordBid(ctx, database, p.ID, 110000, "receipt-1")
	if err != nil {
		t.Fatalf("RecordBid: %v", err)
	}
	if bid.Amount != 110000 {
		t.Errorf("expected amount 110000, got %d", bid.Amount)
	}
	if bid.Receipt != "receipt-1" {
		t.Errorf("expected receipt to round-trip, got %q", bid.Receipt)
	}

	// The property's current bid moves with the ledger.
	got, _ := GetProperty(ctx, database, p.ID)
	if got.CurrentBid != 110000 {
		t.Errorf("expected current bid 110000 after RecordBid, got %d", got.CurrentBid)
	}
}

func TestRecordBidDuplicateReceipt(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	date := time.Now().Add(24 * time.Hour)
	p, _ := CreateProperty(ctx, database, testAuction("Kololo Heritage Estate", date))

	if _, err := RecordBid(ctx, database, p.ID, 110000, "dup"); err != nil {
		t.Fatalf("first RecordBid: %v", err)
	}
	if _, err := RecordBid(ctx, database, p.ID, 112000, "dup"); err == nil {
		t.Error("expected duplicate receipt to be rejected")
	}

	// The failed bid must not have moved the current bid.
	got, _ := GetProperty(ctx, database, p.ID)
	if got.CurrentBid != 110000 {
		t.Errorf("expected current bid unchanged at 110000, got %d", got.CurrentBid)
	}
}

func TestListBids(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	date := time.Now().Add(24 * time.Hour)
	p, _ := CreateProperty(ctx, database, testAuction("Entebbe Road Commercial Building", date))

	RecordBid(ctx, database, p.ID, 110000, "r1")
	RecordBid(ctx, database, p.ID, 112000, "r2")

	bids, err := ListBids(ctx, database, p.ID)
	if err != nil {
		t.Fatalf("ListBids: %v", err)
	}
	if len(bids) != 2 {
		t.Fatalf("expected 2 bids, got %d", len(bids))
	}
	// Most recent first.
	if bids[0].Receipt != "r2" {
		t.Errorf("expected most recent bid first, got %q", bids[0].Receipt)
	}

	none, _ := ListBids(ctx, database, 999)
	if len(none) != 0 {
		t.Errorf("expected no bids for unknown property, got %d", len(none))
	}
}
