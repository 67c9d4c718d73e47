package access

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kasozi/homefind/internal/model"
)

func TestRecordViewIdempotent(t *testing.T) {
	tr := NewTracker()

	if !tr.RecordView(1) {
		t.Error("first view should count")
	}
	if tr.RecordView(1) {
		t.Error("repeat view should not count")
	}
	if tr.ViewCount() != 1 {
		t.Errorf("expected view count 1, got %d", tr.ViewCount())
	}

	tr.RecordView(2)
	tr.RecordView(1)
	if tr.ViewCount() != 2 {
		t.Errorf("expected view count 2, got %d", tr.ViewCount())
	}
}

func TestAllowAccessByCategory(t *testing.T) {
	tr := NewTracker()

	rental := model.Property{ID: 1, Category: model.CategoryRentalUnits}
	forSale := model.Property{ID: 2, Category: model.CategoryForSale}
	furnished := model.Property{ID: 3, Category: model.CategoryFurnishedHouses}
	bankSale := model.Property{ID: 4, Category: model.CategoryBankSales}

	// Without a grant, only rentals are gated.
	if tr.AllowAccess(rental) {
		t.Error("rental should be gated without a grant")
	}
	for _, p := range []model.Property{forSale, furnished, bankSale} {
		if !tr.AllowAccess(p) {
			t.Errorf("category %q should be open without a grant", p.Category)
		}
	}

	tr.RegisterPayment(TierStandard)
	if !tr.AllowAccess(rental) {
		t.Error("rental should be open with an active grant")
	}
}

func TestGrantLifecycle(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	tr := NewTracker()
	tr.SetClock(func() time.Time { return now })

	tr.RecordView(1)
	tr.RecordView(2)
	if tr.ViewCount() != 2 {
		t.Fatalf("expected 2 views pre-grant, got %d", tr.ViewCount())
	}

	tr.RegisterPayment(TierStandard)

	// Payment resets the viewed set.
	if tr.ViewCount() != 0 {
		t.Errorf("expected viewed set reset on payment, got %d", tr.ViewCount())
	}
	expiry, ok := tr.GrantExpiry()
	if !ok {
		t.Fatal("expected an active grant")
	}
	if want := now.Add(StandardDuration); !expiry.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, expiry)
	}

	// Advance past 24 hours: the grant self-demotes on read.
	now = now.Add(24*time.Hour + time.Minute)
	if tr.HasValidGrant() {
		t.Error("grant should have expired")
	}
	rental := model.Property{ID: 1, Category: model.CategoryRentalUnits}
	if tr.AllowAccess(rental) {
		t.Error("expired grant must redirect rentals to payment")
	}

	// Views recorded after expiry are kept; only a fresh payment clears them.
	tr.RecordView(3)
	if tr.ViewCount() != 1 {
		t.Errorf("expected post-expiry views to accumulate, got %d", tr.ViewCount())
	}
}

func TestPremiumGrantDuration(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	tr := NewTracker()
	tr.SetClock(func() time.Time { return now })

	tr.RegisterPayment(TierPremium)

	expiry, ok := tr.GrantExpiry()
	if !ok {
		t.Fatal("expected an active grant")
	}
	if want := now.Add(PremiumDuration); !expiry.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, expiry)
	}
}

func TestRegisterPaymentOverwritesPriorGrant(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	tr := NewTracker()
	tr.SetClock(func() time.Time { return now })

	tr.RegisterPayment(TierPremium)
	tr.RegisterPayment(TierStandard)

	// No stacking: the standard grant replaces the premium one.
	expiry, _ := tr.GrantExpiry()
	if want := now.Add(StandardDuration); !expiry.Equal(want) {
		t.Errorf("expected overwritten expiry %v, got %v", want, expiry)
	}
}

func TestStateRoundTrip(t *testing.T) {
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	tr := NewTracker()
	tr.SetClock(func() time.Time { return now })

	tr.RecordView(7)
	tr.RecordView(3)
	tr.RegisterPayment(TierStandard)
	tr.RecordView(9)

	data, err := json.Marshal(tr.State())
	if err != nil {
		t.Fatalf("marshaling state: %v", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshaling state: %v", err)
	}

	restored := FromState(s)
	restored.SetClock(func() time.Time { return now })

	if restored.ViewCount() != 1 || !restored.HasViewed(9) {
		t.Errorf("viewed set did not survive the round trip: %+v", restored.State())
	}
	if !restored.HasValidGrant() {
		t.Error("grant did not survive the round trip")
	}
}

func TestTierValidation(t *testing.T) {
	if !TierStandard.Valid() || !TierPremium.Valid() {
		t.Error("known tiers must be valid")
	}
	if Tier("gold").Valid() || Tier("").Valid() {
		t.Error("unknown tiers must be invalid")
	}
}
