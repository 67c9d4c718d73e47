// Package access implements the viewing-grant state machine that gates
// rental listing details behind a paid viewing package. The state is
// client-held and advisory: the server verifies payments and signs the
// viewing pass, but detail fetches themselves are not blocked server-side.
package access

import (
	"time"

	"github.com/kasozi/homefind/internal/model"
)

// Tier is the paid viewing package level.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Grant durations per tier.
const (
	StandardDuration = 24 * time.Hour
	PremiumDuration  = 30 * 24 * time.Hour
)

// Duration returns how long a grant of this tier lasts.
func (t Tier) Duration() time.Duration {
	if t == TierPremium {
		return PremiumDuration
	}
	return StandardDuration
}

// Valid reports whether the tier is a known package.
func (t Tier) Valid() bool {
	return t == TierStandard || t == TierPremium
}

// State is the serializable form of a Tracker, written to the client's
// local state file between sessions.
type State struct {
	ViewedPropertyIDs []int64    `json:"viewed_property_ids"`
	GrantTier         Tier       `json:"grant_tier,omitempty"`
	GrantExpiresAt    *time.Time `json:"grant_expires_at,omitempty"`
}

// Tracker tracks which listings a visitor has viewed and whether a paid
// viewing grant is active. It is single-owner session state; expired
// grants self-demote on read, so no timer is needed.
type Tracker struct {
	viewed  map[int64]bool
	order   []int64
	tier    Tier
	expires time.Time

	now func() time.Time
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		viewed: make(map[int64]bool),
		now:    time.Now,
	}
}

// FromState restores a tracker from persisted state.
func FromState(s State) *Tracker {
	t := NewTracker()
	for _, id := range s.ViewedPropertyIDs {
		if !t.viewed[id] {
			t.viewed[id] = true
			t.order = append(t.order, id)
		}
	}
	t.tier = s.GrantTier
	if s.GrantExpiresAt != nil {
		t.expires = *s.GrantExpiresAt
	}
	return t
}

// State returns the tracker's serializable state.
func (t *Tracker) State() State {
	s := State{ViewedPropertyIDs: append([]int64{}, t.order...)}
	if !t.expires.IsZero() {
		e := t.expires
		s.GrantTier = t.tier
		s.GrantExpiresAt = &e
	}
	return s
}

// SetClock overrides the tracker's clock. Used by tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// RecordView records a visit to a listing. Repeat views of the same
// property are not double-counted. Returns true if the view was newly
// counted.
func (t *Tracker) RecordView(propertyID int64) bool {
	if t.viewed[propertyID] {
		return false
	}
	t.viewed[propertyID] = true
	t.order = append(t.order, propertyID)
	return true
}

// ViewCount returns the number of distinct listings viewed.
func (t *Tracker) ViewCount() int {
	return len(t.viewed)
}

// HasViewed reports whether a listing was already viewed.
func (t *Tracker) HasViewed(propertyID int64) bool {
	return t.viewed[propertyID]
}

// HasValidGrant reports whether a paid grant is currently active.
// An expired grant behaves exactly like no grant.
func (t *Tracker) HasValidGrant() bool {
	return !t.expires.IsZero() && t.expires.After(t.now())
}

// GrantExpiry returns the grant expiry time, if an active grant exists.
func (t *Tracker) GrantExpiry() (time.Time, bool) {
	if !t.HasValidGrant() {
		return time.Time{}, false
	}
	return t.expires, true
}

// AllowAccess decides whether detail navigation to the property may
// proceed. Rental units require an active grant; every other category is
// open. Callers should raise the payment prompt when this returns false.
func (t *Tracker) AllowAccess(p model.Property) bool {
	if p.Category != model.CategoryRentalUnits {
		return true
	}
	return t.HasValidGrant()
}

// RegisterPayment activates a grant for the given tier, replacing any
// prior grant, and resets the viewed set. Expiry is measured from now.
func (t *Tracker) RegisterPayment(tier Tier) {
	t.tier = tier
	t.expires = t.now().Add(tier.Duration())
	t.viewed = make(map[int64]bool)
	t.order = nil
}
