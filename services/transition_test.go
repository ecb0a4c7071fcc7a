package services

import (
	"testing"

	"github.com/sekenkampus/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []string{
	models.TransactionPending,
	models.TransactionPaid,
	models.TransactionProcessing,
	models.TransactionShipped,
	models.TransactionCompleted,
	models.TransactionCancelled,
}

func TestResolveTransitionAllowedSet(t *testing.T) {
	buyer := Actor{UserID: 1, IsBuyer: true}
	seller := Actor{UserID: 2, IsSeller: true}

	tests := []struct {
		name    string
		current string
		target  string
		actor   Actor
		want    Outcome
	}{
		{"buyer cancels pending", models.TransactionPending, models.TransactionCancelled, buyer,
			Outcome{Effect: EffectRelease, NotifySeller: true}},
		{"seller cancels pending", models.TransactionPending, models.TransactionCancelled, seller,
			Outcome{Effect: EffectRelease, NotifyBuyer: true}},
		{"buyer pays", models.TransactionPending, models.TransactionPaid, buyer,
			Outcome{NotifySeller: true}},
		{"seller processes", models.TransactionPaid, models.TransactionProcessing, seller,
			Outcome{NotifyBuyer: true}},
		{"seller ships", models.TransactionProcessing, models.TransactionShipped, seller,
			Outcome{NotifyBuyer: true}},
		{"buyer completes", models.TransactionShipped, models.TransactionCompleted, buyer,
			Outcome{Effect: EffectMarkSold, NotifySeller: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTransition(tt.current, tt.target, tt.actor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every (current, target, actor) triple outside the allowed table must be
// denied, and the denial is always a Forbidden.
func TestResolveTransitionDeniesEverythingElse(t *testing.T) {
	type key struct {
		current, target string
		buyer           bool
	}
	allowed := map[key]bool{
		{models.TransactionPending, models.TransactionCancelled, true}:   true,
		{models.TransactionPending, models.TransactionCancelled, false}:  true,
		{models.TransactionPending, models.TransactionPaid, true}:        true,
		{models.TransactionPaid, models.TransactionProcessing, false}:    true,
		{models.TransactionProcessing, models.TransactionShipped, false}: true,
		{models.TransactionShipped, models.TransactionCompleted, true}:   true,
	}

	for _, current := range allStatuses {
		for _, target := range allStatuses {
			for _, isBuyer := range []bool{true, false} {
				actor := Actor{UserID: 1, IsBuyer: isBuyer, IsSeller: !isBuyer}
				_, err := ResolveTransition(current, target, actor)
				if allowed[key{current, target, isBuyer}] {
					assert.NoError(t, err, "%s -> %s buyer=%v", current, target, isBuyer)
				} else {
					assert.Equal(t, KindForbidden, KindOf(err), "%s -> %s buyer=%v", current, target, isBuyer)
				}
			}
		}
	}
}

// A principal that is neither buyer nor seller is denied everything.
func TestResolveTransitionOutsider(t *testing.T) {
	outsider := Actor{UserID: 99}
	for _, current := range allStatuses {
		for _, target := range allStatuses {
			_, err := ResolveTransition(current, target, outsider)
			assert.Equal(t, KindForbidden, KindOf(err))
		}
	}
}

// Admin can force any state; completion and cancellation carry the listing
// side effect, nothing is ever notified.
func TestResolveTransitionAdmin(t *testing.T) {
	admin := Actor{UserID: 1, IsAdmin: true}
	for _, current := range allStatuses {
		for _, target := range allStatuses {
			outcome, err := ResolveTransition(current, target, admin)
			require.NoError(t, err)
			assert.False(t, outcome.NotifyBuyer)
			assert.False(t, outcome.NotifySeller)

			switch target {
			case models.TransactionCompleted:
				assert.Equal(t, EffectMarkSold, outcome.Effect)
			case models.TransactionCancelled:
				assert.Equal(t, EffectRelease, outcome.Effect)
			default:
				assert.Equal(t, EffectNone, outcome.Effect)
			}
		}
	}
}
