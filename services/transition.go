package services

import "github.com/sekenkampus/api-go/models"

// Actor is the authenticated principal asking for a status change, seen
// relative to the transaction it targets.
type Actor struct {
	UserID   uint
	IsAdmin  bool
	IsBuyer  bool
	IsSeller bool
}

// ListingEffect is what a transition does to the listing backing the
// transaction.
type ListingEffect int

const (
	EffectNone     ListingEffect = iota
	EffectRelease                // reserved -> available, on cancellation
	EffectMarkSold               // -> sold, on completion
)

// Outcome describes an allowed transition: the listing side effect and who
// gets notified. NotifySeller/NotifyBuyer are exclusive; both false means no
// notification (admin overrides are silent).
type Outcome struct {
	Effect       ListingEffect
	NotifySeller bool
	NotifyBuyer  bool
}

// ResolveTransition is the whole authorization table for transaction status
// changes, free of any storage concern:
//
//	pending   -> cancelled   buyer or seller   release listing,  notify other party
//	pending   -> paid        buyer             -                 notify seller
//	paid      -> processing  seller            -                 notify buyer
//	processing-> shipped     seller            -                 notify buyer
//	shipped   -> completed   buyer             mark listing sold notify seller
//	any       -> any         admin             effect of the target state only, no notification
//
// Callers must have already checked that target is a valid status value.
func ResolveTransition(current, target string, actor Actor) (Outcome, error) {
	if actor.IsAdmin {
		// Admin can force any state. Completion and cancellation still move
		// the listing the same way the natural transition would.
		switch target {
		case models.TransactionCompleted:
			return Outcome{Effect: EffectMarkSold}, nil
		case models.TransactionCancelled:
			return Outcome{Effect: EffectRelease}, nil
		default:
			return Outcome{}, nil
		}
	}

	switch target {
	case models.TransactionCancelled:
		if current == models.TransactionPending && (actor.IsBuyer || actor.IsSeller) {
			return Outcome{Effect: EffectRelease, NotifySeller: actor.IsBuyer, NotifyBuyer: actor.IsSeller}, nil
		}
	case models.TransactionPaid:
		if current == models.TransactionPending && actor.IsBuyer {
			return Outcome{NotifySeller: true}, nil
		}
	case models.TransactionProcessing:
		if current == models.TransactionPaid && actor.IsSeller {
			return Outcome{NotifyBuyer: true}, nil
		}
	case models.TransactionShipped:
		if current == models.TransactionProcessing && actor.IsSeller {
			return Outcome{NotifyBuyer: true}, nil
		}
	case models.TransactionCompleted:
		if current == models.TransactionShipped && actor.IsBuyer {
			return Outcome{Effect: EffectMarkSold, NotifySeller: true}, nil
		}
	}

	return Outcome{}, Forbidden("not authorized to update this transaction status")
}
