package domain

// Order-level statuses. The order status is derived: it stays Processing
// until every item has reached a terminal status, then flips to Completed.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
)

// Order item statuses.
const (
	ItemStatusPendingApproval = "Pending Approval"
	ItemStatusAccepted        = "Accepted"
	ItemStatusShipped         = "Shipped"
	ItemStatusCompleted       = "Completed"
	ItemStatusReturned        = "Returned"
	ItemStatusCancelled       = "Cancelled"
	ItemStatusRejected        = "Rejected"
)

// Transaction types. Amounts are always positive; the type carries the sign.
const (
	TxTypeCredit     = "CREDIT"
	TxTypeDebit      = "DEBIT"
	TxTypeWithdrawal = "WITHDRAWAL"
)

const (
	TxStatusPending   = "PENDING"
	TxStatusCompleted = "COMPLETED"
	TxStatusFailed    = "FAILED"
)

// RentalSaleThreshold is the rental count at which a product becomes
// eligible for outright sale. Once flipped, is_for_sale never resets.
const RentalSaleThreshold = 5

var itemTransitions = map[string][]string{
	ItemStatusPendingApproval: {ItemStatusAccepted, ItemStatusRejected},
	ItemStatusAccepted:        {ItemStatusShipped, ItemStatusCancelled},
	ItemStatusShipped:         {ItemStatusCompleted, ItemStatusReturned},
}

// IsItemStatus reports whether s is a known order item status.
func IsItemStatus(s string) bool {
	if _, ok := itemTransitions[s]; ok {
		return true
	}
	return IsTerminalItemStatus(s)
}

// IsTerminalItemStatus reports whether an item in status s is final in
// the transition graph (no further transitions allowed).
func IsTerminalItemStatus(s string) bool {
	switch s {
	case ItemStatusCompleted, ItemStatusReturned, ItemStatusCancelled, ItemStatusRejected:
		return true
	}
	return false
}

// IsResolvedItemStatus reports whether an item counts as settled for
// order-level aggregation: everything past Pending Approval does, even
// statuses like Accepted or Shipped that can still move in the graph.
// An order completes once every item is resolved.
func IsResolvedItemStatus(s string) bool {
	return IsItemStatus(s) && s != ItemStatusPendingApproval
}

// CanTransitionItem reports whether from -> to is a legal item transition.
func CanTransitionItem(from, to string) bool {
	for _, next := range itemTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsOrderStatus(s string) bool {
	return s == OrderStatusProcessing || s == OrderStatusCompleted
}

func IsTxType(s string) bool {
	return s == TxTypeCredit || s == TxTypeDebit || s == TxTypeWithdrawal
}

func IsTxStatus(s string) bool {
	return s == TxStatusPending || s == TxStatusCompleted || s == TxStatusFailed
}
