package credits

// Subscription statuses mirrored from the payment provider webhook.
const (
	StatusActive            = "active"
	StatusCancelAtPeriodEnd = "cancel_at_period_end"
	StatusPastDue           = "past_due"
	StatusDeleted           = "deleted"
)

// Account is a user's credit balance and subscription snapshot.
type Account struct {
	UserID             string `json:"userId"`
	Credits            int    `json:"credits"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty"`
}

// Entitled reports whether the account may start a paid generation.
// Positive credits always qualify. A subscription qualifies unless it
// is deleted or past due.
func (a Account) Entitled() bool {
	if a.Credits > 0 {
		return true
	}
	switch a.SubscriptionStatus {
	case "", StatusDeleted, StatusPastDue:
		return false
	}
	return true
}
