package model

// SubscriptionStatus flags whether a known subscription charge looks typical.
type SubscriptionStatus string

const (
	// SubscriptionNormal means the charged amount falls inside the profile's typical range.
	SubscriptionNormal SubscriptionStatus = "normal"
	// SubscriptionAtypical means the charged amount falls outside the typical range.
	SubscriptionAtypical SubscriptionStatus = "atypical"
)

// KnownSubscription is a transaction matched against a known-service profile.
type KnownSubscription struct {
	Service    string             `json:"service"`
	Amount     float64            `json:"amount"`
	TypicalLow float64            `json:"typical_low"`
	TypicalMax float64            `json:"typical_max"`
	Status     SubscriptionStatus `json:"status"`
}

// RecurrenceCandidate groups transactions sharing a normalized description
// that appeared at least twice, suspected of being a recurring charge.
type RecurrenceCandidate struct {
	Key         string    `json:"key"`
	Occurrences int       `json:"occurrences"`
	Amounts     []float64 `json:"amounts"` // bounded sample of observed amounts
	// PossibleSubscription is true when every occurrence charged the same amount.
	PossibleSubscription bool `json:"possible_subscription"`
}

// SubscriptionReport is the output of the subscription detector.
type SubscriptionReport struct {
	Known      []KnownSubscription   `json:"known"`
	TotalKnown float64               `json:"total_known"`
	Candidates []RecurrenceCandidate `json:"recurrence_candidates"`
}
