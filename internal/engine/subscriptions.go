package engine

import (
	"strings"

	"github.com/fbarros/fatura/internal/model"
)

// amountSample bounds the observed-amount list carried by a recurrence
// candidate.
const amountSample = 5

// DetectSubscriptions scans a batch for known recurring services and for
// repeated normalized descriptions. Known profiles are tested in
// configuration order and the first match wins; a matched charge is flagged
// atypical when it falls outside the profile's typical range (bounds
// inclusive). Unmatched transactions are grouped by a normalized key and
// groups of two or more become recurrence candidates, reported in
// first-seen order up to the configured cap.
func (a *Analyzer) DetectSubscriptions(txns []model.Transaction) model.SubscriptionReport {
	var (
		known      []model.KnownSubscription
		totalKnown float64
		groups     = make(map[string][]float64)
		groupOrder []string
	)

	for _, t := range txns {
		desc := strings.ToLower(t.Description)

		profile, ok := a.matchProfile(desc)
		if ok {
			status := model.SubscriptionAtypical
			if t.Amount >= profile.TypicalLow && t.Amount <= profile.TypicalMax {
				status = model.SubscriptionNormal
			}
			known = append(known, model.KnownSubscription{
				Service:    profile.Name,
				Amount:     t.Amount,
				TypicalLow: profile.TypicalLow,
				TypicalMax: profile.TypicalMax,
				Status:     status,
			})
			totalKnown += t.Amount
			continue
		}

		key := a.recurrenceKey(desc)
		if _, seen := groups[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], t.Amount)
	}

	var candidates []model.RecurrenceCandidate
	for _, key := range groupOrder {
		amounts := groups[key]
		if len(amounts) < 2 {
			continue
		}

		distinct := make(map[float64]struct{}, len(amounts))
		for _, v := range amounts {
			distinct[v] = struct{}{}
		}

		sample := amounts
		if len(sample) > amountSample {
			sample = sample[:amountSample]
		}

		candidates = append(candidates, model.RecurrenceCandidate{
			Key:                  strings.TrimSpace(key),
			Occurrences:          len(amounts),
			Amounts:              sample,
			PossibleSubscription: len(distinct) == 1,
		})
	}
	if len(candidates) > a.cfg.RecurrenceCap {
		candidates = candidates[:a.cfg.RecurrenceCap]
	}

	return model.SubscriptionReport{
		Known:      known,
		TotalKnown: round2(totalKnown),
		Candidates: candidates,
	}
}

func (a *Analyzer) matchProfile(desc string) (SubscriptionProfile, bool) {
	for _, p := range a.cfg.Subscriptions {
		if strings.Contains(desc, p.Key) {
			return p, true
		}
	}
	return SubscriptionProfile{}, false
}

// recurrenceKey normalizes a lowercased description for grouping: digits
// stripped, truncated to the configured prefix length. Grouping uses the
// untrimmed key; candidates display it trimmed.
func (a *Analyzer) recurrenceKey(desc string) string {
	key := a.digits.ReplaceAllString(desc, "")
	r := []rune(key)
	if len(r) > a.cfg.RecurrencePrefix {
		r = r[:a.cfg.RecurrencePrefix]
	}
	return string(r)
}
