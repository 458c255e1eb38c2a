// Package engine implements the statement analysis core: keyword
// classification, subscription and anomaly detection, credit-limit
// utilization, installment simulation, and the monthly report aggregator.
//
// All operations are pure, synchronous computations over a caller-supplied
// batch. An Analyzer holds only read-only configuration and is safe for
// concurrent use.
package engine

import (
	"math"
	"regexp"

	"github.com/fbarros/fatura/internal/model"
)

// Analyzer runs all statement analyses against one immutable Config.
type Analyzer struct {
	cfg    Config
	digits *regexp.Regexp
}

// New creates an Analyzer. Zero-valued thresholds in cfg fall back to the
// defaults so a partially populated config is usable.
func New(cfg Config) *Analyzer {
	def := DefaultConfig()
	if len(cfg.Categories) == 0 {
		cfg.Categories = def.Categories
	}
	if cfg.Fallback.Slug == "" {
		cfg.Fallback = def.Fallback
	}
	if len(cfg.Subscriptions) == 0 {
		cfg.Subscriptions = def.Subscriptions
	}
	if len(cfg.ChargeKeywords) == 0 {
		cfg.ChargeKeywords = def.ChargeKeywords
	}
	if cfg.HighValueMultiplier <= 0 {
		cfg.HighValueMultiplier = def.HighValueMultiplier
	}
	if cfg.HighValueFloor <= 0 {
		cfg.HighValueFloor = def.HighValueFloor
	}
	if cfg.RecurrencePrefix <= 0 {
		cfg.RecurrencePrefix = def.RecurrencePrefix
	}
	if cfg.RecurrenceCap <= 0 {
		cfg.RecurrenceCap = def.RecurrenceCap
	}
	if cfg.ClassifiedCap <= 0 {
		cfg.ClassifiedCap = def.ClassifiedCap
	}

	return &Analyzer{
		cfg:    cfg,
		digits: regexp.MustCompile(`\d+`),
	}
}

// Categories returns the configured taxonomy, fallback last.
func (a *Analyzer) Categories() []model.Category {
	cats := make([]model.Category, 0, len(a.cfg.Categories)+1)
	for _, c := range a.cfg.Categories {
		cats = append(cats, c.Category())
	}
	cats = append(cats, a.cfg.Fallback.Category())
	return cats
}

// Config returns a copy of the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
