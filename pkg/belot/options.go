package belot

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards each seat holds at the start of play
const HandSize = 8

// Tricks is the number of tricks in a round
const Tricks = 8

// DealMode determines how the 32 cards reach the four hands
type DealMode int

// deal modes
const (
	// DealTwoStage deals five cards each, runs the bidding, then deals three more
	DealTwoStage DealMode = iota
	// DealSingle deals all eight cards before the bidding
	DealSingle
)

func (d DealMode) String() string {
	switch d {
	case DealTwoStage:
		return "two-stage"
	case DealSingle:
		return "single"
	}

	return fmt.Sprintf("DealMode(%d)", int(d))
}

// ParseDealMode parses "single" or "two-stage"
func ParseDealMode(s string) (DealMode, error) {
	switch strings.ToLower(s) {
	case "", "two-stage":
		return DealTwoStage, nil
	case "single":
		return DealSingle, nil
	}

	return 0, fmt.Errorf("unknown deal mode: %s", s)
}

// Options are options for playing a round of belot
type Options struct {
	Rules RuleSet
	Deal  DealMode

	// MaxRedeals caps how many times a game redeals after everybody passes
	MaxRedeals int
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Rules:      RulesTsakane,
		Deal:       DealTwoStage,
		MaxRedeals: 16,
	}
}
