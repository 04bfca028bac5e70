package belot

import (
	"belot/pkg/deck"
	"context"
)

// Turn is everything a Chooser may look at when picking a card
type Turn struct {
	Seat     int
	Legal    deck.Hand
	Hand     deck.Hand
	Trick    []*deck.Card
	Trump    deck.Suit
	LeadSuit deck.Suit
	// HasLead is false when the seat leads the trick
	HasLead bool
}

// Chooser picks the card a seat plays.
// The returned card must be one of turn.Legal; anything else is reported as an anomaly and replaced.
type Chooser interface {
	ChooseCard(ctx context.Context, turn *Turn) (*deck.Card, error)
}

// ChooserFunc adapts a function to the Chooser interface
type ChooserFunc func(ctx context.Context, turn *Turn) (*deck.Card, error)

// ChooseCard calls f
func (f ChooserFunc) ChooseCard(ctx context.Context, turn *Turn) (*deck.Card, error) {
	return f(ctx, turn)
}
