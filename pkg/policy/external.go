package policy

import (
	"belot/pkg/belot"
	"belot/pkg/deck"
	"context"
	"fmt"
)

// Model is a pluggable decision model, such as a trained agent.
// It gets the encoded state and the legal moves, and returns an index into legal.
type Model interface {
	SelectAction(ctx context.Context, state []float64, legal deck.Hand) (int, error)
}

// ModelFunc adapts a function to the Model interface
type ModelFunc func(ctx context.Context, state []float64, legal deck.Hand) (int, error)

// SelectAction calls f
func (f ModelFunc) SelectAction(ctx context.Context, state []float64, legal deck.Hand) (int, error) {
	return f(ctx, state, legal)
}

// External binds a Model to a seat
type External struct {
	Model Model
}

// ChooseCard encodes the turn and maps the model's answer back to a card
func (e External) ChooseCard(ctx context.Context, turn *belot.Turn) (*deck.Card, error) {
	if len(turn.Legal) == 0 {
		return nil, ErrNoLegalMoves
	}

	action, err := e.Model.SelectAction(ctx, Encode(turn), turn.Legal)
	if err != nil {
		return nil, err
	}

	if action < 0 || action >= len(turn.Legal) {
		return nil, fmt.Errorf("model chose action %d of %d", action, len(turn.Legal))
	}

	return turn.Legal[action], nil
}

// CardWidth is the number of values used to encode one card: eight rank flags then four suit flags
const CardWidth = 8 + 4

// Encode flattens a turn into numbers: every card in hand, then every card in the trick, each as
// one-hot rank and suit, followed by the one-hot trump suit and the one-hot lead suit (all zero when
// leading). The length varies with the number of cards held and played.
func Encode(turn *belot.Turn) []float64 {
	state := make([]float64, 0, (len(turn.Hand)+len(turn.Trick))*CardWidth+8)
	for _, card := range turn.Hand {
		state = append(state, encodeCard(card)...)
	}

	for _, card := range turn.Trick {
		state = append(state, encodeCard(card)...)
	}

	state = append(state, encodeSuit(turn.Trump)...)
	if turn.HasLead {
		state = append(state, encodeSuit(turn.LeadSuit)...)
	} else {
		state = append(state, 0, 0, 0, 0)
	}

	return state
}

func encodeCard(card *deck.Card) []float64 {
	v := make([]float64, CardWidth)
	if deck.ValidRank(card.Rank) {
		v[card.Rank-deck.Seven] = 1
	}

	if i := card.Suit.Index(); i >= 0 {
		v[8+i] = 1
	}

	return v
}

func encodeSuit(suit deck.Suit) []float64 {
	v := make([]float64, 4)
	if i := suit.Index(); i >= 0 {
		v[i] = 1
	}

	return v
}
