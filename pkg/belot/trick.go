package belot

import (
	"belot/pkg/deck"
)

// Seats is the number of players at the table
const Seats = 4

// Trick is the set of cards played in one pass around the table.
// Cards are indexed by offset from the leader.
type Trick struct {
	Leader int          `json:"leader"`
	Cards  []*deck.Card `json:"cards"`
}

// NewTrick returns an empty trick led by the seat
func NewTrick(leader int) *Trick {
	return &Trick{
		Leader: leader,
		Cards:  make([]*deck.Card, 0, Seats),
	}
}

// LeadSuit returns the suit of the first card. The second value is false if nothing was led yet
func (t *Trick) LeadSuit() (deck.Suit, bool) {
	if len(t.Cards) == 0 {
		return "", false
	}

	return t.Cards[0].Suit, true
}

// IsComplete returns true once every seat has played
func (t *Trick) IsComplete() bool {
	return len(t.Cards) >= Seats
}

// SeatAt returns the seat that played the card at offset
func (t *Trick) SeatAt(offset int) int {
	return (t.Leader + offset) % Seats
}

// NextSeat returns the seat due to play next
func (t *Trick) NextSeat() int {
	return t.SeatAt(len(t.Cards))
}

// Add appends a card to the trick
func (t *Trick) Add(card *deck.Card) {
	t.Cards = append(t.Cards, card)
}

// ResolveTrick returns the offset of the winning card in played.
// The highest trump wins; without trump the highest card of the lead suit wins.
// Between cards of equal rank order the one played first wins.
// played may be a partial trick.
func ResolveTrick(played []*deck.Card, leadSuit, trump deck.Suit) (int, error) {
	if len(played) == 0 || len(played) > Seats {
		return -1, ErrTrickLength
	}

	best := -1
	bestIsTrump := false
	for i, card := range played {
		isTrump := card.Suit == trump
		if !isTrump && card.Suit != leadSuit {
			continue
		}

		switch {
		case best == -1:
			best, bestIsTrump = i, isTrump
		case isTrump && !bestIsTrump:
			best, bestIsTrump = i, true
		case isTrump == bestIsTrump && RankOrder(card, trump) > RankOrder(played[best], trump):
			best = i
		}
	}

	if best == -1 {
		return -1, ErrNoLeadCard
	}

	return best, nil
}

// Winner returns the seat that wins the trick so far
func (t *Trick) Winner(trump deck.Suit) (int, error) {
	lead, ok := t.LeadSuit()
	if !ok {
		return -1, ErrTrickLength
	}

	offset, err := ResolveTrick(t.Cards, lead, trump)
	if err != nil {
		return -1, err
	}

	return t.SeatAt(offset), nil
}

// LeaderOf returns the seat that led a trick in which played cards precede seat's turn
func LeaderOf(seat, played int) int {
	return ((seat-played)%Seats + Seats) % Seats
}

// TeamOf returns the team (0 or 1) for the seat. Seats 0 and 2 play together, as do 1 and 3
func TeamOf(seat int) int {
	return seat % 2
}
