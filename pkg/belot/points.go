package belot

import (
	"belot/pkg/deck"
	"fmt"
)

// TotalPoints is the number of card points in a full deck, whatever the trump
const TotalPoints = 152

var trumpPoints = map[int]int{
	deck.Jack:  20,
	deck.Nine:  14,
	deck.Ace:   11,
	deck.Ten:   10,
	deck.King:  4,
	deck.Queen: 3,
	deck.Eight: 0,
	deck.Seven: 0,
}

var plainPoints = map[int]int{
	deck.Ace:   11,
	deck.Ten:   10,
	deck.King:  4,
	deck.Queen: 3,
	deck.Jack:  2,
	deck.Nine:  0,
	deck.Eight: 0,
	deck.Seven: 0,
}

// PointValue returns the number of points the card is worth when trump is the trump suit
func PointValue(card *deck.Card, trump deck.Suit) int {
	table := plainPoints
	if card.Suit == trump {
		table = trumpPoints
	}

	points, ok := table[card.Rank]
	if !ok {
		panic(fmt.Sprintf("no point value for rank %d", card.Rank))
	}

	return points
}

// RankOrder orders cards of the same suit context. There is no separate rank table: a card ranks by its
// point value, so zero-point cards (7 and 8 of trump, 7 8 9 of a plain suit) rank equal.
func RankOrder(card *deck.Card, trump deck.Suit) int {
	return PointValue(card, trump)
}

// TrickPoints sums the point value of the cards
func TrickPoints(cards []*deck.Card, trump deck.Suit) int {
	total := 0
	for _, card := range cards {
		total += PointValue(card, trump)
	}

	return total
}
