package belot

import (
	"belot/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointValue(t *testing.T) {
	a := assert.New(t)

	a.Equal(20, PointValue(deck.CardFromString("11h"), deck.Hearts))
	a.Equal(14, PointValue(deck.CardFromString("9h"), deck.Hearts))
	a.Equal(11, PointValue(deck.CardFromString("14h"), deck.Hearts))
	a.Equal(0, PointValue(deck.CardFromString("8h"), deck.Hearts))

	a.Equal(2, PointValue(deck.CardFromString("11h"), deck.Spades))
	a.Equal(0, PointValue(deck.CardFromString("9h"), deck.Spades))
	a.Equal(11, PointValue(deck.CardFromString("14h"), deck.Spades))
	a.Equal(10, PointValue(deck.CardFromString("10c"), deck.Spades))

	a.Panics(func() { PointValue(&deck.Card{Rank: 2, Suit: deck.Hearts}, deck.Hearts) })
}

func TestTrickPoints_FullDeck(t *testing.T) {
	for _, trump := range deck.Suits() {
		assert.Equal(t, TotalPoints, TrickPoints(deck.New().Cards, trump), "trump %s", trump)

		suitTotal := TrickPoints(deck.Hand(deck.New().Cards).OfSuit(trump), trump)
		assert.Equal(t, 62, suitTotal)
	}
}

func TestRankOrder(t *testing.T) {
	trump := deck.Hearts
	order := func(s string) int { return RankOrder(deck.CardFromString(s), trump) }

	// trump: J 9 A 10 K Q, then 8 and 7 level
	trumps := []string{"11h", "9h", "14h", "10h", "13h", "12h", "8h"}
	for i := 1; i < len(trumps); i++ {
		assert.Greater(t, order(trumps[i-1]), order(trumps[i]), "%s > %s", trumps[i-1], trumps[i])
	}
	assert.Equal(t, order("8h"), order("7h"))

	// plain: A 10 K Q J, then 9 8 7 level
	plain := []string{"14s", "10s", "13s", "12s", "11s", "9s"}
	for i := 1; i < len(plain); i++ {
		assert.Greater(t, order(plain[i-1]), order(plain[i]), "%s > %s", plain[i-1], plain[i])
	}
	assert.Equal(t, 0, order("9s"))
	assert.Equal(t, order("9s"), order("8s"))
	assert.Equal(t, order("8s"), order("7s"))

	for _, card := range deck.New().Cards {
		assert.Equal(t, PointValue(card, trump), RankOrder(card, trump), "%s", card)
	}
}
