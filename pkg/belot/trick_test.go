package belot

import (
	"belot/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTrick(t *testing.T) {
	tests := []struct {
		name   string
		played string
		lead   deck.Suit
		trump  deck.Suit
		want   int
	}{
		{"highest lead card", "10d,14d,7d,13d", deck.Diamonds, deck.Hearts, 1},
		{"off-suit ace loses", "10d,14c,7d,14s", deck.Diamonds, deck.Hearts, 0},
		{"single trump wins", "14d,7h,10d,13d", deck.Diamonds, deck.Hearts, 1},
		{"highest trump wins", "14d,9h,11h,14h", deck.Diamonds, deck.Hearts, 2},
		{"trump lead", "14h,9h,10h,11s", deck.Hearts, deck.Hearts, 1},
		{"equal zero point trumps, first played wins", "14d,7h,8h,10d", deck.Diamonds, deck.Hearts, 1},
		{"equal zero point plain cards, first played wins", "8c,7c,9c,12d", deck.Clubs, deck.Hearts, 0},
		{"partial trick of equal cards", "7c,9c", deck.Clubs, deck.Hearts, 0},
		{"partial trick", "13s,11s", deck.Spades, deck.Hearts, 0},
		{"leader only", "7s", deck.Spades, deck.Hearts, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTrick(deck.CardsFromString(tt.played), tt.lead, tt.trump)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTrick_Errors(t *testing.T) {
	_, err := ResolveTrick(nil, deck.Hearts, deck.Spades)
	assert.Equal(t, ErrTrickLength, err)

	_, err = ResolveTrick(deck.CardsFromString("7h,8h,9h,10h,11h"), deck.Hearts, deck.Spades)
	assert.Equal(t, ErrTrickLength, err)

	_, err = ResolveTrick(deck.CardsFromString("7c,8d"), deck.Hearts, deck.Spades)
	assert.Equal(t, ErrNoLeadCard, err)
}

func TestTrick(t *testing.T) {
	a := assert.New(t)

	trick := NewTrick(3)
	_, ok := trick.LeadSuit()
	a.False(ok)
	_, err := trick.Winner(deck.Hearts)
	a.Equal(ErrTrickLength, err)
	a.Equal(3, trick.NextSeat())

	for _, card := range deck.CardsFromString("10d,7h,14d,8s") {
		a.False(trick.IsComplete())
		trick.Add(card)
	}

	a.True(trick.IsComplete())
	lead, ok := trick.LeadSuit()
	a.True(ok)
	a.Equal(deck.Diamonds, lead)
	a.Equal(0, trick.SeatAt(1))
	a.Equal(2, trick.SeatAt(3))

	winner, err := trick.Winner(deck.Hearts)
	a.NoError(err)
	a.Equal(0, winner, "7h trumped from seat 0")

	winner, err = trick.Winner(deck.Clubs)
	a.NoError(err)
	a.Equal(1, winner, "ace of diamonds from seat 1")
}

func TestTeamOf(t *testing.T) {
	assert.Equal(t, 0, TeamOf(0))
	assert.Equal(t, 1, TeamOf(1))
	assert.Equal(t, 0, TeamOf(2))
	assert.Equal(t, 1, TeamOf(3))
}

func TestLeaderOf(t *testing.T) {
	assert.Equal(t, 2, LeaderOf(2, 0))
	assert.Equal(t, 0, LeaderOf(2, 2))
	assert.Equal(t, 3, LeaderOf(1, 2))
	assert.Equal(t, 1, LeaderOf(0, 3))
}
