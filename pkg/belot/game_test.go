package belot

import (
	"belot/internal/rng"
	"belot/pkg/deck"
	"belot/pkg/snapshot"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGen returns the scripted numbers in order, then zeros
type scriptedGen struct {
	values []int
}

func (s *scriptedGen) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}

	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

// lcg is a fixed 64-bit linear congruential generator, independent of math/rand
type lcg struct {
	state uint64
}

func (l *lcg) Intn(n int) int {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return int((l.state >> 33) % uint64(n))
}

func TestBid(t *testing.T) {
	// options are: pass, hearts, diamonds, clubs, spades
	contract, err := Bid(&scriptedGen{values: []int{1, 0, 2, 1}}, 0)
	require.NoError(t, err)
	assert.Equal(t, &Contract{Seat: 3, Trump: deck.Hearts}, contract)

	// repeating the current suit does not take the contract
	contract, err = Bid(&scriptedGen{values: []int{4, 4, 0, 0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, &Contract{Seat: 2, Trump: deck.Spades}, contract)

	_, err = Bid(&scriptedGen{}, 1)
	assert.Equal(t, ErrAllPassed, err)
}

func TestDealCards(t *testing.T) {
	var hands [Seats]deck.Hand
	d := deck.New()
	d.Shuffle(rng.NewSeeded(7))

	require.NoError(t, DealCards(d, &hands, 5))
	for _, hand := range hands {
		assert.Len(t, hand, 5)
	}

	require.NoError(t, DealCards(d, &hands, 3))
	assert.Equal(t, 0, d.CardsLeft())

	seen := make(map[deck.Card]bool)
	for _, hand := range hands {
		assert.Len(t, hand, HandSize)
		for _, card := range hand {
			assert.False(t, seen[*card], "duplicate %s", card)
			seen[*card] = true
		}
	}
	assert.Len(t, seen, deck.Size)

	assert.Equal(t, deck.ErrEndOfDeck, DealCards(d, &hands, 1))
}

func TestGame_Setup(t *testing.T) {
	for _, mode := range []DealMode{DealTwoStage, DealSingle} {
		t.Run(mode.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Deal = mode

			g := NewGame(testLogger(), rng.NewSeeded(99), opts)
			assert.NotEmpty(t, g.ID())

			setup, err := g.Setup()
			require.NoError(t, err)
			require.NotNil(t, setup.Contract)
			assert.True(t, setup.Contract.Trump.Valid())
			assert.True(t, setup.Contract.Seat >= 0 && setup.Contract.Seat < Seats)

			_, err = NewRound(testLogger(), setup.Hands, setup.Contract.Trump, opts)
			assert.NoError(t, err, "the deal is a full partition of the deck")
		})
	}
}

func TestGame_Setup_Reproducible(t *testing.T) {
	a, err := NewGame(testLogger(), rng.NewSeeded(5), DefaultOptions()).Setup()
	require.NoError(t, err)
	b, err := NewGame(testLogger(), rng.NewSeeded(5), DefaultOptions()).Setup()
	require.NoError(t, err)

	assert.Equal(t, a.Contract, b.Contract)
	for seat := range a.Hands {
		assert.Equal(t, a.Hands[seat].String(), b.Hands[seat].String())
	}
}

func TestGame_Setup_EverybodyPasses(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxRedeals = 2

	g := NewGame(testLogger(), &scriptedGen{}, opts)
	_, err := g.Setup()
	assert.True(t, errors.Is(err, ErrAllPassed))
	assert.EqualError(t, err, "no contract after 3 deals: every player passed")
}

func TestGame_Setup_Redeal(t *testing.T) {
	// 31 shuffle draws and 4 passing bids, then a shuffle and a bid for clubs from seat 2
	values := make([]int, 0, 80)
	for i := 0; i < 31; i++ {
		values = append(values, 0)
	}
	values = append(values, 0, 0, 0, 0)
	for i := 0; i < 31; i++ {
		values = append(values, 0)
	}
	values = append(values, 0, 3, 0, 0)

	g := NewGame(testLogger(), &scriptedGen{values: values}, DefaultOptions())
	setup, err := g.Setup()
	require.NoError(t, err)
	assert.Equal(t, 1, setup.Redeals)
	assert.Equal(t, &Contract{Seat: 2, Trump: deck.Clubs}, setup.Contract, "the second deal starts bidding at seat 1")
}

func TestGame_PlayRound(t *testing.T) {
	gen := rng.NewSeeded(2024)
	g := NewGame(testLogger(), gen, DefaultOptions())

	random := ChooserFunc(func(_ context.Context, turn *Turn) (*deck.Card, error) {
		return turn.Legal[gen.Intn(len(turn.Legal))], nil
	})

	for i := 0; i < 20; i++ {
		res, err := g.PlayRound(context.Background(), allSeats(random))
		require.NoError(t, err)
		require.NotNil(t, res.Contract)
		assert.Equal(t, res.Contract.Trump, res.Trump)
		assert.Equal(t, TotalPoints, res.Score[0]+res.Score[1])
		assert.Len(t, res.Tricks, Tricks)
	}
}

func TestGame_PlayRound_Recorded(t *testing.T) {
	type recorded struct {
		Contract *Contract      `json:"contract"`
		Tricks   []*TrickRecord `json:"tricks"`
		Score    [2]int         `json:"score"`
	}

	g := NewGame(testLogger(), &lcg{state: 7}, DefaultOptions())
	contracts := []*Contract{
		{Seat: 3, Trump: deck.Clubs},
		{Seat: 0, Trump: deck.Clubs},
		{Seat: 1, Trump: deck.Hearts},
	}
	scores := [][2]int{{16, 136}, {148, 4}, {53, 99}}

	for i := range contracts {
		res, err := g.PlayRound(context.Background(), allSeats(firstLegal()))
		require.NoError(t, err)
		assert.Equal(t, contracts[i], res.Contract, "round %d", i)
		assert.Equal(t, scores[i], res.Score, "round %d", i)

		snapshot.ValidateSnapshot(t, recorded{Contract: res.Contract, Tricks: res.Tricks, Score: res.Score}, 0, "round %d", i)
	}
}

func TestDealMode(t *testing.T) {
	m, err := ParseDealMode("single")
	assert.NoError(t, err)
	assert.Equal(t, DealSingle, m)

	m, err = ParseDealMode("")
	assert.NoError(t, err)
	assert.Equal(t, DealTwoStage, m)

	_, err = ParseDealMode("three")
	assert.Error(t, err)
}
