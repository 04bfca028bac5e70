package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("7c,8c,9d"))
	assert.True(t, hand.HasCard(CardFromString("8c")))
	assert.False(t, hand.HasCard(CardFromString("8s")))
	assert.True(t, hand.HasSuit(Diamonds))
	assert.False(t, hand.HasSuit(Hearts))
}

func TestHand_Discard(t *testing.T) {
	hand := Hand(CardsFromString("7c,8c,9d"))
	assert.True(t, hand.Discard(CardFromString("8c")))
	assert.Equal(t, "7c,9d", CardsToString(hand))
	assert.False(t, hand.Discard(CardFromString("8c")))
	assert.Equal(t, 2, hand.Len())
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("7c"))
	assert.Equal(t, "14s,7c", CardsToString(h))
}

func TestHand_Sorted(t *testing.T) {
	h := Hand(CardsFromString("14s,7c,10h,8h,11d"))
	assert.Equal(t, "8h,10h,11d,7c,14s", h.Sorted().String())
	assert.Equal(t, "14s,7c,10h,8h,11d", h.String(), "original is untouched")
	assert.Equal(t, "10h,8h", h.OfSuit(Hearts).String())
}
