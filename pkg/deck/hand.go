package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by suit (deck order), then by rank
func (h Hand) Less(i, j int) bool {
	if si, sj := h[i].Suit.Index(), h[j].Suit.Index(); si != sj {
		return si < sj
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand holds at least one card of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// OfSuit returns the cards of the given suit, in hand order
func (h Hand) OfSuit(suit Suit) Hand {
	var out Hand
	for _, c := range h {
		if c.Suit == suit {
			out = append(out, c)
		}
	}

	return out
}

// Discard will remove the specified card and return true if it was found
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			newHand = append(newHand, (*h)[i+1:]...)
			*h = newHand
			return true
		}
	}

	return false
}

// Sorted returns a sorted clone of the hand
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)
	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
