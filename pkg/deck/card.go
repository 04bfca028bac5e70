package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownRank is returned when a card token names a rank outside of 7 through Ace
var ErrUnknownRank = errors.New("unknown card rank")

// ErrUnknownSuit is returned when a card token or suit name is not one of the four suits
var ErrUnknownSuit = errors.New("unknown card suit")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits returns the four suits in deck order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Index returns the position of the suit in deck order, or -1 if the suit is unknown
func (s Suit) Index() int {
	switch s {
	case Hearts:
		return 0
	case Diamonds:
		return 1
	case Clubs:
		return 2
	case Spades:
		return 3
	}

	return -1
}

// Valid returns true if the suit is one of the four suits
func (s Suit) Valid() bool {
	return s.Index() >= 0
}

// SuitFromString parses a suit name ("hearts") or letter ("h")
func SuitFromString(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hearts":
		return Hearts, nil
	case "d", "diamonds":
		return Diamonds, nil
	case "c", "clubs":
		return Clubs, nil
	case "s", "spades":
		return Spades, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Seven = 7
	Eight = 8
	Nine  = 9
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Ranks returns the eight Belot ranks from low to high
func Ranks() []int {
	return []int{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// ValidRank returns true if the rank belongs in a Belot deck
func ValidRank(rank int) bool {
	return rank >= Seven && rank <= Ace
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Validate returns an error if the card is not part of a Belot deck
func (c *Card) Validate() error {
	if !ValidRank(c.Rank) {
		return fmt.Errorf("%w: %d", ErrUnknownRank, c.Rank)
	}

	if !c.Suit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSuit, c.Suit)
	}

	return nil
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]+|[jqka])([a-z])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 7-14 (or J, Q, K, A) and suit in [cdhs]
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %q", s)
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse card %q: %v", s, err)
		}
		rank = r
	}

	suit, err := SuitFromString(match[2])
	if err != nil {
		return nil, err
	}

	card := &Card{Rank: rank, Suit: suit}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// CardFromString is like ParseCard, but panics if the card cannot be parsed
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 7c,8h,14s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
