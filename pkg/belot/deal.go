package belot

import (
	"belot/internal/rng"
	"belot/pkg/deck"
)

// Contract is the outcome of the bidding: the seat that named trump and the suit it named
type Contract struct {
	Seat  int       `json:"seat"`
	Trump deck.Suit `json:"trump"`
}

// DealCards deals n cards to each seat, one card at a time starting at seat 0
func DealCards(d *deck.Deck, hands *[Seats]deck.Hand, n int) error {
	for i := 0; i < n; i++ {
		for seat := range hands {
			card, err := d.Draw()
			if err != nil {
				return err
			}

			hands[seat].AddCard(card)
		}
	}

	return nil
}

// Bid runs the bidding stub. Starting at seat first, each seat either passes or names a suit
// uniformly at random; naming a suit other than the current bid takes the contract.
// There is no strategy here: the contract may land on a seat without a single trump.
func Bid(gen rng.Generator, first int) (*Contract, error) {
	options := append([]deck.Suit{""}, deck.Suits()...)

	var contract *Contract
	for i := 0; i < Seats; i++ {
		seat := (first + i) % Seats
		pick := options[gen.Intn(len(options))]
		if pick == "" {
			continue
		}

		if contract == nil || contract.Trump != pick {
			contract = &Contract{Seat: seat, Trump: pick}
		}
	}

	if contract == nil {
		return nil, ErrAllPassed
	}

	return contract, nil
}
