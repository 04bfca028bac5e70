package belot

import (
	"errors"
	"fmt"
)

// ErrRoundNotOver is an error when the round result is requested before the last trick
var ErrRoundNotOver = errors.New("the round is not over")

// ErrRoundIsOver is an error when cards beyond the last trick are played
var ErrRoundIsOver = errors.New("the round is over")

// ErrIsNotPlayersTurn is returned when it's not the seat's turn
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrCardNotInPlayersHand happens when the player tries to play a card they don't have
var ErrCardNotInPlayersHand = errors.New("card is not in player's hand")

// ErrIllegalCard happens when the card is in the player's hand but breaks the follow or trump rules
var ErrIllegalCard = errors.New("card is not a legal move")

// ErrDuplicateCard is an error when the same card was dealt twice
var ErrDuplicateCard = errors.New("duplicate card detected")

// ErrTrickLength is an error when a trick is resolved with no cards or more than four
var ErrTrickLength = errors.New("trick must hold between one and four cards")

// ErrNoLeadCard is an error when no card in the trick matches the lead suit or trump
var ErrNoLeadCard = errors.New("trick has no card of the lead suit")

// ErrLeadSuitMismatch is an error when the lead suit given for a trick is not the suit of its first card
var ErrLeadSuitMismatch = errors.New("lead suit does not match the first card of the trick")

// ErrEmptyLegalMoves is an internal error when a player has no legal move
var ErrEmptyLegalMoves = errors.New("no legal moves")

// ErrPointTotal is an error when a finished round did not award every card point exactly once
var ErrPointTotal = errors.New("round point total mismatch")

// ErrAllPassed happens when every seat passes during bidding
var ErrAllPassed = errors.New("every player passed")

// HandSizeError is an error on the number of cards dealt to a seat
type HandSizeError struct {
	Seat int
	Want int
	Got  int
}

func (h HandSizeError) Error() string {
	return fmt.Sprintf("seat %d: expected %d cards, got %d", h.Seat, h.Want, h.Got)
}
