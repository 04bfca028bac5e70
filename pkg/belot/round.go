package belot

import (
	"belot/pkg/deck"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TrickRecord is a completed trick
type TrickRecord struct {
	Number int          `json:"number"`
	Leader int          `json:"leader"`
	Cards  []*deck.Card `json:"cards"`
	Winner int          `json:"winner"`
	Points int          `json:"points"`
	// Score is the cumulative score per team after this trick
	Score [2]int `json:"score"`
}

// Seat returns the seat that played cards[offset]
func (t *TrickRecord) Seat(offset int) int {
	return (t.Leader + offset) % Seats
}

// Anomaly records a Chooser that broke its contract and the card played in its place
type Anomaly struct {
	Trick      int        `json:"trick"`
	Seat       int        `json:"seat"`
	Chosen     *deck.Card `json:"chosen"`
	Substitute *deck.Card `json:"substitute"`
	Reason     string     `json:"reason"`
}

// Result is the outcome of a round
type Result struct {
	ID        string         `json:"id"`
	Trump     deck.Suit      `json:"trump"`
	Contract  *Contract      `json:"contract,omitempty"`
	Tricks    []*TrickRecord `json:"tricks"`
	Score     [2]int         `json:"score"`
	Anomalies []*Anomaly     `json:"anomalies"`
}

// WinningTeam returns the team with more points, or -1 on a tie
func (r *Result) WinningTeam() int {
	switch {
	case r.Score[0] > r.Score[1]:
		return 0
	case r.Score[1] > r.Score[0]:
		return 1
	}

	return -1
}

// Round is eight tricks played with a fixed trump.
// A Round is not safe for concurrent use.
type Round struct {
	id      string
	options Options
	trump   deck.Suit
	hands   [Seats]deck.Hand

	trickNo   int
	trick     *Trick
	score     [2]int
	tricks    []*TrickRecord
	anomalies []*Anomaly

	logger logrus.FieldLogger
}

// NewRound validates the deal and returns a round ready for the first lead from seat 0
func NewRound(logger logrus.FieldLogger, hands [Seats]deck.Hand, trump deck.Suit, opts Options) (*Round, error) {
	if !trump.Valid() {
		return nil, fmt.Errorf("%w: trump %q", deck.ErrUnknownSuit, trump)
	}

	seen := make(map[deck.Card]bool, deck.Size)
	var copied [Seats]deck.Hand
	for seat, hand := range hands {
		if len(hand) != HandSize {
			return nil, HandSizeError{Seat: seat, Want: HandSize, Got: len(hand)}
		}

		for _, card := range hand {
			if card == nil {
				return nil, fmt.Errorf("seat %d: nil card", seat)
			}

			if err := card.Validate(); err != nil {
				return nil, fmt.Errorf("seat %d: %w", seat, err)
			}

			if seen[*card] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
			}
			seen[*card] = true
		}

		copied[seat] = hand.Clone()
	}

	id := uuid.New().String()
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Round{
		id:      id,
		options: opts,
		trump:   trump,
		hands:   copied,
		trick:   NewTrick(0),
		tricks:  make([]*TrickRecord, 0, Tricks),
		logger:  logger.WithFields(logrus.Fields{"round": id, "trump": trump}),
	}, nil
}

// ID returns the round's unique id
func (r *Round) ID() string {
	return r.id
}

// Trump returns the trump suit
func (r *Round) Trump() deck.Suit {
	return r.trump
}

// Score returns the cumulative score per team
func (r *Round) Score() [2]int {
	return r.score
}

// Hand returns a clone of the seat's hand
func (r *Round) Hand(seat int) deck.Hand {
	return r.hands[seat].Clone()
}

// CurrentTrick returns a copy of the trick in progress
func (r *Round) CurrentTrick() *Trick {
	return &Trick{
		Leader: r.trick.Leader,
		Cards:  append([]*deck.Card{}, r.trick.Cards...),
	}
}

// IsOver returns true after the last trick is resolved
func (r *Round) IsOver() bool {
	return r.trickNo >= Tricks
}

// CurrentSeat returns the seat due to play, or -1 if the round is over
func (r *Round) CurrentSeat() int {
	if r.IsOver() {
		return -1
	}

	return r.trick.NextSeat()
}

// LegalMoves returns the cards the seat may play right now
func (r *Round) LegalMoves(seat int) (deck.Hand, error) {
	lead, _ := r.trick.LeadSuit()
	return LegalMoves(r.hands[seat], r.trick.Cards, lead, r.trump, seat, r.options.Rules)
}

// PlayCard plays the card for the seat.
// The fourth card of a trick resolves it and scores it.
func (r *Round) PlayCard(seat int, card *deck.Card) error {
	if r.IsOver() {
		return ErrRoundIsOver
	}

	if seat != r.CurrentSeat() {
		return ErrIsNotPlayersTurn
	}

	if card == nil || !r.hands[seat].HasCard(card) {
		return ErrCardNotInPlayersHand
	}

	legal, err := r.LegalMoves(seat)
	if err != nil {
		return err
	}

	if !IsLegal(legal, card) {
		return ErrIllegalCard
	}

	r.hands[seat].Discard(card)
	r.trick.Add(card)
	r.logger.WithFields(logrus.Fields{
		"trick": r.trickNo,
		"seat":  seat,
		"card":  card.String(),
	}).Debug("card played")

	if r.trick.IsComplete() {
		return r.resolveTrick()
	}

	return nil
}

// resolveTrick is called after the fourth card of a trick has been played
func (r *Round) resolveTrick() error {
	winner, err := r.trick.Winner(r.trump)
	if err != nil {
		return err
	}

	points := TrickPoints(r.trick.Cards, r.trump)
	r.score[TeamOf(winner)] += points

	record := &TrickRecord{
		Number: r.trickNo,
		Leader: r.trick.Leader,
		Cards:  r.trick.Cards,
		Winner: winner,
		Points: points,
		Score:  r.score,
	}
	r.tricks = append(r.tricks, record)

	r.logger.WithFields(logrus.Fields{
		"trick":  r.trickNo,
		"cards":  deck.CardsToString(record.Cards),
		"winner": winner,
		"points": points,
	}).Info("trick resolved")

	r.trickNo++
	r.trick = NewTrick(winner)

	if r.IsOver() {
		return r.checkTotals()
	}

	return nil
}

func (r *Round) checkTotals() error {
	for seat, hand := range r.hands {
		if len(hand) != 0 {
			return fmt.Errorf("seat %d still holds %d cards: %w", seat, len(hand), ErrPointTotal)
		}
	}

	if total := r.score[0] + r.score[1]; total != TotalPoints {
		return fmt.Errorf("%w: awarded %d, expected %d", ErrPointTotal, total, TotalPoints)
	}

	return nil
}

// Result returns the result once the round is over
func (r *Round) Result() (*Result, error) {
	if !r.IsOver() {
		return nil, ErrRoundNotOver
	}

	return &Result{
		ID:        r.id,
		Trump:     r.trump,
		Tricks:    append([]*TrickRecord{}, r.tricks...),
		Score:     r.score,
		Anomalies: append([]*Anomaly{}, r.anomalies...),
	}, nil
}

// Play asks each seat's Chooser for a card until the round is over.
// A Chooser that errors or returns a card outside of the legal set is replaced, for that turn,
// by the first legal card in hand order (see deck.Hand.Less) and the breach is recorded as an Anomaly.
func (r *Round) Play(ctx context.Context, choosers [Seats]Chooser) (*Result, error) {
	for seat, c := range choosers {
		if c == nil {
			return nil, fmt.Errorf("no chooser for seat %d", seat)
		}
	}

	for !r.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seat := r.CurrentSeat()
		legal, err := r.LegalMoves(seat)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}

		if len(legal) == 0 {
			return nil, fmt.Errorf("seat %d: %w", seat, ErrEmptyLegalMoves)
		}

		card, err := choosers[seat].ChooseCard(ctx, r.turn(seat, legal))
		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return nil, err
		}

		if err != nil || !IsLegal(legal, card) {
			card = r.substitute(seat, legal, card, err)
		}

		if err := r.PlayCard(seat, card); err != nil {
			return nil, err
		}
	}

	return r.Result()
}

func (r *Round) turn(seat int, legal deck.Hand) *Turn {
	lead, hasLead := r.trick.LeadSuit()
	return &Turn{
		Seat:     seat,
		Legal:    legal.Clone(),
		Hand:     r.hands[seat].Clone(),
		Trick:    append([]*deck.Card{}, r.trick.Cards...),
		Trump:    r.trump,
		LeadSuit: lead,
		HasLead:  hasLead,
	}
}

func (r *Round) substitute(seat int, legal deck.Hand, chosen *deck.Card, err error) *deck.Card {
	fallback := legal.Sorted()[0]

	reason := "card is not a legal move"
	switch {
	case err != nil:
		reason = err.Error()
	case chosen == nil:
		reason = "no card chosen"
	}

	r.anomalies = append(r.anomalies, &Anomaly{
		Trick:      r.trickNo,
		Seat:       seat,
		Chosen:     chosen,
		Substitute: fallback,
		Reason:     reason,
	})

	r.logger.WithFields(logrus.Fields{
		"trick":      r.trickNo,
		"seat":       seat,
		"chosen":     deck.CardToString(chosen),
		"substitute": fallback.String(),
	}).Warn(reason)

	return fallback
}
