package policy

import (
	"belot/pkg/belot"
	"belot/pkg/deck"
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type inputLine struct {
	text string
	err  error
}

// Input hands out lines from one stream to every Human seat reading it.
// Lines are read on a single goroutine so a waiting seat can give up when its context is done.
// A pending read keeps that goroutine until the stream yields a line or ends; the line then goes
// to the next caller.
type Input struct {
	r     *bufio.Reader
	lines chan inputLine
	once  sync.Once
}

// NewInput returns an Input reading from r
func NewInput(r io.Reader) *Input {
	return &Input{
		r:     bufio.NewReader(r),
		lines: make(chan inputLine),
	}
}

func (in *Input) read() {
	defer close(in.lines)
	for {
		text, err := in.r.ReadString('\n')
		in.lines <- inputLine{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// ReadLine returns the next line, or ctx.Err() if ctx is done first.
// Once the stream has ended every call returns io.EOF.
func (in *Input) ReadLine(ctx context.Context) (string, error) {
	in.once.Do(func() { go in.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}

		return line.text, line.err
	}
}

// Human prompts for a card on out and reads the answer from in
type Human struct {
	in  *Input
	out io.Writer
}

// NewHuman returns a Human policy. Seats sharing a terminal must share in
func NewHuman(in *Input, out io.Writer) *Human {
	return &Human{
		in:  in,
		out: out,
	}
}

// ChooseCard asks until it gets a legal card. It returns an error if the input ends or ctx is done
func (h *Human) ChooseCard(ctx context.Context, turn *belot.Turn) (*deck.Card, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h.prompt(turn)
		line, err := h.in.ReadLine(ctx)
		line = strings.TrimSpace(line)
		if line == "" && err != nil {
			return nil, err
		}

		card, parseErr := deck.ParseCard(line)
		if parseErr != nil {
			_, _ = fmt.Fprintf(h.out, "%v\n", parseErr)
			continue
		}

		if !belot.IsLegal(turn.Legal, card) {
			_, _ = fmt.Fprintf(h.out, "%s is not a legal move\n", card)
			continue
		}

		return card, nil
	}
}

func (h *Human) prompt(turn *belot.Turn) {
	trick := "(you lead)"
	if turn.HasLead {
		trick = cardList(turn.Trick)
	}

	_, _ = fmt.Fprintf(h.out, "seat %d, trump %s, trick %s\n", turn.Seat, turn.Trump, trick)
	_, _ = fmt.Fprintf(h.out, "hand:  %s\n", cardList(turn.Hand))
	_, _ = fmt.Fprintf(h.out, "legal: %s\n", cardList(turn.Legal))
	_, _ = fmt.Fprint(h.out, "card (e.g. 11h, 10s, ad): ")
}

func cardList(cards []*deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}
