package main

import (
	"belot/internal/config"
	"belot/pkg/belot"
	"belot/pkg/deck"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

func printHeader(cfg config.Config, names []string) {
	pterm.DefaultHeader.Printfln("Belot: %d round(s), %s rules, seed %d", cfg.Rounds, cfg.Rules, cfg.Seed)
	for seat, name := range names {
		pterm.Info.Printfln("seat %d (team %s): %s, %s", seat, teamName(belot.TeamOf(seat)), name, cfg.Policies[seat])
	}
}

func printRound(n int, res *belot.Result, names []string) {
	pterm.DefaultSection.Printfln("Round %d", n)
	if res.Contract != nil {
		pterm.Info.Printfln("%s named %s", names[res.Contract.Seat], res.Contract.Trump)
	}

	data := pterm.TableData{{"#", "Seat 0", "Seat 1", "Seat 2", "Seat 3", "Winner", "Points", "Score"}}
	for _, trick := range res.Tricks {
		row := []string{strconv.Itoa(trick.Number + 1), "", "", "", ""}
		for offset, card := range trick.Cards {
			seat := trick.Seat(offset)
			row[seat+1] = cardCell(card, offset == 0, seat == trick.Winner, res.Trump)
		}

		row = append(row,
			names[trick.Winner],
			strconv.Itoa(trick.Points),
			fmt.Sprintf("%d - %d", trick.Score[0], trick.Score[1]),
		)
		data = append(data, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logrus.WithError(err).Error("could not render round")
	}

	for _, anomaly := range res.Anomalies {
		pterm.Warning.Printfln("trick %d, seat %d: %s (played %s)", anomaly.Trick+1, anomaly.Seat, anomaly.Reason, anomaly.Substitute)
	}

	pterm.Info.Printfln("team A %d, team B %d", res.Score[0], res.Score[1])
}

func cardCell(card *deck.Card, led, won bool, trump deck.Suit) string {
	s := card.String()
	if led {
		s = "›" + s
	}

	switch {
	case won:
		return pterm.LightGreen(s)
	case card.Suit == trump:
		return pterm.LightYellow(s)
	}

	return s
}

func printTotals(totals [2]int, names []string) {
	body := fmt.Sprintf("Team A (%s, %s): %d\nTeam B (%s, %s): %d",
		names[0], names[2], totals[0], names[1], names[3], totals[1])

	pterm.DefaultBox.WithTitle("Final score").WithTitleTopCenter().Println(body)
}

func teamName(team int) string {
	if team == 0 {
		return "A"
	}

	return "B"
}
