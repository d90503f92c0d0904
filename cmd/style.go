package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/bridge-trainer/application"
	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

// tableSeats is the column order of the auction table.
var tableSeats = [4]bridge.Seat{bridge.West, bridge.North, bridge.East, bridge.South}

func suitColor(s bridge.Suit, text string) string {
	if s == bridge.Hearts || s == bridge.Diamonds {
		return pterm.LightRed(text)
	}
	return text
}

func callLabel(c bridge.Call) string {
	b, ok := c.Bid()
	if !ok {
		return c.String()
	}
	if s, isSuit := b.Strain.Suit(); isSuit {
		return suitColor(s, c.String())
	}
	return c.String()
}

// handLines renders one line per suit, spades first.
func handLines(h *bridge.Hand) []string {
	bySuit := h.BySuit()
	lines := make([]string, 0, 4)
	for i := len(bridge.Suits) - 1; i >= 0; i-- {
		s := bridge.Suits[i]
		ranks := "-"
		if len(bySuit[s]) > 0 {
			var b strings.Builder
			for _, r := range bySuit[s] {
				b.WriteByte(r.Symbol())
			}
			ranks = b.String()
		}
		lines = append(lines, suitColor(s, s.Symbol())+" "+ranks)
	}
	return lines
}

func handSummary(h *bridge.Hand) string {
	balance := "unbalanced"
	if h.IsBalanced() {
		balance = "balanced"
	}
	return fmt.Sprintf("%d HCP, %s, %s", h.HCP(), h.Shape(), balance)
}

func handBox(title string, h *bridge.Hand, main bool) string {
	hpadding := 4
	if main {
		hpadding = 8
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	body := strings.Join(handLines(h), "\n")
	if main {
		body += "\n\n" + handSummary(h)
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(body)
}

func seatTitle(tr *application.Trainer, seat bridge.Seat, name string) string {
	title := name
	if tr.Vulnerability().Vulnerable(seat) {
		title = pterm.LightRed(name + " (vul)")
	}
	if tr.Dealer() == seat {
		title += " D"
	}
	return title
}

// auctionRows lays the calls out under West, North, East and South.
// The pending call is shown as "?".
func auctionRows(dealer bridge.Seat, calls []bridge.Call, finished bool) [][]string {
	cells := make([]string, 0, len(calls)+4)
	for _, s := range tableSeats {
		if s == dealer {
			break
		}
		cells = append(cells, "")
	}
	for _, c := range calls {
		cells = append(cells, callLabel(c))
	}
	if !finished {
		cells = append(cells, "?")
	}
	var rows [][]string
	for len(cells) > 0 {
		n := min(4, len(cells))
		row := make([]string, 4)
		copy(row, cells[:n])
		rows = append(rows, row)
		cells = cells[n:]
	}
	return rows
}

func auctionTable(tr *application.Trainer) pterm.TableData {
	header := make([]string, 0, 4)
	for _, s := range tableSeats {
		header = append(header, seatTitle(tr, s, s.String()))
	}
	data := pterm.TableData{header}
	return append(data, auctionRows(tr.Dealer(), tr.Calls(), tr.Finished())...)
}

func contractText(tr *application.Trainer) string {
	contract, declarer, ok := tr.Contract()
	if !ok {
		return "Passed out"
	}
	return fmt.Sprintf("%s by %s", callLabel(contract.Call()), declarer)
}

func printBoard(tr *application.Trainer) {
	north := pterm.Panel{Data: handBox(seatTitle(tr, bridge.North, "North (partner)"), tr.Hand(bridge.North), false)}
	auction, _ := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(auctionTable(tr)).Srender()
	south := pterm.Panel{Data: handBox(seatTitle(tr, bridge.South, "South (you)"), tr.Hand(bridge.South), true)}

	pterm.DefaultSection.Printfln("Board %d", tr.Board())
	pterm.DefaultPanel.WithPanels(pterm.Panels{
		{north},
		{pterm.Panel{Data: auction}},
		{south},
	}).Render()
}

func explanationPanel(ex application.Explanation) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow("|NORTH'S " + strings.ToUpper(ex.Call.String()) + "|")
	text := ex.Text
	if ex.Unhandled {
		title = pterm.LightRed("|NORTH IS CONFUSED|")
	}
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(text)
}

func historyTable(records []application.Record) pterm.TableData {
	data := pterm.TableData{{"Board", "Dealer", "Vul", "Auction", "Contract"}}
	for _, r := range records {
		contract := "Passed out"
		if r.Contract != "" {
			contract = r.Contract + " by " + r.Declarer
		}
		data = append(data, []string{
			fmt.Sprint(r.Board), r.Dealer, r.Vulnerability, strings.Join(r.Calls, " "), contract,
		})
	}
	return data
}
