package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/bridge-trainer/application"
	"github.com/luca-patrignani/bridge-trainer/config"
	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
	"github.com/luca-patrignani/bridge-trainer/domain/convention"
	"github.com/luca-patrignani/bridge-trainer/domain/deck"
)

const (
	optionExplain = "Explain"
	optionRedeal  = "Redeal"
	optionHistory = "History"
	optionQuit    = "Quit"
	optionNext    = "Next board"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupTerminal(cfg)

	// Create a new slog logger with the default PTerm logger
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	switch {
	case len(os.Args) == 3 && os.Args[1] == "open":
		if err := openCommand(os.Args[2]); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	case len(os.Args) != 1:
		fmt.Fprintf(os.Stderr, "usage: %s [open <spades|hearts|diamonds|clubs>]\n", os.Args[0])
		os.Exit(2)
	}

	if err := train(cfg, logger); err != nil {
		logger.Error("trainer stopped", "error", err)
		os.Exit(1)
	}
}

func setupTerminal(cfg config.Config) {
	pterm.DefaultLogger.Level = logLevel(cfg.LogLevel)
	if !cfg.Color {
		pterm.DisableColor()
	}
}

func logLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

func newDealer(seed string) *deck.Dealer {
	if seed == "" {
		return deck.NewDealer(nil)
	}
	return deck.NewSeededDealer([]byte(seed))
}

// openCommand prints what North would open with hand.
func openCommand(notation string) error {
	h, err := parseFullHand(notation)
	if err != nil {
		return err
	}
	pterm.DefaultBasicText.Println(handBox("Hand", h, true))
	report, err := openingReport(h)
	if err != nil {
		return err
	}
	pterm.Info.Println(report)
	return nil
}

func parseFullHand(notation string) (*bridge.Hand, error) {
	h, err := bridge.ParseHand(notation)
	if err != nil {
		return nil, err
	}
	// NewHand rejects duplicates and short hands
	return bridge.NewHand(h.Cards()...)
}

func openingReport(h *bridge.Hand) (string, error) {
	e := convention.New(h, bridge.VulnerableNone, 0)
	p, err := e.Start()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Opening: %s (%s)", p.Call, p.Rationale), nil
}

func banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("idding ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("rainer", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func train(cfg config.Config, logger *slog.Logger) error {
	banner()
	if cfg.Seed != "" {
		pterm.Info.Printfln("Seeded deals: %q", cfg.Seed)
	}
	session := application.NewSession(newDealer(cfg.Seed), bridge.Board(cfg.FirstBoard), logger)

	for {
		tr, err := session.NextBoard()
		if err != nil {
			return err
		}
		next, err := playBoard(tr, session)
		if err != nil {
			return err
		}
		if !next {
			break
		}
	}
	if err := session.Ledger().Verify(); err != nil {
		return fmt.Errorf("session history is corrupt: %w", err)
	}
	pterm.Success.Printfln("Bid %d boards", len(session.History()))
	return nil
}

// playBoard runs the auction of one board. It reports whether to deal another.
func playBoard(tr *application.Trainer, session *application.Session) (bool, error) {
	for {
		printBoard(tr)
		if tr.Finished() {
			return afterAuction(tr, session)
		}

		calls := tr.LegalCalls()
		options := callOptions(calls)
		options = append(options, optionExplain, optionRedeal, optionHistory, optionQuit)
		selected, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("Your call").
			WithOptions(options).
			WithMaxHeight(12).
			Show()
		if err != nil {
			return false, err
		}

		switch selected {
		case optionExplain:
			explain(tr)
		case optionRedeal:
			pterm.Info.Println("Redealing")
			return true, nil
		case optionHistory:
			showHistory(session)
		case optionQuit:
			if confirmQuit() {
				return false, nil
			}
		default:
			call, ok := optionCall(calls, selected)
			if !ok {
				pterm.Error.Printfln("Unknown option %q", selected)
				continue
			}
			if err := tr.Apply(call); err != nil {
				if errors.Is(err, bridge.ErrInsufficientBid) || errors.Is(err, application.ErrNotYourTurn) {
					pterm.Error.Printfln("Invalid call: %s", err.Error())
					continue
				}
				return false, err
			}
			if tr.Confused() {
				explain(tr)
			}
		}
	}
}

func afterAuction(tr *application.Trainer, session *application.Session) (bool, error) {
	pterm.Success.Printfln("Final contract: %s", contractText(tr))
	for {
		selected, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{optionNext, optionExplain, optionHistory, optionQuit}).
			Show()
		if err != nil {
			return false, err
		}
		switch selected {
		case optionNext:
			return true, nil
		case optionExplain:
			explain(tr)
		case optionHistory:
			showHistory(session)
		case optionQuit:
			if confirmQuit() {
				return false, nil
			}
		}
	}
}

func explain(tr *application.Trainer) {
	ex, ok := tr.Explanation()
	if !ok {
		pterm.Info.Println("North has not called yet.")
		return
	}
	pterm.DefaultBasicText.Println(explanationPanel(ex))
}

func showHistory(session *application.Session) {
	records := session.History()
	if len(records) == 0 {
		pterm.Info.Println("No finished boards yet.")
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(historyTable(records)).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func confirmQuit() bool {
	ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Leave the trainer?").WithDefaultValue(false).Show()
	return ok
}

// callOptions labels each call for the select prompt.
func callOptions(calls []bridge.Call) []string {
	options := make([]string, len(calls))
	for i, c := range calls {
		options[i] = c.String()
	}
	return options
}

func optionCall(calls []bridge.Call, selected string) (bridge.Call, bool) {
	for _, c := range calls {
		if c.String() == selected {
			return c, true
		}
	}
	return bridge.Call{}, false
}
