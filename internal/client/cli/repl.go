package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(s string) { fmt.Println(s) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	hasOpenDeck() bool
	Decks(ctx context.Context) error
	Create(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Cards(ctx context.Context) error
	Add(ctx context.Context) error
	Del(ctx context.Context, arg string) error
	Study(ctx context.Context) error
	Back(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the flashdeck client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current context (deck list or the open deck's name)
// and accepts:
//
//	No deck open:
//	  - help           — show available commands
//	  - decks          — list decks with card counts
//	  - create         — create a deck
//	  - open <n|id>    — open a deck by list number or id
//	  - exit | quit    — leave the program
//
//	Deck open:
//	  - cards          — list the deck's cards
//	  - add            — add a card
//	  - del <n|id>     — delete a card by list number or id
//	  - study          — start a study session
//	  - back           — return to the deck list
//	  - exit | quit    — leave the program
//
// Command handlers report their own errors; the loop prints them and keeps
// going so a failed request never kills the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fd> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		var err error
		switch cmd {
		case "help":
			if a.hasOpenDeck() {
				printlnFn("Available commands: cards, add, del <n>, study, back, exit")
			} else {
				printlnFn("Available commands: decks, create, open <n>, exit")
			}

		case "decks":
			err = a.Decks(ctx)

		case "create":
			err = a.Create(ctx)

		case "open":
			err = a.Open(ctx, arg)

		case "cards":
			err = a.Cards(ctx)

		case "add":
			err = a.Add(ctx)

		case "del":
			err = a.Del(ctx, arg)

		case "study":
			err = a.Study(ctx)

		case "back":
			err = a.Back(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn("Unknown command: " + cmd + " (try: help)")
		}
		if err != nil {
			printlnFn("error: " + err.Error())
		}
	}
}
