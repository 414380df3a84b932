// Package console implements the interactive operator session on top of the inventory service.
package console

import (
	"bufio"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abgdnv/inventory/internal/inventory/service"
)

const clearSequence = "\033[H\033[2J"

// Options tunes the presentation of a Session.
type Options struct {
	// ClearScreen clears the terminal between screens.
	ClearScreen bool
}

// Session reads menu selections and item fields from the operator and
// runs exactly one inventory operation per selection.
type Session struct {
	service service.InventoryService
	in      *bufio.Reader
	out     io.Writer
	opts    Options
	logger  *slog.Logger
}

// NewSession creates a session that reads from in and writes to out.
func NewSession(svc service.InventoryService, in io.Reader, out io.Writer, opts Options, logger *slog.Logger) *Session {
	return &Session{
		service: svc,
		in:      bufio.NewReader(in),
		out:     out,
		opts:    opts,
		logger:  logger.With("component", "console"),
	}
}

// Run shows the main menu until the operator exits, the input ends or ctx is cancelled.
// It returns an error only if reading input fails or the inventory rejects a handle
// it issued itself.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Session started")
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("Session cancelled", "reason", err)
			s.goodbye()
			return nil
		}

		s.printMenu()
		choice, err := s.prompt("Please choose from menu: ")
		if err != nil {
			return s.finish(err)
		}
		s.clear()

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addItem()
		case "2":
			s.listItems()
		case "3":
			_, err = s.findItem()
		case "4":
			err = s.editItem()
		case "5":
			err = s.removeItem()
		case "6":
			s.goodbye()
			s.logger.Info("Session ended")
			return nil
		default:
			s.println("Please choose between 1 - 6, then press enter to continue...")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish ends the session; running out of input counts as exiting.
func (s *Session) finish(err error) error {
	if goerrors.Is(err, io.EOF) {
		s.println()
		s.goodbye()
		s.logger.Info("Session ended", "reason", "end of input")
		return nil
	}
	s.logger.Error("Session failed", "error", err)
	return err
}

func (s *Session) printMenu() {
	s.println("======== Bitna Store Inventory Management ==========")
	s.println("1. Add Item")
	s.println("2. List Items")
	s.println("3. Find Item")
	s.println("4. Edit Item")
	s.println("5. Remove Item")
	s.println("6. Exit")
}

func (s *Session) goodbye() {
	s.println("Exiting the Store Inventory Management... Goodbye")
}

func (s *Session) clear() {
	if s.opts.ClearScreen {
		s.printf(clearSequence)
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	_, _ = fmt.Fprintln(s.out, args...)
}
