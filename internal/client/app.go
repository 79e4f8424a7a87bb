// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-car-rental/internal/adapter"
	"github.com/MKhiriev/go-car-rental/internal/logger"
)

type command struct {
	usage string
	// authenticated commands fail fast without a stored token.
	authenticated bool
	run           func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

var _ Client = (*App)(nil)

// App dispatches subcommands to the rental API.
type App struct {
	api      adapter.RentalAPI
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

// NewApp constructs the client over api. Results are written to out.
func NewApp(api adapter.RentalAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:    api,
		out:    out,
		logger: logger,
	}

	a.commands = map[string]command{
		"signup":  {usage: "-u <username> -p <password>", run: a.signup},
		"login":   {usage: "-u <username> -p <password>", run: a.login},
		"create":  {usage: "-car <name> -days <n> -rent <per day>", authenticated: true, run: a.createBooking},
		"list":    {usage: "", authenticated: true, run: a.listBookings},
		"get":     {usage: "-id <booking id>", authenticated: true, run: a.getBooking},
		"summary": {usage: "", authenticated: true, run: a.summary},
		"status":  {usage: "-id <booking id> -status booked|completed|cancelled", authenticated: true, run: a.updateStatus},
		"edit":    {usage: "-id <booking id> [-car <name>] [-days <n>] [-rent <per day>]", authenticated: true, run: a.editBooking},
		"delete":  {usage: "-id <booking id>", authenticated: true, run: a.deleteBooking},
		"ping":    {usage: "", run: a.ping},
		"version": {usage: "", run: a.version},
	}

	return a
}

// Run executes the subcommand named by args[0] with the remaining args as
// its flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if cmd.authenticated && a.api.Token() == "" {
		return ErrNotLoggedIn
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	a.logger.Debug().Str("command", name).Msg("running command")
	if err := cmd.run(ctx, fs, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Usage writes the list of subcommands and their flags to w.
func (a *App) Usage(w io.Writer) {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w, "usage: car-rental [-a url] [-t token] [-timeout d] [-log-level l] <command> [flags]")
	_, _ = fmt.Fprintln(w, "commands:")
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", name, a.commands[name].usage)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, fs.Args())
	}
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
