// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-car-rental/models"
)

func credentialsFlags(fs *flag.FlagSet, args []string) (models.Credentials, error) {
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := parseFlags(fs, args); err != nil {
		return models.Credentials{}, err
	}
	if *username == "" || *password == "" {
		return models.Credentials{}, fmt.Errorf("%w: -u and -p", ErrMissingFlag)
	}
	return models.Credentials{Username: *username, Password: *password}, nil
}

// bookingIDFlag registers -id and returns a getter validating it after
// parsing.
func bookingIDFlag(fs *flag.FlagSet) func() (int64, error) {
	id := fs.Int64("id", 0, "booking id")
	return func() (int64, error) {
		if *id <= 0 {
			return 0, fmt.Errorf("%w: -id", ErrMissingFlag)
		}
		return *id, nil
	}
}

func (a *App) signup(ctx context.Context, fs *flag.FlagSet, args []string) error {
	creds, err := credentialsFlags(fs, args)
	if err != nil {
		return err
	}

	userID, err := a.api.Signup(ctx, creds)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "user %q created with id %d\n", creds.Username, userID)
	return err
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	creds, err := credentialsFlags(fs, args)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) createBooking(ctx context.Context, fs *flag.FlagSet, args []string) error {
	carName := fs.String("car", "", "car name")
	days := fs.Int("days", 0, "rental days")
	rent := fs.Float64("rent", 0, "rent per day")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *carName == "" {
		return fmt.Errorf("%w: -car", ErrMissingFlag)
	}

	created, err := a.api.CreateBooking(ctx, models.CreateBookingRequest{CarName: *carName, Days: *days, RentPerDay: *rent})
	if err != nil {
		return err
	}
	return a.printJSON(created)
}

func (a *App) listBookings(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	views, err := a.api.ListBookings(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(views)
}

func (a *App) getBooking(ctx context.Context, fs *flag.FlagSet, args []string) error {
	bookingID := bookingIDFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := bookingID()
	if err != nil {
		return err
	}

	view, err := a.api.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(view)
}

func (a *App) summary(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	summary, err := a.api.GetSummary(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(summary)
}

func (a *App) updateStatus(ctx context.Context, fs *flag.FlagSet, args []string) error {
	bookingID := bookingIDFlag(fs)
	status := fs.String("status", "", "booked, completed or cancelled")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := bookingID()
	if err != nil {
		return err
	}
	if !models.BookingStatus(*status).IsValid() {
		return fmt.Errorf("%w: -status %q", ErrInvalidFlags, *status)
	}

	view, err := a.api.UpdateBookingStatus(ctx, id, models.BookingStatus(*status))
	if err != nil {
		return err
	}
	return a.printJSON(view)
}

func (a *App) editBooking(ctx context.Context, fs *flag.FlagSet, args []string) error {
	bookingID := bookingIDFlag(fs)
	carName := fs.String("car", "", "car name")
	days := fs.Int("days", 0, "rental days")
	rent := fs.Float64("rent", 0, "rent per day")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := bookingID()
	if err != nil {
		return err
	}

	// Only flags given on the command line end up in the request.
	var req models.EditBookingRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "car":
			req.CarName = carName
		case "days":
			req.Days = days
		case "rent":
			req.RentPerDay = rent
		}
	})
	if req.CarName == nil && req.Days == nil && req.RentPerDay == nil {
		return fmt.Errorf("%w: give at least one of -car, -days, -rent", ErrNothingToEdit)
	}

	view, err := a.api.EditBooking(ctx, id, req)
	if err != nil {
		return err
	}
	return a.printJSON(view)
}

func (a *App) deleteBooking(ctx context.Context, fs *flag.FlagSet, args []string) error {
	bookingID := bookingIDFlag(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := bookingID()
	if err != nil {
		return err
	}

	if err = a.api.DeleteBooking(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "booking %d deleted\n", id)
	return err
}

func (a *App) ping(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := a.api.Ping(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "ok")
	return err
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	info, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(info)
}
