// flatctl is the one-shot command line surface over the same screens the bot
// drives: search listings, view a flat, create and cancel bookings, list
// active bookings for the stored email.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/flatly"
	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/observability"
	redisad "github.com/JianhaoLuo18/UniFrontend/internal/adapters/redis"
	"github.com/JianhaoLuo18/UniFrontend/internal/app"
	"github.com/JianhaoLuo18/UniFrontend/internal/domain"
	"github.com/JianhaoLuo18/UniFrontend/internal/prefs"
	"github.com/JianhaoLuo18/UniFrontend/internal/screens"
	"github.com/JianhaoLuo18/UniFrontend/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv).Level(zerolog.WarnLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client, err := flatly.New(cfg.BackendBase, cfg.HTTPTimeout)
	if err != nil {
		fatal(err.Error())
	}
	prefsPath := cfg.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	store := prefs.New(prefsPath)
	summaries := app.NewSummaryService(client, redisad.Noop{}, cfg.CacheTTL, cfg.EnrichWorkers)

	ctx := context.Background()

	switch os.Args[1] {
	case "search":
		runSearch(ctx, client, os.Args[2:])
	case "flat":
		runFlat(ctx, client, os.Args[2:])
	case "book":
		runBook(ctx, client, store, os.Args[2:])
	case "bookings":
		runBookings(ctx, client, store, summaries, os.Args[2:])
	case "cancel":
		runCancel(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func runSearch(ctx context.Context, client domain.FlatAPI, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	location := fs.String("location", "", "location filter (empty = any)")
	minPrice := fs.Int("min-price", 0, "minimum monthly price (0 = none)")
	maxPrice := fs.Int("max-price", 0, "maximum monthly price (0 = none)")
	rooms := fs.Int("rooms", 0, "room count (0 = any)")
	maxDistance := fs.Float64("max-distance", 0, "maximum distance in km (0 = any)")
	_ = fs.Parse(args)

	s := screens.NewSearch(client)
	s.Filters = domain.SearchFilters{
		Location:    *location,
		MinPrice:    *minPrice,
		MaxPrice:    *maxPrice,
		RoomNumber:  *rooms,
		MaxDistance: *maxDistance,
	}
	s.Submit(ctx)

	if s.Phase() == screens.PhaseFailed {
		fatal(s.ErrorMessage())
	}
	if len(s.Flats()) == 0 {
		fmt.Println("No flats found.")
		return
	}
	for _, f := range s.Flats() {
		fmt.Println(flatLine(f))
	}
}

func runFlat(ctx context.Context, client domain.FlatAPI, args []string) {
	fs := flag.NewFlagSet("flat", flag.ExitOnError)
	id := fs.Int64("id", 0, "flat id")
	_ = fs.Parse(args)
	if *id == 0 {
		fatal("flat: -id is required")
	}

	d := screens.NewFlatDetail(client)
	d.Load(ctx, *id)
	f, ok := d.Flat()
	if !ok {
		fatal("Flat details not available: " + d.ErrorMessage())
	}

	fmt.Println(flatLine(f))
	if f.Description != "" {
		fmt.Println(f.Description)
	}
	if len(f.Amenities) > 0 {
		fmt.Println("Amenities: " + strings.Join(f.Amenities, ", "))
	}
	for _, img := range f.Images {
		fmt.Println("Image: " + img)
	}
}

func runBook(ctx context.Context, client domain.FlatAPI, store domain.PrefStore, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	flatID := fs.Int64("flat", 0, "flat id to book")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	email := fs.String("email", "", "email (defaults to the stored one)")
	_ = fs.Parse(args)

	form := screens.NewBookingForm(client, store, *flatID)
	form.StartDate = *start
	form.EndDate = *end
	if *email != "" {
		form.Email = *email
	}
	form.Submit(ctx)

	if form.State() != screens.FormDone {
		fatal(form.Message())
	}
	created, _ := form.Created()
	fmt.Printf("Booking #%d confirmed: flat %d, %s – %s\n",
		created.ID, created.FlatID, created.StartDate, created.EndDate)
}

// emailOverride satisfies the pref-store port with a fixed address, letting
// -email bypass whatever is stored on disk without touching it.
type emailOverride struct{ email string }

func (e emailOverride) SaveEmail(string) error           { return nil }
func (e emailOverride) LoadEmail() (string, bool, error) { return e.email, true, nil }

func runBookings(ctx context.Context, client domain.FlatAPI, store domain.PrefStore, summaries *app.SummaryService, args []string) {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	email := fs.String("email", "", "email to list for (defaults to the stored one)")
	_ = fs.Parse(args)
	if *email != "" {
		store = emailOverride{email: *email}
	}

	l := screens.NewBookingList(client, store, summaries)
	l.Load(ctx)

	switch {
	case l.NeedsEmail():
		fmt.Println("You haven't made a booking yet. Book a flat to see your active bookings.")
	case l.Phase() == screens.PhaseFailed:
		fatal(l.ErrorMessage())
	case l.Empty():
		fmt.Println("No active bookings found.")
	default:
		for _, card := range l.Cards() {
			bk := card.Booking()
			fmt.Printf("#%d  %s  %s – %s  [%s]\n",
				bk.ID, card.Flat().Name, bk.StartDate, bk.EndDate, bk.Status)
		}
	}
}

func runCancel(ctx context.Context, client domain.FlatAPI, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.Int64("id", 0, "booking id to cancel")
	_ = fs.Parse(args)
	if *id == 0 {
		fatal("cancel: -id is required")
	}

	if err := client.CancelBooking(ctx, *id); err != nil {
		fatal(err.Error())
	}
	fmt.Println("Booking cancelled successfully.")
}

func flatLine(f domain.Flat) string {
	name := f.Name
	if name == "" {
		name = f.Location
	}
	line := fmt.Sprintf("#%d  %s (%s)  $%g/month  %d rooms", f.ID, name, f.Location, f.Price, f.RoomNumber)
	if f.Distance != nil {
		line += fmt.Sprintf("  %g km", *f.Distance)
	}
	return line
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: flatctl <command> [flags]

commands:
  search    search flats (-location -min-price -max-price -rooms -max-distance)
  flat      show one flat (-id)
  book      create a booking (-flat -start -end [-email])
  bookings  list active bookings ([-email] to override the stored one)
  cancel    cancel a booking (-id)`)
}
