// Command valley reports how many minutes it takes to cross a valley of
// moving hazards, and how long a multi-leg trip back and forth takes.
//
// Usage:
//
//	valley -input valley.txt            # crossing and 3-leg trip
//	valley -input - -legs 5 -depart 10  # read stdin, 5 legs from minute 10
//	valley -v -input valley.txt         # log every leg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/trip"
)

var (
	// errBadLegs indicates -legs below one.
	errBadLegs = errors.New("-legs must be at least 1")
	// errBadDepart indicates a negative -depart.
	errBadDepart = errors.New("-depart must be non-negative")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("valley: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout, log.Default()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run parses args, solves the valley and writes the report to stdout.
// stdin backs "-input -"; logger receives -v output.
func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("valley", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	var (
		input   = fs.String("input", "-", "valley file (\"-\" reads stdin)")
		legs    = fs.Int("legs", 3, "number of alternating legs for the trip")
		depart  = fs.Int("depart", 0, "earliest departure minute")
		verbose = fs.Bool("v", false, "log per-leg timings")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *legs < 1 {
		return fmt.Errorf("%w, got %d", errBadLegs, *legs)
	}
	if *depart < 0 {
		return fmt.Errorf("%w, got %d", errBadDepart, *depart)
	}

	g, err := load(*input, stdin)
	if err != nil {
		return fmt.Errorf("load %s: %w", *input, err)
	}
	p, err := trip.New(g)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	if *verbose {
		logger.Printf("interior %dx%d, %d hazards, period %d", g.Width, g.Height, g.HazardCount(), p.Field().Period())
	}

	ctx := context.Background()
	start := time.Now()
	crossing, err := p.Crossing(ctx, *depart)
	if err != nil {
		return fmt.Errorf("crossing: %w", err)
	}
	fmt.Fprintf(stdout, "crossing: %d\n", crossing.Elapsed())

	rep, err := p.RoundTrip(ctx, *legs, *depart)
	if err != nil {
		return fmt.Errorf("trip: %w", err)
	}
	if *verbose {
		for i, leg := range rep.Legs {
			logger.Printf("leg %d %v -> %v: minutes %d..%d (%d)", i, leg.Start, leg.Goal, leg.Departure, leg.Arrival, leg.Arrival-leg.Departure)
		}
		logger.Printf("solved in %v", time.Since(start))
	}
	fmt.Fprintf(stdout, "trip(%d legs): %d\n", *legs, rep.Elapsed())
	return nil
}

// load parses the valley at path, or stdin for "-".
func load(path string, stdin io.Reader) (*gridgraph.Grid, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return gridgraph.Parse(r)
}
