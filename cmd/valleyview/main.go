// Command valleyview replays the fastest trip through a valley in the terminal.
//
// Walls, hazards and the walker are redrawn every minute of the trip.
// Keys: q or Esc quits, space pauses, '.' steps one minute while paused.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/blizzard/bfs"
	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/trip"
)

func main() {
	var (
		input = flag.String("input", "", "valley file")
		legs  = flag.Int("legs", 3, "number of alternating legs")
		delay = flag.Duration("delay", 150*time.Millisecond, "time per minute of the replay")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("valleyview: ")

	if *input == "" {
		log.Fatalf("-input is required")
	}
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	g, err := gridgraph.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse %s: %v", *input, err)
	}

	p, err := trip.New(g, bfs.WithReturnPath())
	if err != nil {
		log.Fatalf("plan: %v", err)
	}
	rep, err := p.RoundTrip(context.Background(), *legs, 0)
	if err != nil {
		log.Fatalf("trip: %v", err)
	}

	v, err := newViewer(p, rep)
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	v.run(*delay)
}
