package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/blizzard/bfs"
	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/hazard"
	"github.com/katalvlaran/blizzard/trip"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hazardStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stackStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	walkerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// frame is one minute of the replay.
type frame struct {
	step bfs.Step
	leg  int
}

type viewer struct {
	screen tcell.Screen
	grid   *gridgraph.Grid
	field  *hazard.Field
	frames []frame
	total  int
	cur    int
	paused bool
}

func newViewer(p *trip.Planner, rep *trip.Report) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)

	return &viewer{
		screen: screen,
		grid:   p.Field().Grid(),
		field:  p.Field(),
		frames: flatten(rep),
		total:  len(rep.Legs),
	}, nil
}

// flatten joins leg routes, dropping the step each leg shares with the previous one.
func flatten(rep *trip.Report) []frame {
	var out []frame
	for i, leg := range rep.Legs {
		route := leg.Route
		if i > 0 && len(route) > 0 {
			route = route[1:]
		}
		for _, s := range route {
			out = append(out, frame{step: s, leg: i})
		}
	}
	return out
}

func (v *viewer) run(delay time.Duration) {
	defer v.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			if !v.paused && v.cur < len(v.frames)-1 {
				v.cur++
				v.draw()
			}
		}
	}
}

// handle applies an input event; false means quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.paused = !v.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == '.':
			if v.paused && v.cur < len(v.frames)-1 {
				v.cur++
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	if len(v.frames) == 0 {
		v.screen.Show()
		return
	}
	fr := v.frames[v.cur]

	counts := make(map[gridgraph.Position]int)
	glyphs := make(map[gridgraph.Position]rune)
	for _, h := range v.field.At(fr.step.Time) {
		counts[h.Pos]++
		glyphs[h.Pos] = h.Dir.Glyph()
	}

	for y := 0; y < v.grid.Rows(); y++ {
		for x := 0; x < v.grid.Cols(); x++ {
			p := gridgraph.Position{X: x, Y: y}
			r, style := '.', tcell.StyleDefault
			switch n := counts[p]; {
			case p == fr.step.Pos:
				r, style = 'E', walkerStyle
			case v.grid.IsWall(p):
				r, style = '#', wallStyle
			case n == 1:
				r, style = glyphs[p], hazardStyle
			case n > 9:
				r, style = '*', stackStyle
			case n > 1:
				r, style = rune('0'+n), stackStyle
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}

	state := "playing"
	if v.paused {
		state = "paused"
	}
	if v.cur == len(v.frames)-1 {
		state = "arrived"
	}
	v.text(0, v.grid.Rows()+1, fmt.Sprintf("minute %d  leg %d/%d  %s", fr.step.Time, fr.leg+1, v.total, state))
	v.text(0, v.grid.Rows()+2, "q quit  space pause  . step")
	v.screen.Show()
}

func (v *viewer) text(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
