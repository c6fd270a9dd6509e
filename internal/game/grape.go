package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	GrapeGridSize    = 20
	GrapeCellCount   = GrapeGridSize * GrapeGridSize
	GrapeAreaCount   = 6
	GrapeTargetCount = 2
)

type GrapeState int

const (
	GrapeEntry GrapeState = iota
	GrapeAreaSelection
	GrapeCellSearch
	GrapeComplete
)

func (s GrapeState) String() string {
	switch s {
	case GrapeEntry:
		return "entry"
	case GrapeAreaSelection:
		return "area-selection"
	case GrapeCellSearch:
		return "cell-search"
	case GrapeComplete:
		return "complete"
	default:
		return fmt.Sprintf("grape-state(%d)", int(s))
	}
}

type GrapeOptions struct {
	Board  Leaderboard
	Clock  Clock
	Seed   int64
	Logger *slog.Logger
}

// GrapeGame is one playthrough of the grape-finding game: pick an area, then
// click the two highlighted cells as fast as possible.
type GrapeGame struct {
	id    string
	board Leaderboard
	clock Clock
	rng   *RNG
	log   *slog.Logger

	state    GrapeState
	nickname string
	area     int
	targets  []int
	found    []int
	timer    *Stopwatch
}

func NewGrapeGame(opts GrapeOptions) *GrapeGame {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	id := uuid.NewString()
	return &GrapeGame{
		id:    id,
		board: opts.Board,
		clock: opts.Clock,
		rng:   NewRNG(seedFrom(opts.Seed, opts.Clock)),
		log:   opts.Logger.With("game", "grape", "session_id", id),
		state: GrapeEntry,
		area:  -1,
		timer: NewStopwatch(opts.Clock),
	}
}

func (g *GrapeGame) ID() string          { return g.id }
func (g *GrapeGame) State() GrapeState   { return g.state }
func (g *GrapeGame) Nickname() string    { return g.nickname }
func (g *GrapeGame) Area() int           { return g.area }
func (g *GrapeGame) Targets() []int      { return slices.Clone(g.targets) }
func (g *GrapeGame) Found() []int        { return slices.Clone(g.found) }
func (g *GrapeGame) FoundCount() int     { return len(g.found) }
func (g *GrapeGame) Live() time.Duration { return g.timer.Live() }

// Elapsed is the recorded time once the game is complete, zero before.
func (g *GrapeGame) Elapsed() time.Duration { return g.timer.Elapsed() }

func (g *GrapeGame) Start(ctx context.Context, nickname string) error {
	if g.state != GrapeEntry {
		return ErrWrongStep
	}
	name := strings.TrimSpace(nickname)
	if name == "" {
		return ErrNicknameRequired
	}
	if g.board != nil && g.board.IsTaken(ctx, name) {
		return ErrNicknameTaken
	}

	g.nickname = name
	g.area = -1
	g.targets = nil
	g.found = nil
	g.timer.Start()
	g.state = GrapeAreaSelection

	if g.board != nil {
		if err := g.board.SetLastName(ctx, name); err != nil {
			g.log.Debug("last name not saved", "error", err)
		}
	}
	g.log.Info("grape game started", "nickname", name)
	return nil
}

func (g *GrapeGame) SelectArea(idx int) error {
	if g.state != GrapeAreaSelection {
		return ErrWrongStep
	}
	if idx < 0 || idx >= GrapeAreaCount {
		return ErrAreaInvalid
	}
	g.area = idx
	g.targets = pickDistinct(g.rng, GrapeTargetCount, GrapeCellCount)
	g.found = nil
	g.state = GrapeCellSearch
	g.log.Debug("area selected", "area", AreaLabel(idx), "targets", g.targets)
	return nil
}

// ClickCell reports whether the click found a new target. Finding the last
// target stops the timer and records the result.
func (g *GrapeGame) ClickCell(ctx context.Context, idx int) (bool, error) {
	if g.state != GrapeCellSearch {
		return false, ErrWrongStep
	}
	if !g.IsTarget(idx) || g.IsFound(idx) {
		return false, nil
	}
	g.found = append(g.found, idx)
	if len(g.found) < GrapeTargetCount {
		return true, nil
	}

	elapsed := g.timer.Stop()
	g.state = GrapeComplete
	if g.board != nil {
		if err := g.board.Record(ctx, g.nickname, elapsed); err != nil {
			g.log.Warn("ranking not saved", "error", err)
		}
	}
	g.log.Info("grape game complete", "nickname", g.nickname, "elapsed", FormatSeconds(elapsed))
	return true, nil
}

func (g *GrapeGame) IsTarget(idx int) bool {
	return slices.Contains(g.targets, idx)
}

func (g *GrapeGame) IsFound(idx int) bool {
	return slices.Contains(g.found, idx)
}

// AreaLabel names an area index: 0 -> "A".
func AreaLabel(idx int) string {
	if idx < 0 || idx >= 26 {
		return "?"
	}
	return string(rune('A' + idx))
}

func pickDistinct(rng *RNG, count, n int) []int {
	if count > n {
		count = n
	}
	out := make([]int, 0, count)
	for len(out) < count {
		candidate := rng.IntN(n)
		if !slices.Contains(out, candidate) {
			out = append(out, candidate)
		}
	}
	return out
}
