// Package app is the screen router both clients drive.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
)

type Screen string

const (
	ScreenMain          Screen = "main"
	ScreenGrape         Screen = "grape"
	ScreenGrapeRanking  Screen = "grapeRanking"
	ScreenTicketing     Screen = "ticketing"
	ScreenTicketRanking Screen = "ticketRanking"
	ScreenCalendar      Screen = "calendar"
)

var Screens = []Screen{
	ScreenMain, ScreenGrape, ScreenGrapeRanking,
	ScreenTicketing, ScreenTicketRanking, ScreenCalendar,
}

func (s Screen) Title() string {
	switch s {
	case ScreenMain:
		return "PODO RUSH"
	case ScreenGrape:
		return "Grape Finding"
	case ScreenGrapeRanking:
		return "Grape Rankings"
	case ScreenTicketing:
		return "Ticketing"
	case ScreenTicketRanking:
		return "Ticketing Rankings"
	case ScreenCalendar:
		return "Concert Calendar"
	default:
		return string(s)
	}
}

// ParseScreen accepts a screen tag in any case.
func ParseScreen(s string) (Screen, error) {
	for _, sc := range Screens {
		if strings.EqualFold(string(sc), strings.TrimSpace(s)) {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", s)
}

// RankingGame reports which leaderboard a ranking screen shows.
func (s Screen) RankingGame() (ranking.Game, bool) {
	switch s {
	case ScreenGrapeRanking:
		return ranking.Grape, true
	case ScreenTicketRanking:
		return ranking.Ticket, true
	default:
		return ranking.Game{}, false
	}
}

// RankingScreen is where the rankings command goes from s. A named game
// wins. Without one, the ticketing screens pick the ticket list and every
// other screen the grape list.
func (s Screen) RankingScreen(slug string) Screen {
	if slug != "" {
		if g, err := ranking.GameBySlug(slug); err == nil && g.Slug == ranking.Ticket.Slug {
			return ScreenTicketRanking
		}
		return ScreenGrapeRanking
	}
	switch s {
	case ScreenTicketing, ScreenTicketRanking:
		return ScreenTicketRanking
	default:
		return ScreenGrapeRanking
	}
}

type Deps struct {
	Grape    *ranking.Repository
	Ticket   *ranking.Repository
	Clock    game.Clock
	Logger   *slog.Logger
	PageSize int
	// Seed fixes every game's RNG. Zero seeds from the clock.
	Seed int64
}

// Session owns the current screen and the state behind it. Leaving a game
// screen abandons its run; the calendar keeps its events for the life of the
// session.
type Session struct {
	deps   Deps
	log    *slog.Logger
	screen Screen

	grape   *game.GrapeGame
	ticket  *game.TicketingFlow
	planner *game.Planner
	page    int
}

func NewSession(deps Deps) *Session {
	if deps.Clock == nil {
		deps.Clock = game.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.PageSize <= 0 {
		deps.PageSize = ranking.DefaultPageSize
	}
	return &Session{
		deps:    deps,
		log:     deps.Logger,
		screen:  ScreenMain,
		planner: game.NewPlanner(deps.Clock.Now()),
		page:    1,
	}
}

func (s *Session) Screen() Screen                 { return s.screen }
func (s *Session) Grape() *game.GrapeGame         { return s.grape }
func (s *Session) Ticketing() *game.TicketingFlow { return s.ticket }
func (s *Session) Planner() *game.Planner         { return s.planner }
func (s *Session) Clock() game.Clock              { return s.deps.Clock }

// Navigate switches screens. Entering a game screen always starts a fresh
// run and entering a ranking screen resets it to the first page.
func (s *Session) Navigate(to Screen) {
	from := s.screen
	switch from {
	case ScreenGrape:
		if s.grape != nil && s.grape.State() != game.GrapeComplete && to != ScreenGrapeRanking {
			s.log.Debug("grape run abandoned", "session_id", s.grape.ID(), "state", s.grape.State().String())
		}
		s.grape = nil
	case ScreenTicketing:
		if s.ticket != nil && s.ticket.Step() != game.StepDone {
			s.log.Debug("ticketing run abandoned", "session_id", s.ticket.ID(), "step", s.ticket.Step().String())
		}
		s.ticket = nil
	}

	switch to {
	case ScreenGrape:
		s.grape = game.NewGrapeGame(game.GrapeOptions{
			Board:  board(s.deps.Grape),
			Clock:  s.deps.Clock,
			Seed:   s.deps.Seed,
			Logger: s.log,
		})
	case ScreenTicketing:
		s.ticket = game.NewTicketingFlow(game.TicketingOptions{
			Board:  board(s.deps.Ticket),
			Clock:  s.deps.Clock,
			Seed:   s.deps.Seed,
			Logger: s.log,
		})
	case ScreenGrapeRanking, ScreenTicketRanking:
		s.page = 1
	}
	s.screen = to
	s.log.Debug("navigate", "from", string(from), "to", string(to))
}

// Home is the back button every screen has.
func (s *Session) Home() { s.Navigate(ScreenMain) }

// Sync moves a finished game on to its ranking screen. Clients call it after
// every action they forward to a game.
func (s *Session) Sync() bool {
	switch {
	case s.screen == ScreenGrape && s.grape != nil && s.grape.State() == game.GrapeComplete:
		s.Navigate(ScreenGrapeRanking)
		return true
	case s.screen == ScreenTicketing && s.ticket != nil && s.ticket.Step() == game.StepDone:
		s.Navigate(ScreenTicketRanking)
		return true
	}
	return false
}

// ClickGrapeCell forwards a click and routes to the rankings on the final
// find.
func (s *Session) ClickGrapeCell(ctx context.Context, idx int) (bool, error) {
	if s.grape == nil {
		return false, game.ErrWrongStep
	}
	hit, err := s.grape.ClickCell(ctx, idx)
	s.Sync()
	return hit, err
}

// FinalizeTicket completes the purchase and routes to the rankings on
// success.
func (s *Session) FinalizeTicket(ctx context.Context) error {
	if s.ticket == nil {
		return game.ErrWrongStep
	}
	if err := s.ticket.Finalize(ctx); err != nil {
		return err
	}
	s.Sync()
	return nil
}

func board(r *ranking.Repository) game.Leaderboard {
	if r == nil {
		return nil
	}
	return r
}

func (s *Session) repo() *ranking.Repository {
	g, ok := s.screen.RankingGame()
	if !ok {
		return nil
	}
	if g.Slug == ranking.Ticket.Slug {
		return s.deps.Ticket
	}
	return s.deps.Grape
}

// RankingView is the current page of the ranking screen. It is empty on
// other screens.
func (s *Session) RankingView(ctx context.Context) ranking.View {
	repo := s.repo()
	if repo == nil {
		return ranking.BuildView(nil, 1, s.deps.PageSize, "")
	}
	v := repo.View(ctx, s.page, s.deps.PageSize)
	s.page = v.Page.Number
	return v
}

func (s *Session) Page() int { return s.page }

func (s *Session) NextPage(ctx context.Context) {
	v := s.RankingView(ctx)
	if v.Page.HasNext() {
		s.page++
	}
}

func (s *Session) PrevPage(ctx context.Context) {
	if s.page > 1 {
		s.page--
	}
}

func (s *Session) SetPage(ctx context.Context, n int) {
	s.page = n
	s.RankingView(ctx)
}

// Retry starts another run of the game the ranking screen belongs to.
func (s *Session) Retry() {
	switch s.screen {
	case ScreenGrapeRanking:
		s.Navigate(ScreenGrape)
	case ScreenTicketRanking:
		s.Navigate(ScreenTicketing)
	}
}
