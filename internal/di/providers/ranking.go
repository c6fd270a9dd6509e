package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/appengine-ltd/podo-rush/internal/config"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
)

// Rankings holds one repository per game.
type Rankings struct {
	Grape    *ranking.Repository
	Ticket   *ranking.Repository
	PageSize int
}

func (r *Rankings) For(g ranking.Game) *ranking.Repository {
	if g.Slug == ranking.Ticket.Slug {
		return r.Ticket
	}
	return r.Grape
}

func ProvideRankings(i do.Injector) (*Rankings, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	kv := do.MustInvoke[*StoreHandle](i)

	return &Rankings{
		Grape:    ranking.NewRepository(kv, ranking.Grape, log),
		Ticket:   ranking.NewRepository(kv, ranking.Ticket, log),
		PageSize: cfg.Ranking.PageSize,
	}, nil
}
