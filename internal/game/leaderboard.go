package game

import (
	"context"
	"log/slog"
	"time"
)

// Leaderboard is the ranking list a game session checks nicknames against and
// records its result into.
type Leaderboard interface {
	IsTaken(ctx context.Context, name string) bool
	Record(ctx context.Context, name string, elapsed time.Duration) error
	SetLastName(ctx context.Context, name string) error
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func seedFrom(seed int64, clock Clock) int64 {
	if seed != 0 {
		return seed
	}
	return clock.Now().UnixNano()
}
