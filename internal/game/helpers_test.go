package game

import (
	"context"
	"errors"
	"strings"
	"time"
)

type recordedRun struct {
	Name    string
	Elapsed time.Duration
}

type fakeBoard struct {
	taken     []string
	records   []recordedRun
	lastName  string
	recordErr error
}

func (b *fakeBoard) IsTaken(_ context.Context, name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range b.taken {
		if strings.ToLower(strings.TrimSpace(t)) == n {
			return true
		}
	}
	return false
}

func (b *fakeBoard) Record(_ context.Context, name string, elapsed time.Duration) error {
	if b.recordErr != nil {
		return b.recordErr
	}
	b.records = append(b.records, recordedRun{Name: name, Elapsed: elapsed})
	return nil
}

func (b *fakeBoard) SetLastName(_ context.Context, name string) error {
	b.lastName = name
	return nil
}

var errStorageDown = errors.New("storage unavailable")

func testClock() *ManualClock {
	return NewManualClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
}
