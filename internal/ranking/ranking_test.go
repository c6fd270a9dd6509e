package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/store"
)

var _ game.Leaderboard = (*Repository)(nil)

type failingKV struct{ store.Memory }

var errDiskGone = errors.New("disk gone")

func (f *failingKV) Get(context.Context, string) ([]byte, error) { return nil, errDiskGone }
func (f *failingKV) Set(context.Context, string, []byte) error   { return errDiskGone }

// flakyKV fails the next Get once.
type flakyKV struct {
	*store.Memory
	failGet bool
}

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		f.failGet = false
		return nil, errDiskGone
	}
	return f.Memory.Get(ctx, key)
}

func TestInsertKeepsListWhenReadFails(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{Memory: store.NewMemory()}
	repo := NewRepository(kv, Grape, nil)
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Record(ctx, name, time.Second))
	}

	kv.failGet = true
	err := repo.Record(ctx, "d", 500*time.Millisecond)
	require.ErrorIs(t, err, errDiskGone)

	list := repo.Load(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Name)

	require.NoError(t, repo.Record(ctx, "d", 500*time.Millisecond))
	list = repo.Load(ctx)
	require.Len(t, list, 4)
	assert.Equal(t, "d", list[0].Name)
}

func TestInsertReplacesMalformedList(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, Ticket.Key, []byte("{broken")))
	repo := NewRepository(kv, Ticket, nil)

	list, err := repo.Insert(ctx, Entry{Name: "ningning", Time: 900})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "ningning", Time: 900}}, list)
}

func TestLoadMissingAndMalformed(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewRepository(kv, Grape, nil)

	assert.Empty(t, repo.Load(ctx))

	require.NoError(t, kv.Set(ctx, Grape.Key, []byte("not json")))
	assert.Empty(t, repo.Load(ctx))

	require.NoError(t, kv.Set(ctx, Grape.Key, []byte("null")))
	assert.NotNil(t, repo.Load(ctx))

	failing := NewRepository(&failingKV{}, Ticket, nil)
	assert.Empty(t, failing.Load(ctx))
	assert.False(t, failing.IsTaken(ctx, "anyone"))
	assert.Error(t, failing.Record(ctx, "anyone", time.Second))
}

func TestInsertKeepsAscendingOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory(), Ticket, nil)
	r := rand.New(rand.NewPCG(3, 4))

	for i := range 60 {
		_, err := repo.Insert(ctx, Entry{Name: "p" + string(rune('a'+i%26)), Time: float64(r.IntN(90000))})
		require.NoError(t, err)
		list := repo.Load(ctx)
		require.Len(t, list, i+1)
		for j := 1; j < len(list); j++ {
			require.LessOrEqual(t, list[j-1].Time, list[j].Time)
		}
	}
}

func TestInsertStableForTies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory(), Grape, nil)
	_, _ = repo.Insert(ctx, Entry{Name: "first", Time: 1000})
	_, _ = repo.Insert(ctx, Entry{Name: "second", Time: 1000})
	list, err := repo.Insert(ctx, Entry{Name: "fast", Time: 10})
	require.NoError(t, err)

	names := []string{list[0].Name, list[1].Name, list[2].Name}
	assert.Equal(t, []string{"fast", "first", "second"}, names)
}

func TestIsTakenFoldsCaseAndSpace(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemory(), Grape, nil)
	require.NoError(t, repo.Record(ctx, "alice", 1500*time.Millisecond))

	assert.True(t, repo.IsTaken(ctx, " alice "))
	assert.True(t, repo.IsTaken(ctx, "ALICE"))
	assert.False(t, repo.IsTaken(ctx, "alicia"))
	assert.False(t, repo.IsTaken(ctx, "   "))

	require.NoError(t, repo.Record(ctx, "ÉLODIE", time.Second))
	assert.True(t, repo.IsTaken(ctx, "e\u0301lodie"))
}

func TestPersistenceShapePerGame(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	require.NoError(t, NewRepository(kv, Grape, nil).Record(ctx, "karina", 1234*time.Millisecond))
	require.NoError(t, NewRepository(kv, Ticket, nil).Record(ctx, "giselle", 5*time.Second))

	grape, err := kv.Get(ctx, "podo_grape_rankings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"nickname":"karina","time":1234}]`, string(grape))

	ticket, err := kv.Get(ctx, "podo_ticket_rankings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"giselle","time":5000}]`, string(ticket))
}

func TestReadersAcceptEitherNameField(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, Grape.Key, []byte(`[{"name":"winter","time":900},{"nickname":"ningning","time":300}]`)))

	list := NewRepository(kv, Grape, nil).Load(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "ningning", list[0].Name)
	assert.Equal(t, "winter", list[1].Name)
	assert.Equal(t, 300*time.Millisecond, list[0].Elapsed())
}

func TestLastNameAndReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewRepository(kv, Ticket, nil)

	assert.Equal(t, "", repo.LastName(ctx))
	require.NoError(t, repo.SetLastName(ctx, "  giselle "))
	assert.Equal(t, "giselle", repo.LastName(ctx))

	raw, err := kv.Get(ctx, "podo_last_ticket_name")
	require.NoError(t, err)
	assert.Equal(t, "giselle", string(raw))

	require.NoError(t, repo.Record(ctx, "giselle", time.Second))
	require.NoError(t, repo.Reset(ctx))
	assert.Empty(t, repo.Load(ctx))
	assert.Equal(t, "", repo.LastName(ctx))
}

func entries(n int) []Entry {
	out := make([]Entry, n)
	for i := range out {
		out[i] = Entry{Name: "p" + strings.Repeat("x", i%3), Time: float64(i * 100)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	list := entries(23)

	p1 := Paginate(list, 1, 10)
	p2 := Paginate(list, 2, 10)
	p3 := Paginate(list, 3, 10)
	assert.Len(t, p1.Items, 10)
	assert.Len(t, p2.Items, 10)
	assert.Len(t, p3.Items, 3)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 20, p3.Offset)
	assert.True(t, p2.HasPrev())
	assert.True(t, p2.HasNext())
	assert.False(t, p3.HasNext())

	assert.Equal(t, 3, Paginate(list, 99, 10).Number)
	assert.Equal(t, 1, Paginate(list, -2, 10).Number)

	empty := Paginate(nil, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)
	assert.False(t, empty.HasPrev())

	assert.Len(t, Paginate(list, 1, 0).Items, DefaultPageSize)
}

func TestBuildViewRanksAndHighlights(t *testing.T) {
	list := []Entry{{Name: "a", Time: 1}, {Name: "b", Time: 2}, {Name: "c", Time: 3}}
	v := BuildView(list, 2, 2, " c ")
	require.Len(t, v.Rows, 1)
	assert.Equal(t, 3, v.Rows[0].Rank)
	assert.True(t, v.Rows[0].Highlighted)

	assert.False(t, Highlighted(Entry{Name: "a"}, ""))
	assert.True(t, Highlighted(Entry{Name: " a"}, "a"))
	assert.False(t, Highlighted(Entry{Name: "A"}, "a"))
}

func TestGameBySlug(t *testing.T) {
	g, err := GameBySlug(" Grape ")
	require.NoError(t, err)
	assert.Equal(t, Grape, g)

	g, err = GameBySlug("ticketing")
	require.NoError(t, err)
	assert.Equal(t, Ticket, g)

	_, err = GameBySlug("calendar")
	assert.Error(t, err)
}

func TestExports(t *testing.T) {
	list := []Entry{{Name: "karina", Time: 1234}, {Name: "winter, jr", Time: 2000}}

	var csvBuf bytes.Buffer
	require.NoError(t, WriteCSV(&csvBuf, list))
	assert.Equal(t,
		"rank,name,time_ms,seconds\n1,karina,1234,1.23\n2,\"winter, jr\",2000,2.00\n",
		csvBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteJSON(&jsonBuf, Grape, list))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Equal(t, "karina", decoded[0]["nickname"])
}

func TestSaveCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	v := BuildView(entries(4), 1, 10, "p")
	require.NoError(t, SaveCard(path, Grape, v))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeader+4*cardRowHeight+cardPadding*2, img.Bounds().Dy())

	empty := RenderCard(Ticket, BuildView(nil, 1, 10, ""))
	assert.Equal(t, cardHeader+cardRowHeight+cardPadding*2, empty.Bounds().Dy())
}
