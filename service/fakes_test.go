package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/google/uuid"
)

var errStoreDown = errors.New("store down")

type fakeDesignerRepo struct {
	mu        sync.Mutex
	designers map[uuid.UUID]dmn.Designer
	saveErr   error
	lookupLag time.Duration
}

func newFakeDesignerRepo() *fakeDesignerRepo {
	return &fakeDesignerRepo{designers: make(map[uuid.UUID]dmn.Designer)}
}

func (r *fakeDesignerRepo) Save(_ context.Context, d *dmn.Designer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.designers[d.ID] = *d
	return nil
}

func (r *fakeDesignerRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Designer, error) {
	time.Sleep(r.lookupLag)
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.designers[id]
	if !ok {
		return nil, dmn.ErrDesignerNotFound
	}
	return &d, nil
}

func (r *fakeDesignerRepo) ByUsername(_ context.Context, username string) (*dmn.Designer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.designers {
		if d.Username == username {
			return &d, nil
		}
	}
	return nil, dmn.ErrDesignerNotFound
}

func (r *fakeDesignerRepo) IncrementLevels(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	d, ok := r.designers[id]
	if !ok {
		return dmn.ErrDesignerNotFound
	}
	d.Levels++
	r.designers[id] = d
	return nil
}

type fakeLevelRepo struct {
	mu      sync.Mutex
	levels  map[uuid.UUID]*dmn.Level
	reads   int
	saveErr error
}

func newFakeLevelRepo() *fakeLevelRepo {
	return &fakeLevelRepo{levels: make(map[uuid.UUID]*dmn.Level)}
}

func (r *fakeLevelRepo) Save(_ context.Context, l *dmn.Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.levels[l.ID] = l
	return nil
}

func (r *fakeLevelRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	l, ok := r.levels[id]
	if !ok {
		return nil, dmn.ErrLevelNotFound
	}
	return l, nil
}

func (r *fakeLevelRepo) ByDesigner(_ context.Context, designerID uuid.UUID) ([]*dmn.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var levels []*dmn.Level
	for _, l := range r.levels {
		if l.DesignerID == designerID {
			levels = append(levels, l)
		}
	}
	sort.Slice(levels, func(a, b int) bool { return levels[a].CreatedAt.After(levels[b].CreatedAt) })
	return levels, nil
}

type fakeCache struct {
	mu     sync.Mutex
	levels map[uuid.UUID]*dmn.Level
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{levels: make(map[uuid.UUID]*dmn.Level)}
}

func (c *fakeCache) Get(_ context.Context, id uuid.UUID) (*dmn.Level, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	l, ok := c.levels[id]
	if !ok {
		return nil, dmn.ErrLevelNotFound
	}
	return l, nil
}

func (c *fakeCache) Set(_ context.Context, l *dmn.Level) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.levels[l.ID] = l
	return nil
}

type fakeRanking struct {
	mu      sync.Mutex
	entries []dmn.RankedLevel
	addErr  error
	asked   int64
}

func (r *fakeRanking) Add(_ context.Context, id uuid.UUID, pathLength int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addErr != nil {
		return r.addErr
	}
	r.entries = append(r.entries, dmn.RankedLevel{LevelID: id, PathLength: pathLength})
	sort.SliceStable(r.entries, func(a, b int) bool { return r.entries[a].PathLength > r.entries[b].PathLength })
	return nil
}

func (r *fakeRanking) Top(_ context.Context, n int64) ([]dmn.RankedLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.asked = n
	if int(n) > len(r.entries) {
		n = int64(len(r.entries))
	}
	return append([]dmn.RankedLevel(nil), r.entries[:n]...), nil
}

type fakeTokenizer struct {
	err error
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token-%v-%s", claims[ClaimDesignerID], exp), nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

type fakeLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *fakeLogger) Info(string) {}

func (l *fakeLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *fakeLogger) Error(string) {}
