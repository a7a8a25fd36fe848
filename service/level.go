package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/google/uuid"
)

// LevelDefaults fill in what a level request leaves out.
type LevelDefaults struct {
	Width       int
	Height      int
	Obstacles   int
	Algorithm   maze.Algorithm
	Print       bool
	Output      io.Writer
	RankingSize int // upper bound of Top's limit
}

// LevelServiceConfig holds the collaborators of a LevelService.
type LevelServiceConfig struct {
	Levels    i.LevelRepo
	Designers i.DesignerRepo
	Cache     i.LevelCache
	Ranking   i.LevelRanking
	Defaults  LevelDefaults
	Logger    i.Logger
}

// LevelService generates levels on behalf of designers and serves them back.
// The repository is the source of truth. Cache and ranking failures are
// logged and do not fail the request.
type LevelService struct {
	levels    i.LevelRepo
	designers i.DesignerRepo
	cache     i.LevelCache
	ranking   i.LevelRanking
	defaults  LevelDefaults
	logger    i.Logger
	seed      func() uint64
}

// NewLevelService creates a LevelService.
func NewLevelService(cfg LevelServiceConfig) (*LevelService, error) {
	if cfg.Levels == nil || cfg.Designers == nil || cfg.Cache == nil || cfg.Ranking == nil || cfg.Logger == nil {
		return nil, errors.New("level service is missing a collaborator")
	}

	defaults := cfg.Defaults
	if defaults.Width == 0 {
		defaults.Width = maze.DefaultWidth
	}
	if defaults.Height == 0 {
		defaults.Height = maze.DefaultHeight
	}
	if defaults.Algorithm == "" {
		defaults.Algorithm = maze.Backtracker
	}
	if defaults.RankingSize <= 0 {
		defaults.RankingSize = 100
	}

	return &LevelService{
		levels:    cfg.Levels,
		designers: cfg.Designers,
		cache:     cfg.Cache,
		ranking:   cfg.Ranking,
		defaults:  defaults,
		logger:    cfg.Logger,
		seed: func() uint64 {
			return rand.Uint64N(dmn.MaxSeed + 1)
		},
	}, nil
}

// Create generates, stores and ranks a new level for the designer.
func (s *LevelService) Create(ctx context.Context, designerID uuid.UUID, req dmn.LevelRequest) (*dmn.Level, error) {
	designer, err := s.designers.ByID(ctx, designerID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.levelConfig(designerID, req)
	if err != nil {
		return nil, err
	}

	level, err := dmn.NewLevel(cfg)
	if err != nil {
		return nil, err
	}

	if err := s.levels.Save(ctx, level); err != nil {
		return nil, fmt.Errorf("saving level: %w", err)
	}
	s.logger.Info(fmt.Sprintf("Level %s created by %s (%dx%d, %s, path %d)",
		level.ID, designer.Username, level.Width, level.Height, level.Algorithm, level.PathLength()))

	s.cacheLevel(ctx, level)
	if err := s.ranking.Add(ctx, level.ID, level.PathLength()); err != nil {
		s.logger.Warning(fmt.Sprintf("Ranking level %s: %v", level.ID, err))
	}

	if err := s.designers.IncrementLevels(ctx, designer.ID); err != nil {
		s.logger.Warning(fmt.Sprintf("Updating level count of %s: %v", designer.ID, err))
	}

	return level, nil
}

// levelConfig resolves a request against the defaults.
func (s *LevelService) levelConfig(designerID uuid.UUID, req dmn.LevelRequest) (dmn.LevelConfig, error) {
	cfg := dmn.LevelConfig{
		ID:         uuid.New(),
		DesignerID: designerID,
		Width:      s.defaults.Width,
		Height:     s.defaults.Height,
		Start:      req.Start,
		Algorithm:  s.defaults.Algorithm,
		Obstacles:  s.defaults.Obstacles,
		Print:      s.defaults.Print,
		Output:     s.defaults.Output,
	}

	if req.Width != 0 {
		cfg.Width = req.Width
	}
	if req.Height != 0 {
		cfg.Height = req.Height
	}
	if req.Algorithm != "" {
		algorithm, err := maze.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return dmn.LevelConfig{}, err
		}
		cfg.Algorithm = algorithm
	}
	if req.Obstacles != nil {
		cfg.Obstacles = *req.Obstacles
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	} else {
		cfg.Seed = s.seed()
	}

	return cfg, nil
}

// ByID returns a level, reading through the cache.
func (s *LevelService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Level, error) {
	level, err := s.cache.Get(ctx, id)
	if err == nil {
		return level, nil
	}
	if !errors.Is(err, dmn.ErrLevelNotFound) {
		s.logger.Warning(fmt.Sprintf("Reading level %s from cache: %v", id, err))
	}

	level, err = s.levels.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheLevel(ctx, level)

	return level, nil
}

// ByDesigner lists the levels a designer created.
func (s *LevelService) ByDesigner(ctx context.Context, designerID uuid.UUID) ([]*dmn.Level, error) {
	return s.levels.ByDesigner(ctx, designerID)
}

// Top returns the levels with the longest exit paths. Limit is clamped to
// [1, RankingSize].
func (s *LevelService) Top(ctx context.Context, limit int) ([]dmn.RankedLevel, error) {
	limit = max(1, min(limit, s.defaults.RankingSize))
	return s.ranking.Top(ctx, int64(limit))
}

func (s *LevelService) cacheLevel(ctx context.Context, level *dmn.Level) {
	if err := s.cache.Set(ctx, level); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching level %s: %v", level.ID, err))
	}
}
