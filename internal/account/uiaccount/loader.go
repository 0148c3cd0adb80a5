package uiaccount

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCacheSize = 256
	fixtureGlob      = "*.json"
)

// LoaderConfig configures a Loader. Zero fields take defaults.
type LoaderConfig struct {
	// CacheSize is the number of parsed fixtures kept in memory.
	CacheSize int
	// Workers bounds concurrent file reads in LoadDir. Zero means GOMAXPROCS.
	Workers int
	Logger  *zap.Logger
}

// Fixture is a fixture file and its parsed contents.
type Fixture struct {
	Path    string
	Account KeyedUIAccount
}

// Loader reads fixture files and caches the parsed results by path.
// It is safe for concurrent use.
type Loader struct {
	cache   *lru.Cache[string, KeyedUIAccount]
	workers int
	logger  *zap.Logger
}

// NewLoader creates a Loader.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, KeyedUIAccount](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create fixture cache: %w", err)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cache: cache, workers: workers, logger: logger}, nil
}

// Load returns the fixture at path, reading it on a cache miss.
func (l *Loader) Load(path string) (KeyedUIAccount, error) {
	key := filepath.Clean(path)
	if k, ok := l.cache.Get(key); ok {
		l.logger.Debug("fixture cache hit", zap.String("path", key))
		return k, nil
	}
	k, err := FromFile(key)
	if err != nil {
		return KeyedUIAccount{}, err
	}
	l.cache.Add(key, k)
	l.logger.Debug("fixture loaded", zap.String("path", key), zap.String("pubkey", k.Pubkey))
	return k, nil
}

// LoadDir loads every *.json fixture directly inside dir, sorted by path.
// The first failure cancels the remaining reads.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]Fixture, error) {
	paths, err := filepath.Glob(filepath.Join(dir, fixtureGlob))
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures in %s: %w", dir, err)
	}
	sort.Strings(paths)

	fixtures := make([]Fixture, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			k, err := l.Load(path)
			if err != nil {
				return err
			}
			fixtures[i] = Fixture{Path: path, Account: k}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	l.logger.Info("fixtures loaded", zap.String("dir", dir), zap.Int("count", len(fixtures)))
	return fixtures, nil
}

// Len returns the number of cached fixtures.
func (l *Loader) Len() int {
	return l.cache.Len()
}
