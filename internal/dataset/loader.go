package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// LoaderConfig holds configuration for the season loader
type LoaderConfig struct {
	BaseURL             string
	DataDir             string
	CacheTTL            time.Duration
	CacheSweep          time.Duration
	MinMatchesPerSeason int
}

// Loader fetches season files, keeps parsed seasons in an in-memory TTL
// cache and mirrors raw downloads on disk so repeated backtests do not
// re-download unchanged historical data.
type Loader struct {
	client *Client
	cache  *gocache.Cache
	cfg    LoaderConfig
	logger *logrus.Logger
}

// NewLoader creates a season loader
func NewLoader(client *Client, cfg LoaderConfig, logger *logrus.Logger) *Loader {
	if logger == nil {
		logger = logrus.New()
	}
	return &Loader{
		client: client,
		cache:  gocache.New(cfg.CacheTTL, cfg.CacheSweep),
		cfg:    cfg,
		logger: logger,
	}
}

// LoadSeason returns the parsed matches for one league and season, from
// memory, disk, or the remote host in that order.
func (l *Loader) LoadSeason(ctx context.Context, league, season string) ([]Match, error) {
	key := fmt.Sprintf("%s/%s", season, league)
	if cached, ok := l.cache.Get(key); ok {
		return cached.([]Match), nil
	}

	raw, err := l.rawSeason(ctx, league, season)
	if err != nil {
		return nil, err
	}

	matches, err := ParseSeason(bytes.NewReader(raw), season)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	if len(matches) < l.cfg.MinMatchesPerSeason {
		return nil, fmt.Errorf("season %s has %d matches, expected at least %d", key, len(matches), l.cfg.MinMatchesPerSeason)
	}

	l.cache.Set(key, matches, gocache.DefaultExpiration)
	return matches, nil
}

// LoadAll loads every league and season combination and returns the matches
// sorted by kickoff date, oldest first, as temporal splitting requires.
func (l *Loader) LoadAll(ctx context.Context, leagues, seasons []string) ([]Match, error) {
	var all []Match
	for _, season := range seasons {
		for _, league := range leagues {
			matches, err := l.LoadSeason(ctx, league, season)
			if err != nil {
				return nil, err
			}
			all = append(all, matches...)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})

	l.logger.WithFields(logrus.Fields{
		"matches": len(all),
		"leagues": len(leagues),
		"seasons": len(seasons),
	}).Info("Dataset loaded")
	return all, nil
}

func (l *Loader) rawSeason(ctx context.Context, league, season string) ([]byte, error) {
	path := filepath.Join(l.cfg.DataDir, season, league+".csv")
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	url := fmt.Sprintf("%s/%s/%s.csv", l.cfg.BaseURL, season, league)
	l.logger.WithField("url", url).Debug("Downloading season file")
	data, err := l.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("caching season file: %w", err)
	}
	return data, nil
}
