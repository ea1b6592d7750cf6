package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fame_list/internal/db/repositories"

	"go.uber.org/zap"
)

type generator struct {
	memberRepository repositories.MemberRepository
	path             string
	now              func() time.Time
	metrics          *Metrics
	logger           *zap.SugaredLogger
}

// Generator rewrites the roster snapshot file from the members table.
type Generator interface {
	Generate(ctx context.Context) ([]Entry, error)
	Path() string
}

type Option func(*generator)

func WithClock(now func() time.Time) Option {
	return func(g *generator) {
		g.now = now
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(g *generator) {
		g.metrics = metrics
	}
}

func NewGenerator(memberRepository repositories.MemberRepository, path string, logger *zap.SugaredLogger, options ...Option) Generator {
	g := &generator{
		memberRepository: memberRepository,
		path:             path,
		now:              time.Now,
		logger:           logger,
	}

	for _, option := range options {
		option(g)
	}

	return g
}

func (g *generator) Path() string {
	return g.path
}

func (g *generator) Generate(ctx context.Context) ([]Entry, error) {
	entries, err := g.generate(ctx)
	if err != nil {
		g.metrics.observeFailure()
		return nil, err
	}

	now := g.now()
	g.metrics.observeSuccess(len(entries), float64(now.Unix()))
	g.logger.Infow("snapshot written", "path", g.path, "members", len(entries))

	return entries, nil
}

func (g *generator) generate(ctx context.Context) ([]Entry, error) {
	members, err := g.memberRepository.GetMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	entries := NewEntries(members, g.now())

	data, err := Encode(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := writeFile(g.path, data); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	return entries, nil
}

// writeFile replaces path through a temp file in the same directory so the
// front end never reads a half-written document.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
