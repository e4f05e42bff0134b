package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/mbwhitestone/arxivbot/pkg/arxiv"
	"github.com/mbwhitestone/arxivbot/pkg/bot"
	"github.com/mbwhitestone/arxivbot/pkg/config"
	"github.com/mbwhitestone/arxivbot/pkg/notify"
)

//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/condenser.go -pkg mocks -skip-ensure -fmt goimports . Condenser
//go:generate moq -out mocks/archive.go -pkg mocks -skip-ensure -fmt goimports . Archive

// Searcher fetches candidate papers for a category/query pair
type Searcher interface {
	Search(ctx context.Context, req arxiv.Request) ([]arxiv.Paper, error)
}

// Notifier delivers paper announcements
type Notifier interface {
	SendEmbed(ctx context.Context, channel string, e notify.Embed) error
	ResolveChannel(ctx context.Context, name string) error
}

// Condenser rewrites a paper abstract into a shorter summary
type Condenser interface {
	Condense(ctx context.Context, text string) (string, error)
}

// Archive keeps the history of announced papers
type Archive interface {
	Record(ctx context.Context, p arxiv.Paper) error
}

// Scheduler runs the poll-announce loop: one full pass over every
// (category, query) pair in the search registry per cycle, announcing
// unseen papers and persisting the configuration once per cycle that
// recorded anything new. Command handling runs independently; the two only
// meet inside the store's mutex.
type Scheduler struct {
	store     *config.Store
	searcher  Searcher
	notifier  Notifier
	condenser Condenser // optional
	archive   Archive   // optional

	maxWorkers int
}

// Params holds scheduler dependencies and settings
type Params struct {
	Store      *config.Store
	Searcher   Searcher
	Notifier   Notifier
	Condenser  Condenser // nil disables abstract condensing
	Archive    Archive   // nil disables announcement history
	MaxWorkers int
}

// NewScheduler creates a scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 4
	}
	return &Scheduler{
		store:      params.Store,
		searcher:   params.Searcher,
		notifier:   params.Notifier,
		condenser:  params.Condenser,
		archive:    params.Archive,
		maxWorkers: params.MaxWorkers,
	}
}

// Run polls until the context is canceled. The announcement channel must
// resolve before the first cycle; an unknown channel is a startup failure.
// The interval is re-read every cycle so a set query_interval takes effect
// on the next pass.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.notifier.ResolveChannel(ctx, s.store.PaperChannel()); err != nil {
		return fmt.Errorf("resolve paper channel: %w", err)
	}

	lgr.Printf("[INFO] scheduler started with interval %v", s.store.Interval())
	s.pollCycle(ctx)

	timer := time.NewTimer(s.store.Interval())
	defer timer.Stop()

	for {
		lgr.Printf("[INFO] sleeping %v now…", s.store.Interval())
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] scheduler stopped")
			return nil
		case <-timer.C:
			s.pollCycle(ctx)
			timer.Reset(s.store.Interval())
		}
	}
}

// pollCycle makes one pass over the whole search registry. Fetches run
// concurrently bounded by maxWorkers; a failing query is logged and the
// rest of the pass continues.
func (s *Scheduler) pollCycle(ctx context.Context) {
	entries := s.store.SearchEntries()

	var newPapers atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, e := range entries {
		for _, q := range e.Queries {
			category, query := e.Category, q
			g.Go(func() error {
				newPapers.Add(int64(s.pollQuery(gctx, category, query)))
				return nil
			})
		}
	}
	_ = g.Wait()

	// one flush per cycle, not per paper
	if newPapers.Load() > 0 {
		if err := s.store.Save(); err != nil {
			lgr.Printf("[ERROR] failed to persist known papers: %v", err)
			return
		}
		lgr.Printf("[INFO] poll cycle recorded %d new papers", newPapers.Load())
	}
}

// pollQuery fetches and announces new papers for one category/query pair,
// returns the number of papers recorded as new
func (s *Scheduler) pollQuery(ctx context.Context, category, query string) int {
	papers, err := s.searcher.Search(ctx, arxiv.Request{
		Category:   category,
		Query:      query,
		SortBy:     s.store.SortBy(),
		MaxResults: s.store.NQuery(),
	})
	if err != nil {
		lgr.Printf("[WARN] failed to fetch %s: %s: %v", category, query, err)
		return 0
	}

	count := 0
	for _, p := range papers {
		p.Annotation = category + ": " + query
		// atomic check-and-record so a paper returned by two overlapping
		// queries is announced exactly once
		if !s.store.Record(p.ID) {
			continue
		}
		count++
		s.announce(ctx, p)
	}
	return count
}

// announce renders and delivers a single paper
func (s *Scheduler) announce(ctx context.Context, p arxiv.Paper) {
	lgr.Printf("[INFO] got new paper %s", bot.Chop(p.Title, 69))

	if s.condenser != nil {
		condensed, err := s.condenser.Condense(ctx, p.Summary)
		if err != nil {
			lgr.Printf("[WARN] failed to condense abstract for %s: %v", p.ID, err)
		} else if condensed != "" {
			p.Summary = condensed
		}
	}

	emb := bot.RenderPaper(p, s.store.SummaryLength(), s.store.MessageColor())
	if err := s.notifier.SendEmbed(ctx, s.store.PaperChannel(), emb); err != nil {
		lgr.Printf("[ERROR] failed to announce %s: %v", p.ID, err)
		return
	}

	if s.archive != nil {
		if err := s.archive.Record(ctx, p); err != nil {
			lgr.Printf("[WARN] failed to archive %s: %v", p.ID, err)
		}
	}
}

// PollNow triggers an immediate poll cycle outside the regular interval
func (s *Scheduler) PollNow(ctx context.Context) {
	lgr.Printf("[INFO] triggered immediate poll cycle")
	s.pollCycle(ctx)
}
