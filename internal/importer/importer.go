// Package importer fills the resources table from external listing sites.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upath/internal/database"
	"upath/internal/domain/resource"
	"upath/internal/pkg/logger"
	"upath/internal/usecase"
)

const (
	defaultWorkers  = 4
	defaultRate     = 3
	defaultMaxItems = 50
)

// CacheInvalidator drops cached resource lists after an import.
type CacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Options struct {
	Workers int
	// RatePerSecond caps detail page fetches across all workers. Zero means
	// the default; a negative value disables the limit.
	RatePerSecond int
	// MaxItems caps detail pages per source.
	MaxItems int
}

type Importer struct {
	db    database.DB
	cache CacheInvalidator
	log   *logger.Logger
	opts  Options

	collect  LinkCollector
	headless LinkCollector
	detail   func(ctx context.Context, link string) (pageMeta, error)
	now      func() time.Time
}

func New(db database.DB, cache CacheInvalidator, log *logger.Logger, opts Options) *Importer {
	if log == nil {
		log = logger.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.RatePerSecond < 0 {
		opts.RatePerSecond = 0
	} else if opts.RatePerSecond == 0 {
		opts.RatePerSecond = defaultRate
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = defaultMaxItems
	}
	return &Importer{
		db:       db,
		cache:    cache,
		log:      log,
		opts:     opts,
		collect:  collectLinks,
		headless: collectLinksHeadless,
		detail:   fetchDetail,
		now:      time.Now,
	}
}

// Run imports every source in order. A failing source is recorded on its
// run and does not stop the others; the joined errors are returned.
func (im *Importer) Run(ctx context.Context, sources []Source) ([]resource.ImportRun, error) {
	if im == nil || im.db == nil {
		return nil, errors.New("importer: nil db")
	}

	runs := make([]resource.ImportRun, 0, len(sources))
	var errs []error
	imported := 0
	for _, src := range sources {
		run, err := im.importSource(ctx, src)
		runs = append(runs, run)
		imported += run.Imported
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name, err))
		}
	}

	if imported > 0 && im.cache != nil {
		if err := im.cache.DeleteByPattern(ctx, usecase.ResourcesCachePrefix+"*"); err != nil {
			im.log.Warn("resource cache invalidation failed", "error", err)
		}
	}
	return runs, errors.Join(errs...)
}

func (im *Importer) importSource(ctx context.Context, src Source) (resource.ImportRun, error) {
	log := im.log.With("source", src.Name)
	run := resource.ImportRun{Source: src.Name, Status: resource.RunRunning, StartedAt: im.now().UTC()}

	id, err := createRun(ctx, im.db, src.Name)
	if err != nil {
		run.Status = resource.RunFailed
		return run, fmt.Errorf("create run: %w", err)
	}
	run.ID = id

	imported, failed, err := im.importLinks(ctx, src, log)

	run.Imported = imported
	run.Status = resource.RunSucceeded
	if err != nil {
		run.Status = resource.RunFailed
	}
	finished := im.now().UTC()
	run.FinishedAt = &finished

	// The caller's ctx may already be cancelled; the run row still needs closing.
	if ferr := finishRun(context.WithoutCancel(ctx), im.db, id, run.Status, imported, err); ferr != nil {
		log.Error("finish import run failed", "run_id", id, "error", ferr)
	}
	log.Info("import finished", "run_id", id, "status", run.Status, "imported", imported, "failed", failed)
	return run, err
}

func (im *Importer) importLinks(ctx context.Context, src Source, log *logger.Logger) (int, int, error) {
	links, err := im.listLinks(ctx, src, log)
	if err != nil {
		return 0, 0, err
	}
	if len(links) == 0 {
		return 0, 0, errNoLinks
	}

	pool := NewWorkerPool(im.opts.Workers, im.opts.Workers*2, im.opts.RatePerSecond)
	results := pool.Run(ctx)

	var (
		imported int
		failed   int
		lastErr  error
		done     = make(chan struct{})
	)
	// Counters are only read after done closes.
	go func() {
		defer close(done)
		for err := range results {
			if err != nil {
				failed++
				lastErr = err
			} else {
				imported++
			}
		}
	}()

	for _, link := range links {
		link := link
		ok := pool.Submit(ctx, func(ctx context.Context) error {
			meta, err := im.detail(ctx, link)
			if err != nil {
				log.Debug("detail page skipped", "link", link, "error", err)
				return err
			}
			return upsertResource(ctx, im.db, resource.Resource{
				Title:       meta.Title,
				Description: meta.Description,
				Category:    src.Category,
				Link:        link,
			})
		})
		if !ok {
			break
		}
	}
	pool.Close()
	<-done

	if err := ctx.Err(); err != nil {
		return imported, failed, err
	}
	if imported == 0 && lastErr != nil {
		return 0, failed, lastErr
	}
	return imported, failed, nil
}

// listLinks walks the listing pages, stopping early once MaxItems distinct
// links are known. A page that fails is logged and skipped.
func (im *Importer) listLinks(ctx context.Context, src Source, log *logger.Logger) ([]string, error) {
	collect := im.collect
	if src.Headless {
		collect = im.headless
	}

	seen := map[string]bool{}
	var (
		links   []string
		lastErr error
	)
	for page := 1; page <= src.Pages && len(links) < im.opts.MaxItems; page++ {
		pageURL := src.PageURL(page)
		found, err := collect(ctx, src, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("listing page failed", "url", pageURL, "error", err)
			lastErr = err
			continue
		}
		for _, l := range found {
			if seen[l] || len(links) >= im.opts.MaxItems {
				continue
			}
			seen[l] = true
			links = append(links, l)
		}
		if pageURL == src.PageURL(page+1) {
			break
		}
	}
	if len(links) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return links, nil
}
