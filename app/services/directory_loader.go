package services

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DirectoryLoader fetches the external option lists once in the background.
// Scoring never waits for it; the completion callback runs exactly once.
type DirectoryLoader struct {
	dir      Directory
	timeout  time.Duration
	recorder FetchRecorder

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewDirectoryLoader(dir Directory, timeout time.Duration, recorder FetchRecorder) *DirectoryLoader {
	return &DirectoryLoader{
		dir:      dir,
		timeout:  timeout,
		recorder: recorder,
		done:     make(chan struct{}),
	}
}

// Start launches the load. Later calls are no-ops.
func (l *DirectoryLoader) Start(ctx context.Context, onDone func(DirectoryLists)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true

	ctx, cancel := context.WithCancel(ctx)
	if l.timeout > 0 {
		ctx, cancel = withTimeout(ctx, cancel, l.timeout)
	}
	l.cancel = cancel

	go func() {
		defer close(l.done)
		defer cancel()

		lists := l.load(ctx)
		if onDone != nil {
			onDone(lists)
		}
	}()
}

// Wait blocks until the callback has returned. It returns at once if Start was never called.
func (l *DirectoryLoader) Wait() {
	l.mu.Lock()
	started := l.started
	l.mu.Unlock()
	if !started {
		return
	}
	<-l.done
}

// Stop cancels an in-flight load and waits for the callback
func (l *DirectoryLoader) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	l.Wait()
}

func (l *DirectoryLoader) load(ctx context.Context) DirectoryLists {
	var (
		out DirectoryLists
		g   errgroup.Group
	)

	g.Go(func() error {
		out.Countries, out.CountriesErr = l.fetch(ctx, DirectoryListCountries, l.dir.Countries)
		return nil
	})
	g.Go(func() error {
		out.Languages, out.LanguagesErr = l.fetch(ctx, DirectoryListLanguages, l.dir.Languages)
		return nil
	})
	_ = g.Wait()

	log.Printf(`{"level":"info","msg":"directory loaded","countries":%d,"languages":%d}`, len(out.Countries), len(out.Languages))
	return out
}

func (l *DirectoryLoader) fetch(ctx context.Context, list string, get func(context.Context) ([]string, error)) ([]string, error) {
	values, err := get(ctx)
	if err != nil {
		log.Printf(`{"level":"error","msg":"directory fetch failed","list":%q,"error":%q}`, list, err.Error())
		l.observe(list, "error")
		return []string{}, err
	}
	l.observe(list, "success")
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func (l *DirectoryLoader) observe(list, result string) {
	if l.recorder != nil {
		l.recorder.ObserveDirectoryFetch(list, result)
	}
}

func withTimeout(parent context.Context, parentCancel context.CancelFunc, d time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, d)
	return ctx, func() {
		cancel()
		parentCancel()
	}
}
