package orchestrator

import (
	"sync"
	"sync/atomic"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/compose"
	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/query"
	"github.com/monument-ringing/monument/search"
)

// defaultChannelCapacity bounds the update channel when Config leaves it
// unset; small enough that a stalled collector quickly applies backpressure
// to every worker (spec.md §5's "workers block when the consumer falls
// behind"), large enough that ordinary Progress/Comp bursts don't stall a
// worker against a collector that is merely busy for a moment.
const defaultChannelCapacity = 64

// progressInterval bounds how often a worker's frontier is sampled into a
// Progress update on a non-truncating iteration — reporting every pop
// would dominate the cost of the very loop spec.md §4.4 says must stay
// O(chunks/64 + successors). A truncation event is always reported
// immediately regardless of this interval, since queue_len at that moment
// is the one Progress detail a caller cannot reconstruct later.
const progressInterval = 256

// Config bounds one orchestrator Run.
type Config struct {
	// Search is the template search.Config every worker's Searcher is
	// built from; its QueueLimit is divided across sub-graphs (spec.md
	// §4.6 "queue_limit / num_workers") before use, not shared as-is.
	// NumComps is applied per worker rather than as a global cap: spec.md
	// names no synchronised counter for it, and adding one would
	// contradict §5's "the abort flag is the sole shared mutable word".
	Search search.Config
	// Workers bounds how many sub-graphs run concurrently; 0 (or a value
	// at least the sub-graph count) spawns one goroutine per sub-graph,
	// spec.md §4.6's "or a bounded pool" alternative.
	Workers int
	// ChannelCapacity sizes the update channel; 0 uses defaultChannelCapacity.
	ChannelCapacity int
}

// Run builds one sub-graph per start chunk (Split), searches each on its
// own goroutine, and delivers every Comp/Progress/Aborting update to cb in
// the order the collector drains the shared channel (spec.md §5's
// "ordering across workers is unspecified"). Run blocks until every worker
// has finished (or the shared abort flag, which Run allocates when nil, is
// observed and every worker has exited in response). resolver recovers a
// chunk's concrete course head during composition reconstruction — in
// practice a *query.Layout, the same Layout g was built from.
func Run(g *graph.Graph, resolved *query.Resolved, resolver compose.RowResolver, cfg Config, abort *atomic.Bool, cb func(Update)) {
	subs := Split(g)
	if len(subs) == 0 {
		return
	}
	if abort == nil {
		abort = new(atomic.Bool)
	}

	methods := make([]*bells.Method, len(resolved.Methods))
	for i, m := range resolved.Methods {
		methods[i] = m.Method
	}

	workerQueueLimit := cfg.Search.QueueLimit
	if workerQueueLimit > 0 {
		workerQueueLimit /= len(subs)
		if workerQueueLimit < 1 {
			workerQueueLimit = 1
		}
	}

	capacity := cfg.ChannelCapacity
	if capacity <= 0 {
		capacity = defaultChannelCapacity
	}
	updates := make(chan Update, capacity)

	var wg sync.WaitGroup
	runOne := func(sub *graph.Graph) {
		defer wg.Done()
		workerCfg := cfg.Search
		workerCfg.QueueLimit = workerQueueLimit
		runWorker(sub, resolved, resolver, methods, workerCfg, abort, updates)
	}

	wg.Add(len(subs))
	if workers := cfg.Workers; workers > 0 && workers < len(subs) {
		jobs := make(chan *graph.Graph, len(subs))
		for _, sub := range subs {
			jobs <- sub
		}
		close(jobs)
		for i := 0; i < workers; i++ {
			go func() {
				for sub := range jobs {
					runOne(sub)
				}
			}()
		}
	} else {
		for _, sub := range subs {
			go runOne(sub)
		}
	}

	go func() {
		wg.Wait()
		if abort.Load() {
			updates <- Update{Kind: UpdateAborting}
		}
		close(updates)
	}()

	for u := range updates {
		cb(u)
	}
}

// runWorker drives one sub-graph's Searcher to completion, translating each
// completed prefix into a reconstructed Composition and each sampled
// frontier state into a Progress update, both sent over updates.
func runWorker(sub *graph.Graph, resolved *query.Resolved, resolver compose.RowResolver, methods []*bells.Method, cfg search.Config, abort *atomic.Bool, updates chan<- Update) {
	searcher := search.NewSearcher(sub, cfg)

	var emitted, totalLength, maxLength int

	searcher.RunWithProgress(abort,
		func(p *search.CompPrefix) {
			comp, err := compose.Reconstruct(sub, resolver, methods, p.Path, resolved.Query.PartHead, p.Score)
			if err != nil {
				// A path compose.Reconstruct rejects is a programming error in
				// search/graph construction, not a user-facing condition (see
				// compose.ErrBadPath); drop the composition rather than crash
				// one worker's whole run over it.
				return
			}
			emitted++
			totalLength += comp.Length
			if comp.Length > maxLength {
				maxLength = comp.Length
			}
			updates <- Update{Kind: UpdateComp, Comp: comp}
		},
		func(pr search.Progress) {
			if !pr.TruncatingQueue && pr.IterCount%progressInterval != 0 {
				return
			}
			var avg float64
			if emitted > 0 {
				avg = float64(totalLength) / float64(emitted)
			}
			updates <- Update{Kind: UpdateProgress, Progress: Progress{
				IterCount:       pr.IterCount,
				NumComps:        emitted,
				QueueLen:        pr.QueueLen,
				AvgLength:       avg,
				MaxLength:       maxLength,
				TruncatingQueue: pr.TruncatingQueue,
			}}
		},
	)
}
