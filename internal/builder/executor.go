package builder

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/ctxlog"
)

// errSkipped marks recipes that were never computed because something
// upstream of them failed. It is a symptom, not a cause, and is never
// returned to callers.
var errSkipped = errors.New("skipped due to upstream failure")

// Node states for the concurrent build.
const (
	nodePending int32 = iota
	nodeSkipped
	nodeClaimed
)

// buildNode tracks one recipe's progress through the concurrent build.
type buildNode struct {
	slug       string
	depNodes   []*buildNode
	dependents []*buildNode
	depCount   atomic.Int32
	state      atomic.Int32

	model *Model
	err   error
}

// claim transitions the node from pending to claimed. Only the claiming
// worker computes it; a false result means the node was skipped first.
func (n *buildNode) claim() bool {
	return n.state.CompareAndSwap(nodePending, nodeClaimed)
}

// buildConcurrent computes independent recipes in parallel with a fixed
// worker pool. A recipe becomes ready only when every child recipe it
// references has finished, so topological order acts as the barrier
// between graph depths; each worker reads shared immutable site data and
// writes only its own node's slot. The base-profile map handed to each
// computation is assembled from that node's completed dependencies, keeping
// the cache hand-off explicit. Results are identical to the sequential
// path; only the schedule differs.
func buildConcurrent(ctx context.Context, site *config.Site, order []string, opts Options) (map[string]*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting concurrent computation.", "workers", opts.Workers)

	nodes := make(map[string]*buildNode, len(order))
	for _, slug := range order {
		nodes[slug] = &buildNode{slug: slug}
	}
	for _, slug := range order {
		n := nodes[slug]
		for _, ref := range uniqueRefs(site.Recipes[slug]) {
			dep := nodes[ref]
			n.depNodes = append(n.depNodes, dep)
			dep.dependents = append(dep.dependents, n)
		}
		n.depCount.Store(int32(len(n.depNodes)))
	}

	readyChan := make(chan *buildNode, len(nodes))
	rootCount := 0
	for _, slug := range order {
		if nodes[slug].depCount.Load() == 0 {
			readyChan <- nodes[slug]
			rootCount++
		}
	}
	logger.Debug("Build: found all root recipes.", "count", rootCount)

	var wg sync.WaitGroup
	wg.Add(len(nodes))
	for i := 0; i < opts.Workers; i++ {
		go buildWorker(ctx, site, opts, readyChan, &wg, i)
	}
	wg.Wait()
	close(readyChan)

	// Surface the first real failure in topological order so the reported
	// error does not depend on scheduling.
	for _, slug := range order {
		if err := nodes[slug].err; err != nil && !errors.Is(err, errSkipped) {
			return nil, err
		}
	}

	models := make(map[string]*Model, len(nodes))
	for slug, n := range nodes {
		models[slug] = n.model
	}
	return models, nil
}

// buildWorker is the processing loop for a single concurrent worker.
func buildWorker(ctx context.Context, site *config.Site, opts Options, readyChan chan *buildNode, wg *sync.WaitGroup, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build worker started.", "workerID", workerID)

	for node := range readyChan {
		if !node.claim() {
			// Skipped after becoming ready; its wait-group slot is
			// already released.
			continue
		}

		workerLogger := logger.With("workerID", workerID, "slug", node.slug)
		workerLogger.Debug("Worker picked up recipe.")

		// Dependencies completed before this node became ready, so their
		// base profiles can be read without further synchronization.
		base := make(map[string]*Profile, len(node.depNodes))
		for _, dep := range node.depNodes {
			base[dep.slug] = dep.model.Base()
		}

		model, err := buildModel(ctx, site.Recipes[node.slug], site, base, opts.Policy)
		if err != nil {
			workerLogger.Error("Recipe computation failed.", "error", err)
			node.err = err
			skipDependents(ctx, node, wg)
			wg.Done()
			continue
		}

		node.model = model
		for _, dependent := range node.dependents {
			if dependent.depCount.Add(-1) == 0 {
				workerLogger.Debug("Unlocking dependent recipe.", "dependent", dependent.slug)
				readyChan <- dependent
			}
		}
		wg.Done()
	}
	logger.Debug("Build worker finished.", "workerID", workerID)
}

// skipDependents recursively marks all downstream recipes as skipped and
// releases their wait-group slots.
func skipDependents(ctx context.Context, node *buildNode, wg *sync.WaitGroup) {
	logger := ctxlog.FromContext(ctx)
	for _, dependent := range node.dependents {
		if dependent.state.CompareAndSwap(nodePending, nodeSkipped) {
			logger.Warn("Skipping recipe due to upstream failure.", "slug", dependent.slug, "upstream", node.slug)
			dependent.err = errSkipped
			wg.Done()
			skipDependents(ctx, dependent, wg)
		}
	}
}

// uniqueRefs returns the recipe's child recipe slugs, deduplicated, in
// declaration order.
func uniqueRefs(r *config.Recipe) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, ref := range r.RecipeRefs() {
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}
	return refs
}
