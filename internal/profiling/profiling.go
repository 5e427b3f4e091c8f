package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	buckets = map[string]time.Duration{}
)

// Track accumulates the elapsed time into the named bucket.
//
//	defer profiling.Track("hud.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		buckets[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears all buckets. Called once per frame.
func ResetFrame() {
	mu.Lock()
	for k := range buckets {
		delete(buckets, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the current buckets.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(buckets))
	for k, v := range buckets {
		out[k] = v
	}
	return out
}

// TopN formats the n largest buckets as "name=1.2ms" pairs.
func TopN(n int) string {
	snap := Snapshot()
	type kv struct {
		name string
		d    time.Duration
	}
	entries := make([]kv, 0, len(snap))
	for k, v := range snap {
		entries = append(entries, kv{k, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].d > entries[j].d })
	if n > len(entries) {
		n = len(entries)
	}
	parts := make([]string, 0, n)
	for _, e := range entries[:n] {
		parts = append(parts, fmt.Sprintf("%s=%.2fms", e.name, float64(e.d.Microseconds())/1000))
	}
	return strings.Join(parts, " ")
}
