// Package constraintprofile accumulates a constraint-count profile keyed by
// call site, so the cost of each gadget can be inspected with the standard
// pprof toolchain instead of only a single scalar reported at the end of a
// circuit's compilation.
package constraintprofile

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"github.com/google/pprof/profile"
)

// Sample is one recorded constraint-count measurement for a call site.
type Sample struct {
	Site   string // "package.Function"
	Before int
	After  int
}

// Delta is the number of constraints the recorded call site added.
func (s Sample) Delta() int { return s.After - s.Before }

// Profiler accumulates Samples and exports them as a pprof profile, so
// per-gadget constraint cost can be inspected with `go tool pprof`.
type Profiler struct {
	mu      sync.Mutex
	samples []Sample
}

// New returns an empty Profiler.
func New() *Profiler {
	return &Profiler{}
}

// Track measures how many constraints fn adds to the circuit and records
// the delta under the caller's function name. countFn reports the current
// constraint count; callers typically pass api.Compiler().GetNbConstraints
// or a constraint.ConstraintSystem's GetNbConstraints method.
func (p *Profiler) Track(countFn func() int, fn func()) {
	site := callerName(2)
	before := countFn()
	fn()
	after := countFn()
	p.mu.Lock()
	p.samples = append(p.samples, Sample{Site: site, Before: before, After: after})
	p.mu.Unlock()
}

// Samples returns a snapshot of all recorded samples.
func (p *Profiler) Samples() []Sample {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Sample, len(p.samples))
	copy(out, p.samples)
	return out
}

// ByCallSite aggregates recorded constraint deltas by call site, for a
// quick textual summary without going through pprof.
func (p *Profiler) ByCallSite() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	totals := make(map[string]int)
	for _, s := range p.samples {
		totals[s.Site] += s.Delta()
	}
	return totals
}

// WriteProfile serializes the accumulated samples as a pprof profile.Profile
// with a single "constraints" sample type, one Location/Function per
// distinct call site, so they can be inspected with `go tool pprof -top` or
// rendered as a flame graph.
func (p *Profiler) WriteProfile(w io.Writer) error {
	p.mu.Lock()
	totals := make(map[string]int64)
	for _, s := range p.samples {
		totals[s.Site] += int64(s.Delta())
	}
	p.mu.Unlock()

	prof := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "constraints", Unit: "count"}},
		PeriodType: &profile.ValueType{Type: "constraints", Unit: "count"},
		Period:     1,
	}

	var nextID uint64
	for site, total := range totals {
		nextID++
		fn := &profile.Function{ID: nextID, Name: site}
		loc := &profile.Location{ID: nextID, Line: []profile.Line{{Function: fn}}}
		prof.Function = append(prof.Function, fn)
		prof.Location = append(prof.Location, loc)
		prof.Sample = append(prof.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{total},
		})
	}

	return prof.Write(w)
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

// Report renders a human-readable summary, most expensive call site first.
func (p *Profiler) Report() string {
	totals := p.ByCallSite()
	sites := make([]string, 0, len(totals))
	for site := range totals {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool {
		if totals[sites[i]] != totals[sites[j]] {
			return totals[sites[i]] > totals[sites[j]]
		}
		return sites[i] < sites[j]
	})
	var out string
	for _, site := range sites {
		out += fmt.Sprintf("%-60s %d\n", site, totals[site])
	}
	return out
}
