package problem

// Aggregator records problems for one builder or one operation call.
// Aggregators form a tree: a child never pushes its problems upward; a
// parent folds in its live children when summarized.  An Aggregator is
// owned by a single goroutine.  Children may be handed to other goroutines
// once created, but NewChild must not race with Summarize on the parent.
type Aggregator struct {
	parent    *Aggregator
	max       int
	entries   []*Entry
	index     map[string]int
	dropped   int
	children  []*Aggregator
	discarded bool
}

// NewAggregator returns a root aggregator that records at most max distinct
// problems.  A non-positive max means no limit.
func NewAggregator(max int) *Aggregator {
	return &Aggregator{max: max}
}

// NewChild returns an aggregator whose problems are folded into a's
// summaries.  The child shares a's limit.
func (a *Aggregator) NewChild() *Aggregator {
	child := &Aggregator{parent: a, max: a.max}
	a.children = append(a.children, child)
	return child
}

// Discard excludes a and its descendants from every later summary of its
// ancestors.  It is used when the call that owned a fails and its partial
// output is thrown away.
func (a *Aggregator) Discard() {
	a.discarded = true
}

// Report records one affected row for p.  The first problem reported for a
// key is kept as the example; later ones only raise the count.
func (a *Aggregator) Report(p Problem) {
	a.ReportN(p, 1)
}

// ReportN records n affected rows for p.
func (a *Aggregator) ReportN(p Problem, n int) {
	if n <= 0 {
		return
	}
	key := p.Key()
	if k, ok := a.index[key]; ok {
		a.entries[k].Count += n
		return
	}
	if a.max > 0 && len(a.entries) >= a.max {
		a.dropped += n
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, &Entry{Problem: p, Count: n})
}

// Summarize folds a's problems and those of its live descendants into a new
// Summary.  It does not modify any aggregator and may be called any number
// of times.
func (a *Aggregator) Summarize() *Summary {
	s := newSummary(a.max)
	for _, e := range a.entries {
		s.add(*e)
	}
	s.dropped += a.dropped
	for _, child := range a.children {
		if !child.discarded {
			s.Merge(child.Summarize())
		}
	}
	return s
}
