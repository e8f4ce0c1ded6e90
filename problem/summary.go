package problem

import (
	"strings"

	"github.com/brimdata/tabular/pkg/plural"
	"github.com/kr/text"
)

// Entry is a deduplicated problem: the first example seen and the number
// of rows it affected.
type Entry struct {
	Problem Problem
	Count   int
}

// Summary is the deduplicated view of an aggregator tree consumed by
// reporting layers.
type Summary struct {
	max     int
	entries []Entry
	index   map[string]int
	dropped int
}

func newSummary(max int) *Summary {
	return &Summary{max: max, index: make(map[string]int)}
}

func (s *Summary) add(e Entry) {
	key := e.Problem.Key()
	if k, ok := s.index[key]; ok {
		s.entries[k].Count += e.Count
		return
	}
	if s.max > 0 && len(s.entries) >= s.max {
		s.dropped += e.Count
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Merge adds the entries of other into s as if they had been reported to
// the same aggregator after those of s.
func (s *Summary) Merge(other *Summary) {
	for _, e := range other.entries {
		s.add(e)
	}
	s.dropped += other.dropped
}

// Entries returns the deduplicated problems in first-seen order.
func (s *Summary) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of distinct problems recorded.
func (s *Summary) Len() int {
	return len(s.entries)
}

func (s *Summary) Empty() bool {
	return len(s.entries) == 0 && s.dropped == 0
}

func (s *Summary) Lookup(key string) (Entry, bool) {
	if k, ok := s.index[key]; ok {
		return s.entries[k], true
	}
	return Entry{}, false
}

// Count returns the number of rows affected by the problem with key.
func (s *Summary) Count(key string) int {
	e, _ := s.Lookup(key)
	return e.Count
}

// Dropped returns the number of rows affected by problems that were not
// recorded because the distinct-problem limit was reached.
func (s *Summary) Dropped() int {
	return s.dropped
}

// Total returns the number of affected rows over all problems, including
// dropped ones.
func (s *Summary) Total() int {
	n := s.dropped
	for _, e := range s.entries {
		n += e.Count
	}
	return n
}

func (s *Summary) String() string {
	var b strings.Builder
	b.WriteString(plural.Count(len(s.entries), "problem"))
	if s.dropped > 0 {
		b.WriteString(" (")
		b.WriteString(plural.Count(s.dropped, "more row"))
		b.WriteString(" not itemized)")
	}
	b.WriteString(":\n")
	for _, e := range s.entries {
		item := e.Problem.Message() + "\naffected " + plural.Count(e.Count, "row") + "\n"
		b.WriteString(text.Indent(item, "    "))
	}
	return b.String()
}
