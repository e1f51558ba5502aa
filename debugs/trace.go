package debugs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reusee/bfk/bflang"
)

// TraceCollector counts how many times each kind of instruction was
// dispatched during a run. Attach Add as the machine's Trace hook.
type TraceCollector struct {
	counts map[bflang.OpCode]uint64
}

func NewTraceCollector() *TraceCollector {
	return &TraceCollector{
		counts: make(map[bflang.OpCode]uint64),
	}
}

func (c *TraceCollector) Add(op bflang.OpCode) {
	c.counts[op]++
}

func (c *TraceCollector) Count(op bflang.OpCode) uint64 {
	return c.counts[op]
}

func (c *TraceCollector) Total() uint64 {
	var total uint64
	for _, n := range c.counts {
		total += n
	}
	return total
}

func (c *TraceCollector) Reset() {
	clear(c.counts)
}

// String renders the per-opcode counts, most executed first.
func (c *TraceCollector) String() string {
	type entry struct {
		op bflang.OpCode
		n  uint64
	}
	entries := make([]entry, 0, len(c.counts))
	for op, n := range c.counts {
		entries = append(entries, entry{op, n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].n != entries[j].n {
			return entries[i].n > entries[j].n
		}
		return entries[i].op < entries[j].op
	})

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-18s %d\n", e.op, e.n)
	}
	fmt.Fprintf(&sb, "%-18s %d\n", "total", c.Total())
	return sb.String()
}
