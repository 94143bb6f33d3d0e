// Package debug produces indented human readable dumps of program state.
package debug

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Pairs writes one "key: value" line per map entry, keys in natural order,
// values quoted.
func (tw TreeWriter) Pairs(depth int, m map[string]string) {
	keys := slices.Collect(maps.Keys(m))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		tw.indent(depth)
		tw.w.WriteString(k)
		tw.w.WriteString(": ")
		tw.w.WriteString(strconv.Quote(m[k]))
		tw.w.WriteByte('\n')
	}
}
