package libdiff

import (
	"bufio"
	"fmt"
	"io"
)

type writeOpts struct {
	context int
	color   func(Op, string) string
}

type WriteOption func(*writeOpts)

// Context sets how many unchanged lines are kept around each change.  A
// negative value keeps all of them.
func Context(n int) WriteOption {
	return func(o *writeOpts) { o.context = n }
}

func Color(f func(Op, string) string) WriteOption {
	return func(o *writeOpts) { o.color = f }
}

// Write prints ls as unified diff hunks.
func Write(w io.Writer, ls []Line, opts ...WriteOption) error {
	o := &writeOpts{context: 3}
	for _, f := range opts {
		f(o)
	}
	bw := bufio.NewWriter(w)
	for _, h := range hunks(ls, o.context) {
		fmt.Fprintf(bw, "@@ -%d,%d +%d,%d @@\n", h.from, h.fromN, h.to, h.toN)
		for _, ln := range ls[h.lo:h.hi] {
			text := ln.Op.String() + " " + ln.Text
			if o.color != nil {
				text = o.color(ln.Op, text)
			}
			bw.WriteString(text + "\n")
		}
	}
	return bw.Flush()
}

type hunk struct {
	lo, hi      int
	from, fromN int
	to, toN     int
}

func hunks(ls []Line, context int) []hunk {
	if context < 0 {
		context = len(ls)
	}
	var res []hunk
	for i := 0; i < len(ls); {
		if ls[i].Op == Equal {
			i++
			continue
		}
		lo := max(i-context, 0)
		if n := len(res); n > 0 && lo <= res[n-1].hi {
			lo = res[n-1].lo
			res = res[:n-1]
		}
		hi := i
		for hi < len(ls) && ls[hi].Op != Equal {
			hi++
		}
		i = hi
		hi = min(hi+context, len(ls))
		res = append(res, span(ls, lo, hi))
	}
	return res
}

func span(ls []Line, lo, hi int) hunk {
	h := hunk{lo: lo, hi: hi}
	for _, ln := range ls[lo:hi] {
		if ln.Op != Insert {
			if h.from == 0 {
				h.from = ln.From
			}
			h.fromN++
		}
		if ln.Op != Delete {
			if h.to == 0 {
				h.to = ln.To
			}
			h.toN++
		}
	}
	return h
}
