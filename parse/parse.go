package parse

import (
	"fmt"
	"strconv"

	"github.com/matthewpi/dcl/debug"
	"github.com/matthewpi/dcl/ir"
	"github.com/matthewpi/dcl/token"
	"go.uber.org/zap"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		pOpts.logger = debug.Logger()
	}
	p := &parser{
		tree: ir.NewTree(),
		opts: pOpts,
		log:  pOpts.logger.Named("parse"),
	}
	txt := token.SplitLines(d)
	for i, raw := range txt.Lines {
		if err := p.line(token.Classify(i+1, raw)); err != nil {
			return nil, err
		}
	}
	if err := p.eof(len(txt.Lines)); err != nil {
		return nil, err
	}
	p.tree.Lines = len(txt.Lines)
	return p.tree, nil
}

type parser struct {
	tree *ir.Tree
	opts *parseOpts
	log  *zap.Logger

	// open sections, innermost last
	stack []*ir.Section
	list  *openList
}

type openList struct {
	key     string
	kind    token.LineKind
	section *ir.Section
	value   *ir.Value
}

func (p *parser) current() *ir.Section {
	if n := len(p.stack); n > 0 {
		return p.stack[n-1]
	}
	return p.tree.Root
}

func (p *parser) line(ln token.Line) error {
	if debug.Parse() {
		p.log.Debug("line", zap.Int("line", ln.Num), zap.Stringer("kind", ln.Kind), zap.String("text", ln.Text))
	}
	if p.list != nil {
		done, err := p.listLine(ln)
		if done || err != nil {
			return err
		}
	}
	switch ln.Kind {
	case token.LBlank, token.LComment:
		return nil
	case token.LSectionOpen:
		p.open(ln)
	case token.LSectionClose:
		if len(p.stack) == 0 {
			return p.diag(ln, "unmatched }")
		}
		p.current().End = ln.Num
		p.stack = p.stack[:len(p.stack)-1]
	case token.LStringListOpen, token.LIntListOpen:
		p.list = &openList{
			key:     ln.Key,
			kind:    ln.Kind,
			section: p.current(),
			value:   newList(ln.Kind).AtLine(ln.Num),
		}
	case token.LStringListClose, token.LIntListClose:
		return p.diag(ln, "list closer outside of a list")
	case token.LAssign:
		v := Literal(p.expand(ln.Value, ln.Num)).AtLine(ln.Num)
		p.current().Put(ln.Key, v)
	case token.LMalformed:
		return p.diag(ln, ln.Err.Error())
	}
	return nil
}

func (p *parser) open(ln token.Line) {
	key := ln.Key
	if cur := p.current(); !cur.IsRoot() {
		key = cur.Key() + "." + key
	}
	s := ir.NewSection(ir.ParsePath(key), ln.Num)
	s.Local = ln.Key
	p.stack = append(p.stack, p.tree.Add(s))
}

// listLine consumes ln if it belongs to the open list.  A line that neither
// continues nor closes the list commits it unterminated and is handed back.
func (p *parser) listLine(ln token.Line) (bool, error) {
	l := p.list
	switch {
	case ln.Kind == token.LBlank || ln.Kind == token.LComment:
		return true, nil
	case ln.Kind.IsListClose():
		p.commitList(ln.Num)
		if ln.Kind != l.kind.Closer() {
			return true, p.diag(ln, fmt.Sprintf("list %q closed by %s", l.key, ln.Text))
		}
		return true, nil
	}
	item, ok := token.ListItem(ln.Text)
	if !ok {
		end := l.value.Last()
		p.commitList(end)
		if err := p.diagAt(l.value.Line, l.key, fmt.Sprintf("list %q not closed", l.key)); err != nil {
			return true, err
		}
		return false, nil
	}
	item = token.Unquote(p.expand(item, ln.Num))
	if l.kind == token.LStringListOpen {
		l.value.Strings = append(l.value.Strings, item)
	} else {
		if !token.IsInteger(item) {
			l.value.End = ln.Num
			return true, p.diag(ln, fmt.Sprintf("%q is not an integer", item))
		}
		n, _ := strconv.ParseInt(item, 10, 64)
		l.value.Ints = append(l.value.Ints, n)
	}
	l.value.End = ln.Num
	return true, nil
}

func (p *parser) commitList(end int) {
	l := p.list
	p.list = nil
	l.value.End = end
	l.section.Put(l.key, l.value)
}

func (p *parser) eof(last int) error {
	if p.list != nil {
		l := p.list
		p.commitList(l.value.Last())
		if err := p.diagAt(l.value.Line, l.key, fmt.Sprintf("list %q not closed", l.key)); err != nil {
			return err
		}
	}
	for i := len(p.stack) - 1; i >= 0; i-- {
		s := p.stack[i]
		if err := p.diagAt(s.Start, s.Name(), fmt.Sprintf("section %q not closed", s.Key())); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) expand(raw string, line int) string {
	if !p.opts.noInterpolate {
		var unresolved []string
		raw, unresolved = Interpolate(raw, p.tree.Lookup)
		for _, k := range unresolved {
			p.log.Debug("unresolved reference", zap.Int("line", line), zap.String("key", k))
		}
	}
	return token.Unescape(raw)
}

func (p *parser) diag(ln token.Line, msg string) error {
	return p.diagAt(ln.Num, ln.Text, msg)
}

func (p *parser) diagAt(line int, text, msg string) error {
	d := Diagnostic{Line: line, Text: text, Msg: msg}
	p.log.Debug("diagnostic", zap.Int("line", line), zap.String("msg", msg))
	if p.opts.diags != nil {
		*p.opts.diags = append(*p.opts.diags, d)
	}
	if p.opts.strict {
		return &d
	}
	return nil
}

func newList(k token.LineKind) *ir.Value {
	if k == token.LIntListOpen {
		return ir.FromInts(nil)
	}
	return ir.FromStrings(nil)
}
