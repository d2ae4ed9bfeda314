package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/encode"
	"github.com/matthewpi/dcl/eval"
	"github.com/matthewpi/dcl/libdiff"
	"github.com/matthewpi/dcl/parse"
	"go.uber.org/zap"
)

const (
	MsgExit    = "Exiting.."
	MsgInvalid = "Invalid mathematical expression"
)

var ErrNoDocument = errors.New("no document loaded")

type Console struct {
	out    io.Writer
	doc    *dcl.Document
	prompt string
	colors *encode.Colors
	log    *zap.Logger
}

type Option func(*Console)

// WithDocument gives the dot commands a document to work on.
func WithDocument(d *dcl.Document) Option {
	return func(c *Console) { c.doc = d }
}

func WithPrompt(p string) Option {
	return func(c *Console) { c.prompt = p }
}

func WithColors(cs *encode.Colors) Option {
	return func(c *Console) { c.colors = cs }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Console) { c.log = l }
}

func New(out io.Writer, opts ...Option) *Console {
	c := &Console{out: out, log: zap.NewNop()}
	for _, f := range opts {
		f(c)
	}
	return c
}

// Run reads lines from r until quit, end of input or cancellation of ctx.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Exec(sc.Text()) {
			return nil
		}
	}
}

// Exec handles one input line and reports whether it ended the session.
func (c *Console) Exec(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.EqualFold(line, "quit"), strings.EqualFold(line, "exit"):
		fmt.Fprintln(c.out, MsgExit)
		return true
	case line[0] == '.':
		if err := c.command(line); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	case eval.IsExpression(line):
		f, err := eval.Decimal(line)
		if err != nil {
			c.log.Debug("eval", zap.String("input", line), zap.Error(err))
			fmt.Fprintf(c.out, "error: %v\n", err)
			return false
		}
		fmt.Fprintln(c.out, strconv.FormatFloat(f, 'g', -1, 64))
	default:
		fmt.Fprintln(c.out, MsgInvalid)
	}
	return false
}

type command struct {
	name  string
	usage string
	nArgs int
	run   func(c *Console, args []string) error
}

// commands is filled in init since .help lists it.
var commands []command

func init() {
	commands = []command{
		{".get", ".get key", 1, (*Console).get},
		{".set", ".set key value", 2, (*Console).set},
		{".save", ".save", 0, (*Console).save},
		{".diff", ".diff", 0, (*Console).diff},
		{".dump", ".dump", 0, (*Console).dump},
		{".help", ".help", 0, (*Console).help},
	}
}

func (c *Console) command(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(commands, func(cmd command) bool { return cmd.name == words[0] })
	if i < 0 {
		return fmt.Errorf("unknown command %s, try .help", words[0])
	}
	cmd := commands[i]
	if len(words)-1 != cmd.nArgs {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	if c.doc == nil && cmd.name != ".help" {
		return ErrNoDocument
	}
	return cmd.run(c, words[1:])
}

func (c *Console) get(args []string) error {
	v, ok := c.doc.GetValue(args[0])
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	text, ok := encode.Literal(v)
	if !ok {
		text = v.Text()
	}
	fmt.Fprintf(c.out, "%s: %s\n", args[0], text)
	return nil
}

func (c *Console) set(args []string) error {
	v := parse.Literal(args[1])
	if err := c.doc.Set(args[0], v); err != nil {
		return err
	}
	c.log.Info("set", zap.String("key", args[0]), zap.Stringer("kind", v.Kind))
	return nil
}

func (c *Console) save([]string) error {
	if !c.doc.Dirty() {
		fmt.Fprintln(c.out, "nothing to save")
		return nil
	}
	if err := c.doc.Save(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "saved %s\n", c.doc.Target())
	return nil
}

func (c *Console) diff([]string) error {
	var opts []libdiff.WriteOption
	if c.colors != nil {
		opts = append(opts, libdiff.Color(c.colors.DiffLine))
	}
	return c.doc.Diff(c.out, opts...)
}

func (c *Console) dump([]string) error {
	var opts []encode.EncodeOption
	if c.colors != nil {
		opts = append(opts, encode.EncodeColors(c.colors))
	}
	return c.doc.Dump(c.out, opts...)
}

func (c *Console) help([]string) error {
	for _, cmd := range commands {
		fmt.Fprintln(c.out, "  "+cmd.usage)
	}
	fmt.Fprintln(c.out, "  quit | exit")
	fmt.Fprintln(c.out, "anything else is evaluated as arithmetic, e.g. sqrt(2) * 3")
	return nil
}
