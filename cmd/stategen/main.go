// Command stategen writes Go source declaring a large set of distinct state
// types for a tinyfsm host. It is used to exercise table dispatch, which only
// kicks in above a few hundred states.
//
//	stategen -n 300 -pkg benchmarks -host Host -event Tick -o states_gen.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"
	"text/template"
)

// Config holds the generator parameters.
type Config struct {
	N           int
	Package     string
	Host        string
	Event       string
	HandleEvery int
	EnterEvery  int
}

var errConfig = errors.New("invalid configuration")

func (c Config) validate() error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: -n must be positive", errConfig)
	case c.Package == "" || c.Host == "" || c.Event == "":
		return fmt.Errorf("%w: -pkg, -host and -event are required", errConfig)
	case c.HandleEvery < 1 || c.EnterEvery < 1:
		return fmt.Errorf("%w: -handle-every and -enter-every must be positive", errConfig)
	}
	return nil
}

// Command reconstructs the command line recorded in the generated header.
func (c Config) Command() string {
	return fmt.Sprintf("stategen -n %d -pkg %s -host %s -event %s -handle-every %d -enter-every %d",
		c.N, c.Package, c.Host, c.Event, c.HandleEvery, c.EnterEvery)
}

type state struct {
	ID     int
	Name   string
	Handle bool
	Enter  bool
}

func (c Config) states() []state {
	width := len(fmt.Sprint(c.N - 1))
	out := make([]state, c.N)
	for i := range out {
		out[i] = state{
			ID:     i,
			Name:   fmt.Sprintf("S%0*d", width, i),
			Handle: i%c.HandleEvery == 0,
			Enter:  i%c.EnterEvery == 0,
		}
	}
	return out
}

var tmpl = template.Must(template.New("states").Parse(`// Code generated by {{.Config.Command}}. DO NOT EDIT.

package {{.Config.Package}}

import "github.com/comalice/tinyfsm"

const (
	NumStates   = {{.Config.N}}
	HandleEvery = {{.Config.HandleEvery}}
	EnterEvery  = {{.Config.EnterEvery}}
)
{{range .States}}
type {{.Name}} struct{ Hits int }
{{if .Handle}}
func (s *{{.Name}}) Handle(h *{{$.Config.Host}}, ev {{$.Config.Event}}) {
	s.Hits++
	h.Record({{.ID}}, ev)
}
{{end}}{{if .Enter}}
func (s *{{.Name}}) Enter(h *{{$.Config.Host}}) {
	h.Entered({{.ID}})
}
{{end}}{{end}}
// States returns a fresh instance of every generated state, in ordinal order.
func States() tinyfsm.States {
	return tinyfsm.States{
{{- range .States}}
		&{{.Name}}{},
{{- end}}
	}
}
`))

// Generate renders the source for cfg, gofmt'ed.
func Generate(cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Config Config
		States []state
	}{cfg, cfg.states()})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("stategen", flag.ContinueOnError)
	var cfg Config
	var out string
	fs.IntVar(&cfg.N, "n", 300, "number of states")
	fs.StringVar(&cfg.Package, "pkg", "main", "package name")
	fs.StringVar(&cfg.Host, "host", "Host", "host type name")
	fs.StringVar(&cfg.Event, "event", "Tick", "event type name")
	fs.IntVar(&cfg.HandleEvery, "handle-every", 3, "every k-th state handles the event")
	fs.IntVar(&cfg.EnterEvery, "enter-every", 5, "every k-th state has an enter hook")
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := Generate(cfg)
	if err != nil {
		return err
	}
	if out == "" || out == "-" {
		_, err = stdout.Write(src)
		return err
	}
	if !strings.HasSuffix(out, ".go") {
		return fmt.Errorf("%w: output %q is not a .go file", errConfig, out)
	}
	return os.WriteFile(out, src, 0o644)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "stategen:", err)
		os.Exit(2)
	}
}
