// Package visualize renders machine layouts as Graphviz DOT, JSON or YAML.
package visualize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tinyfsm"
)

// ErrUnknownFormat is returned by WriteFile for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown layout format")

// Edge is a transition known to the caller. The engine itself cannot discover
// transitions because they happen inside handler code.
type Edge struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Label string `json:"label" yaml:"label"`
}

// Document is the serialized form of a layout and its edges.
type Document struct {
	tinyfsm.Layout `yaml:",inline"`
	Edges          []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// DOT generates Graphviz DOT source for the layout. Nodes are keyed by ordinal
// and labeled with the state name. The active state is filled, states with an
// enter hook are drawn with a double border. Edge endpoints name states; a name
// shared by several states resolves to the first of them.
func DOT(l tinyfsm.Layout, edges []Edge) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", graphName(l))
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	ids := make(map[string]string, len(l.States))
	for _, s := range l.States {
		id := nodeID(s.ID)
		if _, ok := ids[s.Name]; !ok {
			ids[s.Name] = id
		}
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%d: %s", s.ID, s.Name))}
		if s.Enter {
			attrs = append(attrs, "peripheries=2")
		}
		if s.ID == l.Current {
			attrs = append(attrs, `style="rounded,filled"`, "fillcolor=lightgreen")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(attrs, " "))
	}

	endpoint := func(name string) string {
		if id, ok := ids[name]; ok {
			return id
		}
		return strconv.Quote(name)
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -> %s [label=%q];\n", endpoint(e.From), endpoint(e.To), e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// JSON serializes the layout and edges as indented JSON.
func JSON(l tinyfsm.Layout, edges []Edge) ([]byte, error) {
	data, err := json.MarshalIndent(Document{Layout: l, Edges: edges}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// YAML serializes the layout and edges as YAML.
func YAML(l tinyfsm.Layout, edges []Edge) ([]byte, error) {
	data, err := yaml.Marshal(Document{Layout: l, Edges: edges})
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// WriteFile renders the layout in the format implied by the file extension
// (.dot, .gv, .json, .yaml or .yml) and writes it to path.
func WriteFile(path string, l tinyfsm.Layout, edges []Edge) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		data = []byte(DOT(l, edges))
	case ".json":
		data, err = JSON(l, edges)
	case ".yaml", ".yml":
		data, err = YAML(l, edges)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func nodeID(id uint) string {
	return "s" + strconv.FormatUint(uint64(id), 10)
}

func graphName(l tinyfsm.Layout) string {
	if l.MachineID == "" {
		return "tinyfsm"
	}
	return l.MachineID
}
