package layout

import "github.com/ComputerConnection/flowgrid/pkg/flow"

// Preset names a layout strategy.
type Preset string

// Known layout presets.
const (
	PresetDagre    Preset = "dagre"
	PresetForce    Preset = "force"
	PresetTimeline Preset = "timeline"
	PresetManual   Preset = "manual"
)

// Presets lists every recognized preset in display order.
func Presets() []Preset {
	return []Preset{PresetDagre, PresetForce, PresetTimeline, PresetManual}
}

// Valid reports whether p names a recognized preset.
func (p Preset) Valid() bool {
	switch p {
	case PresetDagre, PresetForce, PresetTimeline, PresetManual:
		return true
	}
	return false
}

// ParsePreset maps a preset name to a Preset, falling back to
// [PresetManual] for anything unrecognized. There is no error path:
// an unknown name means "leave the nodes where they are".
func ParsePreset(name string) Preset {
	if p := Preset(name); p.Valid() {
		return p
	}
	return PresetManual
}

// strategy is a layout function with defaults already bound.
type strategy func(nodes []flow.Node, edges []flow.Edge) []flow.Node

// strategies is the fixed preset → function table.
var strategies = map[Preset]strategy{
	PresetDagre: func(nodes []flow.Node, edges []flow.Edge) []flow.Node {
		return Hierarchical(nodes, edges, HierarchicalOptions{})
	},
	PresetForce: func(nodes []flow.Node, edges []flow.Edge) []flow.Node {
		return Force(nodes, edges, DefaultIterations)
	},
	PresetTimeline: func(nodes []flow.Node, edges []flow.Edge) []flow.Node {
		return Timeline(nodes, edges)
	},
	PresetManual: manual,
}

// Apply runs the layout algorithm named by preset and returns a new node
// slice with positions populated. Unknown presets behave like
// [PresetManual]: the input nodes come back unchanged (absent positions
// stay absent). Apply never fails and never mutates its input.
func Apply(preset Preset, nodes []flow.Node, edges []flow.Edge) []flow.Node {
	if fn, ok := strategies[preset]; ok {
		return fn(nodes, edges)
	}
	return manual(nodes, edges)
}

// manual is the identity strategy: positions pass through untouched.
func manual(nodes []flow.Node, _ []flow.Edge) []flow.Node {
	return flow.CloneNodes(nodes)
}
