package platform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/introspection"

	"github.com/aretw0/overload/pkg/adapters/fs"
	"github.com/aretw0/overload/pkg/scenario"
)

// stateNode is the tree shape introspection.TreeDiagram walks.
// Status must be one of the classes in introspection.DefaultStyles().
type stateNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []stateNode
}

// Components returns the engine parts that report their own state.
func (e *Engine) Components() []introspection.Component {
	return []introspection.Component{e.Loader, e.Runner}
}

// Diagram renders the engine and its components as a Mermaid graph.
func (e *Engine) Diagram() string {
	config := introspection.DefaultDiagramConfig()
	config.SecondaryID = "engine"
	config.SecondaryLabel = "Engine"
	config.NodeLabeler = labelWithMetadata
	return introspection.TreeDiagram(e.stateTree(), config)
}

func (e *Engine) stateTree() stateNode {
	root := stateNode{
		Name:     "Engine",
		Status:   "running",
		Metadata: map[string]string{"type": "supervisor"},
	}

	for _, c := range e.Components() {
		intro, ok := c.(introspection.Introspectable)
		if !ok {
			continue
		}
		switch state := intro.State().(type) {
		case fs.LoaderState:
			root.Children = append(root.Children, loaderNode(c.ComponentType(), state))
		case scenario.RunnerState:
			root.Children = append(root.Children, runnerNode(c.ComponentType(), state))
		default:
			root.Children = append(root.Children, stateNode{Name: c.ComponentType()})
		}
	}
	return root
}

func loaderNode(name string, state fs.LoaderState) stateNode {
	watcher := stateNode{
		Name:     "watcher",
		Status:   "suspended",
		Metadata: map[string]string{"type": "goroutine"},
	}
	if state.Watchers > 0 {
		watcher.Status = "running"
		watcher.Metadata["active"] = strconv.Itoa(state.Watchers)
	}

	return stateNode{
		Name:   name,
		Status: "running",
		Metadata: map[string]string{
			"type":   "process",
			"strict": strconv.FormatBool(state.Strict),
		},
		Children: []stateNode{
			watcher,
			{
				Name:   "cache",
				Status: "running",
				Metadata: map[string]string{
					"type":    "container",
					"entries": strconv.Itoa(state.CacheSize),
					"hits":    strconv.Itoa(state.CacheHits),
					"misses":  strconv.Itoa(state.CacheMisses),
				},
			},
		},
	}
}

func runnerNode(name string, state scenario.RunnerState) stateNode {
	status := "created"
	switch {
	case state.Failures > 0:
		status = "failed"
	case state.Runs > 0:
		status = "finished"
	}

	meta := map[string]string{
		"type":     "process",
		"runs":     strconv.Itoa(state.Runs),
		"calls":    strconv.Itoa(state.Calls),
		"failures": strconv.Itoa(state.Failures),
	}
	if state.LastScenario != "" {
		meta["last"] = state.LastScenario
	}
	return stateNode{Name: name, Status: status, Metadata: meta}
}

// labelWithMetadata prints every metadata entry except the node type, sorted
// by key.
func labelWithMetadata(name, status string, _ int, metadata map[string]string, icon string) string {
	parts := []string{fmt.Sprintf("<b>%s %s</b>", icon, name)}
	if status != "" {
		parts = append(parts, "Status: "+status)
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		if k != "type" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, metadata[k]))
	}
	return strings.Join(parts, "<br/>")
}
