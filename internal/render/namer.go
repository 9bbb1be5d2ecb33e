package render

import "fmt"

// Namer hands out collision-free temporary identifiers. One namer is
// shared across a writer and all of its nested child writers, so
// independently authored fragments deep in a render tree can never
// collide on a local name.
type Namer struct {
	counters map[string]int
}

// NewNamer returns a namer with all counters at zero.
func NewNamer() *Namer {
	return &Namer{counters: make(map[string]int, 4)}
}

// Next returns "<prefix>_<n>" for a strictly increasing n per prefix.
func (n *Namer) Next(prefix string) string {
	count := n.counters[prefix]
	n.counters[prefix] = count + 1
	return fmt.Sprintf("%s_%d", prefix, count)
}
