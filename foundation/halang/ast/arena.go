// File: arena.go
// Title: Node Arena
// Description: Bulk owner of every node created during one parse. Nodes are
//              registered exactly once and receive a stable index; Release
//              invalidates every index at once.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial arena implementation

package ast

import (
	"fmt"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang/token"
)

// Arena owns the nodes of one parse session. The zero value is ready to use.
// An Arena is not safe for concurrent use.
type Arena struct {
	nodes    []Node
	released bool
}

// NewArena creates an empty arena with room for sizeHint nodes
func NewArena(sizeHint int) *Arena {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Arena{nodes: make([]Node, 0, sizeHint)}
}

// Alloc registers n in the arena at source position pos and returns it.
// Registering a node twice, or into a released arena, is a programming
// error and panics.
func Alloc[T Node](a *Arena, pos token.Position, n T) T {
	h := n.header()
	if h.arena != nil {
		panic(fmt.Sprintf("ast: %s already registered with id %d", n.Kind(), h.id))
	}
	if a.released {
		panic("ast: allocation from released arena")
	}

	a.nodes = append(a.nodes, n)
	h.arena = a
	h.id = NodeID(len(a.nodes))
	h.Pos = pos
	return n
}

// Node returns the node registered under id
func (a *Arena) Node(id NodeID) (Node, error) {
	if a.released {
		return nil, mdwerror.New("arena has been released").
			WithCode(mdwerror.CodeArenaReleased).
			WithDetail("id", id)
	}
	if id <= 0 || int(id) > len(a.nodes) {
		return nil, mdwerror.New(fmt.Sprintf("no node with id %d", id)).
			WithCode(mdwerror.CodeNotFound).
			WithDetail("id", id)
	}
	return a.nodes[id-1], nil
}

// Len returns the number of registered nodes
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Contains reports whether n is registered in this live arena
func (a *Arena) Contains(n Node) bool {
	if isNil(n) || a.released {
		return false
	}
	return n.header().arena == a
}

// Nodes returns the registered nodes in allocation order
func (a *Arena) Nodes() []Node {
	return append([]Node(nil), a.nodes...)
}

// Release drops every node. Afterwards all lookups fail and Contains
// reports false. Calling Release again has no effect.
func (a *Arena) Release() {
	if a.released {
		return
	}
	a.released = true
	a.nodes = nil
}

// Released reports whether Release was called
func (a *Arena) Released() bool {
	return a.released
}

// Verify checks that every node reachable from root is registered in this
// arena and is reachable exactly once
func (a *Arena) Verify(root Node) error {
	if a.released {
		return mdwerror.New("arena has been released").WithCode(mdwerror.CodeArenaReleased)
	}

	seen := make(map[NodeID]bool)
	var failure error
	Inspect(root, func(n Node) bool {
		if failure != nil {
			return false
		}
		switch {
		case !a.Contains(n):
			failure = mdwerror.New(n.Kind().String()+" is not owned by this arena").
				WithCode(mdwerror.CodeForeignNode).
				WithDetail("position", n.Position().String())
		case seen[n.ID()]:
			failure = mdwerror.New(n.Kind().String()+" is reachable more than once").
				WithCode(mdwerror.CodeInvalidNode).
				WithDetail("id", n.ID())
		default:
			seen[n.ID()] = true
		}
		return failure == nil
	})
	return failure
}
