// Package chain reconstructs the forest of quest chains from the flat quest
// table and renders it as an indented tree.
package chain

import (
	"github.com/dmtrjoy/pom/internal/db"
)

// Chain is an in-memory tree node pairing one quest with its child chains, in
// id order. Chains are rebuilt fresh on every read and never persisted.
type Chain struct {
	Quest    db.Quest
	Children []*Chain
}

// Build turns a quest list ordered ascending by id into a forest of root
// chains. Every input quest appears in the output exactly once.
//
// All nodes live in one flat arena and are linked through an id index in a
// single pass. Parents always precede their children in the input (a child is
// only ever created against an existing parent), so by the time a quest is
// scanned its parent node is already in the index and the forest needs no
// second reconciliation pass.
func Build(quests []db.Quest) []*Chain {
	arena := make([]Chain, len(quests))
	index := make(map[int64]*Chain, len(quests))
	var roots []*Chain

	for i, q := range quests {
		node := &arena[i]
		node.Quest = q
		index[q.ID] = node

		if q.ChainID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[*q.ChainID]
		if !ok {
			// Orphaned chain_id; keep the quest visible as a root rather
			// than dropping it.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}
