package chain

import (
	"strconv"
	"strings"

	"github.com/dmtrjoy/pom/internal/db"
	"github.com/dmtrjoy/pom/internal/table"
	"github.com/dmtrjoy/pom/internal/term"
)

// Render walks a forest and produces its tabular representation: one row per
// quest with ancestry connectors prefixed to the objective.
func Render(forest []*Chain, p term.Painter) string {
	t := table.New(
		table.Rich(p.Underline("ID"), "ID"),
		table.Rich(p.Underline("Objective"), "Objective"),
		table.Rich(p.Underline("Status"), "Status"),
		table.Rich(p.Underline("Tier"), "Tier"),
	)

	r := &renderer{t: t, p: p}
	for i, root := range forest {
		r.walk(root, 0, i == len(forest)-1)
	}
	return t.String()
}

type renderer struct {
	t *table.Table
	p term.Painter
	// pending[d] is true while the chain rendered at depth d still has
	// siblings to come, i.e. its ancestor line must keep running.
	pending []bool
}

func (r *renderer) walk(c *Chain, depth int, last bool) {
	q := c.Quest
	tier := q.Tier.Display()

	r.t.Add(
		table.Plain(strconv.FormatInt(q.ID, 10)),
		table.Plain(r.prefix(depth, last)+q.Objective),
		table.Plain(q.Status.String()),
		table.Rich(r.p.Paint(tier, tierColor(q.Tier)), tier),
	)

	for len(r.pending) <= depth {
		r.pending = append(r.pending, false)
	}
	r.pending[depth] = !last
	for i, child := range c.Children {
		r.walk(child, depth+1, i == len(c.Children)-1)
	}
	r.pending[depth] = false
}

// prefix builds the ancestry connectors for a node. Roots carry none; deeper
// nodes draw a continuation or blank segment per ancestor level, then the
// branch connector.
func (r *renderer) prefix(depth int, last bool) string {
	if depth == 0 {
		return ""
	}
	var b strings.Builder
	for level := 1; level < depth; level++ {
		if r.pending[level] {
			b.WriteString("│   ")
		} else {
			b.WriteString("    ")
		}
	}
	if last {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	return b.String()
}

func tierColor(t db.Tier) term.Color {
	switch t {
	case db.Rare:
		return term.Blue
	case db.Epic:
		return term.Purple
	case db.Legendary:
		return term.Yellow
	default:
		return term.White
	}
}
