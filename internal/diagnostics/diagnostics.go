// Package diagnostics renders a world snapshot as a human-readable table,
// the way the teacher application renders benchmark results.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes world snapshots to an io.Writer as formatted tables.
type Printer struct {
	w       io.Writer
	printer *message.Printer
}

// NewPrinter builds a Printer that writes to w, formatting numbers for the
// given locale (use language.English when unsure).
func NewPrinter(w io.Writer, locale language.Tag) *Printer {
	return &Printer{w: w, printer: message.NewPrinter(locale)}
}

// PrintTransforms renders every entity's position and velocity as a table,
// joining the Transform and Physics snapshots by entity id.
func (p *Printer) PrintTransforms(world *ecs.World) {
	transforms := components.SnapshotTransforms(world)
	physicsValues, physicsEntities := components.AllPhysics(world)
	physicsByEntity := make(map[ecs.EntityId]components.Physics, len(physicsValues))
	for i, id := range physicsEntities {
		physicsByEntity[id] = physicsValues[i]
	}

	table := tablewriter.NewWriter(p.w)
	table.Header([]string{"Entity", "Position", "Velocity", "Mass"})

	for id, tr := range transforms {
		pos := tr.Position
		row := []string{
			id.String(),
			p.printer.Sprintf("%.2f, %.2f, %.2f", pos.X, pos.Y, pos.Z),
			"-",
			"-",
		}
		if ph, ok := physicsByEntity[id]; ok {
			v := ph.Velocity
			row[2] = p.printer.Sprintf("%.2f, %.2f, %.2f", v.X, v.Y, v.Z)
			row[3] = p.printer.Sprintf("%.1f", ph.Mass)
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

// PrintContacts renders a collision system's contact list for the tick.
func (p *Printer) PrintContacts(contacts []ContactRow) {
	table := tablewriter.NewWriter(p.w)
	table.Header([]string{"A", "B", "Distance"})
	for _, c := range contacts {
		_ = table.Append([]string{
			c.A.String(),
			c.B.String(),
			p.printer.Sprintf("%.3f", c.Distance),
		})
	}
	_ = table.Render()
}

// ContactRow is the subset of pkg/systems.Contact diagnostics needs,
// decoupled so this package doesn't import pkg/systems.
type ContactRow struct {
	A, B     ecs.EntityId
	Distance float64
}

// Summary writes a one-line world population summary.
func (p *Printer) Summary(world *ecs.World) {
	fmt.Fprintln(p.w, p.printer.Sprintf("entities: %d / %d", world.Len(), world.Capacity()))
}
