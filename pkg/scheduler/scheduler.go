// Package scheduler runs heterogeneous simulation systems at independent
// frequencies within a single cooperative tick.
package scheduler

import (
	"fmt"

	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/zerodha/logf"
)

// UpdateFunc is a registered system's per-fire callback. delta is the
// interval since this system's previous fire, not the frame delta.
type UpdateFunc func(world *ecs.World, delta float64) error

// LODPolicy lets a system scale its own effective frequency by distance
// to the player entity, e.g. AI at 2-10 Hz. Nil means no LOD: the system
// always runs at Frequency.
type LODPolicy func(world *ecs.World) float64

// System is a registered unit of per-tick work.
type System struct {
	Name      string
	Frequency float64 // Hz; zero disables the system
	Update    UpdateFunc
	LOD       LODPolicy

	accumulator float64
}

func (s *System) effectiveFrequency(world *ecs.World) float64 {
	if s.LOD != nil {
		return s.LOD(world)
	}
	return s.Frequency
}

// Scheduler holds the registered systems and drives them from Tick. The
// order systems are registered in is the order they fire within a tick when
// multiple become due on the same advance; callers MUST register in the
// hard-ordering contract's order (scripted-flight, control, thrusters,
// physics, collision, camera, ...) to preserve it.
type Scheduler struct {
	world      *ecs.World
	log        logf.Logger
	systems    []*System
	maxCatchUp int
}

// DefaultMaxCatchUp bounds how many times a high-frequency system may fire
// within a single tick before the remaining backlog is dropped, avoiding
// the spiral of death on a long frame.
const DefaultMaxCatchUp = 4

// New builds a Scheduler over world, logging failed system updates with
// log. maxCatchUp <= 0 falls back to DefaultMaxCatchUp.
func New(world *ecs.World, log logf.Logger, maxCatchUp int) *Scheduler {
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Scheduler{world: world, log: log, maxCatchUp: maxCatchUp}
}

// Register adds a system. Registration order is fire order for systems
// that become due within the same Tick.
func (s *Scheduler) Register(sys *System) {
	s.systems = append(s.systems, sys)
}

// Tick advances every registered system's accumulator by realDt and fires
// each system's Update as many times as its accumulator allows, capped at
// maxCatchUp fires per system per tick. Structural mutations systems
// requested (via world.RequestDestroy) are flushed once, after every
// system has had a chance to fire.
func (s *Scheduler) Tick(realDt float64) {
	for _, sys := range s.systems {
		freq := sys.effectiveFrequency(s.world)
		if freq <= 0 {
			continue
		}
		interval := 1.0 / freq
		sys.accumulator += realDt

		fires := 0
		for sys.accumulator >= interval && fires < s.maxCatchUp {
			if err := s.safeUpdate(sys, interval); err != nil {
				s.log.Error("system update failed", "system", sys.Name, "error", err)
			}
			sys.accumulator -= interval
			fires++
		}
		if fires == s.maxCatchUp && sys.accumulator >= interval {
			// Backlog exceeds the catch-up cap; drop it rather than spiral.
			s.log.Warn("system dropped catch-up backlog", "system", sys.Name, "backlog_seconds", sys.accumulator)
			sys.accumulator = 0
		}
	}
	s.world.Flush()
}

func (s *Scheduler) safeUpdate(sys *System, delta float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in system %s: %v", sys.Name, r)
		}
	}()
	return sys.Update(s.world, delta)
}
