package components

import (
	"context"

	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/flightpath"
	"github.com/looplab/fsm"
)

// Scripted-flight states, named the way MotorFSM names motor states.
const (
	FlightIdle      = "idle"
	FlightRunning   = "running"
	FlightPaused    = "paused"
	FlightCompleted = "completed"
)

// ScriptedFlight drives a target entity's ControlAuthority along a
// FlightPath. The path is shared, read-only data; the component only
// tracks progress through it.
type ScriptedFlight struct {
	*fsm.FSM

	Path            *flightpath.FlightPath
	Target          ecs.EntityId
	CurrentWaypoint int
	ManualOverride  bool
	CurrentSpeed    float64
}

// NewScriptedFlight builds an Idle controller with no path assigned yet.
func NewScriptedFlight(target ecs.EntityId) *ScriptedFlight {
	return &ScriptedFlight{
		Target: target,
		FSM: fsm.NewFSM(
			FlightIdle,
			fsm.Events{
				{Name: "start", Src: []string{FlightIdle, FlightCompleted}, Dst: FlightRunning},
				{Name: "pause", Src: []string{FlightRunning}, Dst: FlightPaused},
				{Name: "resume", Src: []string{FlightPaused}, Dst: FlightRunning},
				{Name: "complete", Src: []string{FlightRunning}, Dst: FlightCompleted},
			},
			fsm.Callbacks{},
		),
	}
}

// Start assigns path and transitions Idle/Completed -> Running.
func (s *ScriptedFlight) Start(path *flightpath.FlightPath) error {
	s.Path = path
	s.CurrentWaypoint = 0
	s.ManualOverride = false
	return s.Event(context.Background(), "start")
}

// Pause transitions Running -> Paused and marks the manual-override flag a
// human pilot set to suspend steering.
func (s *ScriptedFlight) Pause() error {
	s.ManualOverride = true
	return s.Event(context.Background(), "pause")
}

// Resume transitions Paused -> Running and clears manual override.
func (s *ScriptedFlight) Resume() error {
	s.ManualOverride = false
	return s.Event(context.Background(), "resume")
}

// Complete transitions Running -> Completed; called once the path is
// exhausted and non-looping.
func (s *ScriptedFlight) Complete() error {
	return s.Event(context.Background(), "complete")
}

// Active reports whether the controller should currently be steering.
func (s *ScriptedFlight) Active() bool {
	return s.Current() == FlightRunning
}

func AddScriptedFlight(w *ecs.World, id ecs.EntityId, s *ScriptedFlight) (*ScriptedFlight, error) {
	ptr, err := ecs.AddComponent(w, id, ecs.ScriptedFlightKind, s)
	if err != nil {
		return nil, err
	}
	return *ptr, nil
}

func GetScriptedFlight(w *ecs.World, id ecs.EntityId) (*ScriptedFlight, error) {
	ptr, err := ecs.GetComponent[*ScriptedFlight](w, id, ecs.ScriptedFlightKind)
	if err != nil {
		return nil, err
	}
	return *ptr, nil
}

func RemoveScriptedFlight(w *ecs.World, id ecs.EntityId) bool {
	return ecs.RemoveComponent(w, id, ecs.ScriptedFlightKind)
}

// AllScriptedFlights returns the dense slice and parallel owner slice.
func AllScriptedFlights(w *ecs.World) ([]*ScriptedFlight, []ecs.EntityId) {
	return ecs.All[*ScriptedFlight](w, ecs.ScriptedFlightKind)
}
