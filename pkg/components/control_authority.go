package components

import (
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
)

// ControlMode selects how a ControlAuthority's command is produced.
type ControlMode int

const (
	Manual ControlMode = iota
	Assisted
	Autopilot
)

func (m ControlMode) String() string {
	switch m {
	case Manual:
		return "manual"
	case Assisted:
		return "assisted"
	case Autopilot:
		return "autopilot"
	default:
		return "unknown"
	}
}

const (
	minSensitivity = 0.1
	maxSensitivity = 5.0

	// DefaultFlightAssistStrength is the counter-rotation gain applied on
	// near-zero-input angular axes when flight assist is enabled.
	DefaultFlightAssistStrength = 0.5
)

// ControlAuthority maps a command source (player input or a scripted
// controller) into a thruster command. ControlledBy names the source: an
// entity may control itself (player ships), be controlled by a separate
// scripted-flight entity, or carry ecs.InvalidEntity for no-op.
type ControlAuthority struct {
	ControlledBy ecs.EntityId

	Sensitivity           float64 // clamped to [0.1, 5.0]
	FlightAssistEnabled   bool
	FlightAssistStrength  float64
	Mode                  ControlMode

	// InputLinear and InputAngular are normalized, pre-sensitivity scratch
	// vectors. A scripted controller writes these directly; the control
	// system reads them when Mode is Autopilot or ControlledBy names
	// another entity.
	InputLinear  spatial.Vector3
	InputAngular spatial.Vector3
}

// NewControlAuthority builds a self-controlled, manual-mode authority with
// default sensitivity and flight-assist strength.
func NewControlAuthority(self ecs.EntityId) ControlAuthority {
	return ControlAuthority{
		ControlledBy:         self,
		Sensitivity:          1.0,
		FlightAssistStrength: DefaultFlightAssistStrength,
		Mode:                 Manual,
	}
}

// SetSensitivity clamps x into [0.1, 5.0] before storing it. Calling it
// twice with the same x is idempotent.
func (c *ControlAuthority) SetSensitivity(x float64) {
	if x < minSensitivity {
		x = minSensitivity
	}
	if x > maxSensitivity {
		x = maxSensitivity
	}
	c.Sensitivity = x
}

func AddControlAuthority(w *ecs.World, id ecs.EntityId, c ControlAuthority) (*ControlAuthority, error) {
	return ecs.AddComponent(w, id, ecs.ControlAuthorityKind, c)
}

func GetControlAuthority(w *ecs.World, id ecs.EntityId) (*ControlAuthority, error) {
	return ecs.GetComponent[ControlAuthority](w, id, ecs.ControlAuthorityKind)
}

func RemoveControlAuthority(w *ecs.World, id ecs.EntityId) bool {
	return ecs.RemoveComponent(w, id, ecs.ControlAuthorityKind)
}

// AllControlAuthorities returns the dense slice and parallel owner slice.
func AllControlAuthorities(w *ecs.World) ([]ControlAuthority, []ecs.EntityId) {
	return ecs.All[ControlAuthority](w, ecs.ControlAuthorityKind)
}
