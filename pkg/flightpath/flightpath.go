// Package flightpath describes the read-only waypoint sequences a
// scripted-flight controller steers along.
package flightpath

import (
	"math"

	"github.com/bxrne/shipcore/pkg/spatial"
)

// WaypointKind distinguishes how a scripted controller should treat arrival
// at a waypoint; the core only uses it for bookkeeping, leaving behavior
// differences to higher-level scene policy.
type WaypointKind int

const (
	Position WaypointKind = iota
	Approach
	Rendezvous
)

// Waypoint is one stop along a FlightPath.
type Waypoint struct {
	Position    spatial.Vector3
	TargetSpeed float64 // > 0
	Tolerance   float64 // > 0, radius within which the waypoint is considered reached
	Kind        WaypointKind
}

// FlightPath is an ordered, read-only waypoint sequence. Once built it is
// never mutated, so it may be shared by multiple scripted-flight
// controllers (or referenced by value) without synchronization.
type FlightPath struct {
	Waypoints     []Waypoint
	Loop          bool
	TotalDistance float64
}

func newPath(waypoints []Waypoint, loop bool) *FlightPath {
	total := 0.0
	for i := 1; i < len(waypoints); i++ {
		total += waypoints[i].Position.Subtract(waypoints[i-1].Position).Magnitude()
	}
	if loop && len(waypoints) > 1 {
		total += waypoints[0].Position.Subtract(waypoints[len(waypoints)-1].Position).Magnitude()
	}
	return &FlightPath{Waypoints: waypoints, Loop: loop, TotalDistance: total}
}

// NewCircuitPath builds a looping path through the given points, all flown
// at targetSpeed and reached within tolerance.
func NewCircuitPath(points []spatial.Vector3, targetSpeed, tolerance float64) *FlightPath {
	waypoints := make([]Waypoint, len(points))
	for i, p := range points {
		waypoints[i] = Waypoint{Position: p, TargetSpeed: targetSpeed, Tolerance: tolerance, Kind: Position}
	}
	return newPath(waypoints, true)
}

// NewFigureEightPath builds a looping figure-eight path centered on center,
// in the XZ plane, made of two passes of samplesPerLobe sampled waypoints.
// Each pass traces the whole figure-eight (the second with X mirrored), so
// one lap of the path goes round the eight twice.
func NewFigureEightPath(center spatial.Vector3, radius, targetSpeed, tolerance float64, samplesPerLobe int) *FlightPath {
	if samplesPerLobe < 3 {
		samplesPerLobe = 3
	}
	waypoints := make([]Waypoint, 0, samplesPerLobe*2)
	for i := 0; i < samplesPerLobe; i++ {
		theta := 2 * math.Pi * float64(i) / float64(samplesPerLobe)
		offset := spatial.Vector3{X: radius * math.Sin(theta), Z: radius * math.Sin(theta) * math.Cos(theta)}
		waypoints = append(waypoints, Waypoint{
			Position:    center.Add(offset),
			TargetSpeed: targetSpeed,
			Tolerance:   tolerance,
			Kind:        Position,
		})
	}
	for i := 0; i < samplesPerLobe; i++ {
		theta := 2 * math.Pi * float64(i) / float64(samplesPerLobe)
		offset := spatial.Vector3{X: -radius * math.Sin(theta), Z: radius * math.Sin(theta) * math.Cos(theta)}
		waypoints = append(waypoints, Waypoint{
			Position:    center.Add(offset),
			TargetSpeed: targetSpeed,
			Tolerance:   tolerance,
			Kind:        Position,
		})
	}
	return newPath(waypoints, true)
}

// NewLandingApproachPath builds a non-looping glide path that decelerates
// into touchdown: a sequence of waypoints from entry down to pad, each
// slower and tighter-tolerance than the last.
func NewLandingApproachPath(entry, pad spatial.Vector3, entrySpeed float64, legs int) *FlightPath {
	if legs < 1 {
		legs = 1
	}
	waypoints := make([]Waypoint, 0, legs+1)
	for i := 0; i <= legs; i++ {
		t := float64(i) / float64(legs)
		pos := spatial.Vector3{
			X: entry.X + (pad.X-entry.X)*t,
			Y: entry.Y + (pad.Y-entry.Y)*t,
			Z: entry.Z + (pad.Z-entry.Z)*t,
		}
		speed := entrySpeed * (1 - t)
		if i == legs {
			speed = 0.1 // never exactly zero: waypoint target speeds stay positive
		}
		kind := Approach
		if i == legs {
			kind = Rendezvous
		}
		waypoints = append(waypoints, Waypoint{
			Position:    pos,
			TargetSpeed: speed,
			Tolerance:   1.0 - 0.5*t, // tightens from 1.0 at entry to 0.5 at the pad
			Kind:        kind,
		})
	}
	return newPath(waypoints, false)
}
