// Command simcore runs a short demonstration flight: a player ship under
// scripted autopilot following a circuit path, ticked by the frequency
// scheduler, with a diagnostics summary and telemetry plot written at the
// end of the run.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bxrne/shipcore/internal/config"
	"github.com/bxrne/shipcore/internal/diagnostics"
	"github.com/bxrne/shipcore/internal/logger"
	"github.com/bxrne/shipcore/internal/telemetry"
	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/flightpath"
	"github.com/bxrne/shipcore/pkg/scheduler"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/bxrne/shipcore/pkg/systems"
	"golang.org/x/text/language"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("SHIPCORE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Printf("critical: failed to load config %s: %v\n", path, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("simcore starting", "max_entities", cfg.World.MaxEntities)

	world := ecs.NewWorld(cfg.World.MaxEntities, log)

	ship, err := world.Create()
	if err != nil {
		log.Fatal("failed to create ship entity", "error", err)
	}
	world.SetPlayerEntity(ship)

	if _, err := components.AddTransform(world, ship, components.NewTransform()); err != nil {
		log.Fatal("failed to attach transform", "error", err)
	}
	physics := components.NewPhysics(1000, spatial.Vector3{X: 500, Y: 500, Z: 500})
	physics.Has6DOF = true
	physics.DragLinear = 0.995
	physics.DragAngular = 0.98
	if _, err := components.AddPhysics(world, ship, physics); err != nil {
		log.Fatal("failed to attach physics", "error", err)
	}
	thruster := components.NewThruster(spatial.Vector3{X: 2000, Y: 2000, Z: 2000}, spatial.Vector3{X: 500, Y: 500, Z: 500})
	if _, err := components.AddThruster(world, ship, thruster); err != nil {
		log.Fatal("failed to attach thruster", "error", err)
	}
	authority := components.NewControlAuthority(ship)
	authority.Mode = components.Autopilot
	if _, err := components.AddControlAuthority(world, ship, authority); err != nil {
		log.Fatal("failed to attach control authority", "error", err)
	}

	path := flightpath.NewCircuitPath([]spatial.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1000, Y: 0, Z: 0},
		{X: 1000, Y: 0, Z: 1000},
		{X: 0, Y: 0, Z: 1000},
	}, 100, 25)
	scripted := components.NewScriptedFlight(ship)
	if err := scripted.Start(path); err != nil {
		log.Fatal("failed to start scripted flight", "error", err)
	}
	if _, err := components.AddScriptedFlight(world, ship, scripted); err != nil {
		log.Fatal("failed to attach scripted flight", "error", err)
	}

	sched := scheduler.New(world, log, cfg.Scheduler.MaxCatchUp)
	sched.Register(&scheduler.System{Name: "scripted_flight", Frequency: cfg.Scheduler.Frequencies["scripted_flight"], Update: systems.NewScriptedFlightSystem().Update})
	sched.Register(&scheduler.System{Name: "control", Frequency: cfg.Scheduler.Frequencies["control"], Update: systems.NewControlSystem().Update})
	sched.Register(&scheduler.System{Name: "thrusters", Frequency: cfg.Scheduler.Frequencies["thrusters"], Update: systems.NewThrusterSystem().Update})
	sched.Register(&scheduler.System{Name: "physics", Frequency: cfg.Scheduler.Frequencies["physics"], Update: systems.NewPhysicsSystem(log).Update})
	sched.Register(&scheduler.System{Name: "camera", Frequency: cfg.Scheduler.Frequencies["camera"], Update: systems.NewCameraSystem().Update})

	recorder := telemetry.NewRecorder(ship)

	const tickDt = 1.0 / 60.0
	const runSeconds = 30.0
	ticks := int(runSeconds / tickDt)
	for i := 0; i < ticks; i++ {
		sched.Tick(tickDt)
		recorder.Sample(world, tickDt)
	}

	printer := diagnostics.NewPrinter(os.Stdout, language.English)
	printer.Summary(world)
	printer.PrintTransforms(world)

	outDir := filepath.Join(os.TempDir(), "shipcore-run")
	plotPath := filepath.Join(outDir, "altitude.svg")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Error("failed to create output dir", "error", err)
		return
	}
	if err := recorder.SaveAltitudePlot(plotPath); err != nil {
		log.Error("failed to save telemetry plot", "error", err)
		return
	}
	log.Info("run complete", "plot", plotPath)
	fmt.Printf("run complete, artifacts under %s\n", outDir)
}
