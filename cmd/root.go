package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/liftsim/liftsim/sim"
	"github.com/liftsim/liftsim/sim/trace"
	"github.com/liftsim/liftsim/sim/workload"
)

var (
	// CLI flags for the simulation run
	seed     int64  // Seed for passenger generation
	horizon  int64  // Total simulation time (in ticks/seconds)
	logLevel string // Log verbosity level

	// CLI flags for the building
	floors       int     // Number of served floors
	elevators    int     // Number of elevator cars
	capacity     int     // Passengers per car
	floorHeightM float64 // Floor-to-floor height in meters
	speedMPS     float64 // Rated car speed in meters per second
	dwellTimeS   int     // Door dwell time per stop in seconds
	spawnProb    float64 // Per-tick probability of a new hall call

	// CLI flags for policy and traffic selection
	dispatcherType string // Dispatch policy name
	trafficProfile string // Traffic profile name
	traceLevel     string // Decision trace level (none, decisions)

	// CLI flags for scenario presets
	scenarioFile string // YAML file with scenario presets
	scenarioName string // Preset name inside the scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "liftsim",
	Short: "Discrete-time simulator for multi-elevator dispatch",
}

// runCmd executes one simulation to the horizon and prints the metrics
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lift simulation with the chosen dispatcher",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildConfig()
		env, tr := buildEnvironment(cfg)

		logrus.Infof("Starting simulation: %d floors, %d cars, horizon=%d ticks, dispatcher=%s",
			cfg.Floors, cfg.Elevators, cfg.HorizonS, dispatcherType)

		startTime := time.Now()
		steps := env.Run()
		env.Metrics.Print(steps)

		if tr.Enabled() {
			printTraceSummary(trace.Summarize(tr))
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// setupLogging applies the --log flag to the global logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildConfig assembles the simulation config from the scenario preset (when
// given) or the individual building flags.
func buildConfig() sim.Config {
	cfg := sim.Config{
		Floors:       floors,
		Elevators:    elevators,
		Capacity:     capacity,
		FloorHeightM: floorHeightM,
		SpeedMPS:     speedMPS,
		DwellTimeS:   dwellTimeS,
		SpawnProb:    spawnProb,
		HorizonS:     horizon,
		Seed:         seed,
	}
	if scenarioFile != "" {
		preset := GetScenarioConfig(scenarioFile, scenarioName)
		if preset == nil {
			logrus.Fatalf("Scenario %q not found in %s", scenarioName, scenarioFile)
		}
		preset.HorizonS = horizon
		preset.Seed = seed
		cfg = *preset
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// buildEnvironment wires the dispatcher, traffic profile and trace sink
// into a fresh environment. Configuration errors are fatal at CLI level.
func buildEnvironment(cfg sim.Config) (*sim.Environment, *trace.SimulationTrace) {
	if !trace.IsValidTraceLevel(traceLevel) {
		logrus.Fatalf("Invalid trace level %q; valid levels: [none, decisions]", traceLevel)
	}
	tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})

	traffic, err := workload.NewTrafficProfile(trafficProfile)
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	dispatcher := sim.NewDispatcher(dispatcherType, cfg, rng.ForSubsystem(sim.SubsystemDispatch))

	env, err := sim.NewEnvironment(cfg, dispatcher, traffic, tr)
	if err != nil {
		logrus.Fatalf("unable to build environment: %v", err)
	}
	return env, tr
}

// printTraceSummary reports aggregate dispatch decision statistics.
func printTraceSummary(summary *trace.TraceSummary) {
	fmt.Println("=== Dispatch Decisions ===")
	fmt.Printf("Total Decisions      : %d\n", summary.TotalDecisions)
	fmt.Printf("Unassigned Calls     : %d\n", summary.UnassignedCount)
	fmt.Printf("Mean Regret          : %.2f s\n", summary.MeanRegret)
	fmt.Printf("Max Regret           : %.2f s\n", summary.MaxRegret)
	carIDs := make([]int, 0, len(summary.CarDistribution))
	for id := range summary.CarDistribution {
		carIDs = append(carIDs, id)
	}
	sort.Ints(carIDs)
	for _, id := range carIDs {
		fmt.Printf("Car %d Assignments    : %d\n", id, summary.CarDistribution[id])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers the flags every simulation subcommand shares.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random passenger generation")
	cmd.Flags().Int64Var(&horizon, "horizon", 3600, "Total simulation horizon (in ticks, one tick per second)")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Building configs
	cmd.Flags().IntVar(&floors, "floors", 18, "Number of served floors")
	cmd.Flags().IntVar(&elevators, "elevators", 2, "Number of elevator cars")
	cmd.Flags().IntVar(&capacity, "capacity", 12, "Passengers per car")
	cmd.Flags().Float64Var(&floorHeightM, "floor-height", 3.0, "Floor-to-floor height in meters")
	cmd.Flags().Float64Var(&speedMPS, "speed", 1.5, "Rated car speed in meters per second")
	cmd.Flags().IntVar(&dwellTimeS, "dwell", 5, "Door dwell time per stop in seconds")
	cmd.Flags().Float64Var(&spawnProb, "spawn-prob", 0.05, "Per-tick probability of a new hall call")

	// Policy and traffic configs
	cmd.Flags().StringVar(&dispatcherType, "dispatcher", "eta", "Dispatch policy (eta, cost, roundrobin, random)")
	cmd.Flags().StringVar(&trafficProfile, "traffic", "interfloor", "Traffic profile (interfloor, uppeak, downpeak)")
	cmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")

	// Scenario presets
	cmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML file with scenario presets")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Preset name inside the scenario file")
}

// init sets up CLI flags and subcommands
func init() {
	addConfigFlags(runCmd)

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
}
