// Package sim provides the core discrete-time simulation engine for LiftSim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - passenger.go: Passenger lifecycle (waiting → riding → arrived)
//   - elevator.go: Elevator car state machine (idle, moving, dwell)
//   - environment.go: The tick loop (spawn, dispatch, act, move) and reward
//
// # Architecture
//
// The sim package defines the engine and its extension points; supporting
// concerns live in sub-packages:
//   - sim/workload/: passenger traffic profiles (interfloor, up-peak, down-peak)
//   - sim/trace/: dispatch decision trace recording
//   - sim/rl/: fixed-shape environment adapter for learning agents
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Dispatcher: assign waiting passengers to elevator cars
//   - workload.TrafficProfile: sample origin/destination floors for spawns
package sim
