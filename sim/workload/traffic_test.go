package workload

import (
	"math/rand"
	"testing"
)

const testFloors = 18

func TestInterfloor_TripsStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	profile := Interfloor{}

	for i := 0; i < 1000; i++ {
		origin, dest := profile.SampleTrip(rng, testFloors)
		if origin < 1 || origin > testFloors || dest < 1 || dest > testFloors {
			t.Fatalf("trip out of range: %d -> %d", origin, dest)
		}
		if origin == dest {
			t.Fatalf("trip %d: origin equals destination (%d)", i, origin)
		}
	}
}

func TestUpPeak_LobbyShare(t *testing.T) {
	// GIVEN an up-peak profile with an 80% lobby share
	rng := rand.New(rand.NewSource(2))
	profile := UpPeak{LobbyFraction: 0.8}

	lobbyTrips := 0
	n := 5000
	for i := 0; i < n; i++ {
		origin, dest := profile.SampleTrip(rng, testFloors)
		if origin == dest {
			t.Fatalf("origin equals destination (%d)", origin)
		}
		if origin == LobbyFloor && dest > LobbyFloor {
			lobbyTrips++
		}
	}

	// THEN roughly that share starts at the lobby going up (the interfloor
	// remainder occasionally starts there too, so only a lower bound is tight)
	share := float64(lobbyTrips) / float64(n)
	if share < 0.75 {
		t.Errorf("lobby share: got %.3f, want >= 0.75", share)
	}
}

func TestDownPeak_LobbyShare(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	profile := DownPeak{LobbyFraction: 0.8}

	lobbyTrips := 0
	n := 5000
	for i := 0; i < n; i++ {
		origin, dest := profile.SampleTrip(rng, testFloors)
		if origin == dest {
			t.Fatalf("origin equals destination (%d)", origin)
		}
		if dest == LobbyFloor && origin > LobbyFloor {
			lobbyTrips++
		}
	}

	share := float64(lobbyTrips) / float64(n)
	if share < 0.75 {
		t.Errorf("lobby share: got %.3f, want >= 0.75", share)
	}
}

func TestNewTrafficProfile_Names(t *testing.T) {
	for _, name := range []string{"", "interfloor", "uppeak", "downpeak"} {
		profile, err := NewTrafficProfile(name)
		if err != nil {
			t.Errorf("NewTrafficProfile(%q): %v", name, err)
		}
		if profile == nil {
			t.Errorf("NewTrafficProfile(%q) returned nil", name)
		}
	}

	if _, err := NewTrafficProfile("lunchtime"); err == nil {
		t.Error("unknown profile name must error")
	}
}

func TestTrafficProfiles_Deterministic(t *testing.T) {
	// GIVEN the same seed for two sampling runs
	sample := func() [][2]int {
		rng := rand.New(rand.NewSource(7))
		profile := UpPeak{LobbyFraction: DefaultLobbyFraction}
		trips := make([][2]int, 50)
		for i := range trips {
			o, d := profile.SampleTrip(rng, testFloors)
			trips[i] = [2]int{o, d}
		}
		return trips
	}

	// THEN both runs produce identical trips
	first := sample()
	second := sample()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("trip %d diverged: %v vs %v", i, first[i], second[i])
		}
	}
}
