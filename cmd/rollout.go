package cmd

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liftsim/liftsim/sim/rl"
)

var rolloutSteps int // Number of environment steps in the demo rollout

// rolloutCmd drives the fixed-shape adapter with a random policy that
// samples from the action mask. It exists to exercise and demonstrate the
// agent-facing interface, not to produce a good policy.
var rolloutCmd = &cobra.Command{
	Use:   "rollout",
	Short: "Roll out a random policy through the agent interface",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildConfig()
		env, err := rl.NewEnv(cfg, nil)
		if err != nil {
			logrus.Fatalf("unable to build environment: %v", err)
		}

		policyRNG := rand.New(rand.NewSource(seed))
		_, info := env.Reset(seed)

		totalReward := 0.0
		steps := 0
		for steps < rolloutSteps {
			action := sampleMaskedAction(policyRNG, info.ActionMask)
			_, reward, terminated, _, nextInfo, err := env.Step(action)
			if err != nil {
				logrus.Fatalf("rollout step failed: %v", err)
			}
			totalReward += reward
			steps++
			info = nextInfo
			if terminated {
				break
			}
		}

		fmt.Printf("Rollout steps        : %d\n", steps)
		fmt.Printf("Cumulative reward    : %.3f\n", totalReward)
	},
}

// sampleMaskedAction picks one valid target per car from the action mask.
func sampleMaskedAction(rng *rand.Rand, mask [][]int) []int {
	action := make([]int, len(mask))
	for i, valid := range mask {
		action[i] = valid[rng.Intn(len(valid))]
	}
	return action
}

func init() {
	addConfigFlags(rolloutCmd)
	rolloutCmd.Flags().IntVar(&rolloutSteps, "steps", 600, "Maximum number of rollout steps")

	rootCmd.AddCommand(rolloutCmd)
}
