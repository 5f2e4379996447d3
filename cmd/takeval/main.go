package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/context"

	"github.com/tak-ai/evalcore/ai"
	"github.com/tak-ai/evalcore/ai/features"
	"github.com/tak-ai/evalcore/internal/bench"
	"github.com/tak-ai/evalcore/tak"
)

var (
	explain   bool
	vector    bool
	benchSecs int
)

func main() {
	root := &cobra.Command{
		Use:   "takeval <tps>",
		Short: "Evaluate a Tak position given in TPS notation",
		Args:  cobra.ExactArgs(1),
		RunE:  runEvaluate,
	}
	root.Flags().BoolVar(&explain, "explain", false, "print the per-feature score breakdown")
	root.Flags().BoolVar(&vector, "vector", false, "print the learned-evaluator feature vector")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure evaluator throughput over synthetic positions",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSecs, "seconds", 3, "how long to run")
	root.AddCommand(benchCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	state, err := tak.ParseTPS(args[0])
	if err != nil {
		return fmt.Errorf("parse tps: %w", err)
	}

	score := ai.Evaluate(state)
	fmt.Printf("score=%d\n", score)

	if explain {
		ai.ExplainScore(os.Stdout, &ai.DefaultWeights, state)
	}

	if vector {
		v := features.Extract(state)
		for i, name := range v.Names {
			if v.Values[i] != 0 {
				fmt.Printf("%-55s %g\n", name, v.Values[i])
			}
		}
	}

	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(benchSecs)*time.Second)
	defer cancel()

	st := bench.Run(ctx, bench.Config{Size: 6, Seed: 1, Debug: 1})
	fmt.Printf("evaluated=%d elapsed=%s rate=%.0f/s\n",
		st.Evaluated, st.Elapsed, float64(st.Evaluated)/st.Elapsed.Seconds())
	return nil
}
