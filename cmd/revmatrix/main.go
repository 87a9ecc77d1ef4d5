package main

import (
	"fmt"
	"os"

	rec "github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal"
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/storage/file/csv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// unset marks an optional metric flag that was not requested.
const unset = -1

var (
	classA      int
	classB      int
	places      int
	accuracy    float64
	sensitivity float64
	specificity float64
	f1          float64
	precision   float64
	out         string
	debug       bool
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

var rootCmd = &cobra.Command{
	Use:   "revmatrix",
	Short: "Reverse engineer binary confusion matrices from reported metrics",
	Long: `revmatrix enumerates every binary confusion matrix that is consistent
with the given class sizes, a target accuracy and any optional target
metrics, all compared after rounding to the requested number of decimal
places. Accepted matrices are streamed to a csv file.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&classA, "class-a", 0, "number of items in class A, the positive class")
	rootCmd.Flags().IntVar(&classB, "class-b", 0, "number of items in class B, the negative class")
	rootCmd.Flags().IntVar(&places, "decimal-places", 2, "decimal places used for all rounded comparisons")
	rootCmd.Flags().Float64Var(&accuracy, "accuracy", unset, "target accuracy in [0,1]")
	rootCmd.Flags().Float64Var(&sensitivity, "sensitivity", unset, "optional target sensitivity in [0,1]")
	rootCmd.Flags().Float64Var(&specificity, "specificity", unset, "optional target specificity in [0,1]")
	rootCmd.Flags().Float64Var(&f1, "f1", unset, "optional target f1 score in [0,1]")
	rootCmd.Flags().Float64Var(&precision, "precision", unset, "optional target precision in [0,1]")
	rootCmd.Flags().StringVar(&out, "out", "output.csv", "path of the csv output file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("class-a")
	_ = rootCmd.MarkFlagRequired("class-b")
	_ = rootCmd.MarkFlagRequired("accuracy")
}

// run validates the parameter surface and triggers the engine.
// The core assumes pre-validated input, so every range check lives here.
func run(cmd *cobra.Command, args []string) error {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if classA <= 0 || classB <= 0 {
		return fmt.Errorf("class counts must be positive: class-a=%d class-b=%d", classA, classB)
	}
	if places < 0 {
		return fmt.Errorf("decimal places must not be negative: %d", places)
	}
	if accuracy < 0 || accuracy > 1 {
		return fmt.Errorf("accuracy must be in [0,1]: %f", accuracy)
	}

	targets := model.Targets{}
	for _, flag := range []struct {
		name   string
		value  float64
		target *model.Target
	}{
		{name: "sensitivity", value: sensitivity, target: &targets.Sensitivity},
		{name: "specificity", value: specificity, target: &targets.Specificity},
		{name: "f1", value: f1, target: &targets.F1},
		{name: "precision", value: precision, target: &targets.Precision},
	} {
		if flag.value == unset {
			continue
		}
		if flag.value < 0 || flag.value > 1 {
			return fmt.Errorf("%s must be in [0,1] or left unset: %f", flag.name, flag.value)
		}
		*flag.target = model.NewTarget(flag.value)
	}

	sink, err := csv.NewSink(out)
	if err != nil {
		return fmt.Errorf("could not open sink: %w", err)
	}

	engine := rec.NewEngine(rec.Config{
		ClassA:   classA,
		ClassB:   classB,
		Places:   places,
		Accuracy: accuracy,
		Targets:  targets,
	}, sink)

	if err := engine.Run(); err != nil {
		_ = sink.Close()
		return err
	}
	return sink.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
