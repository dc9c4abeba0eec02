package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cratelab/packgen/internal/dataset"
	"github.com/cratelab/packgen/internal/export"
	"github.com/cratelab/packgen/internal/generator"
	"github.com/cratelab/packgen/internal/model"
	"github.com/cratelab/packgen/internal/prng"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random instance",
		Long: "Generate a random instance by recursively splitting the container.\n" +
			"The same seed and configuration always produce the same instance.",
		Run: runGenerate,
	}

	cmd.Flags().Uint64("seed", 0, "Random seed")
	cmd.Flags().Int("items", 40, "Maximum number of items")
	cmd.Flags().Int("ems", 200, "EMS buffer capacity")
	cmd.Flags().Float64("split-eps", 0.3, "Forbidden edge fraction for binary splits, in (0, 0.5)")
	cmd.Flags().Float64("prob-split-one", 0.7, "Probability of a binary split (vs. identical multi-split)")
	cmd.Flags().Int("split-same", 3, "Upper bound on identical-piece split count")
	cmd.Flags().Int32Slice("dims", []int32{generator.TwentyFootDims[0], generator.TwentyFootDims[1], generator.TwentyFootDims[2]},
		"Container dimensions in mm: length,width,height")
	cmd.Flags().Bool("solved", false, "Emit the solved instance instead of the reset view")
	cmd.Flags().Bool("verify", false, "Check the tiling invariant before emitting")
	addOutputFlags(cmd)

	// Config-file defaults for the generation knobs; flags win.
	viper.BindPFlag("generate.items", cmd.Flags().Lookup("items"))
	viper.BindPFlag("generate.ems", cmd.Flags().Lookup("ems"))
	viper.BindPFlag("generate.split_eps", cmd.Flags().Lookup("split-eps"))
	viper.BindPFlag("generate.prob_split_one", cmd.Flags().Lookup("prob-split-one"))
	viper.BindPFlag("generate.split_same", cmd.Flags().Lookup("split-same"))

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	seed, _ := cmd.Flags().GetUint64("seed")
	dims, _ := cmd.Flags().GetInt32Slice("dims")
	solved, _ := cmd.Flags().GetBool("solved")
	verify, _ := cmd.Flags().GetBool("verify")

	if len(dims) != 3 {
		exitErr("invalid --dims", fmt.Errorf("want 3 values, got %d", len(dims)))
	}

	cfg := generator.RandomConfig{
		MaxNumItems:       viper.GetInt("generate.items"),
		MaxNumEMS:         viper.GetInt("generate.ems"),
		SplitEps:          viper.GetFloat64("generate.split_eps"),
		ProbSplitOneItem:  viper.GetFloat64("generate.prob_split_one"),
		SplitNumSameItems: viper.GetInt("generate.split_same"),
		ContainerDims:     [3]int32{dims[0], dims[1], dims[2]},
	}
	gen, err := generator.NewRandomGenerator(cfg)
	if err != nil {
		exitErr("invalid configuration", err)
	}

	key := prng.NewKey(seed)
	solution, err := gen.GenerateSolution(key)
	if err != nil {
		exitErr("generate", err)
	}
	if verify {
		if err := solution.Validate(); err != nil {
			exitErr("tiling invariant violated", err)
		}
	}

	state := solution
	if !solved {
		state = solution.Unpacked()
	}

	fmt.Printf("generated instance: %d items, container %dx%dx%d mm, seed %d\n",
		state.NumItems(), dims[0], dims[1], dims[2], seed)
	emitOutputs(cmd, state)
}

// addOutputFlags registers the output destinations shared by the generating
// commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "", "Write the item multiset to a CSV shape file")
	cmd.Flags().String("xlsx", "", "Write the item multiset to an Excel workbook")
	cmd.Flags().String("pdf", "", "Write a PDF packing manifest")
	cmd.Flags().String("labels", "", "Write a PDF of QR item labels")
	cmd.Flags().String("db", "", "Append the instance to a SQLite dataset (path, or default dataset)")
	cmd.Flags().Lookup("db").NoOptDefVal = "default"
}

// emitOutputs writes the record to every destination the caller asked for.
func emitOutputs(cmd *cobra.Command, state model.State) {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := generator.SaveInstanceCSV(state, out); err != nil {
			exitErr("write csv", err)
		}
		fmt.Printf("wrote %s\n", out)
	}
	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		if err := export.WriteExcel(path, state); err != nil {
			exitErr("write xlsx", err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("pdf"); path != "" {
		if err := export.WriteManifest(path, state); err != nil {
			exitErr("write pdf", err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("labels"); path != "" {
		if err := export.WriteLabels(path, state); err != nil {
			exitErr("write labels", err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		if path == "default" {
			path = defaultDBPath()
		}
		store, err := dataset.Open(path)
		if err != nil {
			exitErr("open dataset", err)
		}
		defer store.Close()
		id, err := store.Put(context.Background(), state)
		if err != nil {
			exitErr("store instance", err)
		}
		fmt.Printf("stored instance %s in %s\n", id, path)
	}
}
