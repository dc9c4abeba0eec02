package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cratelab/packgen/internal/generator"
)

func init() {
	cmd := &cobra.Command{
		Use:   "toy",
		Short: "Emit the deterministic 20-item demo instance",
		Long: "Emit the fixed 20-item instance that exactly tiles a 20-ft container.\n" +
			"No randomness is involved; repeated runs are identical.",
		Run: runToy,
	}
	cmd.Flags().Bool("solved", false, "Emit the solved instance instead of the reset view")
	addOutputFlags(cmd)
	RootCmd.AddCommand(cmd)
}

func runToy(cmd *cobra.Command, args []string) {
	solved, _ := cmd.Flags().GetBool("solved")

	gen := generator.NewToyGenerator()
	solution, err := gen.GenerateSolution(0)
	if err != nil {
		exitErr("generate", err)
	}
	state := solution
	if !solved {
		state = solution.Unpacked()
	}

	dims := gen.ContainerDims()
	fmt.Printf("toy instance: %d items, container %dx%dx%d mm\n",
		state.NumItems(), dims[0], dims[1], dims[2])
	emitOutputs(cmd, state)
}
