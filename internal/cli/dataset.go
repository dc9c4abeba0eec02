package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cratelab/packgen/internal/dataset"
	"github.com/cratelab/packgen/internal/generator"
)

var datasetDBPath string

func init() {
	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect the SQLite instance dataset",
	}
	datasetCmd.PersistentFlags().StringVarP(&datasetDBPath, "db", "d", "",
		"Dataset path (default: $PACKGEN_DB or ~/.packgen/instances.db)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored instances",
		Run:   runDatasetList,
	}
	listCmd.Flags().IntP("limit", "n", 20, "Maximum number of instances to list")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored instance",
		Args:  cobra.ExactArgs(1),
		Run:   runDatasetShow,
	}
	showCmd.Flags().String("out", "", "Write the instance's item multiset to a CSV shape file")
	showCmd.Flags().Bool("json", false, "Print the full record as JSON")

	datasetCmd.AddCommand(listCmd, showCmd)
	RootCmd.AddCommand(datasetCmd)
}

func openDataset() *dataset.Store {
	path := datasetDBPath
	if path == "" {
		path = defaultDBPath()
	}
	store, err := dataset.Open(path)
	if err != nil {
		exitErr("open dataset", err)
	}
	return store
}

func runDatasetList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	store := openDataset()
	defer store.Close()

	metas, err := store.List(context.Background(), limit)
	if err != nil {
		exitErr("list instances", err)
	}
	if len(metas) == 0 {
		fmt.Println("no instances stored")
		return
	}
	for _, m := range metas {
		fmt.Printf("%s  %s  seed=%d  items=%d  container=%dx%dx%d\n",
			m.ID, m.CreatedAt.Format("2006-01-02 15:04:05"), m.Seed, m.NumItems,
			m.ContainerDims[0], m.ContainerDims[1], m.ContainerDims[2])
	}
}

func runDatasetShow(cmd *cobra.Command, args []string) {
	store := openDataset()
	defer store.Close()

	state, err := store.Get(context.Background(), args[0])
	if err != nil {
		exitErr("get instance", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state); err != nil {
			exitErr("encode instance", err)
		}
	} else {
		fmt.Printf("instance %s: %d items, container %dx%dx%d mm, seed %d\n",
			args[0], state.NumItems(),
			state.Container.X2, state.Container.Y2, state.Container.Z2, state.Seed)
		for _, row := range generator.GroupItems(state) {
			fmt.Printf("  %-10s %5d x %4d x %4d mm  x%d\n",
				row.Name, row.Length, row.Width, row.Height, row.Quantity)
		}
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := generator.SaveInstanceCSV(state, out); err != nil {
			exitErr("write csv", err)
		}
		fmt.Printf("wrote %s\n", out)
	}
}
