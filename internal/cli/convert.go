package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cratelab/packgen/internal/importer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a shape list between CSV and Excel",
		Long: "Convert an item shape list between the canonical CSV format and an\n" +
			"Excel workbook. The format is chosen by file extension.",
		Args: cobra.ExactArgs(2),
		Run:  runConvert,
	}
	RootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	in, out := args[0], args[1]

	var (
		rows []importer.Row
		err  error
	)
	switch strings.ToLower(filepath.Ext(in)) {
	case ".csv":
		rows, err = importer.ReadCSV(in)
	case ".xlsx":
		rows, err = importer.ImportExcel(in)
	default:
		exitErr("convert", fmt.Errorf("unsupported input format %q", filepath.Ext(in)))
	}
	if err != nil {
		exitErr("read shape list", err)
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".csv":
		err = importer.WriteCSV(out, rows)
	case ".xlsx":
		err = importer.WriteExcel(out, rows)
	default:
		exitErr("convert", fmt.Errorf("unsupported output format %q", filepath.Ext(out)))
	}
	if err != nil {
		exitErr("write shape list", err)
	}
	fmt.Printf("converted %s -> %s (%d shape groups)\n", in, out, len(rows))
}
