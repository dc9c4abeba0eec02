// Package export writes generated instances to shareable document formats:
// a tabular PDF manifest, QR-coded item labels, and Excel shape lists.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/cratelab/packgen/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
	tableTop     = marginTop + 30.0
	maxRowY      = 297.0 - marginBottom - rowHeight
)

// Manifest table column widths in mm.
var colWidths = []float64{12, 22, 22, 22, 20, 20, 20, 18}

var colHeaders = []string{"#", "Length", "Width", "Height", "X", "Y", "Z", "Placed"}

// WriteManifest writes a tabular packing manifest for an instance: container
// dimensions, seed, volume utilization, and one row per live item with its
// extents, placement location, and placed flag.
func WriteManifest(path string, state model.State) error {
	if state.NumItems() == 0 {
		return fmt.Errorf("no items to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, "Packing Instance Manifest", "", 1, "L", false, 0, "")

	var itemVolume int64
	for i, it := range state.Items {
		if state.ItemsMask[i] {
			itemVolume += it.Volume()
		}
	}
	utilization := 0.0
	if cv := state.Container.Volume(); cv > 0 {
		utilization = 100.0 * float64(itemVolume) / float64(cv)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+10)
	info := fmt.Sprintf("Container: %d x %d x %d mm | Items: %d | Seed: %d | Utilization: %.1f%%",
		state.Container.X2, state.Container.Y2, state.Container.Z2,
		state.NumItems(), state.Seed, utilization)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, info, "", 1, "L", false, 0, "")

	writeTableHeader(pdf)
	y := tableTop + rowHeight

	for i, it := range state.Items {
		if !state.ItemsMask[i] {
			continue
		}
		if y > maxRowY {
			pdf.AddPage()
			writeTableHeader(pdf)
			y = tableTop + rowHeight
		}
		loc := state.ItemsLocation[i]
		placed := "no"
		if state.ItemsPlaced[i] {
			placed = "yes"
		}
		cells := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", it.XLen),
			fmt.Sprintf("%d", it.YLen),
			fmt.Sprintf("%d", it.ZLen),
			fmt.Sprintf("%d", loc.X),
			fmt.Sprintf("%d", loc.Y),
			fmt.Sprintf("%d", loc.Z),
			placed,
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(marginLeft, y)
		for c, cell := range cells {
			pdf.CellFormat(colWidths[c], rowHeight, cell, "1", 0, "R", false, 0, "")
		}
		y += rowHeight
	}

	return pdf.OutputFileAndClose(path)
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, tableTop)
	pdf.SetFillColor(230, 230, 230)
	for c, h := range colHeaders {
		pdf.CellFormat(colWidths[c], rowHeight, h, "1", 0, "C", true, 0, "")
	}
}
