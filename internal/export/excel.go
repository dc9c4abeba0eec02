package export

import (
	"github.com/cratelab/packgen/internal/generator"
	"github.com/cratelab/packgen/internal/importer"
	"github.com/cratelab/packgen/internal/model"
)

// WriteExcel writes an instance's item multiset to an .xlsx workbook in the
// same canonical grouped form as the CSV serializer.
func WriteExcel(path string, state model.State) error {
	return importer.WriteExcel(path, generator.GroupItems(state))
}
