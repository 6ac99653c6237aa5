package pipeline

import (
	"fmt"
	"strings"

	"github.com/VHeusinkveld/small-investigations/pkg/data"
)

// Schema describes the columns of a loaded table.
type Schema struct {
	Columns []string
	Types   []string // e.g., "int", "float", "string"
}

// SchemaOf reads the column names and inferred types of t.
func SchemaOf(t *data.Table) Schema {
	return Schema{Columns: t.Names(), Types: t.Types()}
}

func (s Schema) String() string {
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = fmt.Sprintf("%s:%s", c, s.Types[i])
	}
	return strings.Join(parts, ", ")
}
