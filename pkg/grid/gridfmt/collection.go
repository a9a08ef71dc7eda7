package gridfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"planar/pkg/grid"
)

// String renders e one column per line:
//
//	[
//	   [ 1, 2 ],
//	   [ 3, 4 ]
//	]
//
// An empty container renders as "[]".
func String[T any](e grid.Enumerable[T]) string {
	var cols []string
	for col := range e.Columns() {
		var cells []string
		for v := range col {
			cells = append(cells, fmt.Sprint(v))
		}
		cols = append(cols, "   [ "+strings.Join(cells, ", ")+" ]")
	}
	if len(cols) == 0 {
		return "[]"
	}
	return "[\n" + strings.Join(cols, ",\n") + "\n]"
}

// Write writes String(e) and a trailing newline to w.
func Write[T any](w io.Writer, e grid.Enumerable[T]) error {
	_, err := io.WriteString(w, String(e)+"\n")
	return errors.Wrap(err, "write collection")
}
