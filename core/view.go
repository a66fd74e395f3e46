package core

import (
	"strconv"
	"strings"
)

// String renders one line per vertex in the form
//
//	0 -> (1, w=2)(3, w=0.5)
//
// listing records in list order.
func (g *Graph) String() string {
	var sb strings.Builder
	for u := range g.adj {
		sb.WriteString(strconv.Itoa(u))
		sb.WriteString(" ->")
		sep := " "
		for v, w := range g.Neighbors(u) {
			sb.WriteString(sep)
			sep = ""
			sb.WriteString("(")
			sb.WriteString(strconv.Itoa(v))
			sb.WriteString(", w=")
			sb.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
