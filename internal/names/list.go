package names

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/colourlist"
)

// FormatList renders a list as a parenthesised sequence in which names are
// quoted and numeric triples are parenthesised:
//
//	('red', (0.1, 0.2, 0.3), 'gray 50')
func (t *Table) FormatList(l *colourlist.List) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range l.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		s := t.Format(c, l.Base())
		if isNumeric(s) {
			sb.WriteString("(" + s + ")")
		} else {
			sb.WriteString("'" + s + "'")
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func isNumeric(s string) bool {
	return s != "" && (s[0] == '-' || s[0] == '.' || (s[0] >= '0' && s[0] <= '9'))
}

// ParseList parses each item into one list in base b. The first failure is
// returned with the item's position.
func (t *Table) ParseList(items []string, b colour.Base) (*colourlist.List, error) {
	l := colourlist.New(3, b)
	for i, item := range items {
		c, err := t.Parse(item, b)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		l.Append(c)
	}
	return l, nil
}
