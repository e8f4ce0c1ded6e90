package op

import (
	"strings"

	"github.com/brimdata/tabular"
	"golang.org/x/text/unicode/norm"
)

var textOps = []string{"==", "!=", "<", "<=", ">", ">=", "starts_with", "ends_with", "contains", "+"}

// textPlan returns the plan of a string operator.  Strings are compared in
// canonical decomposition, so canonically equivalent strings are equal.
// The right side must be a string or a Mixed storage of strings.
func textPlan(name string) Plan {
	return func(lhs, rhs tabular.Type) (tabular.Type, Kernel, bool) {
		if lhs.ID() != tabular.IDString || (rhs.ID() != tabular.IDString && rhs.ID() != tabular.IDMixed) {
			return nil, nil, false
		}
		var typ tabular.Type = tabular.TypeBool
		if name == "+" {
			typ = tabular.TypeString
		}
		return typ, func(c *Call, a, b any) (any, error) {
			s, ok := c.Normalize(b).(string)
			if !ok {
				return nil, c.unexpected("string", b)
			}
			return textOp(name, a.(string), s), nil
		}, true
	}
}

func textOp(name, x, y string) any {
	if name == "+" {
		return x + y
	}
	x, y = norm.NFD.String(x), norm.NFD.String(y)
	switch name {
	case "starts_with":
		return strings.HasPrefix(x, y)
	case "ends_with":
		return strings.HasSuffix(x, y)
	case "contains":
		return strings.Contains(x, y)
	}
	return compare(name, cmpOrdered(x, y))
}
