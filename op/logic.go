package op

import "github.com/brimdata/tabular"

var logicOps = []string{"&&", "||", "==", "!="}

func logicPlan(name string) Plan {
	return func(lhs, rhs tabular.Type) (tabular.Type, Kernel, bool) {
		if lhs.ID() != tabular.IDBool || (rhs.ID() != tabular.IDBool && rhs.ID() != tabular.IDMixed) {
			return nil, nil, false
		}
		return tabular.TypeBool, func(c *Call, a, b any) (any, error) {
			y, ok := c.Normalize(b).(bool)
			if !ok {
				return nil, c.unexpected("bool", b)
			}
			x := a.(bool)
			switch name {
			case "&&":
				return x && y, nil
			case "||":
				return x || y, nil
			case "==":
				return x == y, nil
			}
			return x != y, nil
		}, true
	}
}
