package op

import (
	"reflect"

	"github.com/brimdata/tabular"
)

var mixedOps = []string{"==", "!="}

// equalityPlan compares rows of a Mixed storage with values of any type.
// Numbers are compared by value across representations and strings by
// canonical equivalence.  Values of other kinds are equal if they are
// deeply equal.
func equalityPlan(name string) Plan {
	return func(lhs, rhs tabular.Type) (tabular.Type, Kernel, bool) {
		return tabular.TypeBool, func(c *Call, a, b any) (any, error) {
			eq := equal(c, a, b)
			if name == "!=" {
				return !eq, nil
			}
			return eq, nil
		}, true
	}
}

func equal(c *Call, a, b any) bool {
	ta, tb := c.TypeOf(a), c.TypeOf(b)
	a, b = c.Normalize(a), c.Normalize(b)
	if dom, ok := numericDomain(ta, tb); ok {
		v, _ := numericKernel(dom)(&Call{Op: "==", Problems: c.Problems, host: c.host}, a, b)
		eq, _ := v.(bool)
		return eq
	}
	if ta != tb {
		return false
	}
	switch ta.ID() {
	case tabular.IDString:
		return textOp("==", a.(string), b.(string)).(bool)
	case tabular.IDBool:
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
