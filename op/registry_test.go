package op

import (
	"context"
	"testing"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewDefaultRegistry(WithRegisterer(reg))
	s := storage.NewInt(tabular.TypeInt32, []int64{1, 0, 3}, nil)
	ctx := context.Background()

	_, err := r.RunScalar(ctx, "%", s, 0, problem.NewAggregator(0))
	require.NoError(t, err)
	_, err = r.RunScalar(ctx, "%", s, 2, nil)
	require.NoError(t, err)
	_, err = r.RunScalar(ctx, "%", s, "x", nil)
	require.ErrorIs(t, err, tabular.ErrUnexpectedType)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.calls.WithLabelValues("%", "int32")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("%", "int32")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.problems.WithLabelValues("%")))
	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "tabular_op_calls_total")
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	first := NewBinary("f", "number", nil, numericPlan("+"))
	second := NewBinary("f", "number", nil, numericPlan("-"))
	r.Register(tabular.TypeInt64, first)
	r.Register(tabular.TypeInt64, second)
	op, err := r.Lookup(tabular.TypeInt64, "f")
	require.NoError(t, err)
	assert.Same(t, second, op)
	_, err = r.Lookup(tabular.TypeInt32, "f")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestRunZipNilOther(t *testing.T) {
	s := storage.NewString([]string{"a"}, nil)
	_, err := NewDefaultRegistry().RunZip(context.Background(), "==", s, nil, nil)
	assert.ErrorIs(t, err, tabular.ErrContractViolation)
}
