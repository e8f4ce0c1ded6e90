package op

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/agnivade/levenshtein"
	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/host"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownOperation = errors.New("unknown operation")

type key struct {
	id   int
	name string
}

// Registry maps a storage type and an operation name to an Operation and
// runs operations on behalf of a table layer.  Register must not be called
// concurrently with other methods.
type Registry struct {
	host       host.Values
	logger     *zap.Logger
	config     tabular.Config
	registerer prometheus.Registerer
	ops        map[key]Operation

	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
	problems *prometheus.CounterVec
}

type Option func(*Registry)

func WithHost(h host.Values) Option {
	return func(r *Registry) {
		r.host = h
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithConfig(c tabular.Config) Option {
	return func(r *Registry) {
		r.config = c
	}
}

// WithRegisterer registers the registry's metrics with registerer.  By
// default they go to a private prometheus.Registry.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(r *Registry) {
		r.registerer = registerer
	}
}

// NewRegistry returns a registry with no operations.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		host:   host.Native{},
		logger: zap.NewNop(),
		config: tabular.DefaultConfig(),
		ops:    make(map[key]Operation),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registerer == nil {
		r.registerer = prometheus.NewRegistry()
	}
	factory := promauto.With(r.registerer)
	r.calls = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabular_op_calls_total",
			Help: "Number of operation calls.",
		},
		[]string{"op", "type"},
	)
	r.failures = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabular_op_failures_total",
			Help: "Number of operation calls that failed or were cancelled.",
		},
		[]string{"op", "type"},
	)
	r.problems = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabular_op_problem_rows_total",
			Help: "Number of result rows affected by problems.",
		},
		[]string{"op"},
	)
	return r
}

// NewDefaultRegistry returns a registry holding the built-in operations:
// arithmetic and comparisons on numbers, comparisons and substring tests
// on strings, logic on booleans and equality on mixed values.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	numbers := []tabular.Type{
		tabular.TypeInt8,
		tabular.TypeInt16,
		tabular.TypeInt32,
		tabular.TypeInt64,
		tabular.TypeFloat64,
		tabular.TypeBigInt,
		tabular.TypeBigDecimal,
	}
	for _, name := range append(arithOps, compareOps...) {
		op := NewBinary(name, "number", r.host, numericPlan(name))
		for _, typ := range numbers {
			r.Register(typ, op)
		}
	}
	for _, name := range textOps {
		r.Register(tabular.TypeString, NewBinary(name, "string", r.host, textPlan(name)))
	}
	for _, name := range logicOps {
		r.Register(tabular.TypeBool, NewBinary(name, "bool", r.host, logicPlan(name)))
	}
	for _, name := range mixedOps {
		r.Register(tabular.TypeMixed, NewBinary(name, "any value", r.host, equalityPlan(name)))
	}
	return r
}

// Register adds op for storages of type typ, replacing any operation of the
// same name.
func (r *Registry) Register(typ tabular.Type, op Operation) {
	r.ops[key{typ.ID(), op.Name()}] = op
}

// Lookup returns the operation called name for storages of type typ.  If
// there is none, the error wraps ErrUnknownOperation and suggests the
// closest registered name.
func (r *Registry) Lookup(typ tabular.Type, name string) (Operation, error) {
	if op, ok := r.ops[key{typ.ID(), name}]; ok {
		return op, nil
	}
	if s := r.suggest(typ, name); s != "" {
		return nil, fmt.Errorf("%w %q for %s (did you mean %q?)", ErrUnknownOperation, name, typ, s)
	}
	return nil, fmt.Errorf("%w %q for %s", ErrUnknownOperation, name, typ)
}

// Names returns the sorted names of the operations for typ.
func (r *Registry) Names(typ tabular.Type) []string {
	var names []string
	for k := range r.ops {
		if k.id == typ.ID() {
			names = append(names, k.name)
		}
	}
	slices.Sort(names)
	return names
}

func (r *Registry) suggest(typ tabular.Type, name string) string {
	best, dist := "", 3
	for _, candidate := range r.Names(typ) {
		if d := levenshtein.ComputeDistance(name, candidate); d < dist {
			best, dist = candidate, d
		}
	}
	return best
}

func (r *Registry) RunScalar(ctx context.Context, name string, s storage.Any, arg any, agg *problem.Aggregator) (storage.Any, error) {
	op, err := r.Lookup(s.Type(), name)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, op, Job{Name: name, Storage: s, Arg: arg}, r.child(agg))
}

func (r *Registry) RunZip(ctx context.Context, name string, s, other storage.Any, agg *problem.Aggregator) (storage.Any, error) {
	if other == nil {
		return nil, tabular.ContractViolation("zip of %q with a nil storage", name)
	}
	op, err := r.Lookup(s.Type(), name)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, op, Job{Name: name, Storage: s, Other: other}, r.child(agg))
}

// Job is one operation call run by RunAll.  It is a zip if Other is not
// nil and a scalar call with Arg otherwise.
type Job struct {
	Name    string
	Storage storage.Any
	Other   storage.Any
	Arg     any
}

// RunAll runs jobs in parallel and returns their results in order.  Each
// job reports to its own child of agg.  If any job fails the others are
// cancelled, no results are returned and the problems of every job are
// discarded.
func (r *Registry) RunAll(ctx context.Context, jobs []Job, agg *problem.Aggregator) ([]storage.Any, error) {
	ops := make([]Operation, len(jobs))
	for k, j := range jobs {
		op, err := r.Lookup(j.Storage.Type(), j.Name)
		if err != nil {
			return nil, err
		}
		ops[k] = op
	}
	// Children are created here since NewChild must not race with the
	// goroutines below.
	calls := make([]*problem.Aggregator, len(jobs))
	for k := range jobs {
		calls[k] = r.child(agg)
	}
	results := make([]storage.Any, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for k := range jobs {
		k := k
		group.Go(func() error {
			out, err := r.run(ctx, ops[k], jobs[k], calls[k])
			results[k] = out
			return err
		})
	}
	if err := group.Wait(); err != nil {
		for _, call := range calls {
			call.Discard()
		}
		return nil, err
	}
	return results, nil
}

func (r *Registry) child(agg *problem.Aggregator) *problem.Aggregator {
	if agg == nil {
		agg = problem.NewAggregator(r.config.MaxProblems)
	}
	return agg.NewChild()
}

func (r *Registry) run(ctx context.Context, op Operation, j Job, call *problem.Aggregator) (storage.Any, error) {
	typ := j.Storage.Type().String()
	r.calls.WithLabelValues(op.Name(), typ).Inc()
	r.logger.Debug("Running operation",
		zap.String("op", op.Name()),
		zap.String("type", typ),
		zap.Int("rows", j.Storage.Len()),
		zap.Bool("zip", j.Other != nil))
	var out storage.Any
	var err error
	if j.Other != nil {
		out, err = op.RunZip(ctx, j.Storage, j.Other, call)
	} else {
		out, err = op.RunScalar(ctx, j.Storage, j.Arg, call)
	}
	if err != nil {
		call.Discard()
		r.failures.WithLabelValues(op.Name(), typ).Inc()
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			r.logger.Debug("Operation cancelled", zap.String("op", op.Name()), zap.String("type", typ))
		}
		return nil, err
	}
	if n := call.Summarize().Total(); n > 0 {
		r.problems.WithLabelValues(op.Name()).Add(float64(n))
	}
	return out, nil
}
