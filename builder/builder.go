// Package builder accumulates host values into typed columns.  A builder
// is owned by a single goroutine, is appended to until it is sealed, and
// may be retyped to a wider storage type when it meets a value its current
// type cannot hold.
package builder

import (
	"fmt"

	"github.com/brimdata/tabular"
	"github.com/brimdata/tabular/coerce"
	"github.com/brimdata/tabular/host"
	"github.com/brimdata/tabular/problem"
	"github.com/brimdata/tabular/storage"
	"go.uber.org/zap"
)

type Builder interface {
	Type() tabular.Type
	// Len returns the number of rows appended so far.
	Len() int
	// Cap returns the number of rows the builder can hold without growing.
	Cap() int
	// Accepts returns true iff AppendNoGrow would store v without error.
	Accepts(v any) bool
	// AppendNoGrow appends v, which must fit the remaining capacity.  A nil
	// v appends a null.
	AppendNoGrow(v any) error
	// Append appends v, growing the builder if needed.
	Append(v any) error
	// AppendNulls appends n nulls, growing the builder if needed.
	AppendNulls(n int) error
	// AppendBulkStorage appends every row of s.  The type of s is checked
	// before any row is copied.
	AppendBulkStorage(s storage.Any) error
	CanRetypeTo(typ tabular.Type) bool
	// RetypeTo returns a builder of type typ holding the rows of this
	// builder.  This builder must not be used afterward.
	RetypeTo(typ tabular.Type) (Builder, error)
	// Seal returns the immutable storage of the rows appended.  It may be
	// called only once.
	Seal() (storage.Any, error)
	// Problems returns the aggregator the builder reports to.
	Problems() *problem.Aggregator
}

type env struct {
	host   host.Values
	logger *zap.Logger
	config tabular.Config
}

type Option func(*env)

// WithHost sets the host value model.  The default is host.Native.
func WithHost(h host.Values) Option {
	return func(e *env) {
		e.host = h
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *env) {
		e.logger = logger
	}
}

func WithConfig(c tabular.Config) Option {
	return func(e *env) {
		e.config = c
	}
}

func newEnv(opts []Option) *env {
	e := &env{
		host:   host.Native{},
		logger: zap.NewNop(),
		config: tabular.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New returns a builder for typ with room for capacity rows.  Problems are
// reported to a new child of agg, or to a new root aggregator if agg is nil.
func New(typ tabular.Type, capacity int, agg *problem.Aggregator, opts ...Option) (Builder, error) {
	e := newEnv(opts)
	return e.newBuilder(typ, e.capacity(capacity), e.problems(agg), false)
}

// NewInferred returns a builder that picks its type from the first
// non-null value and widens as needed.
func NewInferred(capacity int, agg *problem.Aggregator, opts ...Option) *Inferred {
	e := newEnv(opts)
	return &Inferred{env: e, problems: e.problems(agg), capacity: e.capacity(capacity)}
}

// Infer builds a storage from values with an inferred type.
func Infer(values []any, agg *problem.Aggregator, opts ...Option) (storage.Any, error) {
	b := NewInferred(len(values), agg, opts...)
	for _, v := range values {
		if err := b.Append(v); err != nil {
			return nil, err
		}
	}
	return b.Seal()
}

// AppendOrReport appends v to b.  If b rejects v, a null is appended instead
// and a TypeMismatch problem is reported.
func AppendOrReport(b Builder, v any) error {
	err := b.Append(v)
	if p, ok := problem.FromError(err); ok {
		b.Problems().Report(p)
		return b.AppendNulls(1)
	}
	return err
}

func (e *env) capacity(n int) int {
	if n <= 0 {
		return e.config.InitialCapacity
	}
	return n
}

func (e *env) problems(agg *problem.Aggregator) *problem.Aggregator {
	if agg == nil {
		agg = problem.NewAggregator(e.config.MaxProblems)
	}
	return agg.NewChild()
}

func (e *env) newBuilder(typ tabular.Type, capacity int, problems *problem.Aggregator, inferring bool) (Builder, error) {
	b, err := e.newTypedBuilder(typ, capacity, problems, inferring)
	if err == nil && inferring {
		b.(interface{ setInferring() }).setInferring()
	}
	return b, err
}

func (e *env) newTypedBuilder(typ tabular.Type, capacity int, problems *problem.Aggregator, inferring bool) (Builder, error) {
	switch typ := typ.(type) {
	case *tabular.TypeOfBool:
		return newBoolBuilder(e, problems, capacity), nil
	case *tabular.TypeOfInt:
		return newIntBuilder(e, problems, typ, capacity), nil
	case *tabular.TypeOfFloat64:
		return newFloatBuilder(e, problems, capacity, inferring), nil
	case *tabular.TypeOfBigInt:
		return newBigIntBuilder(e, problems, capacity), nil
	case *tabular.TypeOfBigDecimal:
		return newDecimalBuilder(e, problems, capacity), nil
	case *tabular.TypeOfString:
		return newStringBuilder(e, problems, capacity), nil
	case *tabular.TypeOfMixed:
		return newMixedBuilder(e, problems, capacity), nil
	}
	return nil, tabular.ContractViolation("no builder for storage type %v", typ)
}

func (e *env) reporter(problems *problem.Aggregator) coerce.Reporter {
	return coerce.Reporter{Problems: problems}
}

func (e *env) logRetype(from, to tabular.Type, rows int) {
	e.logger.Debug("Builder retyped",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("rows", rows))
}

func retypeError(from, to tabular.Type) error {
	return tabular.ContractViolation("cannot retype %s builder to %s", from, to)
}

func mismatch(s storage.Any, expected tabular.Type) error {
	return &tabular.StorageTypeMismatchError{Expected: expected, Actual: s.Type()}
}

func (e *env) logBulk(typ tabular.Type, s storage.Any) {
	if ce := e.logger.Check(zap.DebugLevel, "Bulk append"); ce != nil {
		ce.Write(
			zap.Stringer("type", typ),
			zap.Stringer("source", s.Type()),
			zap.Int("rows", s.Len()),
			zap.String("impl", fmt.Sprintf("%T", s)))
	}
}
