package diffusion

import (
	"fmt"
	"sort"
	"sync"

	"github.com/notargets/DGDiffusion/parallel"
	"go.uber.org/zap"
)

// Entry is one compiled specialization of the operator.
type Entry struct {
	Key       Key
	Signature string // stable kernel name, also used for device kernels
	Certified bool
	kernel    hostKernel
}

// MultAdd runs the host specialization: solOut += A(oper)·solIn for every element.
func (e *Entry) MultAdd(exec parallel.Executor, numElements int, ops Operands) {
	e.kernel(exec, numElements, ops)
}

func newEntry(spec specialization, certified bool) *Entry {
	key := spec.key
	return &Entry{
		Key:       key,
		Signature: fmt.Sprintf("diffusion%dd_d%d_q%d", key.Dim, key.Dofs1D, key.Quad1D),
		Certified: certified,
		kernel:    spec.kernel,
	}
}

// UnsupportedError reports a (dim, dofs, quad) triple with no compiled kernel.
type UnsupportedError struct {
	Key Key
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no diffusion kernel compiled for key %v", e.Key)
}

// Registry maps a Key to its compiled specialization. It is immutable after
// NewRegistry returns and safe for concurrent use.
type Registry struct {
	entries     map[Key]*Entry
	keys        []Key
	logger      *zap.Logger
	fatal       func(error)
	uncertified bool
}

type Option func(*Registry)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithFatalHandler replaces the action taken on a dispatch miss. The default
// panics with the *UnsupportedError.
func WithFatalHandler(fatal func(error)) Option {
	return func(r *Registry) { r.fatal = fatal }
}

// WithUncertified also registers the uncertified hexahedral orders.
func WithUncertified() Option {
	return func(r *Registry) { r.uncertified = true }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[Key]*Entry),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fatal == nil {
		r.fatal = func(err error) { panic(err) }
	}
	r.register(certifiedKernels, true)
	if r.uncertified {
		r.register(uncertifiedKernels, false)
	}
	sort.Slice(r.keys, func(i, j int) bool { return r.keys[i].Code() < r.keys[j].Code() })
	return r
}

func (r *Registry) register(specs []specialization, certified bool) {
	for _, spec := range specs {
		if _, exists := r.entries[spec.key]; exists {
			panic(fmt.Sprintf("diffusion: specialization %v registered twice", spec.key))
		}
		r.entries[spec.key] = newEntry(spec, certified)
		r.keys = append(r.keys, spec.key)
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of certified specializations,
// built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Keys returns the registered keys ordered by their packed code.
func (r *Registry) Keys() []Key {
	keys := make([]Key, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Lookup resolves key without invoking the fatal handler.
func (r *Registry) Lookup(key Key) (*Entry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return nil, &UnsupportedError{Key: key}
	}
	return entry, nil
}

// Apply computes solOut += A(oper)·solIn for numElements elements of order
// (dofs1D, quad1D) on target. A key with no compiled specialization is a
// build/configuration defect: the fatal handler is called once and nothing
// is launched.
func (r *Registry) Apply(target Target, dim, dofs1D, quad1D, numElements int, ops Operands) error {
	key := Key{Dim: dim, Dofs1D: dofs1D, Quad1D: quad1D}
	entry, err := r.Lookup(key)
	if err != nil {
		r.logger.Error("diffusion kernel not compiled",
			zap.String("key", fmt.Sprintf("0x%X", key.Code())),
			zap.Int("dim", dim), zap.Int("dofs1D", dofs1D), zap.Int("quad1D", quad1D))
		r.fatal(err)
		return err
	}
	r.logger.Debug("diffusion kernel resolved",
		zap.String("signature", entry.Signature),
		zap.String("target", target.Name()),
		zap.Int("elements", numElements))
	if debugChecks {
		if err = ops.Validate(key, numElements); err != nil {
			return err
		}
	}
	return target.Launch(entry, numElements, ops)
}
