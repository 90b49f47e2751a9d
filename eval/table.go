package eval

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/signadot/go-edm/edm"
)

var ErrOperationExists = errors.New("operation exists")

// Table is an Operations implementation keyed by namespace, name and
// arity. It is safe for concurrent use, including registration while
// evaluations look operations up.
type Table struct {
	mu    sync.RWMutex
	funcs map[edm.OperationKey]Func
}

func NewTable() *Table {
	return &Table{funcs: map[edm.OperationKey]Func{}}
}

func (t *Table) Register(key edm.OperationKey, f Func) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, present := t.funcs[key]; present {
		return fmt.Errorf("%s: %w", key, ErrOperationExists)
	}
	t.funcs[key] = f
	return nil
}

// MustRegister is Register for static tables; it panics on a duplicate key.
func (t *Table) MustRegister(key edm.OperationKey, f Func) *Table {
	if err := t.Register(key, f); err != nil {
		panic(err)
	}
	return t
}

// RegisterScript registers an operation implemented by an expr-lang
// script. See Script.
func (t *Table) RegisterScript(key edm.OperationKey, src string, paramNames ...string) error {
	f, err := script(src, key.Arity, paramNames)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return t.Register(key, f)
}

func (t *Table) Lookup(key edm.OperationKey) (Func, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.funcs[key]
	return f, ok
}

// Merge registers every operation of other in t.
func (t *Table) Merge(other *Table) error {
	other.mu.RLock()
	funcs := maps.Clone(other.funcs)
	other.mu.RUnlock()
	var errs []error
	for _, k := range sortedKeys(funcs) {
		if err := t.Register(k, funcs[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Table) Keys() []edm.OperationKey {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return sortedKeys(t.funcs)
}

func sortedKeys(m map[edm.OperationKey]Func) []edm.OperationKey {
	return slices.SortedFunc(maps.Keys(m), func(a, b edm.OperationKey) int {
		if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Arity, b.Arity)
	})
}
