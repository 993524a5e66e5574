package registry

import "sync"

// Operations is a thread-safe, ordered collection of documented operations.
// Declared order is the order the guide documents them in and the order the
// assertion suites check them in.
type Operations struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Operation
}

// NewOperations creates an Operations collection from a slice, preserving
// declared order.
func NewOperations(ops []Operation) *Operations {
	o := &Operations{
		order: make([]string, 0, len(ops)),
		byID:  make(map[string]Operation, len(ops)),
	}
	for _, op := range ops {
		if _, exists := o.byID[op.ID]; !exists {
			o.order = append(o.order, op.ID)
		}
		o.byID[op.ID] = op
	}
	return o
}

// Get returns an operation by id.
func (o *Operations) Get(id string) (Operation, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	op, ok := o.byID[id]
	return op, ok
}

// Len returns the number of operations.
func (o *Operations) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.order)
}

// List returns all operations in declared order.
func (o *Operations) List() []Operation {
	o.mu.RLock()
	defer o.mu.RUnlock()
	ops := make([]Operation, 0, len(o.order))
	for _, id := range o.order {
		ops = append(ops, o.byID[id])
	}
	return ops
}

// IDs returns all operation ids in declared order.
func (o *Operations) IDs() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	ids := make([]string, len(o.order))
	copy(ids, o.order)
	return ids
}

// Required returns only the operations every binding must expose, in
// declared order. Optional operations are documented with an "assuming this
// method exists" caveat and are tolerated when absent.
func (o *Operations) Required() []Operation {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var ops []Operation
	for _, id := range o.order {
		if op := o.byID[id]; op.Required {
			ops = append(ops, op)
		}
	}
	return ops
}

// ForEach calls fn for every operation in declared order, stopping early if
// fn returns false.
func (o *Operations) ForEach(fn func(Operation) bool) {
	for _, op := range o.List() {
		if !fn(op) {
			return
		}
	}
}
