// Package registry provides typed access to the example registry: the
// machine-readable source of truth for every documented vaults.fyi API
// operation, parameter fixture, and domain vocabulary.
//
// The registry ships embedded in the binary and is read-only. The markdown
// guide is generated from it and the assertion suites derive their
// expectations from it, so documented behavior lives in exactly one place.
//
// Example usage:
//
//	reg, err := registry.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	op, err := reg.Operation("get_vault")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(op.GoMethod()) // "GetVault"
package registry

import (
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// Reader provides read-only access to registry data.
type Reader interface {
	// API returns the documented API configuration.
	API() API

	// Fixtures returns the guide's literal example values.
	Fixtures() Fixtures

	// Vocabularies lists all documented vocabularies.
	Vocabularies() *Vocabularies

	// Vocabulary returns a vocabulary by name.
	Vocabulary(name string) (Vocabulary, error)

	// Operations lists all documented operations in declared order.
	Operations() *Operations

	// Operation returns an operation by its canonical snake_case id.
	Operation(id string) (Operation, error)
}

// Validator checks registry data for structural consistency.
type Validator interface {
	// Validate returns an error describing every structural problem found,
	// or nil when the registry is internally consistent.
	Validate() error
}

// Registry is the complete read-only registry interface. The registry is
// immutable once loaded; there is no writer.
type Registry interface {
	Reader
	Validator
}

// registry is the internal implementation of the Registry interface.
type registry struct {
	api          API
	fixtures     Fixtures
	vocabularies *Vocabularies
	operations   *Operations
}

// Compile-time check that registry implements the Registry interface.
var _ Registry = (*registry)(nil)

// API returns the documented API configuration.
func (r *registry) API() API {
	return r.api
}

// Fixtures returns the guide's literal example values.
func (r *registry) Fixtures() Fixtures {
	return r.fixtures
}

// Vocabularies lists all documented vocabularies.
func (r *registry) Vocabularies() *Vocabularies {
	return r.vocabularies
}

// Vocabulary returns a vocabulary by name.
func (r *registry) Vocabulary(name string) (Vocabulary, error) {
	vocab, ok := r.vocabularies.Get(name)
	if !ok {
		return Vocabulary{}, &errors.NotFoundError{Resource: "vocabulary", ID: name}
	}
	return vocab, nil
}

// Operations lists all documented operations in declared order.
func (r *registry) Operations() *Operations {
	return r.operations
}

// Operation returns an operation by its canonical snake_case id.
func (r *registry) Operation(id string) (Operation, error) {
	op, ok := r.operations.Get(id)
	if !ok {
		return Operation{}, &errors.NotFoundError{Resource: "operation", ID: id}
	}
	return op, nil
}
