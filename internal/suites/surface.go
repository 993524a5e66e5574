package suites

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
	"github.com/vaultsfyi/sextant/pkg/vaultsfyi"
)

// Surface returns the capability probe suite: every required registry
// operation must be a callable client method, and every capability the
// binding exports must be documented. Drift is caught in both directions.
func Surface(reg registry.Registry, apiKey string) conformance.Suite {
	suite := conformance.Suite{
		Name:        "surface",
		Description: "capability parity between the binding and the registry",
	}

	for _, op := range reg.Operations().List() {
		op := op
		suite.Checks = append(suite.Checks, conformance.Check{
			Name:        "method " + op.ID,
			Description: fmt.Sprintf("client exposes %s as a callable member", op.GoMethod()),
			Fn: func(_ context.Context) error {
				client, err := vaultsfyi.New(vaultsfyi.Config{APIKey: apiKey})
				if err != nil {
					return err
				}
				method := reflect.ValueOf(client).MethodByName(op.GoMethod())
				if !method.IsValid() {
					if !op.Required {
						return conformance.Skipf("optional operation %s not exposed", op.ID)
					}
					return fmt.Errorf("client has no method %s", op.GoMethod())
				}
				if method.Kind() != reflect.Func {
					return fmt.Errorf("client member %s is not callable", op.GoMethod())
				}
				return nil
			},
		})
	}

	suite.Checks = append(suite.Checks, conformance.Check{
		Name:        "no undocumented capabilities",
		Description: "every method in the capability contract is in the registry",
		Fn: func(_ context.Context) error {
			documented := make(map[string]bool)
			reg.Operations().ForEach(func(op registry.Operation) bool {
				documented[op.GoMethod()] = true
				return true
			})

			apiType := reflect.TypeOf((*vaultsfyi.API)(nil)).Elem()
			var undocumented []string
			for i := 0; i < apiType.NumMethod(); i++ {
				name := apiType.Method(i).Name
				if !documented[name] {
					undocumented = append(undocumented, name)
				}
			}
			if len(undocumented) > 0 {
				return fmt.Errorf("capability contract has undocumented methods: %s",
					strings.Join(undocumented, ", "))
			}
			return nil
		},
	})

	return suite
}
