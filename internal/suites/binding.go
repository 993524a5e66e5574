package suites

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/errors"
	"github.com/vaultsfyi/sextant/pkg/vaultsfyi"
)

// Binding returns the suite validating client construction and the
// documented error family. Construction uses an explicit credential; a
// placeholder works because the key is never validated against a backend.
func Binding(apiKey string) conformance.Suite {
	return conformance.Suite{
		Name:        "binding",
		Description: "client construction and documented error types",
		Checks: []conformance.Check{
			{
				Name:        "construct with explicit credential",
				Description: "a client builds from an explicit config object",
				Fn: func(_ context.Context) error {
					_, err := vaultsfyi.New(vaultsfyi.Config{APIKey: apiKey})
					return err
				},
			},
			{
				Name:        "defaults match documentation",
				Description: "base URL, timeout, and retry defaults match the guide",
				Fn: func(_ context.Context) error {
					client, err := vaultsfyi.New(vaultsfyi.Config{APIKey: apiKey})
					if err != nil {
						return err
					}
					if got := client.BaseURL(); got != "https://api.vaults.fyi" {
						return fmt.Errorf("default base URL is %q, documented %q", got, "https://api.vaults.fyi")
					}
					if got := client.MaxRetries(); got != 3 {
						return fmt.Errorf("default max retries is %d, documented 3", got)
					}
					return nil
				},
			},
			{
				Name:        "construct with documented overrides",
				Description: "the documented constructor options are accepted",
				Fn: func(_ context.Context) error {
					_, err := vaultsfyi.New(vaultsfyi.Config{APIKey: apiKey},
						vaultsfyi.WithBaseURL("https://api.vaults.fyi"),
						vaultsfyi.WithTimeout(30*time.Second),
						vaultsfyi.WithMaxRetries(3),
					)
					return err
				},
			},
			{
				Name:        "empty credential rejected",
				Description: "construction without a key fails with the documented error",
				Fn: func(_ context.Context) error {
					_, err := vaultsfyi.New(vaultsfyi.Config{})
					if !stderrors.Is(err, errors.ErrAPIKeyRequired) {
						return fmt.Errorf("expected ErrAPIKeyRequired, got %v", err)
					}
					return nil
				},
			},
			{
				Name:        "documented exception classes",
				Description: "the documented error types exist and classify correctly",
				Fn: func(_ context.Context) error {
					authErr := errors.NewAuthenticationError("/v2/detailed-vaults", 401, "bad key")
					if !stderrors.Is(authErr, errors.ErrAuthentication) {
						return fmt.Errorf("AuthenticationError does not match ErrAuthentication")
					}
					rateErr := errors.NewRateLimitError("/v2/detailed-vaults", time.Second, "slow down")
					if !stderrors.Is(rateErr, errors.ErrRateLimited) {
						return fmt.Errorf("RateLimitError does not match ErrRateLimited")
					}
					httpErr := errors.NewHTTPResponseError("/v2/detailed-vaults", 500, "500", "")
					if !stderrors.Is(httpErr, errors.ErrHTTPResponse) {
						return fmt.Errorf("HTTPResponseError does not match ErrHTTPResponse")
					}
					return nil
				},
			},
		},
	}
}
