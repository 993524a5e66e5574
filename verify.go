package sextant

import (
	"context"
	"fmt"
	"strings"

	"github.com/vaultsfyi/sextant/internal/bindings"
	"github.com/vaultsfyi/sextant/internal/deps"
	"github.com/vaultsfyi/sextant/internal/results"
	"github.com/vaultsfyi/sextant/internal/sandbox"
	"github.com/vaultsfyi/sextant/pkg/conformance"
)

// Verify runs every configured binding in order. Each binding walks the
// same states: runtime detection, SDK install, suite run. A missing
// runtime is fatal for the run; an install failure is only a warning,
// because the suite's own import check then reports the precise symptom.
func (s *sextant) Verify(ctx context.Context) (*conformance.RunReport, error) {
	report := conformance.NewRunReport()
	progress := newProgress(s.config.progress, len(s.bindings))

	for _, b := range s.bindings {
		progress.startBinding(b.Name())
		br := s.verifyBinding(ctx, b)
		report.Add(br)
		progress.finishBinding(br)

		if err := ctx.Err(); err != nil {
			report.Finish()
			return report, err
		}
	}

	report.Finish()
	progress.finishRun(report)

	if s.config.resultsPath != "" {
		path, err := results.Save(report, s.config.resultsPath)
		if err != nil {
			return report, fmt.Errorf("saving run report: %w", err)
		}
		s.config.logger.Info().Str("path", path).Msg("run report saved")
	}

	return report, nil
}

func (s *sextant) verifyBinding(ctx context.Context, b bindings.Binding) conformance.BindingReport {
	logger := s.config.logger.With().Str("binding", b.Name()).Logger()
	br := conformance.BindingReport{Binding: b.Name()}

	// Runtime detection. Missing runtimes end the binding here with a
	// fatal status, which maps the whole run onto exit code 2.
	reqs := b.Runtime()
	statuses := deps.CheckAll(ctx, reqs)
	for _, req := range reqs {
		status := statuses[req.Name]
		br.Runtimes = append(br.Runtimes, conformance.RuntimeStatus{
			Name:      req.Name,
			Available: status.Available,
			Version:   status.Version,
			Path:      status.Path,
		})
	}
	if missing := deps.Missing(reqs, statuses); len(missing) > 0 {
		var hints []string
		for _, req := range missing {
			hints = append(hints, fmt.Sprintf("%s is not installed (%s)", req.DisplayName, req.Hint))
		}
		br.Fatal = strings.Join(hints, "; ")
		logger.Error().Str("fatal", br.Fatal).Msg("runtime missing")
		return br
	}

	// Sandbox and SDK install.
	var sb *sandbox.Sandbox
	if kind := b.SandboxKind(); kind != "" {
		var opts []sandbox.Option
		if s.config.keepSandbox {
			opts = append(opts, sandbox.WithKeep())
		}
		opts = append(opts, sandbox.WithLogger(logger))

		var err error
		sb, err = sandbox.New(ctx, kind, opts...)
		if err != nil {
			br.Suites = append(br.Suites, brokenSuiteReport(b.Name(), "sandbox", err))
			return br
		}
		defer func() {
			if err := sb.Close(); err != nil {
				logger.Warn().Err(err).Msg("sandbox cleanup failed")
			}
		}()

		installCtx, cancel := context.WithTimeout(ctx, s.config.installTimeout)
		err = b.Install(installCtx, sb)
		cancel()
		if err != nil {
			br.InstallWarning = err.Error()
			logger.Warn().Err(err).Msg("sdk install failed, continuing")
		}
	}

	// Suite run. A probe crash still yields a report so sibling bindings
	// are unaffected.
	suiteReports, err := b.Run(ctx, s.registry, s.config.apiKey, sb)
	if err != nil {
		br.Suites = append(br.Suites, brokenSuiteReport(b.Name(), "probe", err))
		logger.Error().Err(err).Msg("suite run broke")
		return br
	}
	br.Suites = suiteReports

	logger.Info().
		Int("suites", len(br.Suites)).
		Str("tally", br.Tally().String()).
		Msg("binding verified")
	return br
}

// brokenSuiteReport renders an orchestration failure as a single failed
// check so it rolls up through the normal tally math.
func brokenSuiteReport(binding, stage string, err error) conformance.SuiteReport {
	result := conformance.Result{
		Name:    stage + " executes",
		Outcome: conformance.OutcomeFail,
		Detail:  err.Error(),
		Hint:    conformance.HintOf(err),
	}
	report := conformance.SuiteReport{
		Suite:   stage,
		Binding: binding,
		Results: []conformance.Result{result},
	}
	report.Tally.Record(result.Outcome)
	return report
}
