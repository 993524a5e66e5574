package sextant

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/vaultsfyi/sextant/pkg/conformance"
)

// progress renders interactive run feedback. A disabled progress is a
// no-op so Verify never branches on the setting.
type progress struct {
	enabled bool
	bar     *progressbar.ProgressBar
}

func newProgress(enabled bool, bindingCount int) *progress {
	if !enabled {
		return &progress{}
	}
	bar := progressbar.NewOptions(bindingCount,
		progressbar.OptionSetDescription(color.CyanString("Verifying bindings")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Print("\n")
		}),
	)
	return &progress{enabled: true, bar: bar}
}

func (p *progress) startBinding(name string) {
	if !p.enabled {
		return
	}
	p.bar.Describe(color.CyanString("Verifying %s", name))
}

func (p *progress) finishBinding(br conformance.BindingReport) {
	if !p.enabled {
		return
	}
	_ = p.bar.Add(1)

	switch {
	case br.Fatal != "":
		color.Red("✗ %s: %s", br.Binding, br.Fatal)
	case br.Passed():
		color.Green("✓ %s: %s", br.Binding, br.Tally().String())
	default:
		color.Red("✗ %s: %s", br.Binding, br.Tally().String())
	}
	if br.InstallWarning != "" {
		color.Yellow("  warning: %s", br.InstallWarning)
	}
}

func (p *progress) finishRun(report *conformance.RunReport) {
	if !p.enabled {
		return
	}
	if report.Passed() {
		color.Green("\nAll bindings conform to the documentation (%s)", report.Tally().String())
		return
	}
	color.Red("\nDocumentation drift detected (%s)", report.Tally().String())
	for _, hint := range report.FailureHints() {
		color.Yellow("  hint: %s", hint)
	}
}
