// Package sandbox provisions ephemeral, disposable dependency environments
// scoped to a single conformance run: an npm prefix directory for the
// JavaScript SDK and a Python virtual environment for the Python SDK. A
// sandbox is removed on both success and failure paths; callers defer
// Close immediately after acquisition.
package sandbox

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

// Kind selects the sandbox flavor.
type Kind string

// Sandbox kinds.
const (
	// KindNPM is a throwaway npm prefix directory; installed packages land
	// under <dir>/node_modules and are resolved via NODE_PATH.
	KindNPM Kind = "npm"

	// KindVenv is a Python virtual environment created with python3 -m venv.
	KindVenv Kind = "venv"
)

// Sandbox is one ephemeral dependency environment.
type Sandbox struct {
	kind   Kind
	dir    string
	keep   bool
	logger zerolog.Logger
}

// Option configures sandbox creation.
type Option func(*Sandbox)

// WithKeep prevents removal on Close. Debugging aid: the path is logged so
// the environment can be inspected after the run.
func WithKeep() Option {
	return func(s *Sandbox) { s.keep = true }
}

// WithLogger attaches a logger for provisioning and cleanup events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sandbox) { s.logger = logger }
}

// New provisions a sandbox of the given kind under the system temp
// directory. For KindVenv the virtual environment is created and its
// interpreter verified before New returns; a sandbox that failed half-way
// is removed before the error is reported.
func New(ctx context.Context, kind Kind, opts ...Option) (*Sandbox, error) {
	dir, err := os.MkdirTemp("", "sextant-"+string(kind)+"-*")
	if err != nil {
		return nil, errors.WrapIO("create", "sandbox directory", err)
	}

	s := &Sandbox{
		kind:   kind,
		dir:    dir,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if kind == KindVenv {
		if err := s.provisionVenv(ctx); err != nil {
			_ = os.RemoveAll(dir)
			return nil, err
		}
	}

	s.logger.Debug().Str("kind", string(kind)).Str("dir", dir).Msg("sandbox provisioned")
	return s, nil
}

// provisionVenv creates the virtual environment and verifies that the
// interpreter and pip exist inside it.
func (s *Sandbox) provisionVenv(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "python3", "-m", "venv", s.dir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.NewProcessError("venv creation", "python3 -m venv", string(output), exitCode(err), err)
	}

	python := s.Python()
	if _, err := os.Stat(python); err != nil {
		return errors.WrapIO("stat", python, err)
	}

	// Older distros ship venv without pip; the install step needs it.
	cmd = exec.CommandContext(ctx, python, "-m", "pip", "--version")
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.NewProcessError("pip verification", python+" -m pip --version", string(output), exitCode(err), err)
	}

	return nil
}

// Kind returns the sandbox flavor.
func (s *Sandbox) Kind() Kind {
	return s.kind
}

// Path returns the sandbox root directory.
func (s *Sandbox) Path() string {
	return s.dir
}

// Python returns the path of the sandboxed Python interpreter. Only
// meaningful for KindVenv.
func (s *Sandbox) Python() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(s.dir, "Scripts", "python.exe")
	}
	return filepath.Join(s.dir, "bin", "python")
}

// NodeModules returns the module resolution directory for KindNPM
// sandboxes, suitable for NODE_PATH.
func (s *Sandbox) NodeModules() string {
	return filepath.Join(s.dir, "node_modules")
}

// Env returns the environment variable overrides subprocesses need to
// resolve dependencies from this sandbox, appended to os.Environ.
func (s *Sandbox) Env() []string {
	env := os.Environ()
	switch s.kind {
	case KindNPM:
		env = append(env, "NODE_PATH="+s.NodeModules())
	case KindVenv:
		env = append(env,
			"VIRTUAL_ENV="+s.dir,
			"PATH="+filepath.Dir(s.Python())+string(os.PathListSeparator)+os.Getenv("PATH"),
		)
	}
	return env
}

// Close removes the sandbox directory unless WithKeep was set. Safe to
// call more than once.
func (s *Sandbox) Close() error {
	if s.keep {
		s.logger.Info().Str("dir", s.dir).Msg("sandbox kept for inspection")
		return nil
	}
	if s.dir == "" {
		return nil
	}
	dir := s.dir
	s.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return errors.WrapIO("delete", dir, err)
	}
	s.logger.Debug().Str("dir", dir).Msg("sandbox removed")
	return nil
}

// exitCode extracts a process exit code from an exec error, -1 when unknown.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
