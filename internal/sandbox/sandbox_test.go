package sandbox

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestNPMSandboxLifecycle(t *testing.T) {
	s, err := New(context.Background(), KindNPM)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dir := s.Path()
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("sandbox dir should exist: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("sandbox dir should be removed, stat err = %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := New(context.Background(), KindNPM)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestNPMEnvExposesNodePath(t *testing.T) {
	s, err := New(context.Background(), KindNPM)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = s.Close() }()

	var nodePath string
	for _, kv := range s.Env() {
		if strings.HasPrefix(kv, "NODE_PATH=") {
			nodePath = strings.TrimPrefix(kv, "NODE_PATH=")
		}
	}
	if nodePath != s.NodeModules() {
		t.Errorf("NODE_PATH = %q, want %q", nodePath, s.NodeModules())
	}
}

func TestWithKeepSkipsRemoval(t *testing.T) {
	s, err := New(context.Background(), KindNPM, WithKeep())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dir := s.Path()
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("kept sandbox should survive Close: %v", err)
	}
}
