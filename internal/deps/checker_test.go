package deps

import (
	"context"
	"testing"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

func TestCheckMissingCommand(t *testing.T) {
	status := Check(context.Background(), Requirement{
		Name:        "node",
		DisplayName: "Node.js",
		Commands:    []string{"definitely-not-a-real-binary-xyz"},
		Hint:        "https://nodejs.org/en/download",
	})

	if status.Available {
		t.Fatal("expected requirement to be unavailable")
	}
	if status.CheckErr == nil {
		t.Fatal("expected a check error")
	}
	if !errors.IsRuntimeMissing(status.CheckErr) {
		t.Errorf("expected ErrRuntimeMissing, got %v", status.CheckErr)
	}
}

func TestCheckFindsShell(t *testing.T) {
	// sh exists on every platform the harness supports.
	status := Check(context.Background(), Requirement{
		Name:        "sh",
		DisplayName: "POSIX shell",
		Commands:    []string{"sh"},
	})

	if !status.Available {
		t.Fatal("expected sh to be found in PATH")
	}
	if status.Path == "" {
		t.Error("expected a resolved path")
	}
}

func TestCheckTriesCommandsInOrder(t *testing.T) {
	status := Check(context.Background(), Requirement{
		Name:     "shell",
		Commands: []string{"definitely-not-a-real-binary-xyz", "sh"},
	})

	if !status.Available {
		t.Fatal("expected fallback command to be found")
	}
}

func TestMissing(t *testing.T) {
	reqs := []Requirement{
		{Name: "a", Commands: []string{"sh"}},
		{Name: "b", Commands: []string{"definitely-not-a-real-binary-xyz"}},
	}
	statuses := CheckAll(context.Background(), reqs)

	missing := Missing(reqs, statuses)
	if len(missing) != 1 || missing[0].Name != "b" {
		t.Errorf("expected only b to be missing, got %v", missing)
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"v22.1.0", "22.1.0"},
		{"Python 3.12.4", "3.12.4"},
		{"10.8.2", "10.8.2"},
		{"pip 24.0 from /usr", "24.0"},
		{"no version here", ""},
	}
	for _, tt := range tests {
		if got := extractVersion(tt.output); got != tt.want {
			t.Errorf("extractVersion(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}
