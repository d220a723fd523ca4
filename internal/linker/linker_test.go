package linker

import (
	"os"
	"testing"
)

func TestLinkerDriverDefaultsToClang(t *testing.T) {
	os.Unsetenv("CC")
	if got := linkerDriver(); got != "clang" {
		t.Errorf("linkerDriver() = %q, want %q", got, "clang")
	}
}

func TestLinkerDriverHonorsCCEnv(t *testing.T) {
	os.Setenv("CC", "gcc")
	defer os.Unsetenv("CC")
	if got := linkerDriver(); got != "gcc" {
		t.Errorf("linkerDriver() = %q, want %q", got, "gcc")
	}
}

func TestLinkRemovesTemporaryObjectFileOnFailure(t *testing.T) {
	os.Setenv("CC", "/nonexistent-lp-test-compiler")
	defer os.Unsetenv("CC")

	before, _ := os.ReadDir(os.TempDir())

	err := Link([]byte("not a real object file"), os.DevNull, 2)
	if err == nil {
		t.Fatalf("expected Link to fail with a nonexistent compiler")
	}

	after, _ := os.ReadDir(os.TempDir())
	if len(after) > len(before) {
		t.Errorf("expected no leftover temp files after a failed link, before=%d after=%d", len(before), len(after))
	}
}
