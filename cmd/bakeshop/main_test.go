package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const pack = `---
meta:
  name: Crumb
tokens:
  css_variables: |
    :root {
      --primary: 10 80% 60%;
    }
`

func TestCompile_Modes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crumb.yaml")
	if err := os.WriteFile(path, []byte(pack), 0o600); err != nil {
		t.Fatal(err)
	}

	flat, err := run(t, "", "compile", path)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(flat, ":root {") || !strings.Contains(flat, `[data-theme="dark"] {`) {
		t.Errorf("flat output missing blocks:\n%s", flat)
	}

	light, err := run(t, pack, "compile", "-", "--mode", "light")
	if err != nil {
		t.Fatalf("compile light: %v", err)
	}
	if !strings.Contains(light, "--primary: 10 80% 60%;") || strings.Contains(light, "[data-theme") {
		t.Errorf("light variables wrong:\n%s", light)
	}

	if _, err := run(t, pack, "compile", "-", "--mode", "sepia"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestCompile_BadPack(t *testing.T) {
	if _, err := run(t, "not a pack", "compile", "-"); err == nil {
		t.Error("unsupported pack should fail")
	}
}

func TestHashToken(t *testing.T) {
	out, err := run(t, "", "hash-token", "a-long-enough-admin-token")
	if err != nil {
		t.Fatalf("hash-token: %v", err)
	}
	hash := strings.TrimSpace(out)
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("a-long-enough-admin-token")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}

	if _, err := run(t, "", "hash-token", "short"); err == nil {
		t.Error("short token should be rejected")
	}
}
