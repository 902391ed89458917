package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v\noutput:\n%s", err, buf.String())
	}
	return buf.String()
}

func TestDemoSyncScroll(t *testing.T) {
	out := execute(t, "demo", "syncscroll", "--frames", "5")
	if !strings.Contains(out, "scrollY: 50.0") {
		t.Fatalf("output = %q, want scrollY 50.0", out)
	}
}

func TestDemoTextBinding(t *testing.T) {
	out := execute(t, "demo", "textbinding", "--frames", "5")
	if !strings.Contains(out, `title: "hello from the demo"`) {
		t.Fatalf("output = %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, Version) {
		t.Fatalf("output = %q, want version %q", out, Version)
	}
}
