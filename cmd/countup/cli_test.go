package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// execute runs the root command with args against a fresh config path.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	verbose = false
	animateDuration, animateFPS, animateMarkdown, animateSteps = 0, 0, false, 10
	renderAt, renderDuration = 0, 0
	configForce = false

	if !containsFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "countup.yaml"))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func TestRenderCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"render", "$49", "--at", "500ms", "--duration", "1s"}, "$42"},
		{[]string{"render", "$49", "--at", "0s"}, "$0"},
		{[]string{"render", "$49", "--at", "5s"}, "$49"},
		{[]string{"render", "10K+", "--at", "500ms", "--duration", "1s"}, "+8.8K"},
		{[]string{"render", "24/7", "--at", "500ms"}, "24/7"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestExerciseCmds(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"shift", "abz"}, "bc{"},
		{[]string{"slice", "Hello World"}, "Helrld"},
		{[]string{"slice", "Hi"}, "Hi"},
		{[]string{"freq", "hello", "l"}, "true"},
		{[]string{"freq", "hello", "h"}, "false"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}

	if _, err := execute(t, "freq", "hello", "ll"); err == nil {
		t.Error("freq with a multi-character CHAR should fail")
	}
}

func TestAnimateCmd(t *testing.T) {
	out, err := execute(t, "animate", "--duration", "20ms", "--fps", "500", "$49", "24/7")
	if err != nil {
		t.Fatalf("animate failed: %v", err)
	}

	var last string
	static := 0
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("unexpected line %q", line)
		}
		switch fields[0] {
		case "$49":
			last = fields[1]
		case "24/7":
			static++
		}
	}
	if last != "$49" {
		t.Errorf("last $49 frame = %q, want the label itself", last)
	}
	if static != 1 {
		t.Errorf("static label printed %d times, want 1", static)
	}
}

func TestFrameTable(t *testing.T) {
	got := frameTable([]string{"$49", "24/7"}, time.Second, 2)
	want := "| elapsed | $49 | 24/7 |\n" +
		"|---|---|---|\n" +
		"| 0s | $0 | 24/7 |\n" +
		"| 500ms | $42 | 24/7 |\n" +
		"| 1s | $49 | 24/7 |\n"
	if got != want {
		t.Errorf("frameTable:\n%s\nwant:\n%s", got, want)
	}
}

func TestFrameTable_UnevenSteps(t *testing.T) {
	got := frameTable([]string{"1,200", "10K+"}, time.Second, 3)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 6 {
		t.Fatalf("want header, rule and 4 rows, got %d lines:\n%s", len(lines), got)
	}
	if lines[2] != "| 0s | 0 | +0.0K |" {
		t.Errorf("first row = %q", lines[2])
	}
	if want := "| 1s | 1,200 | 10K+ |"; lines[5] != want {
		t.Errorf("last row = %q, want %q", lines[5], want)
	}
}

func TestFrameTable_TinyDurationTerminates(t *testing.T) {
	done := make(chan string, 1)
	go func() { done <- frameTable([]string{"$49"}, 5*time.Nanosecond, 10) }()

	select {
	case got := <-done:
		lines := strings.Split(strings.TrimSpace(got), "\n")
		if last := lines[len(lines)-1]; last != "| 5ns | $49 |" {
			t.Errorf("last row = %q", last)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frameTable did not return")
	}
}

func TestAnimateCmd_RejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"animate", "--markdown", "--duration", "5ns", "--steps", "10", "$49"},
		{"animate", "--markdown", "--steps", "0", "$49"},
		{"animate", "--duration", "-1s", "$49"},
		{"animate", "--fps", "-5", "$49"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}

func TestAnimateCmd_Markdown(t *testing.T) {
	out, err := execute(t, "animate", "--markdown", "--steps", "2", "--duration", "1s", "$49")
	if err != nil {
		t.Fatalf("animate --markdown failed: %v", err)
	}
	for _, want := range []string{"$0", "$42", "$49"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countup.yaml")

	if _, err := execute(t, "config", "init", "--config", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Error("second config init should refuse to overwrite")
	}
	if _, err := execute(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Errorf("config init --force failed: %v", err)
	}

	// the written file drives other commands
	out, err := execute(t, "render", "98%", "--at", "1s", "--config", path)
	if err != nil {
		t.Fatalf("render with written config failed: %v", err)
	}
	if strings.TrimSpace(out) != "98%" {
		t.Errorf("render = %q, want 98%%", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countup.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  duration: nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "render", "$49", "--config", path); err == nil {
		t.Error("invalid config should fail")
	}
}
