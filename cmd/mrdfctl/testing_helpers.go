package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// testRecordPath writes a synthetic record and returns its path.
// "stats" is a 0x200 byte statistics record with a 2.7 m wheelbase;
// "physics" is a 0x400 byte record with plausible brake glow values.
func testRecordPath(t *testing.T, kind string) string {
	t.Helper()
	var b []byte
	floats := map[int]float64{}
	switch kind {
	case "stats":
		b = make([]byte, 0x200)
		floats[0x84] = 2.7
		floats[0x20] = 80
	case "physics":
		b = make([]byte, 0x400)
		floats[0x30] = 600
		floats[0x34] = 1200
		floats[0x38] = 1
		floats[0x3C] = 1
	default:
		t.Fatalf("unknown record kind: %s", kind)
	}
	for off, v := range floats {
		if _, err := codec.Encode(b, off, types.KindFloat32, types.FloatValue(v)); err != nil {
			t.Fatalf("encode 0x%X: %v", off, err)
		}
	}

	path := filepath.Join(t.TempDir(), kind+".mrdf")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("failed to write test record: %v", err)
	}
	return path
}

// resetFlags restores the global flags and points the config at a file that
// does not exist, so tests never read the user's configuration.
func resetFlags(t *testing.T) {
	t.Helper()
	quiet = false
	verbose = false
	jsonOut = false
	profileFlag = ""
	configPath = filepath.Join(t.TempDir(), "config.yaml")
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
