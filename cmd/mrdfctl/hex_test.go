package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHexCommand(t *testing.T) {
	tests := []struct {
		name           string
		offset         string
		length         int
		field          string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "one line at offset",
			offset:         "80",
			length:         16,
			wantContain:    []string{"00000080  00 00 00 00 CD CC 2C 40"},
			wantNotContain: []string{"00000090"},
		},
		{
			name:        "default page",
			offset:      "0",
			wantContain: []string{"00000000", "000001F0"},
		},
		{
			name:        "around a field",
			offset:      "0",
			field:       "Wheelbase_m",
			wantContain: []string{"00000080"},
		},
		{
			name:    "beyond end",
			offset:  "200",
			length:  4,
			wantErr: true,
		},
		{
			name:    "bad offset",
			offset:  "xyz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			hexOffsetFlag = tt.offset
			hexLength = tt.length
			hexField = tt.field

			args := []string{testRecordPath(t, "stats")}
			output, err := captureOutput(t, func() error {
				return runHex(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runHex() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
	hexOffsetFlag, hexLength, hexField = "0", 0, ""
}

func TestDiffCommand(t *testing.T) {
	resetFlags(t)
	resetEditFlags()
	diffUnmapped = true

	a := testRecordPath(t, "stats")
	data, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	same := filepath.Join(t.TempDir(), "same.mrdf")
	if err := os.WriteFile(same, data, 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := captureOutput(t, func() error {
		return runDiff([]string{a, same})
	})
	if err != nil {
		t.Fatalf("runDiff() error = %v", err)
	}
	assertContains(t, output, []string{"No differences"})

	b := filepath.Join(t.TempDir(), "b.mrdf")
	data[0x10] = 0xEE
	if err := os.WriteFile(b, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := captureOutput(t, func() error {
		return runSet([]string{b, "TopSpeed_mps", "92.5"})
	}); err != nil {
		t.Fatalf("runSet() error = %v", err)
	}

	output, err = captureOutput(t, func() error {
		return runDiff([]string{a, b})
	})
	if err != nil {
		t.Fatalf("runDiff() error = %v", err)
	}
	assertContains(t, output, []string{"TopSpeed_mps", "80 → 92.5", "1 unmapped byte(s): 00 → EE", "1 field(s) differ"})

	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runDiff([]string{a, b})
	})
	if err != nil {
		t.Fatalf("runDiff() json error = %v", err)
	}
	assertJSON(t, output)
}
