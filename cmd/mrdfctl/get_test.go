package main

import (
	"testing"
)

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name           string
		record         string
		field          string
		showRaw        bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "get float",
			record:      "stats",
			field:       "Wheelbase_m",
			wantContain: []string{"2.7"},
		},
		{
			name:        "get float with raw bytes",
			record:      "stats",
			field:       "Wheelbase_m",
			showRaw:     true,
			wantContain: []string{"2.7", "float32", "0x0084", "CD CC 2C 40"},
		},
		{
			name:           "get bitmask",
			record:         "stats",
			field:          "TyreAvailability",
			wantContain:    []string{"0x00 (None)"},
			wantNotContain: []string{"Medium"},
		},
		{
			name:        "get as JSON",
			record:      "physics",
			field:       "BrakeGlowMaxTemp",
			wantJSON:    true,
			wantContain: []string{`"value": 1200`, `"section"`},
		},
		{
			name:    "nonexistent field",
			record:  "stats",
			field:   "NoSuchField",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON
			getShowRaw = tt.showRaw

			args := []string{testRecordPath(t, tt.record), tt.field}
			output, err := captureOutput(t, func() error {
				return runGet(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runGet() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestFieldsCommand(t *testing.T) {
	tests := []struct {
		name           string
		filter         string
		section        string
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "all fields",
			wantContain: []string{"[PERFORMANCE]", "[ENGINE]", "TopSpeed_mps", "80"},
		},
		{
			name:           "section only",
			section:        "engine",
			wantContain:    []string{"[ENGINE]", "EngineType"},
			wantNotContain: []string{"TopSpeed_mps"},
		},
		{
			name:           "filter",
			filter:         "wheelbase",
			wantContain:    []string{"Wheelbase_m", "2.7"},
			wantNotContain: []string{"[ENGINE]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			fieldsFilter = tt.filter
			fieldsSection = tt.section
			fieldsRaw = false

			args := []string{testRecordPath(t, "stats")}
			output, err := captureOutput(t, func() error {
				return runFields(args)
			})
			if err != nil {
				t.Fatalf("runFields() error = %v", err)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
	fieldsFilter, fieldsSection = "", ""
}
