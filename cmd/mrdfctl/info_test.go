package main

import (
	"testing"
)

func TestInfoCommand(t *testing.T) {
	tests := []struct {
		name        string
		record      string
		profile     string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "stats record",
			record:      "stats",
			wantContain: []string{"Statistics MRDF (stats)", "range:wheelbase", "512 bytes"},
		},
		{
			name:        "physics record",
			record:      "physics",
			wantContain: []string{"Physics Tweaker MRDF (physics)", "range:brake-glow", "1,024 bytes"},
		},
		{
			name:        "forced profile",
			record:      "stats",
			profile:     "physics",
			wantContain: []string{"(physics)", "manual", "Skipped:", "shorter than"},
		},
		{
			name:        "json output",
			record:      "stats",
			wantJSON:    true,
			wantContain: []string{`"profile": "stats"`, `"detected_by": "range:wheelbase"`},
		},
		{
			name:    "unknown profile",
			record:  "stats",
			profile: "nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON
			profileFlag = tt.profile

			args := []string{testRecordPath(t, tt.record)}
			output, err := captureOutput(t, func() error {
				return runInfo(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runInfo() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestInfoCommand_MissingFile(t *testing.T) {
	resetFlags(t)
	_, err := captureOutput(t, func() error {
		return runInfo([]string{"/nonexistent/car.mrdf"})
	})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDetectCommand(t *testing.T) {
	resetFlags(t)
	args := []string{testRecordPath(t, "stats"), testRecordPath(t, "physics")}
	output, err := captureOutput(t, func() error {
		return runDetect(args)
	})
	if err != nil {
		t.Fatalf("runDetect() error = %v", err)
	}
	assertContains(t, output, []string{"Statistics MRDF [range:wheelbase]", "Physics Tweaker MRDF [range:brake-glow]"})

	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runDetect(args)
	})
	if err != nil {
		t.Fatalf("runDetect() json error = %v", err)
	}
	assertJSON(t, output)
}

func TestProfilesCommand(t *testing.T) {
	resetFlags(t)
	profilesFields = true
	defer func() { profilesFields = false }()

	output, err := captureOutput(t, func() error {
		return runProfiles(nil)
	})
	if err != nil {
		t.Fatalf("runProfiles() error = %v", err)
	}
	assertContains(t, output, []string{"Profiles (2)", "* stats", "physics", "TopSpeed_mps", "0x0084"})
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)

	output, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("runVersion() error = %v", err)
	}
	assertContains(t, output, []string{"mrdfctl dev", "built-in profiles: stats, physics"})

	jsonOut = true
	output, err = captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("runVersion() json error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"profiles"`, `"physics"`})
}
