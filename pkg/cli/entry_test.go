package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/history"
)

func TestRunFromReader(t *testing.T) {
	var out, errs strings.Builder
	opts := Options{
		ConfigPath: devNullConfig(t),
		In:         strings.NewReader("(1,0)+(1,1)\nCLONE\nMUL\nPRINT\nOOPS\n"),
		Out:        &out,
		Err:        &errs,
	}
	if err := Run(opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "(1,0)+(2,1)+(1,2)\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errs.String(), "ERROR 5 WRONG COMMAND\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestRunScriptFile(t *testing.T) {
	script := filepath.Join(t.TempDir(), "session.calc")
	if err := os.WriteFile(script, []byte("7\n8\nADD\nPRINT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errs strings.Builder
	opts := Options{
		ConfigPath: devNullConfig(t),
		ScriptPath: script,
		Out:        &out,
		Err:        &errs,
	}
	if err := Run(opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "15\n" {
		t.Errorf("stdout = %q, want %q", got, "15\n")
	}
}

func TestRunMissingScriptFails(t *testing.T) {
	opts := Options{
		ConfigPath: devNullConfig(t),
		ScriptPath: filepath.Join(t.TempDir(), "nope.calc"),
		Out:        &strings.Builder{},
		Err:        &strings.Builder{},
	}
	if err := Run(opts); err == nil {
		t.Error("Run with missing script succeeded")
	}
}

func TestRunRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	cfgPath := filepath.Join(dir, "polycalc.yaml")
	cfg := "history:\n  enabled: true\n  path: " + dbPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errs strings.Builder
	opts := Options{
		ConfigPath: cfgPath,
		In:         strings.NewReader("ZERO\nBOGUS\nPRINT\n"),
		Out:        &out,
		Err:        &errs,
	}
	if err := Run(opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// History must not change the calculator's observable output.
	if got := out.String(); got != "0\n" {
		t.Errorf("stdout = %q, want %q", got, "0\n")
	}
	if got := errs.String(); got != "ERROR 2 WRONG COMMAND\n" {
		t.Errorf("stderr = %q", got)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	entries, err := store.Tail(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("history has %d entries, want 3", len(entries))
	}
	if entries[0].Input != "ZERO" || entries[1].Input != "BOGUS" || entries[2].Input != "PRINT" {
		t.Errorf("history inputs wrong: %+v", entries)
	}
	if !entries[0].OK || entries[1].OK {
		t.Errorf("history ok flags wrong: %+v", entries)
	}
}

// devNullConfig returns a path to an empty config file so tests ignore any
// polycalc.yaml in the working directory.
func devNullConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polycalc.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
