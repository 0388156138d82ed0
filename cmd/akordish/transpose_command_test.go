package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"akordish/internal/testsupport"
)

const cliSheet = "[Verse]\nAm   D   G\nHello [Am]darkness my old friend\n"

func TestTransposeFromStdin(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"transpose", "--shift", "3", "--spelling", "sharp"}, env.configPath, cliSheet)
	if err != nil {
		t.Fatalf("transpose: %v", err)
	}
	want := "[Verse]\nCm   F   A#\nHello [Cm]darkness my old friend\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("transpose output mismatch (-want +got):\n%s", diff)
	}
}

func TestTransposeFileToKey(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteSheet(t, env.baseDir, "song.txt", "G   C   D\n")

	out, _, err := runCLI(t, []string{"transpose", path, "--key", "G", "--to", "Bb"}, env.configPath, "")
	if err != nil {
		t.Fatalf("transpose: %v", err)
	}
	if out != "Bb   Eb   F\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestTransposeRequiresShiftOrTarget(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"transpose"}, env.configPath, cliSheet)
	if err == nil || !strings.Contains(err.Error(), "--shift or --to") {
		t.Fatalf("expected missing flag error, got %v", err)
	}
	_, _, err = runCLI(t, []string{"transpose", "--shift", "1", "--to", "D", "--key", "C"}, env.configPath, cliSheet)
	if err == nil {
		t.Fatal("expected error for --shift with --to")
	}
}

func TestTransposeEmptyInputFails(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"transpose", "--shift", "1"}, env.configPath, "\n\n")
	if err == nil || !strings.Contains(err.Error(), "empty document") {
		t.Fatalf("expected empty document error, got %v", err)
	}
}

func TestTransposeColorAlways(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"transpose", "--shift", "2", "--spelling", "sharp", "--color", "always"}, env.configPath, "Am D\n")
	if err != nil {
		t.Fatalf("transpose: %v", err)
	}
	want := ansiBold + ansiCyan + "Bm" + ansiReset + " " + ansiBold + ansiCyan + "E" + ansiReset + "\n"
	if out != want {
		t.Fatalf("unexpected highlighted output %q", out)
	}
	if _, _, err := runCLI(t, []string{"transpose", "--shift", "2", "--color", "rainbow"}, env.configPath, "Am D\n"); err == nil {
		t.Fatal("expected error for unknown color mode")
	}
}

func TestTransposeWriteInPlace(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteSheet(t, env.baseDir, "sheets/song.txt", "Em  C  G  D\r\nWords here\r\n")

	out, _, err := runCLI(t, []string{"transpose", path, "--shift", "-2", "--write", "--backup", "--spelling", "flat"}, env.configPath, "")
	if err != nil {
		t.Fatalf("transpose --write: %v", err)
	}
	requireContains(t, out, "Transposed "+path+" by -2 semitones")

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rewritten sheet: %v", err)
	}
	if string(got) != "Dm  Bb  F  C\r\nWords here\r\n" {
		t.Fatalf("unexpected rewritten sheet %q", got)
	}
	orig, err := os.ReadFile(path + ".orig")
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(orig) != "Em  C  G  D\r\nWords here\r\n" {
		t.Fatalf("backup does not match original: %q", orig)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "song.txt.lock")); err != nil {
		t.Fatalf("expected lock file kept for later writers, stat err = %v", err)
	}
}

func TestTransposeWriteFailureLeavesNoBackup(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteSheet(t, env.baseDir, "sheets/blank.txt", "  \n\n")

	if _, _, err := runCLI(t, []string{"transpose", path, "--shift", "2", "--write", "--backup"}, env.configPath, ""); err == nil {
		t.Fatal("expected error for blank sheet")
	}
	if _, err := os.Stat(path + ".orig"); !os.IsNotExist(err) {
		t.Fatalf("backup left behind after failed rewrite, stat err = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "  \n\n" {
		t.Fatalf("sheet changed after failed rewrite: %q", got)
	}
}

func TestTransposeWriteNeedsFile(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"transpose", "--shift", "1", "--write"}, env.configPath, "C\n"); err == nil {
		t.Fatal("expected error for --write on stdin")
	}
}
