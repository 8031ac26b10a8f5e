package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPatternsCommand(t *testing.T) {
	out, err := execute(t, "patterns", "--log-level", "error")
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	for _, name := range []string{"blinker", "block", "empty", "glider", "random"} {
		if !strings.Contains(out, name+"\n") {
			t.Fatalf("pattern %q missing from %q", name, out)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if _, err := execute(t, "render", "--out", path, "--log-level", "error"); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 384 {
		t.Fatalf("image size %v, want 512x384", img.Bounds())
	}
}

func TestRenderSVGWithFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	if _, err := execute(t, "render", "-o", path, "--rows", "4", "--cols", "5", "--pattern", "block", "--log-level", "error"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if !strings.Contains(doc, `width="160" height="128"`) {
		t.Fatalf("unexpected svg header: %.200s", doc)
	}
	if strings.Count(doc, "<path ") != 4 || strings.Count(doc, "<line ") != 4 {
		t.Fatalf("block should draw 4 arcs and 4 lines, got %d and %d",
			strings.Count(doc, "<path "), strings.Count(doc, "<line "))
	}
}

func TestRenderRejectsFormat(t *testing.T) {
	_, err := execute(t, "render", "--out", filepath.Join(t.TempDir(), "x.gif"), "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "squares.yaml")
	if err := os.WriteFile(cfgPath, []byte("rows: 3\ncols: 3\npattern: empty\ncell_size: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "frame.svg")
	if _, err := execute(t, "render", "--config", cfgPath, "--cols", "6", "-o", out, "--log-level", "error"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `width="60" height="30"`) {
		t.Fatalf("flag should override the file: %.200s", data)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	if _, err := execute(t, "patterns", "--rows", "0"); err == nil {
		t.Fatal("expected validation error for zero rows")
	}
}

func TestEvolveCommand(t *testing.T) {
	out, err := execute(t, "evolve", "--steps", "8", "--wrap", "--log-level", "error")
	if err != nil {
		t.Fatalf("evolve: %v", err)
	}
	if !strings.Contains(out, "live cells, glider, 8 generations") {
		t.Fatalf("missing caption in %q", out)
	}
	if strings.Count(out, "■") != 5 {
		t.Fatalf("glider should keep 5 cells, board:\n%s", out)
	}
}

func TestRenderSVGToStdout(t *testing.T) {
	out, err := execute(t, "render", "-o", "-", "--format", "svg", "--log-level", "error")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatalf("stdout is not an svg document: %.120s", out)
	}
}

func TestRenderReportsUnwritableOutput(t *testing.T) {
	for _, name := range []string{"frame.png", "frame.svg"} {
		path := filepath.Join(t.TempDir(), "missing", name)
		if _, err := execute(t, "render", "-o", path, "--log-level", "error"); err == nil {
			t.Fatalf("render to %s should fail", path)
		}
	}
}

func TestConfigCommandRoundTrip(t *testing.T) {
	out, err := execute(t, "config", "--rows", "5", "--log-level", "error")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "rows: 5\n") || !strings.Contains(out, "cols: 16\n") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if _, err := execute(t, "config", "-o", path, "--pattern", "block", "--log-level", "error"); err != nil {
		t.Fatalf("config -o: %v", err)
	}
	out, err = execute(t, "config", "--config", path, "--log-level", "error")
	if err != nil {
		t.Fatalf("config --config: %v", err)
	}
	if !strings.Contains(out, "pattern: block\n") {
		t.Fatalf("saved pattern not loaded back:\n%s", out)
	}
}
