package convert

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestConvertGraphFile(t *testing.T) {
	dir := t.TempDir()
	rawPath := filepath.Join(dir, "deps.dot")
	raw := "// 1:/x/a.py\n// 2:/x/b.py\n1 -> 2;\n"
	if err := os.WriteFile(rawPath, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	sidePath := filepath.Join(dir, "deps.json")
	side := `{"variables": ["/x/a.py", "/x/b.py"], "cells": [{"src": 0, "dest": 1}]}`
	if err := os.WriteFile(sidePath, []byte(side), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := ConvertGraphFile(rawPath, dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(res.GraphPath) != "deps.converted.dot" {
		t.Errorf("graph path = %s", res.GraphPath)
	}
	data, err := os.ReadFile(res.GraphPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"a.py" -> "b.py";`) {
		t.Errorf("canonical output:\n%s", data)
	}

	if filepath.Base(res.CellsPath) != "deps.converted.json" {
		t.Errorf("cells path = %s", res.CellsPath)
	}
	cells, err := os.ReadFile(res.CellsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cells), `"a.py"`) || strings.Contains(string(cells), "/x/a.py") {
		t.Errorf("cells output:\n%s", cells)
	}
}

func TestConvertGraphFileNoSideFile(t *testing.T) {
	dir := t.TempDir()
	rawPath := filepath.Join(dir, "deps.dot")
	if err := os.WriteFile(rawPath, []byte("1 -> 2;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Conversion continues without the side artifact.
	res, err := ConvertGraphFile(rawPath, dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if res.CellsPath != "" {
		t.Errorf("cells path = %s, want empty", res.CellsPath)
	}
	if _, err := os.Stat(res.GraphPath); err != nil {
		t.Errorf("graph artifact missing: %v", err)
	}
}

func TestConvertGraphFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	rawPath := filepath.Join(dir, "deps.dot")
	if err := os.WriteFile(rawPath, []byte("// 1:/a.py\n1 -> 1;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := ConvertGraphFile(rawPath, dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	data1, _ := os.ReadFile(first.GraphPath)

	second, err := ConvertGraphFile(rawPath, dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	data2, _ := os.ReadFile(second.GraphPath)

	if first.GraphPath != second.GraphPath || string(data1) != string(data2) {
		t.Error("re-run is not idempotent")
	}
}
