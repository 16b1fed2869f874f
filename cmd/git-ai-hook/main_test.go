package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"analyze": false, "checkpoint": false, "status": false, "version": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestAnalyzeReadsSnapshotFromStdin(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root := newRootCmd()
	root.SetIn(bytes.NewBufferString(`[{"typeName":"com.tabnine.inline.Handler","methodName":"render"}]`))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"analyze", "--config", filepath.Join(home, "hook.toml")})
	if err := root.Execute(); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
}

func TestAnalyzeReadsSnapshotFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	snapshot := filepath.Join(home, "snapshot.json")
	if err := os.WriteFile(snapshot, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	root := newRootCmd()
	root.SetArgs([]string{"analyze", "--config", filepath.Join(home, "hook.toml"), "--input", snapshot, "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
}

func TestAnalyzeRejectsMalformedSnapshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root := newRootCmd()
	root.SetIn(bytes.NewBufferString(`{broken`))
	root.SetArgs([]string{"analyze", "--config", filepath.Join(home, "hook.toml")})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected snapshot parse error")
	}
}
