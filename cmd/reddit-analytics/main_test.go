package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/report"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-serve", "-schedule", "@every 5m", "-cors", "http://a.local, http://b.local"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !opts.serve || opts.schedule != "@every 5m" || opts.addr != ":8080" {
		t.Errorf("opts = %+v", opts)
	}
	if len(opts.cors) != 2 || opts.cors[1] != "http://b.local" {
		t.Errorf("cors = %v", opts.cors)
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	tests := [][]string{
		{"-format", "xml"},
		{"-schedule", "@hourly"},
		{"-unknown"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%v) should fail", args)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{envDB: "/data/reddit.db", envConfig: "/etc/analytics.yaml"}
	getenv := func(k string) string { return env[k] }

	opts := options{}
	opts.applyEnv(getenv)
	if opts.dbPath != "/data/reddit.db" || opts.config != "/etc/analytics.yaml" {
		t.Errorf("env defaults not applied: %+v", opts)
	}

	opts = options{dbPath: "flag.db"}
	opts.applyEnv(getenv)
	if opts.dbPath != "flag.db" {
		t.Errorf("flag should win over env, got %q", opts.dbPath)
	}

	opts = options{}
	opts.applyEnv(func(string) string { return "" })
	if opts.dbPath != defaultDB || opts.config != "" {
		t.Errorf("fallbacks = %+v", opts)
	}
}

func TestBuildEngine(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	engine, err := buildEngine(ctx, filepath.Join(tmpDir, "test.db"), "")
	if err != nil {
		t.Fatalf("buildEngine failed: %v", err)
	}
	defer engine.Close()

	rep, err := engine.Analyze(ctx)
	if err != nil {
		t.Fatalf("Analyze on fresh db: %v", err)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, rep, "json"); err != nil {
		t.Fatal(err)
	}
	var decoded report.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.ID != rep.ID {
		t.Errorf("decoded id = %q, want %q", decoded.ID, rep.ID)
	}

	buf.Reset()
	if err := writeReport(&buf, rep, "text"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Report ") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestBuildEngineBadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(cfg, []byte("topics: {count: 0}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := buildEngine(context.Background(), filepath.Join(tmpDir, "test.db"), cfg); err == nil {
		t.Error("buildEngine should fail with invalid config")
	}
	if _, err := buildEngine(context.Background(), filepath.Join(tmpDir, "test.db"), filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("buildEngine should fail with missing config")
	}
}
