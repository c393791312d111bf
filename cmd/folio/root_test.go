package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	yaml := `title: My Blog
url: https://blog.example.com
author: Sean Davis
contentDir: posts
cacheTTL: 30s
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &cli{cfgFile: path}
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if c.config.Title != "My Blog" {
		t.Errorf("expected title My Blog, got %q", c.config.Title)
	}
	if c.config.ContentDir != "posts" {
		t.Errorf("expected contentDir posts, got %q", c.config.ContentDir)
	}
	if c.config.CacheTTL != 30*time.Second {
		t.Errorf("expected cacheTTL 30s, got %s", c.config.CacheTTL)
	}
	if c.config.Addr != ":3000" {
		t.Errorf("expected default addr, got %q", c.config.Addr)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("title: From File\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_TITLE", "From Env")
	t.Setenv("FOLIO_ADDR", ":8080")

	c := &cli{cfgFile: path}
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if c.config.Title != "From Env" {
		t.Errorf("expected env to override title, got %q", c.config.Title)
	}
	if c.config.Addr != ":8080" {
		t.Errorf("expected env addr, got %q", c.config.Addr)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	c := &cli{cfgFile: filepath.Join(t.TempDir(), "nope.yaml")}
	if err := c.loadConfig(); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestVersionCmd(t *testing.T) {
	t.Chdir(t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "folio ") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestIndexRequiresDatabase(t *testing.T) {
	t.Chdir(t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{"index"})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "databasePath") {
		t.Fatalf("expected databasePath error, got %v", err)
	}
}
