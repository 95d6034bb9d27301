package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/team-editor/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected app env: %s", cfg.AppEnv)
	}
	if cfg.LogoSize != 128 {
		t.Fatalf("unexpected logo size: %d", cfg.LogoSize)
	}
	if !cfg.ConfirmSaves {
		t.Fatalf("expected saves to require confirmation by default")
	}
	if cfg.LogFormat != logging.FormatConsole || cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected logging config: %+v", cfg)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("TEAM_EDITOR_APP_ENV", "invalid")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for invalid TEAM_EDITOR_APP_ENV")
	}
}

func TestLoad_LogoSizeMustBePositive(t *testing.T) {
	t.Setenv("TEAM_EDITOR_LOGO_SIZE", "0")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for zero logo size")
	}

	t.Setenv("TEAM_EDITOR_LOGO_SIZE", "big")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric logo size")
	}
}

func TestLoad_ConfirmSavesParsing(t *testing.T) {
	t.Setenv("TEAM_EDITOR_CONFIRM_SAVES", "off")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ConfirmSaves {
		t.Fatalf("expected confirm saves disabled")
	}

	t.Setenv("TEAM_EDITOR_CONFIRM_SAVES", "maybe")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "db_path: /data/game.db\nlog_level: debug\nlogo_size: 64\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TEAM_EDITOR_LOGO_SIZE", "256")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/data/game.db" {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if cfg.LogoSize != 256 {
		t.Fatalf("env must override file, got logo size %d", cfg.LogoSize)
	}
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for explicit missing config file")
	}
}

func TestLoadEnvFiles_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TEAM_EDITOR_LOG_FILE=from-dotenv.log\nTEAM_EDITOR_ASSET_DIR=/from/dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("TEAM_EDITOR_ASSET_DIR", "/from/env")
	t.Setenv("TEAM_EDITOR_LOG_FILE", "")
	os.Unsetenv("TEAM_EDITOR_LOG_FILE")

	LoadEnvFiles()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogFile != "from-dotenv.log" {
		t.Fatalf("expected log file from .env, got %q", cfg.LogFile)
	}
	if cfg.AssetDir != "/from/env" {
		t.Fatalf("process env must win over .env, got %q", cfg.AssetDir)
	}
}
