package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsMatchContainerLayout(t *testing.T) {
	t.Setenv("CONVERTER_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg := Load()
	if cfg.InputDir != "/input" || cfg.OutputDir != "/output" || cfg.TempDir != "/temp" {
		t.Fatalf("directory defaults wrong: %+v", cfg)
	}
	if cfg.ConverterLog != "/logs/converter.log" || cfg.LogDir != "/logs" {
		t.Fatalf("log defaults wrong: %+v", cfg)
	}
	if cfg.FFmpegVersion != "7.1.2" || cfg.Encoder != "libfdk_aac" {
		t.Fatalf("ffmpeg defaults wrong: %+v", cfg)
	}
	if len(cfg.Packages) != 5 {
		t.Fatalf("want 5 required packages, got %v", cfg.Packages)
	}
	if cfg.CmdTimeout != 10*time.Second || cfg.MaxLogAge != 300*time.Second {
		t.Fatalf("timing defaults wrong: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level default wrong: %q", cfg.LogLevel)
	}
}

func TestLoad_ReadsConverterYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "converter.yaml")
	yaml := `directories:
  input: /media/in
  output: /media/out
conversion:
  audio_codec: aac
logging:
  level: DEBUG
  file: /var/log/conv.log
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("CONVERTER_CONFIG", path)

	cfg := Load()
	if cfg.InputDir != "/media/in" || cfg.OutputDir != "/media/out" {
		t.Fatalf("yaml directories not applied: %+v", cfg)
	}
	if cfg.TempDir != "/temp" {
		t.Fatalf("unset yaml keys must keep defaults, got %q", cfg.TempDir)
	}
	if cfg.Encoder != "aac" {
		t.Fatalf("audio_codec not applied, got %q", cfg.Encoder)
	}
	if cfg.ConverterLog != "/var/log/conv.log" || cfg.LogDir != "/var/log" {
		t.Fatalf("logging file not applied: %+v", cfg)
	}
	if cfg.ConfigDir != dir {
		t.Fatalf("config dir should follow the config path, got %q", cfg.ConfigDir)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Fatalf("logging level not applied, got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONVERTER_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("FFMPEG_BIN", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("FFMPEG_VERSION", "7.2.0")
	t.Setenv("PYTHON_BIN", "/usr/bin/python3.12")
	t.Setenv("HEALTHCHECK_TIMEOUT_MS", "2500")
	t.Setenv("HEALTHCHECK_MAX_LOG_AGE_MS", "600000")
	t.Setenv("HEALTHCHECK_LOG_DIR", "/tmp/hc")
	t.Setenv("HEALTHCHECK_LOG_LEVEL", "warn")

	cfg := Load()
	if cfg.FFmpegBin != "/opt/ffmpeg/bin/ffmpeg" || cfg.FFmpegVersion != "7.2.0" {
		t.Fatalf("ffmpeg overrides not applied: %+v", cfg)
	}
	if cfg.PythonBin != "/usr/bin/python3.12" {
		t.Fatalf("python override not applied: %+v", cfg)
	}
	if cfg.CmdTimeout != 2500*time.Millisecond {
		t.Fatalf("timeout override not applied: %v", cfg.CmdTimeout)
	}
	if cfg.MaxLogAge != 10*time.Minute {
		t.Fatalf("max log age override not applied: %v", cfg.MaxLogAge)
	}
	if cfg.LogDir != "/tmp/hc" {
		t.Fatalf("log dir override not applied: %q", cfg.LogDir)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level override not applied: %q", cfg.LogLevel)
	}
}

func TestLoad_MalformedYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converter.yaml")
	if err := os.WriteFile(path, []byte(":\t[broken"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("CONVERTER_CONFIG", path)

	cfg := Load()
	if cfg.InputDir != "/input" {
		t.Fatalf("broken yaml must keep defaults, got %+v", cfg)
	}
}
