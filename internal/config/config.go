package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is everything the standard probe set needs to run.
type Config struct {
	FFmpegBin     string        // media binary, e.g. "ffmpeg"
	FFmpegVersion string        // expected version marker in the banner
	Encoder       string        // required encoder, from the converter's audio_codec
	BeetBin       string        // tagging tool binary
	PythonBin     string        // interpreter the converter runs under
	Packages      []string      // Python packages the converter imports
	InputDir      string        // mounted directories, all must be read+write
	OutputDir     string
	TempDir       string
	ConfigDir     string
	ConverterLog  string        // liveness artifact
	LogDir        string        // where the health check writes its own log
	LogLevel      string        // health check log verbosity
	CmdTimeout    time.Duration // per external command
	MaxLogAge     time.Duration // liveness freshness threshold
}

// converterFile mirrors the converter's /config/converter.yaml layout. Only
// the sections the health check reads are declared.
type converterFile struct {
	Directories struct {
		Input  string `yaml:"input"`
		Output string `yaml:"output"`
		Temp   string `yaml:"temp"`
	} `yaml:"directories"`
	Conversion struct {
		AudioCodec string `yaml:"audio_codec"`
	} `yaml:"conversion"`
	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// Load builds the config from defaults, the converter's own YAML config, and
// env overrides, in that order. A missing or unreadable converter.yaml keeps
// the defaults: the paths probe is what reports a broken /config mount.
func Load() Config {
	cfg := Config{
		FFmpegBin:     "ffmpeg",
		FFmpegVersion: "7.1.2",
		Encoder:       "libfdk_aac",
		BeetBin:       "beet",
		PythonBin:     "python3",
		Packages:      []string{"watchdog", "yaml", "mutagen", "beets", "audible"},
		InputDir:      "/input",
		OutputDir:     "/output",
		TempDir:       "/temp",
		ConverterLog:  "/logs/converter.log",
		LogLevel:      "info",
		CmdTimeout:    10 * time.Second,
		MaxLogAge:     300 * time.Second,
	}

	path := envOr("CONVERTER_CONFIG", "/config/converter.yaml")
	cfg.ConfigDir = filepath.Dir(path)
	cfg.applyFile(path)
	cfg.applyEnv()
	cfg.LogDir = envOr("HEALTHCHECK_LOG_DIR", filepath.Dir(cfg.ConverterLog))
	return cfg
}

func (c *Config) applyFile(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var f converterFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return
	}
	if f.Directories.Input != "" {
		c.InputDir = f.Directories.Input
	}
	if f.Directories.Output != "" {
		c.OutputDir = f.Directories.Output
	}
	if f.Directories.Temp != "" {
		c.TempDir = f.Directories.Temp
	}
	if f.Conversion.AudioCodec != "" {
		c.Encoder = f.Conversion.AudioCodec
	}
	if f.Logging.Level != "" {
		c.LogLevel = f.Logging.Level
	}
	if f.Logging.File != "" {
		c.ConverterLog = f.Logging.File
	}
}

func (c *Config) applyEnv() {
	c.FFmpegBin = envOr("FFMPEG_BIN", c.FFmpegBin)
	c.FFmpegVersion = envOr("FFMPEG_VERSION", c.FFmpegVersion)
	c.BeetBin = envOr("BEET_BIN", c.BeetBin)
	c.PythonBin = envOr("PYTHON_BIN", c.PythonBin)
	c.LogLevel = envOr("HEALTHCHECK_LOG_LEVEL", c.LogLevel)

	if v := os.Getenv("HEALTHCHECK_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.CmdTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("HEALTHCHECK_MAX_LOG_AGE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.MaxLogAge = time.Duration(ms) * time.Millisecond
		}
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
