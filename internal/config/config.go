package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"vr-overlay/internal/mathutil"
	"vr-overlay/internal/overlay"
)

// Config holds the overlay application settings.
type Config struct {
	// Overlay identity
	AppName       string `json:"app_name"`
	AppKey        string `json:"app_key"`
	TextureFormat string `json:"texture_format"` // "opengl" or "directx"
	Texture       string `json:"texture"`

	// Pose
	Position *[3]float64 `json:"position"`
	Rotation [3]float64  `json:"rotation"` // degrees
	Scale    *[3]float64 `json:"scale"`
	MirrorX  bool        `json:"mirror_x"`
	MirrorY  bool        `json:"mirror_y"`
	Tracking string      `json:"tracking"` // hmd, left, right, device:N, standing, seated, none

	// Surface
	Width float32  `json:"width"`
	Alpha *float32 `json:"alpha"`

	// Loop
	FrameRate      int    `json:"frame_rate"`
	DebugEvents    bool   `json:"debug_events"`
	WaitForRuntime bool   `json:"wait_for_runtime"`
	ProbeInterval  string `json:"probe_interval"`

	// Headless runtime
	PreviewDir string `json:"preview_dir"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// envVars are the environment overrides. Unset variables leave the config alone.
type envVars struct {
	LogLevel   string `env:"VROVERLAY_LOG_LEVEL"`
	LogFormat  string `env:"VROVERLAY_LOG_FORMAT"`
	Texture    string `env:"VROVERLAY_TEXTURE"`
	PreviewDir string `env:"VROVERLAY_PREVIEW_DIR"`
}

// ApplyEnv loads an optional .env file, then copies any VROVERLAY_*
// variables that are set over the config.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var ev envVars
	if err := env.Load(&ev, nil); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}

	if ev.LogLevel != "" {
		c.LogLevel = ev.LogLevel
	}
	if ev.LogFormat != "" {
		c.LogFormat = ev.LogFormat
	}
	if ev.Texture != "" {
		c.Texture = ev.Texture
	}
	if ev.PreviewDir != "" {
		c.PreviewDir = ev.PreviewDir
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Texture     string
	PreviewDir  string
	Tracking    string
	LogLevel    string
	DebugEvents bool
	Wait        bool
}

// Resolve applies CLI flags, then fills any empty fields with defaults.
// The defaults reproduce the sample overlay: 0.48 m in front of the HMD,
// 0.30 m wide, fully opaque.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.PreviewDir != "" {
		c.PreviewDir = flags.PreviewDir
	}
	if flags.Tracking != "" {
		c.Tracking = flags.Tracking
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.DebugEvents {
		c.DebugEvents = true
	}
	if flags.Wait {
		c.WaitForRuntime = true
	}

	if c.AppName == "" {
		c.AppName = "HelloOverlay"
	}
	if c.AppKey == "" {
		c.AppKey = c.AppName
	}
	if c.TextureFormat == "" {
		c.TextureFormat = "opengl"
	}
	if c.Position == nil {
		c.Position = &[3]float64{0, 0, 0.48}
	}
	if c.Scale == nil {
		c.Scale = &[3]float64{1, 1, 1}
	}
	if c.Tracking == "" {
		c.Tracking = "hmd"
	}
	if c.Width <= 0 {
		c.Width = 0.30
	}
	if c.Alpha == nil {
		alpha := float32(1.0)
		c.Alpha = &alpha
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 90
	}
	if c.ProbeInterval == "" {
		c.ProbeInterval = "2s"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Format parses TextureFormat.
func (c *Config) Format() (overlay.TextureFormat, error) {
	return ParseFormat(c.TextureFormat)
}

// PositionVec returns the resolved position.
func (c *Config) PositionVec() mathutil.Vec3 {
	if c.Position == nil {
		return overlay.DefaultPose().Position
	}
	return mathutil.Vec3(*c.Position)
}

// ScaleVec returns the resolved scale.
func (c *Config) ScaleVec() mathutil.Vec3 {
	if c.Scale == nil {
		return overlay.DefaultPose().Scale
	}
	return mathutil.Vec3(*c.Scale)
}

// FrameInterval is the time between ProcessEvent calls.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 90
	}
	return time.Second / time.Duration(c.FrameRate)
}

// ProbeEvery parses ProbeInterval.
func (c *Config) ProbeEvery() (time.Duration, error) {
	d, err := time.ParseDuration(c.ProbeInterval)
	if err != nil {
		return 0, fmt.Errorf("config: probe_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: probe_interval must be positive, got %s", d)
	}
	return d, nil
}

// ParseFormat accepts "opengl" or "directx" in any case.
func ParseFormat(s string) (overlay.TextureFormat, error) {
	switch strings.ToLower(s) {
	case "opengl", "gl":
		return overlay.OpenGL, nil
	case "directx", "dx":
		return overlay.DirectX, nil
	}
	return 0, fmt.Errorf("config: unknown texture format %q", s)
}

// ParseTracking accepts hmd, left, right, device:N (N in 1..8), standing,
// seated and none.
func ParseTracking(s string) (overlay.Tracking, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "hmd":
		return overlay.DeviceRelative(overlay.HMD), nil
	case "left":
		return overlay.DeviceRelative(overlay.LeftController), nil
	case "right":
		return overlay.DeviceRelative(overlay.RightController), nil
	case "standing":
		return overlay.AbsoluteStanding, nil
	case "seated":
		return overlay.AbsoluteSeated, nil
	case "none":
		return overlay.NoTracking, nil
	}

	if n, ok := strings.CutPrefix(s, "device:"); ok {
		idx, err := strconv.Atoi(n)
		if err != nil {
			return overlay.Tracking{}, fmt.Errorf("config: tracking %q: %w", s, err)
		}
		d, err := overlay.ExplicitDevice(idx)
		if err != nil {
			return overlay.Tracking{}, fmt.Errorf("config: tracking %q: %w", s, err)
		}
		return overlay.DeviceRelative(d), nil
	}
	return overlay.Tracking{}, fmt.Errorf("config: unknown tracking %q", s)
}
