package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for values the renderer cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Movement MovementConfig `yaml:"movement"`
	Camera   CameraConfig   `yaml:"camera"`
	Render   RenderConfig   `yaml:"render"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DisplayConfig sizes the frame buffer in glyph cells. The window presenter
// multiplies by the cell size to get pixels; the terminal presenter clips.
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	CellWidth    int    `yaml:"cell_width"`
	CellHeight   int    `yaml:"cell_height"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	MapFile    string  `yaml:"map_file"` // Empty means the built-in level
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	StartAngle float64 `yaml:"start_angle"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	RotationRatio float64 `yaml:"rotation_ratio"` // Angular speed as a fraction of MoveSpeed
}

type CameraConfig struct {
	FieldOfView       float64 `yaml:"field_of_view"`
	ViewDistance      float64 `yaml:"view_distance"`
	StepSize          float64 `yaml:"step_size"`
	BoundaryThreshold float64 `yaml:"boundary_threshold"`
}

type RenderConfig struct {
	ParallelColumns bool `yaml:"parallel_columns"`
	ShowMap         bool `yaml:"show_map"`
	ShowStats       bool `yaml:"show_stats"`
}

type TerminalConfig struct {
	TickMs int `yaml:"tick_ms"`
	HoldMs int `yaml:"hold_ms"` // How long a key counts as held after its last press/repeat event
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// DefaultConfig returns the values of the classic console renderer
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  120,
			ScreenHeight: 40,
			WindowTitle:  "consolefps",
			CellWidth:    8,
			CellHeight:   16,
			Resizable:    true,
		},
		World: WorldConfig{
			StartX:     14.7,
			StartY:     5.09,
			StartAngle: 0,
		},
		Movement: MovementConfig{
			MoveSpeed:     3.0,
			RotationRatio: 0.75,
		},
		Camera: CameraConfig{
			FieldOfView:       math.Pi / 4,
			ViewDistance:      16.0,
			StepSize:          0.01,
			BoundaryThreshold: 0.01,
		},
		Render: RenderConfig{
			ShowMap:   true,
			ShowStats: true,
		},
		Terminal: TerminalConfig{
			TickMs: 15,
			HoldMs: 150,
		},
		Audio: AudioConfig{
			Volume: 0.3,
		},
		Logging: LoggingConfig{
			Dir: "logs",
		},
	}
}

// LoadConfig loads the configuration from a yaml file on top of DefaultConfig
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values that would stall or break the render loop
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, c.Display.CellWidth, c.Display.CellHeight)
	case c.Camera.StepSize <= 0:
		return fmt.Errorf("%w: step_size must be > 0, got %v", ErrInvalidConfig, c.Camera.StepSize)
	case c.Camera.ViewDistance <= 0:
		return fmt.Errorf("%w: view_distance must be > 0, got %v", ErrInvalidConfig, c.Camera.ViewDistance)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 2*math.Pi:
		return fmt.Errorf("%w: field_of_view out of range: %v", ErrInvalidConfig, c.Camera.FieldOfView)
	case c.Movement.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed must be >= 0, got %v", ErrInvalidConfig, c.Movement.MoveSpeed)
	case c.Terminal.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms must be > 0, got %d", ErrInvalidConfig, c.Terminal.TickMs)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetWindowWidth returns the window width in pixels
func (c *Config) GetWindowWidth() int {
	return c.Display.ScreenWidth * c.Display.CellWidth
}

// GetWindowHeight returns the window height in pixels
func (c *Config) GetWindowHeight() int {
	return c.Display.ScreenHeight * c.Display.CellHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

// GetRotSpeed returns the angular speed in radians per second
func (c *Config) GetRotSpeed() float64 {
	return c.Movement.MoveSpeed * c.Movement.RotationRatio
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

func (c *Config) GetViewDistance() float64 {
	return c.Camera.ViewDistance
}
