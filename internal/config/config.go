package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for itinerary-rewind.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Fetch  FetchConfig  `toml:"fetch"`
	Server ServerConfig `toml:"server"`
	Map    MapConfig    `toml:"map"`
	Upload UploadConfig `toml:"upload"`
	Log    LogConfig    `toml:"log"`
}

// DataConfig locates the trip document. When BaseURL is set the candidates
// are fetched over HTTP relative to it, otherwise they are read from Dir.
type DataConfig struct {
	Dir        string   `toml:"dir"`
	BaseURL    string   `toml:"base_url"`
	Candidates []string `toml:"candidates"`
}

type FetchConfig struct {
	RateLimit float64 `toml:"rate_limit"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// MapConfig describes the slippy-map tile provider and initial view.
type MapConfig struct {
	TileURL     string `toml:"tile_url"`
	Attribution string `toml:"attribution"`
	MaxZoom     int    `toml:"max_zoom"`
	Zoom        int    `toml:"zoom"`
	Padding     int    `toml:"padding"`
}

type UploadConfig struct {
	MaxBytes int64 `toml:"max_bytes"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultCandidates is the trip document fallback chain in priority order.
var DefaultCandidates = []string{
	"trip_data_contextual.json",
	"trip_data_enhanced.json",
	"trip_data.json",
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data: DataConfig{
			Dir:        ".",
			Candidates: append([]string(nil), DefaultCandidates...),
		},
		Fetch:  FetchConfig{RateLimit: 4.0},
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Map: MapConfig{
			TileURL:     "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
			MaxZoom:     19,
			Zoom:        7,
			Padding:     50,
		},
		Upload: UploadConfig{MaxBytes: 64 << 20},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if len(cfg.Data.Candidates) == 0 {
		cfg.Data.Candidates = append([]string(nil), DefaultCandidates...)
	}

	return cfg, nil
}
