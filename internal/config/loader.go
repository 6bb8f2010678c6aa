package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetrisFile = "tetris.yaml"

// SourceEmbedded names the built-in defaults when no file was used.
const SourceEmbedded = "embedded"

// LoadTetris resolves the game config. See LoadTetrisSource.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, _, err := LoadTetrisSource(customPath)
	return cfg, err
}

// LoadTetrisSource resolves the game config and names the file it came from.
//
// A non-empty customPath is the only candidate and any problem with it is an
// error. Otherwise ~/.arcade/configs/tetris.yaml, then ./configs/tetris.yaml
// are tried, skipping files that are missing or broken, before falling back
// to the embedded defaults. Sections a file leaves out keep default values.
func LoadTetrisSource(customPath string) (TetrisConfig, string, error) {
	if customPath != "" {
		cfg, err := readTetris(customPath)
		if err != nil {
			return DefaultTetrisConfig(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := readTetris(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := decodeTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", tetrisFile))
	}
	return append(paths, filepath.Join("configs", tetrisFile))
}

func readTetris(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := decodeTetris(data)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeTetris overlays YAML onto the defaults and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func decodeTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	return cfg, cfg.Validate()
}

// ApplyTetrisPreset sets the difficulty fields for preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
