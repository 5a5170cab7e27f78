package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveData is the persisted progress between runs
type SaveData struct {
	HighScore int `toml:"high_score"`
}

// LoadSave reads the save file; a missing file is an empty save
func LoadSave(path string) (SaveData, error) {
	var data SaveData
	if _, err := toml.DecodeFile(path, &data); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SaveData{}, nil
		}
		return SaveData{}, fmt.Errorf("read save %s: %w", path, err)
	}
	if data.HighScore < 0 {
		data.HighScore = 0
	}
	return data, nil
}

// WriteSave replaces the save file through a temp file and rename
func WriteSave(path string, data SaveData) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".save-*.toml")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("encode save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace save %s: %w", path, err)
	}
	return nil
}
