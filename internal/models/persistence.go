package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadGames reads the games stored in a YAML or JSON input file. The format
// is chosen by extension; anything other than .json is treated as YAML.
func LoadGames(path string) ([]Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file GameFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	}

	for i := range file.Games {
		if file.Games[i].Name == "" {
			file.Games[i].Name = fmt.Sprintf("%s#%d", filepath.Base(path), i+1)
		}
	}
	return file.Games, nil
}

// LoadAll reads every file in order and concatenates their games.
func LoadAll(paths []string) ([]Game, error) {
	var games []Game
	for _, p := range paths {
		g, err := LoadGames(p)
		if err != nil {
			return nil, err
		}
		games = append(games, g...)
	}
	return games, nil
}

// ListInputs returns the .yaml, .yml and .json files directly inside dir.
func ListInputs(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}
	return inputs, nil
}

// ResolveInputs expands directories in paths to the input files they
// contain. Plain files are kept as given.
func ResolveInputs(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		inputs, err := ListInputs(p)
		if err != nil {
			return nil, err
		}
		out = append(out, inputs...)
	}
	return out, nil
}
