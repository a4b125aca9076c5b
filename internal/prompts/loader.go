// Package prompts embeds the oracle prompt templates so the engine ships as a
// single binary with no runtime prompt files to locate.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// All embedded files are parsed once into a single key-to-template table.
var (
	loadOnce sync.Once
	table    map[string]string
	loadErr  error
)

// Get returns the prompt template stored under key.
func Get(key string) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}

	prompt, exists := table[key]
	if !exists {
		return "", fmt.Errorf("prompt %q not found", key)
	}
	return prompt, nil
}

// MustGet returns the prompt template stored under key, panicking when it is
// absent. Use for prompts the engine cannot run without.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces placeholders in the form {{.Key}} with values from data.
// This is a deliberately simple substitution; prompt templates carry no logic.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func load() {
	table = make(map[string]string)

	files, err := promptFiles.ReadDir(".")
	if err != nil {
		loadErr = fmt.Errorf("failed to list prompt files: %w", err)
		return
	}

	for _, file := range files {
		data, err := promptFiles.ReadFile(file.Name())
		if err != nil {
			loadErr = fmt.Errorf("failed to read prompt file %s: %w", file.Name(), err)
			return
		}

		var entries map[string]string
		if err := json.Unmarshal(data, &entries); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt file %s: %w", file.Name(), err)
			return
		}

		for key, prompt := range entries {
			if _, exists := table[key]; exists {
				loadErr = fmt.Errorf("prompt %q defined in more than one file", key)
				return
			}
			table[key] = prompt
		}
	}
}
