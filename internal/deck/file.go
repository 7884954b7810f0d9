package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReadYamlFile decodes the YAML file at path into a value of type T.
func ReadYamlFile[T any](path string) (T, error) {
	var result T
	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.Decoder.Decode() > %w", err)
	}
	return result, nil
}

// WriteYamlFile writes value to path as YAML, creating parent directories
// when they do not exist.
func WriteYamlFile[T any](path string, value T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("yaml.Encoder.Encode() > %w", err)
	}
	return nil
}

func loadYamlFilesAsMap[T any](directory string, filter func(path string) bool) (map[string]T, error) {
	results := map[string]T{}
	err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("filepath.Walk(%s) > %w", directory, err)
		}
		if info.IsDir() || !filter(path) {
			return nil
		}

		value, err := ReadYamlFile[T](path)
		if err != nil {
			return fmt.Errorf("ReadYamlFile(%s) > %w", path, err)
		}
		results[path] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
