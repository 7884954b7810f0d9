package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Deck is a named collection of cards stored as one YAML file.
type Deck struct {
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/deck/mock_repository.go -package=mock_deck Repository

// Repository loads and stores decks.
type Repository interface {
	ListDecks() ([]string, error)
	FindDeck(name string) (*Deck, error)
	SaveDeck(d *Deck) error
}

// YamlRepository stores each deck as <name>.yml under a directory.
type YamlRepository struct {
	directory string
}

func NewYamlRepository(directory string) (*YamlRepository, error) {
	info, err := os.Stat(directory)
	if err != nil {
		return nil, fmt.Errorf("os.Stat(%s) > %w", directory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", directory)
	}
	return &YamlRepository{directory: directory}, nil
}

func (r *YamlRepository) ListDecks() ([]string, error) {
	decks, err := loadYamlFilesAsMap[Deck](r.directory, func(path string) bool {
		return filepath.Ext(path) == ".yml"
	})
	if err != nil {
		return nil, fmt.Errorf("loadYamlFilesAsMap(%s) > %w", r.directory, err)
	}

	names := make([]string, 0, len(decks))
	for path := range decks {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".yml"))
	}
	sort.Strings(names)
	return names, nil
}

func (r *YamlRepository) FindDeck(name string) (*Deck, error) {
	path := filepath.Join(r.directory, name+".yml")
	d, err := ReadYamlFile[Deck](path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("deck %q not found in %s", name, r.directory)
		}
		return nil, fmt.Errorf("ReadYamlFile(%s) > %w", path, err)
	}
	if d.Name == "" {
		d.Name = name
	}
	return &d, nil
}

func (r *YamlRepository) SaveDeck(d *Deck) error {
	path := filepath.Join(r.directory, d.Name+".yml")
	if err := WriteYamlFile(path, d); err != nil {
		return fmt.Errorf("WriteYamlFile(%s) > %w", path, err)
	}
	return nil
}
