// Package vocabulary reads the seed vocabulary book.
package vocabulary

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return result, nil
}

// Load reads the words in path. An empty path or an empty file is an empty book.
// Words are validated like backend recommendations, and a word may appear only once.
func Load(path string) ([]inference.Word, error) {
	if path == "" {
		return nil, nil
	}

	words, err := readYamlFile[[]inference.Word](path)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	seen := make(map[string]struct{}, len(words))
	for i, word := range words {
		if err := validate.Struct(word); err != nil {
			return nil, fmt.Errorf("word[%d] %q: %w", i, word.Text, err)
		}
		if _, ok := seen[word.Text]; ok {
			return nil, fmt.Errorf("word[%d] %q appears more than once", i, word.Text)
		}
		seen[word.Text] = struct{}{}
	}
	return words, nil
}
