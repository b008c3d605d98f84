package loaders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileLoader reads configuration files keyed by the same names as the
// environment. Files that do not exist are skipped.
type FileLoader struct {
	fileNames []string
}

func NewFileLoader(fileNames ...string) *FileLoader {
	return &FileLoader{
		fileNames: fileNames,
	}
}

func (f *FileLoader) Load(dest any) error {
	for _, file := range f.fileNames {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		var (
			values map[string]string
			err    error
		)
		switch {
		case strings.HasSuffix(file, ".json"):
			values, err = readJSON(file)
		case strings.HasSuffix(file, ".yaml"), strings.HasSuffix(file, ".yml"):
			values, err = readYAML(file)
		default:
			values, err = godotenv.Read(file)
		}
		if err != nil {
			return fmt.Errorf("could not load file: %s: %w", file, err)
		}

		err = applyTagged(dest, "env", func(tag string) (string, bool) {
			v, ok := values[tag]
			return v, ok
		})
		if err != nil {
			return fmt.Errorf("could not load file: %s: %w", file, err)
		}
	}
	return nil
}

func readJSON(file string) (map[string]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return stringify(raw), nil
}

func readYAML(file string) (map[string]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return stringify(raw), nil
}

// list values are joined with "," to match the env representation
func stringify(raw map[string]any) map[string]string {
	values := make(map[string]string, len(raw))
	for key, val := range raw {
		switch v := val.(type) {
		case []any:
			parts := make([]string, 0, len(v))
			for _, p := range v {
				parts = append(parts, fmt.Sprint(p))
			}
			values[key] = strings.Join(parts, ",")
		case nil:
		default:
			values[key] = fmt.Sprint(v)
		}
	}
	return values
}
