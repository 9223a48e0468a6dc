// Package tokens читает файлы токенов таблицы стилей (YAML, TOML, JSON).
package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"phiCalc/internal/domain"
)

// ErrUnsupportedFormat возвращается для неизвестного расширения файла.
var ErrUnsupportedFormat = errors.New("unsupported token file format")

// Форматы файлов токенов.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatFromPath определяет формат по расширению: .yaml/.yml, .toml, .json.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load читает файл токенов, формат — по расширению.
func Load(path string) (domain.Tokens, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return domain.Tokens{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("open tokens: %w", err)
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode разбирает токены из r. Неизвестные ключи — ошибка.
func Decode(r io.Reader, format string) (domain.Tokens, error) {
	var t domain.Tokens
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
			return domain.Tokens{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&t)
		if err != nil {
			return domain.Tokens{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return domain.Tokens{}, fmt.Errorf("decode toml: unknown keys %v", undecoded)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
			return domain.Tokens{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return domain.Tokens{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return t, nil
}
