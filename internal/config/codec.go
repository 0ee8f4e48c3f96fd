package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lc/hudconf/internal/record"
)

// ErrUnknownFileType is returned for an unsupported format name.
var ErrUnknownFileType = errors.New("unknown file type")

// FileType selects the on-disk format.
type FileType int

const (
	// TOML is the format used before any load selected one.
	TOML FileType = iota
	JSON
	YAML
)

// ParseFileType maps a format name or extension to a FileType.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFileType, s)
	}
}

// Ext returns the file extension, without the dot.
func (t FileType) Ext() string {
	switch t {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "toml"
	}
}

func (t FileType) String() string { return t.Ext() }

func (t FileType) decode(data []byte) (record.Record, error) {
	doc := record.New()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	var err error
	switch t {
	case JSON:
		err = json.Unmarshal(data, &doc)
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = record.New()
	}
	return doc, nil
}

func (t FileType) encode(doc record.Record) ([]byte, error) {
	switch t {
	case JSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return toml.Marshal(doc)
	}
}
