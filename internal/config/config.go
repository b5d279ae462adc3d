// Package config loads the wakuchin run configuration document (spec.md
// §6) using spf13/viper, matching the teacher's internal/cmd use of
// Viper for flag/file/env layering, and following
// original_source/cli/src/config.rs's per-extension format dispatch.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Document is the schema spec.md §6 names: tries, times, regex, output,
// interval, workers, handler, no_progress. Zero values mean "unset",
// letting CLI flags layer over a config file's values.
type Document struct {
	Tries      uint64
	Times      uint64
	Regex      string
	Output     string
	Interval   time.Duration
	Workers    uint
	Handler    string
	NoProgress bool
}

// ErrUnknownConfigFormat is returned when a config file's extension is
// not one of .json, .yaml, .yml or .toml (spec.md §6 names json/yaml/toml).
var ErrUnknownConfigFormat = fmt.Errorf("unknown config file format")

// Load reads and parses the config document at path, inferring its
// format from the file extension per spec.md §6.
func Load(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var format string
	switch ext {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(format)

	if err := v.ReadInConfig(); err != nil {
		return Document{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	doc := Document{
		Tries:      v.GetUint64("tries"),
		Times:      v.GetUint64("times"),
		Regex:      v.GetString("regex"),
		Output:     v.GetString("output"),
		Workers:    uint(v.GetUint("workers")),
		Handler:    v.GetString("handler"),
		NoProgress: v.GetBool("no_progress"),
	}

	if s := v.GetString("interval"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Document{}, fmt.Errorf("parsing interval %q: %w", s, err)
		}

		doc.Interval = d
	}

	return doc, nil
}
