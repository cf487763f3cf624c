// Package synonyms provides the default synonym map and loads user-supplied maps from JSON or YAML.
package synonyms

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/parsing"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/schemas"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
	rootschemas "github.com/nishachandar-bit/jd-resume-matcher/schemas"
)

// Format is a synonym file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var defaultMap = map[string][]string{
	"ci/cd":                        {"ci/cd", "ci cd", "continuous integration", "continuous delivery", "jenkins", "pipeline", "devops"},
	"tosca":                        {"tosca", "tricentis tosca", "tricentis"},
	"web application automation":   {"web application", "web app", "ui automation", "selenium", "frontend", "web testing", "browser testing"},
	"mainframe automation testing": {"mainframe", "3270", "green screen", "mainframe testing", "jcl", "cobol"},
}

// Default returns a fresh copy of the built-in synonym map with normalized keys.
func Default() types.SynonymSet {
	set := make(types.SynonymSet, len(defaultMap))
	for key, values := range defaultMap {
		add(set, key, values)
	}
	return set
}

// NormalizeKey maps a skill label onto its synonym map key, so "CI/CD" and
// "ci cd" share an entry.
func NormalizeKey(label string) string {
	return strings.ToLower(parsing.NormalizeSkillLabel(label))
}

// add merges values into set under the normalized key, dropping blanks and
// case-insensitive duplicates.
func add(set types.SynonymSet, key string, values []string) {
	k := NormalizeKey(key)
	if k == "" {
		return
	}
	existing := set[k]
	seen := make(map[string]bool, len(existing)+len(values))
	for _, v := range existing {
		seen[strings.ToLower(v)] = true
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		existing = append(existing, v)
	}
	if existing == nil {
		existing = []string{}
	}
	set[k] = existing
}

// Merge returns base with every entry of override added to it.
func Merge(base, override types.SynonymSet) types.SynonymSet {
	out := make(types.SynonymSet, len(base)+len(override))
	for k, v := range base {
		add(out, k, v)
	}
	for k, v := range override {
		add(out, k, v)
	}
	return out
}

// FormatFromPath picks the encoding from a file extension; anything but .yaml/.yml is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses a synonym file. See Parse for the error contract.
func Load(path string) (types.SynonymSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SynonymSet{}, fmt.Errorf("failed to read synonym file %s: %w", path, err)
	}
	return Parse(data, FormatFromPath(path))
}

var entrySchema = schemas.NewLazy(rootschemas.SynonymsFile, rootschemas.Synonyms)

// Parse decodes a synonym map of skill label to list of strings.
//
// A document that cannot be decoded, or whose root is not a mapping, yields an
// empty set and a *MalformedError. Entries that fail the schema are dropped; the
// remaining set is returned together with an *InvalidEntriesError. Both errors
// are meant as warnings: the returned set is always usable.
func Parse(data []byte, format Format) (types.SynonymSet, error) {
	var doc any
	var err error
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return types.SynonymSet{}, &MalformedError{Message: fmt.Sprintf("invalid %s", format), Cause: err}
	}

	entries, ok := asStringMap(doc)
	if !ok {
		return types.SynonymSet{}, &MalformedError{Message: "root must be a mapping of skill to synonym list"}
	}

	v, err := entrySchema.Validator()
	if err != nil {
		return types.SynonymSet{}, err
	}

	set := make(types.SynonymSet, len(entries))
	var invalid []string
	var causes []error
	for key, raw := range entries {
		if err := v.ValidateValue(map[string]any{key: raw}); err != nil {
			invalid = append(invalid, key)
			causes = append(causes, err)
			continue
		}
		values := toStrings(raw)
		if NormalizeKey(key) == "" {
			invalid = append(invalid, key)
			continue
		}
		add(set, key, values)
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return set, &InvalidEntriesError{Keys: invalid, Cause: errors.Join(causes...)}
	}
	return set, nil
}

// asStringMap accepts the mapping shapes produced by encoding/json and yaml.v3.
func asStringMap(doc any) (map[string]any, bool) {
	switch m := doc.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func toStrings(raw any) []string {
	list, _ := raw.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Marshal encodes a synonym set with sorted keys.
func Marshal(set types.SynonymSet, format Format) ([]byte, error) {
	plain := make(map[string][]string, len(set))
	for k, v := range set {
		plain[k] = v
	}
	if format == FormatYAML {
		return yaml.Marshal(plain)
	}
	return json.MarshalIndent(plain, "", "  ")
}
