// Package manifest reads the Zsh plugin manifest.
//
// The manifest is a zimrc-style file: each `zmodule <url> [options]` line
// declares one module, and a module's position in the file is its load
// order. loadout only reads the manifest; the plugin manager owns it.
package manifest

import (
	"bufio"
	"io"
	"os"
	"path"
	"strings"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/google/shlex"
)

// Directive is the keyword that declares a module.
const Directive = "zmodule"

// Module is one zmodule declaration.
type Module struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
	// Options holds every argument after the URL, unparsed.
	Options  []string `yaml:"options,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty"`
	Line     int      `yaml:"line"`
}

// Line is a non-blank, non-comment line that is not a module declaration.
type Line struct {
	Number int    `yaml:"line"`
	Text   string `yaml:"text"`
}

// Manifest is the parsed plugin manifest.
type Manifest struct {
	Path    string   `yaml:"path,omitempty"`
	Modules []Module `yaml:"modules"`
	Unknown []Line   `yaml:"unknown,omitempty"`
}

// Duplicate is a module name declared more than once.
type Duplicate struct {
	Name  string
	Lines []int
}

// Load parses the manifest at path.
func Load(filePath string) (*Manifest, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrManifestNotFound, "plugin manifest not found: %s", filePath).
				WithDetail("path", filePath)
		}
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to open %s", filePath)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, err
	}
	m.Path = filePath
	return m, nil
}

// Parse reads a manifest from r.
func Parse(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	scanner := bufio.NewScanner(r)
	number := 0

	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		words, err := shlex.Split(text)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "line %d: %s", number, text).
				WithDetail("line", number)
		}
		if len(words) == 0 || words[0] != Directive {
			m.Unknown = append(m.Unknown, Line{Number: number, Text: text})
			continue
		}
		if len(words) < 2 {
			return nil, errors.Newf(errors.ErrManifestParse, "line %d: %s needs a module url", number, Directive).
				WithDetail("line", number)
		}

		module, err := parseModule(words[1], words[2:])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "line %d", number).
				WithDetail("line", number)
		}
		module.Line = number
		m.Modules = append(m.Modules, module)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to read plugin manifest")
	}

	return m, nil
}

func parseModule(url string, options []string) (Module, error) {
	module := Module{URL: url, Options: options}

	var name, root string
	for i := 0; i < len(options); i++ {
		switch options[i] {
		case "-n", "--name", "-r", "--root":
			if i+1 >= len(options) {
				return Module{}, errors.Newf(errors.ErrManifestParse, "%s needs a value", options[i])
			}
			if options[i] == "-n" || options[i] == "--name" {
				name = options[i+1]
			} else {
				root = options[i+1]
			}
			i++
		case "-d", "--disabled":
			module.Disabled = true
		}
	}

	if name == "" {
		name = DefaultName(url)
		if root != "" {
			name = name + "/" + strings.Trim(root, "/")
		}
	}
	module.Name = name
	return module, nil
}

// DefaultName derives a module name from its url: the last path element
// without a trailing ".git".
func DefaultName(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if i := strings.LastIndex(trimmed, ":"); i >= 0 && !strings.Contains(trimmed[i:], "/") {
		trimmed = trimmed[i+1:]
	}
	return path.Base(trimmed)
}

// Order returns the load position of the first module called name, or -1.
func (m *Manifest) Order(name string) int {
	for i, module := range m.Modules {
		if module.Name == name {
			return i
		}
	}
	return -1
}

// Names returns module names in load order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Modules))
	for _, module := range m.Modules {
		names = append(names, module.Name)
	}
	return names
}

// Duplicates reports module names declared more than once, in order of
// first appearance.
func (m *Manifest) Duplicates() []Duplicate {
	lines := make(map[string][]int)
	var order []string
	for _, module := range m.Modules {
		if _, seen := lines[module.Name]; !seen {
			order = append(order, module.Name)
		}
		lines[module.Name] = append(lines[module.Name], module.Line)
	}

	var dups []Duplicate
	for _, name := range order {
		if len(lines[name]) > 1 {
			dups = append(dups, Duplicate{Name: name, Lines: lines[name]})
		}
	}
	return dups
}
