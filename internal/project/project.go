// Package project loads an adl.config.yaml manifest describing a schema
// project's entry points and compiler options, and locates that manifest by
// searching upward from a working directory the way a VCS root is found.
// The manifest shape is grounded on dhamidi-sai/project/project.go's
// Project/Module split (reinterpreted: ADL namespaces in place of Java
// modules); the yaml loading and upward-search mechanics are grounded on
// yaklabco-gomdlint/internal/configloader's loadConfigFile/FindProjectConfig.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileNames are the manifest names searched for, in order of
// preference, mirroring gomdlintConfigFiles' multi-name search.
var configFileNames = []string{
	"adl.config.yaml",
	"adl.config.yml",
}

// Manifest describes a schema project: its entry point files, the
// namespaces it's expected to declare, and any emitters to run over it.
type Manifest struct {
	Name      string   `yaml:"name"`
	Entry     []string `yaml:"entry"`
	Namespace string   `yaml:"namespace,omitempty"`
	Emitters  []string `yaml:"emitters,omitempty"`
	Options   Options  `yaml:"options,omitempty"`
}

// Options holds compiler knobs a manifest can override.
type Options struct {
	WarningsAsErrors bool `yaml:"warnings-as-errors,omitempty"`
	NoEmit           bool `yaml:"no-emit,omitempty"`
}

// Project bundles a loaded Manifest with the directory it was found in, the
// way dhamidi-sai's Project bundles a Module list with its RootDir.
type Project struct {
	RootDir  string
	Manifest *Manifest
}

// Find searches startDir and its ancestors for a manifest file, the same
// upward walk FindProjectConfig performs for a VCS root, stopping at the
// user's home directory or filesystem root, whichever comes first.
func Find(startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	homeDir, _ := os.UserHomeDir()

	dir := absDir
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		if dir == homeDir {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(m.Entry) == 0 {
		return nil, fmt.Errorf("%s: manifest must declare at least one entry file", path)
	}
	return &m, nil
}

// LoadFrom finds and loads the nearest manifest above startDir, returning
// nil (not an error) if none exists.
func LoadFrom(startDir string) (*Project, error) {
	path, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Project{RootDir: filepath.Dir(path), Manifest: m}, nil
}

// EntryPaths returns the project's entry files resolved against RootDir.
func (p *Project) EntryPaths() []string {
	out := make([]string, len(p.Manifest.Entry))
	for i, e := range p.Manifest.Entry {
		out[i] = filepath.Join(p.RootDir, e)
	}
	return out
}
