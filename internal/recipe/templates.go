// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Template filenames, matching the layout the generator historically consumed.
const (
	MetaTemplateName  = "template-meta.yaml"
	BuildTemplateName = "template-build.sh"
	TestTemplateName  = "template-run_test.sh"
	PatchName         = "include.patch"
)

//go:embed templates
var embeddedTemplates embed.FS

type (
	// Data is the substitution context for one recipe. Each template uses the
	// fields it needs: meta.yaml all of them, build.sh the program and its
	// source directory, run_test.sh just the program.
	Data struct {
		// Program is the canonical program name.
		Program string
		// Package is the recipe package name ("ucsc-" + lowercased program).
		Package string
		// Version is the userApps release the recipes are generated for.
		Version string
		// Summary is the program description from the manifest.
		Summary string
		// ProgramSourceDir is the program's subdirectory inside the source
		// tree, relative to the userApps root.
		ProgramSourceDir string
	}

	// Templates holds the parsed recipe templates and the shared patch bytes.
	// Load once per run and pass into the Renderer; rendering has no hidden
	// template state.
	Templates struct {
		Meta  *template.Template
		Build *template.Template
		Test  *template.Template
		// CustomBuild maps a program name to its override build template.
		CustomBuild map[string]*template.Template
		// Patch is copied byte-for-byte into every recipe directory.
		Patch []byte
	}
)

// funcs are the helper functions available to all recipe templates.
var funcs = template.FuncMap{
	"yamlQuote": yamlQuote,
}

// yamlQuote encodes s as a single YAML scalar, so descriptions with quotes,
// colons, or embedded newlines stay well-formed inside meta.yaml.
func yamlQuote(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding YAML scalar: %w", err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Load reads the recipe templates, preferring files from dir and falling
// back to the embedded defaults. customBuild maps program names to override
// build template filenames (from the naming tables); each one is resolved
// the same way.
//
// An empty dir loads the embedded defaults only.
func Load(dir string, customBuild map[string]string) (*Templates, error) {
	meta, err := loadTemplate(dir, MetaTemplateName)
	if err != nil {
		return nil, err
	}
	build, err := loadTemplate(dir, BuildTemplateName)
	if err != nil {
		return nil, err
	}
	test, err := loadTemplate(dir, TestTemplateName)
	if err != nil {
		return nil, err
	}
	patch, err := loadFile(dir, PatchName)
	if err != nil {
		return nil, err
	}

	t := &Templates{
		Meta:  meta,
		Build: build,
		Test:  test,
		Patch: patch,
	}

	for program, filename := range customBuild {
		tmpl, err := loadTemplate(dir, filename)
		if err != nil {
			return nil, fmt.Errorf("custom build template for %s: %w", program, err)
		}
		if t.CustomBuild == nil {
			t.CustomBuild = make(map[string]*template.Template, len(customBuild))
		}
		t.CustomBuild[program] = tmpl
	}

	return t, nil
}

// buildFor returns the build template for the program: its custom override
// when one is registered, the shared template otherwise.
func (t *Templates) buildFor(program string) *template.Template {
	if tmpl, ok := t.CustomBuild[program]; ok {
		return tmpl
	}
	return t.Build
}

// HasCustomBuild reports whether the program has an override build template.
func (t *Templates) HasCustomBuild(program string) bool {
	_, ok := t.CustomBuild[program]
	return ok
}

// loadTemplate parses the named template from dir when present, from the
// embedded defaults otherwise.
func loadTemplate(dir, name string) (*template.Template, error) {
	data, err := loadFile(dir, name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

// loadFile reads the named file from dir when present, from the embedded
// defaults otherwise.
func loadFile(dir, name string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}
	}

	data, err := embeddedTemplates.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("no template named %s: %w", name, err)
	}
	return data, nil
}
