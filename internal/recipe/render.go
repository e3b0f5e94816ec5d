// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
	"mvdan.cc/sh/v3/syntax"
)

// PackagePrefix is prepended to every recipe package name.
const PackagePrefix = "ucsc-"

// Renderer writes recipe directories under RecipesDir. It is a pure function
// of its inputs: templates, version, and the per-program Data.
type Renderer struct {
	Templates  *Templates
	RecipesDir string
	Version    string
}

// PackageName derives the recipe package name from a program name. Package
// names must be lowercase.
func PackageName(program string) string {
	return PackagePrefix + strings.ToLower(program)
}

// Render writes the recipe directory for the program: meta.yaml, build.sh,
// run_test.sh, and a copy of include.patch. The directory is created if
// needed and existing files are overwritten, so re-runs converge on the same
// bytes. There is no rollback; a failure partway leaves a partial directory.
func (r *Renderer) Render(program, description, sourceDir string) error {
	data := Data{
		Program:          program,
		Package:          PackageName(program),
		Version:          r.Version,
		Summary:          description,
		ProgramSourceDir: sourceDir,
	}

	recipeDir := filepath.Join(r.RecipesDir, data.Package)
	if err := os.MkdirAll(recipeDir, 0o755); err != nil {
		return fmt.Errorf("creating recipe dir: %w", err)
	}

	meta, err := render(r.Templates.Meta, data)
	if err != nil {
		return fmt.Errorf("rendering meta.yaml for %s: %w", program, err)
	}
	if err := checkYAML(meta); err != nil {
		return fmt.Errorf("meta.yaml for %s is not valid YAML: %w", program, err)
	}
	if err := writeFile(recipeDir, "meta.yaml", meta); err != nil {
		return err
	}

	build, err := render(r.Templates.buildFor(program), data)
	if err != nil {
		return fmt.Errorf("rendering build.sh for %s: %w", program, err)
	}
	if err := checkShell(build); err != nil {
		return fmt.Errorf("build.sh for %s is not valid shell: %w", program, err)
	}
	if err := writeFile(recipeDir, "build.sh", build); err != nil {
		return err
	}

	test, err := render(r.Templates.Test, data)
	if err != nil {
		return fmt.Errorf("rendering run_test.sh for %s: %w", program, err)
	}
	if err := checkShell(test); err != nil {
		return fmt.Errorf("run_test.sh for %s is not valid shell: %w", program, err)
	}
	if err := writeFile(recipeDir, "run_test.sh", test); err != nil {
		return err
	}

	return writeFile(recipeDir, PatchName, r.Templates.Patch)
}

// render executes the template into memory.
func render(tmpl *template.Template, data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkYAML verifies the rendered metadata parses as YAML.
func checkYAML(data []byte) error {
	var doc any
	return yaml.Unmarshal(data, &doc)
}

// checkShell verifies the rendered script parses as shell.
func checkShell(script []byte) error {
	_, err := syntax.NewParser().Parse(bytes.NewReader(script), "script")
	return err
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
