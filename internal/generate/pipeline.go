// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ucscgen/internal/archive"
	"ucscgen/internal/config"
	"ucscgen/internal/footer"
	"ucscgen/internal/issue"
	"ucscgen/internal/naming"
	"ucscgen/internal/recipe"

	"github.com/charmbracelet/log"
)

type (
	// Pipeline runs the recipe generation stages against one configuration.
	Pipeline struct {
		cfg     *config.Config
		tables  naming.Tables
		fetcher *archive.Fetcher
		logger  *log.Logger
	}

	// PipelineOption configures a Pipeline during construction.
	PipelineOption func(*Pipeline)

	// Artifacts are the local paths of the downloaded inputs.
	Artifacts struct {
		// ArchivePath is the source tarball, cached across runs.
		ArchivePath string
		// ManifestPath is the FOOTER manifest, re-fetched every run.
		ManifestPath string
	}

	// Summary reports what a run produced.
	Summary struct {
		// Written lists the package names whose recipes were written.
		Written []string
		// Skipped lists the programs dropped because no source directory
		// was located.
		Skipped []string
	}
)

// WithFetcher overrides the default artifact fetcher, primarily for tests.
func WithFetcher(f *archive.Fetcher) PipelineOption {
	return func(p *Pipeline) {
		p.fetcher = f
	}
}

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// New creates a Pipeline for the given configuration and exception tables.
func New(cfg *config.Config, tables naming.Tables, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		tables: tables,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetcher == nil {
		p.fetcher = archive.NewFetcher()
	}
	if p.logger == nil {
		p.logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "ucscgen",
		})
	}
	return p
}

// Fetch downloads the two input artifacts into the work directory. The
// tarball is only downloaded when its basename is absent; the manifest is
// always re-fetched so FOOTER drift shows up immediately.
func (p *Pipeline) Fetch(ctx context.Context) (*Artifacts, error) {
	if err := os.MkdirAll(p.cfg.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating work dir: %w", err)
	}

	archiveURL := p.cfg.ArchiveURL()
	base, err := archive.Basename(archiveURL)
	if err != nil {
		return nil, err
	}
	archivePath := filepath.Join(p.cfg.WorkDir, base)

	fetched, err := p.fetcher.DownloadIfAbsent(ctx, archiveURL, archivePath)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("download source tarball").
			WithResource(archiveURL).
			WithSuggestion("Check your network connection").
			WithSuggestion("Verify the version and download_base in the config").
			Wrap(err).
			BuildError()
	}
	if fetched {
		p.logger.Info("downloaded source tarball", "path", archivePath)
	} else {
		p.logger.Debug("source tarball already present", "path", archivePath)
	}

	manifestPath := filepath.Join(p.cfg.WorkDir, "FOOTER")
	if err := p.fetcher.Download(ctx, p.cfg.ManifestURL(), manifestPath); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("download manifest").
			WithResource(p.cfg.ManifestURL()).
			WithSuggestion("Check your network connection").
			WithSuggestion("Verify the download_base in the config").
			Wrap(err).
			BuildError()
	}
	p.logger.Info("downloaded manifest", "path", manifestPath)

	return &Artifacts{ArchivePath: archivePath, ManifestPath: manifestPath}, nil
}

// Run executes the whole pipeline: fetch, list the archive, and generate one
// recipe per resolvable program.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	artifacts, err := p.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return p.Generate(ctx, artifacts)
}

// Generate runs the generation stages against already-fetched artifacts.
func (p *Pipeline) Generate(ctx context.Context, artifacts *Artifacts) (_ *Summary, err error) {
	entries, err := archive.ReadListing(artifacts.ArchivePath)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read archive listing").
			WithResource(artifacts.ArchivePath).
			WithSuggestion("Delete the tarball and re-run to download a fresh copy").
			Wrap(err).
			BuildError()
	}
	p.logger.Debug("read archive listing", "entries", len(entries))

	templates, err := recipe.Load(p.cfg.TemplatesDir, p.tables.CustomBuildScripts)
	if err != nil {
		return nil, issue.WrapWithOperation(err, "load templates")
	}

	renderer := &recipe.Renderer{
		Templates:  templates,
		RecipesDir: p.cfg.RecipesDir,
		Version:    p.cfg.Version,
	}

	manifest, err := os.Open(artifacts.ManifestPath)
	if err != nil {
		return nil, issue.WrapWithOperation(err, "open manifest")
	}
	defer func() { _ = manifest.Close() }() // read-only file handle

	summary := &Summary{}
	parser := footer.NewParser(manifest)
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generation canceled: %w", ctx.Err())
		default:
		}

		block, ok := parser.Next()
		if !ok {
			break
		}

		program, keep, err := naming.Resolve(block, p.tables)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("resolve program name").
				WithResource(block.Header).
				WithSuggestion("Add an entry to the exception tables (tables.toml)").
				Wrap(err).
				BuildError()
		}
		if !keep {
			p.logger.Debug("program is skip-listed", "program", block.Header)
			continue
		}

		sourceDir, found := archive.SourceDir(program.Name, entries)
		if !found && !templates.HasCustomBuild(program.Name) {
			p.logger.Warn("skipping program, no source directory", "program", program.Name)
			summary.Skipped = append(summary.Skipped, program.Name)
			continue
		}

		if err := renderer.Render(program.Name, program.Description, sourceDir); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("render recipe").
				WithResource(program.Name).
				Wrap(err).
				BuildError()
		}

		pkg := recipe.PackageName(program.Name)
		p.logger.Info("wrote recipe", "package", pkg)
		summary.Written = append(summary.Written, pkg)
	}
	if err := parser.Err(); err != nil {
		return nil, issue.WrapWithOperation(err, "read manifest")
	}

	return summary, nil
}
