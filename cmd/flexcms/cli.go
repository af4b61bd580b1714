package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Rules     *flexcms.RuleTable
	Catalog   *fs.Catalog
	Extractor flexcms.DocumentExtractor
	Cache     flexcms.RunCache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Rules    string `short:"r" env:"FLEXCMS_RULES" help:"Region rule config path (soft-category.json)"`
	Products string `short:"p" env:"FLEXCMS_PRODUCTS" help:"Product catalog path (products.yaml)"`
	Verbose  bool   `short:"v" help:"Log per-page details"`

	Extract ExtractCmd `cmd:"" help:"Extract one saved page into a flexible document"`
	Batch   BatchCmd   `cmd:"" help:"Extract every page of a site archive"`
	Check   CheckCmd   `cmd:"" help:"Inspect the region rule table"`
	Export  ExportCmd  `cmd:"" help:"Render an extracted document as Markdown"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Page    string `arg:"" help:"Saved page path (.html)"`
	Out     string `short:"o" help:"Output directory (default: print to stdout)"`
	Product string `help:"Product key or slug for catalog lookup (default: derived from file name)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Archive     string `arg:"" help:"Archive directory of saved pages"`
	Out         string `short:"o" default:"out" help:"Output directory"`
	Sitemap     string `help:"Restrict to pages listed in a saved sitemap.xml"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent extraction limit"`
	NoCache     bool   `help:"Re-extract pages even when their markup is unchanged"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	OS     string `arg:"" optional:"" help:"Software category to look up"`
	Region string `arg:"" optional:"" help:"Region to look up"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Document string `arg:"" help:"Extracted document path (.json)"`
	Out      string `short:"o" help:"Output file (default: print to stdout)"`
}
