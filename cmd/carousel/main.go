// Package main provides the CLI entry point for the carousel service.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/carousel/pkg/adapters/filesink"
	"github.com/user/carousel/pkg/adapters/fontstore"
	"github.com/user/carousel/pkg/adapters/ggrenderer"
	"github.com/user/carousel/pkg/adapters/httpfetcher"
	"github.com/user/carousel/pkg/adapters/logger"
	"github.com/user/carousel/pkg/adapters/nullsink"
	"github.com/user/carousel/pkg/adapters/osfilesystem"
	"github.com/user/carousel/pkg/adapters/templatestore"
	"github.com/user/carousel/pkg/api"
	"github.com/user/carousel/pkg/config"
	"github.com/user/carousel/pkg/orchestrator"
	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
	"github.com/user/carousel/pkg/stages/featured"
	"github.com/user/carousel/pkg/stages/slide"
	"github.com/user/carousel/pkg/stages/textlayout"
	"github.com/user/carousel/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:  "carousel",
		Usage: l10n.T("Generate marketing carousel images from structured slide data"),
		Commands: []*cli.Command{
			serveCommand(),
			renderCommand(),
			templatesCommand(),
			versionCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags are shared by the serve and render commands.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Path to a YAML config file")},
		&cli.StringFlag{Name: "template-dir", Usage: l10n.T("Directory holding 1.png, 2.png and 3.png template assets")},
		&cli.StringFlag{Name: "font-main", Usage: l10n.T("TTF file for headline text (bundled default when omitted)")},
		&cli.StringFlag{Name: "font-sub", Usage: l10n.T("TTF file for supporting text (bundled default when omitted)")},
		&cli.IntFlag{Name: "fetch-timeout-ms", Usage: l10n.T("Timeout for featured image fetches in milliseconds")},
		&cli.IntFlag{Name: "workers", Usage: l10n.T("Number of parallel slide workers")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save intermediate rendering output")},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output")},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: l10n.T("Run the carousel HTTP service"),
		Flags: append(commonFlags(),
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: l10n.T("HTTP listen port")},
			&cli.StringFlag{Name: "generated-dir", Usage: l10n.T("Directory for generated images")},
			&cli.StringFlag{Name: "base-url", Usage: l10n.T("Base URL for download links (derived from requests when omitted)")},
		),
		Action: runServe,
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: l10n.T("Render a carousel from a slides JSON file"),
		Flags: append(commonFlags(),
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: l10n.T("Slides JSON file")},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "generated", Usage: l10n.T("Output directory for rendered images")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a Markdown run summary to this path")},
		),
		Action: runRender,
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: l10n.T("Synthesize the builtin template assets"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "templates", Usage: l10n.T("Output directory for template PNGs")},
			&cli.StringFlag{Name: "qr", Usage: l10n.T("URL encoded into the QR decoration (omitted when empty)")},
		},
		Action: runTemplates,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("carousel version %s", version))
			return nil
		},
	}
}

// deps bundles the wired adapters and orchestrator for a command run.
type deps struct {
	cfg       config.Config
	log       ports.Logger
	fs        ports.FileSystem
	renderer  ports.Renderer
	templates ports.TemplateStore
	orch      *orchestrator.Orchestrator
}

// loadConfig merges the optional config file with CLI flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("template-dir") {
		cfg.TemplateDir = c.String("template-dir")
	}
	if c.IsSet("generated-dir") {
		cfg.GeneratedDir = c.String("generated-dir")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("font-main") {
		cfg.Fonts.MainPath = c.String("font-main")
	}
	if c.IsSet("font-sub") {
		cfg.Fonts.SubPath = c.String("font-sub")
	}
	if c.IsSet("fetch-timeout-ms") {
		cfg.FetchTimeoutMs = c.Int("fetch-timeout-ms")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	return cfg, nil
}

// buildDeps wires the adapters and pipeline stages for a command run.
func buildDeps(c *cli.Context) (*deps, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	fonts, err := fontstore.New(cfg.Fonts.MainPath, cfg.Fonts.SubPath, log)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	templates := templatestore.New(cfg.TemplateDir, fs, renderer, log)
	fetcher := httpfetcher.New(time.Duration(cfg.FetchTimeoutMs) * time.Millisecond)

	orch := orchestrator.New(
		textlayout.NewStage(),
		featured.NewStage(fetcher, renderer, log),
		slide.NewStage(renderer, log),
		templates,
		fonts,
		sink,
		log,
		orchestrator.WithWorkers(cfg.Workers),
	)

	return &deps{
		cfg:       cfg,
		log:       log,
		fs:        fs,
		renderer:  renderer,
		templates: templates,
		orch:      orch,
	}, nil
}

func runServe(c *cli.Context) error {
	d, err := buildDeps(c)
	if err != nil {
		return err
	}

	if !d.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	api.Version = version
	server := api.NewServer(d.orch, d.templates, d.renderer, d.fs, d.log, d.cfg.GeneratedDir, d.cfg.BaseURL)
	server.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", d.cfg.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	d.log.Info(l10n.F("Listening on http://localhost:%d", d.cfg.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-sigCh:
		d.log.Info(l10n.T("Shutting down server..."))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

func runRender(c *cli.Context) error {
	d, err := buildDeps(c)
	if err != nil {
		return err
	}

	slides, err := readSlides(c.String("input"))
	if err != nil {
		return err
	}

	run, err := d.orch.Generate(context.Background(), slides)
	if err != nil {
		return err
	}

	outDir := c.String("out")
	summary := summarizer.NewSummary()
	summary.OutputDir = outDir
	summary.Success = run.Success
	summary.Count = run.Count

	for _, res := range run.Results {
		entry := summarizer.SlideSummary{
			SlideNumber: res.SlideNumber,
			Role:        res.Role.String(),
			Filename:    res.Filename,
			Warnings:    res.Warnings,
		}
		if res.Err != nil {
			entry.Warnings = append(entry.Warnings, res.Err.Error())
			summary.Slides = append(summary.Slides, entry)
			continue
		}
		data, err := d.renderer.EncodePNG(res.Image)
		if err != nil {
			return fmt.Errorf("encode %s: %w", res.Filename, err)
		}
		if err := d.fs.WriteFile(filepath.Join(outDir, res.Filename), data); err != nil {
			return fmt.Errorf("write %s: %w", res.Filename, err)
		}
		summary.Slides = append(summary.Slides, entry)
	}

	if path := c.String("summary"); path != "" {
		writer := summarizer.NewWriter(summarizer.Markdown())
		if err := writer.Write(path, summary); err != nil {
			return err
		}
	}

	d.log.Info(l10n.F("Output saved to %s", outDir))
	return nil
}

func runTemplates(c *cli.Context) error {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	outDir := c.String("out")

	if err := templatestore.WriteBuiltin(outDir, c.String("qr"), fs, renderer); err != nil {
		return err
	}
	fmt.Println(l10n.F("Templates written to %s", outDir))
	return nil
}

// readSlides parses a slides file, accepting either {"slides": [...]} or a
// bare JSON array.
func readSlides(path string) ([]pipeline.Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slides %s: %w", path, err)
	}

	var wrapped struct {
		Slides []pipeline.Slide `json:"slides"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Slides) > 0 {
		return wrapped.Slides, nil
	}

	var bare []pipeline.Slide
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse slides %s: %w", path, err)
	}
	return bare, nil
}
