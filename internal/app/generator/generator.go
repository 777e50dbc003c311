//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/config"
	"fanmenu/internal/config/logger"
)

const templatePath = "templates/fanmenu.yaml.tmpl"

//go:embed templates/fanmenu.yaml.tmpl
var templateFS embed.FS

// ItemOptions describes one generated menu entry
type ItemOptions struct {
	Glyph string
	Title string
}

// Options contains the configuration for generating fanmenu.yaml
type Options struct {
	Path      string
	Direction string
	TitleSide string
	Sounds    bool
	SoundDir  string
	Items     []ItemOptions
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Path:      config.FileName,
		Direction: config.DirectionTop,
		TitleSide: config.TitleLeft,
		Sounds:    true,
		SoundDir:  config.DefaultSoundDir,
		Items: []ItemOptions{
			{Glyph: "♫", Title: "Music"},
			{Glyph: "⚑", Title: "Place"},
			{Glyph: "◉", Title: "Camera"},
			{Glyph: "✎", Title: "Thought"},
		},
	}
}

// Generator defines the interface for generating fanmenu.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance that prints dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorWithOutput(os.Stdout, log)
}

// NewGeneratorWithOutput creates a generator that prints dry runs to out
func NewGeneratorWithOutput(out io.Writer, log logger.Logger) Generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate renders the template, checks it loads as a configuration, and writes it
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Path == "" {
		opts.Path = config.FileName
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileAlreadyExists, opts.Path)
		}
	}

	data, err := render(opts)
	if err != nil {
		return err
	}

	if err := validate(data); err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(data)
		return err
	}

	if err := os.WriteFile(opts.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.FileName).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// validate rejects output that is not well-formed yaml or not a usable configuration
func validate(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	if _, err := config.Parse(data); err != nil {
		return err
	}

	return nil
}
