package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns markdown templates with YAML frontmatter into email bodies.
// Parsed templates and layouts are cached; rendered output never is.
type Renderer struct {
	fs          fs.FS
	md          goldmark.Markdown
	templates   parseCache[*parsedTemplate]
	layouts     parseCache[*template.Template]
	templateDir string
	layoutDir   string
}

type parsedTemplate struct {
	metadata map[string]any
	subject  string
	body     *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
	HardWraps   bool   // Render single newlines as <br>
}

// NewRenderer creates a renderer with the default directory layout.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	var htmlOpts []renderer.Option
	if cfg.HardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}

	return &Renderer{
		fs:          filesystem,
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(htmlOpts...),
		),
		templates: newParseCache[*parsedTemplate](),
		layouts:   newParseCache[*template.Template](),
	}
}

// Rendered holds the output of a single render.
type Rendered struct {
	Metadata map[string]any
	Subject  string // Frontmatter subject, unprocessed
	HTML     string // Markdown converted to HTML and wrapped in the layout
	Text     string // Executed markdown before HTML conversion
}

// Render executes templateName with data and wraps the HTML in layout.
func (r *Renderer) Render(layout, templateName string, data any) (*Rendered, error) {
	tmpl, err := r.templates.load(templateName, func() (*parsedTemplate, error) {
		return r.parseTemplate(templateName)
	})
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tmpl.body.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.layouts.load(layout, func() (*template.Template, error) {
		return r.parseLayout(layout)
	})
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := layoutTmpl.Execute(&out, map[string]any{
		"Content":  template.HTML(content.String()), //nolint:gosec
		"Metadata": tmpl.metadata,
	}); err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &Rendered{
		Metadata: tmpl.metadata,
		Subject:  tmpl.subject,
		HTML:     out.String(),
		Text:     markdown.String(),
	}, nil
}

func (r *Renderer) parseTemplate(name string) (*parsedTemplate, error) {
	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	body, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	subject, _ := parsed.Subject()
	return &parsedTemplate{metadata: parsed.Metadata, subject: subject, body: body}, nil
}

func (r *Renderer) parseLayout(name string) (*template.Template, error) {
	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}
	return tmpl, nil
}

// parseCache memoizes parse results by name. Failed parses are not cached.
type parseCache[T any] struct {
	items map[string]T
	mu    *sync.RWMutex
}

func newParseCache[T any]() parseCache[T] {
	return parseCache[T]{items: make(map[string]T), mu: &sync.RWMutex{}}
}

func (c parseCache[T]) load(name string, parse func() (T, error)) (T, error) {
	c.mu.RLock()
	v, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.items[name]; ok {
		return v, nil
	}

	v, err := parse()
	if err != nil {
		return v, err
	}
	c.items[name] = v
	return v, nil
}
