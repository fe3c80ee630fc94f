package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type TemplateName string

const (
	TemplateConciergeSystem TemplateName = "concierge_system.tmpl"
	TemplateAdvisorBrief    TemplateName = "advisor_brief.tmpl"
)

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// Builder renders the embedded prompt templates. Parsed templates are cached.
type Builder struct {
	mu        sync.RWMutex
	templates map[TemplateName]*template.Template
}

var (
	defaultBuilderOnce sync.Once
	defaultBuilder     *Builder
)

func NewBuilder() *Builder {
	return &Builder{
		templates: make(map[TemplateName]*template.Template),
	}
}

func DefaultBuilder() *Builder {
	defaultBuilderOnce.Do(func() {
		defaultBuilder = NewBuilder()
	})
	return defaultBuilder
}

func (b *Builder) Render(name TemplateName, data any) (string, error) {
	tmpl, err := b.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

func (b *Builder) getTemplate(name TemplateName) (*template.Template, error) {
	b.mu.RLock()
	if tmpl, ok := b.templates[name]; ok {
		b.mu.RUnlock()
		return tmpl, nil
	}
	b.mu.RUnlock()

	filename := filepath.ToSlash(filepath.Join("templates", string(name)))
	content, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load prompt template %s: %w", name, err)
	}

	tmpl, err := template.New(string(name)).Funcs(templateFuncs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.templates[name] = tmpl

	return tmpl, nil
}
