package helpdoc

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed docs/*.md layout.html
var embedded embed.FS

// Docs returns the built-in help pages.
func Docs() fs.FS {
	sub, _ := fs.Sub(embedded, "docs")
	return sub
}

// Page is a rendered help page.
type Page struct {
	Name string
	Meta Meta
	Body template.HTML // page content without layout
	HTML string        // full document
}

// Data is passed to page bodies as template data.
type Data struct {
	SupportEmail string
	AppName      string
}

// Renderer renders markdown help pages with caching.
type Renderer struct {
	fs     fs.FS
	md     goldmark.Markdown
	layout *template.Template
	data   Data

	cache map[string]*Page
	mu    sync.RWMutex
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithData sets the template data passed to page bodies.
func WithData(d Data) Option {
	return func(r *Renderer) { r.data = d }
}

// WithLayout replaces the default page layout. The layout receives the Page.
func WithLayout(t *template.Template) Option {
	return func(r *Renderer) {
		if t != nil {
			r.layout = t
		}
	}
}

var defaultLayout = template.Must(template.ParseFS(embedded, "layout.html"))

// New creates a Renderer over the markdown files of filesystem.
// Pass Docs() for the built-in pages.
func New(filesystem fs.FS, opts ...Option) *Renderer {
	r := &Renderer{
		fs:     filesystem,
		md:     goldmark.New(goldmark.WithExtensions(extension.Table, Actions())),
		layout: defaultLayout,
		data: Data{
			SupportEmail: "komunikacja@porr.pl",
			AppName:      "Generator Newslettera PORR",
		},
		cache: make(map[string]*Page),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the page with the given name (file name without ".md").
func (r *Renderer) Render(name string) (*Page, error) {
	r.mu.RLock()
	if p, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.cache[name]; ok {
		return p, nil
	}
	p, err := r.render(name)
	if err != nil {
		return nil, err
	}
	r.cache[name] = p
	return p, nil
}

func (r *Renderer) render(name string) (*Page, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	src, err := fs.ReadFile(r.fs, name+".md")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPageNotFound, name, err)
	}

	meta, body, err := splitFrontmatter(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if meta.Title == "" {
		meta.Title = name
	}

	tmpl, err := texttemplate.New(name).Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	var md bytes.Buffer
	if err := tmpl.Execute(&md, r.data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	p := &Page{Name: name, Meta: meta, Body: template.HTML(content.String())}

	var doc bytes.Buffer
	if err := r.layout.Execute(&doc, p); err != nil {
		return nil, fmt.Errorf("%w: %s: layout: %v", ErrRenderFailed, name, err)
	}
	p.HTML = doc.String()
	return p, nil
}

// List returns every page of the filesystem ordered by frontmatter order,
// then name.
func (r *Renderer) List() ([]*Page, error) {
	entries, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	pages := make([]*Page, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		p, err := r.Render(strings.TrimSuffix(e.Name(), ".md"))
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	slices.SortFunc(pages, func(a, b *Page) int {
		if a.Meta.Order != b.Meta.Order {
			return a.Meta.Order - b.Meta.Order
		}
		return strings.Compare(a.Name, b.Name)
	})
	return pages, nil
}
