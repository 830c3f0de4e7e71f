package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates
var embedded embed.FS

// Templates returns the embedded page templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer executes pongo2 templates loaded from an fs.FS. Parsed templates
// are cached by name.
type Renderer struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// NewRenderer creates a Renderer over files. globals are visible to every template.
func NewRenderer(files fs.FS, globals map[string]any) (*Renderer, error) {
	if files == nil {
		return nil, errors.New("web: template files are required")
	}

	set := pongo2.NewSet("site", pongo2.NewFSLoader(files))
	registerFilters()

	ctx, err := toContext(globals)
	if err != nil {
		return nil, fmt.Errorf("web: convert globals: %w", err)
	}
	if set.Globals == nil {
		set.Globals = make(pongo2.Context)
	}
	set.Globals.Update(ctx)

	return &Renderer{set: set, templates: make(map[string]*pongo2.Template)}, nil
}

// Render executes the template name with data and writes the result to w.
// Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	tmpl, err := r.template(name)
	if err != nil {
		return err
	}

	ctx, err := toContext(data)
	if err != nil {
		return fmt.Errorf("web: convert data for %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return fmt.Errorf("web: execute template %q: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("web: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

// toContext turns data into plain maps and slices through JSON, so templates
// address fields by their JSON names.
func toContext(data map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(data))
	for key, value := range data {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := plain(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = converted
	}
	return out, nil
}

func plain(v any) (any, error) {
	switch v := v.(type) {
	case nil, string, bool, int, int64, float64:
		return v, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func registerFilters() {
	if !pongo2.FilterExists("isodate") {
		_ = pongo2.RegisterFilter("isodate", filterISODate)
	}
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
}

// filterISODate formats an RFC 3339 timestamp as a calendar date.
func filterISODate(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, err := time.Parse(time.RFC3339Nano, in.String())
	if err != nil {
		return pongo2.AsValue(in.String()), nil
	}
	return pongo2.AsValue(t.Format("2006-01-02")), nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
