package registry

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-notecanvas/pkg/template"
)

// document is the on-disk shape of a template bundle: either a single record
// or a list under "templates".
type document struct {
	Templates []template.Record `json:"templates" yaml:"templates"`
}

// LoadFS walks the provided filesystem and registers every template record
// found in JSON/YAML documents. Records hydrate through the template
// defaults, so partial documents are fine. When fsys is nil nothing happens.
func (r *Registry) LoadFS(fsys fs.FS) error {
	if fsys == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("registry: read %s: %w", path, err)
		}
		records, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if strings.TrimSpace(rec.ID) == "" {
				return fmt.Errorf("registry: file %s defines a template without an id", path)
			}
			r.Register(rec.Template())
		}
		return nil
	})
}

func parseDocument(data []byte, path string) ([]template.Record, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var doc document
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("registry: parse %s: %w", path, err)
		}
		if len(doc.Templates) == 0 {
			// Allow a bare record at the document root.
			var rec template.Record
			if err := json.Unmarshal(data, &rec); err == nil && rec.ID != "" {
				return []template.Record{rec}, nil
			}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("registry: parse %s: %w", path, err)
		}
		if len(doc.Templates) == 0 {
			var rec template.Record
			if err := yaml.Unmarshal(data, &rec); err == nil && rec.ID != "" {
				return []template.Record{rec}, nil
			}
		}
	default:
		return nil, nil
	}
	return doc.Templates, nil
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
