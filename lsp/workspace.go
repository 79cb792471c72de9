package lsp

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/labeldecode/chip"
)

// Workspace holds the open label documents.
type Workspace struct {
	mu         sync.RWMutex
	registry   *chip.Registry
	incomplete Severity
	files      map[string]*Document
}

func NewWorkspace(reg *chip.Registry, incomplete Severity) *Workspace {
	return &Workspace{
		registry:   reg,
		incomplete: incomplete,
		files:      make(map[string]*Document),
	}
}

// ScanFile reads path from disk and analyses it.
func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, string(content)), nil
}

// UpdateFile analyses content as the new text of path.
func (w *Workspace) UpdateFile(path, content string) *Document {
	doc := Analyze(w.registry, path, content, w.incomplete)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// HoverAt describes the entry under the cursor.
func (w *Workspace) HoverAt(path string, p Position) (string, bool) {
	doc := w.GetFile(path)
	if doc == nil {
		return "", false
	}
	e := doc.EntryAt(p)
	if e == nil {
		return "", false
	}
	return e.Hover(), true
}

type CompletionItem struct {
	Label  string
	Detail string
}

// CompletionsAt offers family names while the cursor is in the family part
// of a line.
func (w *Workspace) CompletionsAt(path string, p Position) []CompletionItem {
	doc := w.GetFile(path)
	if doc == nil {
		return nil
	}
	lines := strings.Split(doc.Content, "\n")
	if p.Line < 0 || p.Line >= len(lines) {
		return nil
	}
	prefix, ok := familyPrefix(strings.TrimSuffix(lines[p.Line], "\r"), p.Column)
	if !ok {
		return nil
	}

	var items []CompletionItem
	for _, f := range w.registry.Families() {
		if !strings.HasPrefix(f.Name(), prefix) {
			continue
		}
		grammars := f.Grammars()
		sort.Strings(grammars)
		items = append(items, CompletionItem{
			Label:  f.Name(),
			Detail: strings.Join(grammars, ", "),
		})
	}
	return items
}
