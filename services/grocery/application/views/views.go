// Package views renders the server-side HTML pages of the grocery list and
// serves their static assets. Templates and assets are embedded in the binary.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/ghuser/grocerylist/pkg/session"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageIndex    = "index.html"
	pageNotFound = "not_found.html"
)

var pages = parsePages(pageIndex, pageNotFound)

// parsePages builds one template set per page, each combined with the shared layout.
func parsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return out
}

// ItemView is one row of the list.
type ItemView struct {
	ID        models.ItemID
	Name      string
	Completed bool
	Editing   bool
}

// IndexPage is the data for the list page.
type IndexPage struct {
	Items         []ItemView
	Notices       []session.Flash
	MaxNameLength int
}

// NewIndexPage builds the list page. editID marks the row shown as an edit
// form; zero means no row is in edit mode.
func NewIndexPage(items []*models.GroceryItem, editID models.ItemID, notices []session.Flash) IndexPage {
	rows := make([]ItemView, len(items))
	for i, item := range items {
		rows[i] = ItemView{
			ID:        item.ID,
			Name:      item.Name.String(),
			Completed: item.Completed,
			Editing:   editID != 0 && item.ID == editID,
		}
	}
	return IndexPage{Items: rows, Notices: notices, MaxNameLength: models.MaxItemNameLength}
}

// RenderIndex writes the list page with status 200.
func RenderIndex(w http.ResponseWriter, page IndexPage) error {
	return render(w, http.StatusOK, pageIndex, page)
}

// RenderNotFound writes the 404 page.
func RenderNotFound(w http.ResponseWriter, notices []session.Flash) error {
	return render(w, http.StatusNotFound, pageNotFound, IndexPage{Notices: notices})
}

// render executes into a buffer first so a template error never leaves a half-written page.
func render(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets. Mount it under /static/ with the prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}
	return http.FileServer(http.FS(sub))
}
