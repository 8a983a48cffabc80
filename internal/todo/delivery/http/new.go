package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"todo-list/internal/todo"
	"todo-list/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "index.html"

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	// Page
	Index(c *gin.Context)
	AddForm(c *gin.Context)
	ToggleForm(c *gin.Context)
	DeleteForm(c *gin.Context)
	ConfirmDeleteForm(c *gin.Context)
	CancelDeleteForm(c *gin.Context)

	// JSON API
	List(c *gin.Context)
	Add(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
	RequestDelete(c *gin.Context)
	PendingDelete(c *gin.Context)
	ConfirmDelete(c *gin.Context)
	CancelDelete(c *gin.Context)
	Notifications(c *gin.Context)
	Reset(c *gin.Context)
}

// Config is the dependency bag passed to New().
type Config struct {
	// ConfirmDelete makes the page's delete button open a confirmation
	// prompt instead of deleting right away.
	ConfirmDelete bool
	MaxNameLength int
}

type handler struct {
	l    log.Logger
	uc   todo.UseCase
	tmpl *template.Template
	cfg  Config
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase, cfg Config) (*handler, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &handler{
		l:    l,
		uc:   uc,
		tmpl: tmpl,
		cfg:  cfg,
	}, nil
}

var _ Handler = (*handler)(nil)
