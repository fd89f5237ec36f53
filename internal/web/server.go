package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tgienger/taskman/internal/config"
	"github.com/tgienger/taskman/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server is the web adapter: HTML pages plus a JSON API, both thin
// translations onto the task store.
type Server struct {
	store  *store.Store
	router *gin.Engine
	flash  *flashCodec
	log    *logrus.Logger
}

// NewServer creates a new web server around an already-constructed store.
func NewServer(st *store.Store, cfg *config.Config, log *logrus.Logger) *Server {
	router := gin.Default()

	s := &Server{
		store:  st,
		router: router,
		flash:  newFlashCodec(cfg.SecretKey),
		log:    log,
	}

	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", s.handleHealth)

	// Web routes
	router.GET("/", s.handleIndex)
	router.POST("/tasks", s.handleCreate)
	router.POST("/tasks/:id/update", s.handleUpdate)
	router.POST("/tasks/:id/toggle", s.handleToggle)
	router.POST("/tasks/:id/delete", s.handleDelete)
	router.GET("/stats", s.handleStats)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleAPIList)
		api.POST("/tasks", s.handleAPICreate)
		api.GET("/tasks/:id", s.handleAPIGet)
		api.PUT("/tasks/:id", s.handleAPIUpdate)
		api.DELETE("/tasks/:id", s.handleAPIDelete)
		api.GET("/search", s.handleAPISearch)
		api.GET("/stats", s.handleAPIStats)
	}

	return s
}

// Run starts the web server.
func (s *Server) Run(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.log.WithField("addr", addr).Info("task manager web ui listening")
	return s.router.Run(addr)
}
