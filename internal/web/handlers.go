package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tgienger/taskman/internal/models"
	"github.com/tgienger/taskman/internal/store"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	status := c.Query("status")
	priority := c.Query("priority")
	query := c.Query("q")

	var tasks []models.Task
	if query != "" {
		tasks = s.store.Search(query)
	} else {
		tasks = s.store.List(status, priority)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"tasks":    tasks,
		"stats":    s.store.Stats(),
		"status":   status,
		"priority": priority,
		"query":    query,
		"flash":    s.flash.pop(c),
	})
}

func (s *Server) handleCreate(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	priority := strings.ToLower(strings.TrimSpace(c.PostForm("priority")))

	if title == "" {
		s.flash.set(c, "danger", "Title is required")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if !models.ValidPriority(priority) {
		priority = models.PriorityMedium
	}

	if _, err := s.store.Add(title, description, priority); err != nil {
		s.log.WithError(err).Error("create task failed")
		s.flash.set(c, "danger", "Could not save task")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.flash.set(c, "success", "Task created")
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	var task *models.Task
	if ok {
		task = s.store.Get(id)
	}
	if task == nil {
		s.flash.set(c, "danger", "Task not found")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// Absent or invalid form values fall back to the task's current values.
	title := strings.TrimSpace(c.DefaultPostForm("title", task.Title))
	description := strings.TrimSpace(c.DefaultPostForm("description", task.Description))
	priority := strings.ToLower(strings.TrimSpace(c.DefaultPostForm("priority", task.Priority)))
	status := strings.ToLower(strings.TrimSpace(c.DefaultPostForm("status", task.Status)))

	if title == "" {
		title = task.Title
	}
	if !models.ValidPriority(priority) {
		priority = task.Priority
	}
	if !models.ValidStatus(status) {
		status = task.Status
	}

	if _, err := s.store.Update(id, store.UpdateFields{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		Status:      &status,
	}); err != nil {
		s.log.WithError(err).Error("update task failed")
		s.flash.set(c, "danger", "Could not save task")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.flash.set(c, "success", "Task updated")
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleToggle(c *gin.Context) {
	id, ok := parseID(c)
	var task *models.Task
	if ok {
		task = s.store.Get(id)
	}
	if task == nil {
		s.flash.set(c, "danger", "Task not found")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	status := models.StatusCompleted
	if task.Status == models.StatusCompleted {
		status = models.StatusPending
	}
	if _, err := s.store.Update(id, store.UpdateFields{Status: &status}); err != nil {
		s.log.WithError(err).Error("toggle task failed")
		s.flash.set(c, "danger", "Could not save task")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.flash.set(c, "info", "Task status toggled")
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := parseID(c)
	removed := false
	if ok {
		var err error
		removed, err = s.store.Delete(id)
		if err != nil {
			s.log.WithError(err).Error("delete task failed")
		}
	}
	if removed {
		s.flash.set(c, "warning", "Task deleted")
	} else {
		s.flash.set(c, "danger", "Task not found")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleStats(c *gin.Context) {
	c.HTML(http.StatusOK, "stats.html", gin.H{
		"stats": s.store.Stats(),
	})
}

// API handlers

func (s *Server) handleAPIList(c *gin.Context) {
	tasks := s.store.List(c.Query("status"), c.Query("priority"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tasks,
		"count":   len(tasks),
	})
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (s *Server) handleAPICreate(c *gin.Context) {
	var req createRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title is required"})
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "priority must be high, medium or low"})
		return
	}

	task, err := s.store.Add(req.Title, req.Description, req.Priority)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": task})
}

func (s *Server) handleAPIGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid task id"})
		return
	}
	task := s.store.Get(id)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

func (s *Server) handleAPIUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid task id"})
		return
	}

	var req updateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title cannot be empty"})
		return
	}
	if req.Priority != nil && !models.ValidPriority(*req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "priority must be high, medium or low"})
		return
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status must be pending or completed"})
		return
	}

	task, err := s.store.Update(id, store.UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

func (s *Server) handleAPIDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid task id"})
		return
	}
	removed, err := s.store.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "task deleted"})
}

func (s *Server) handleAPISearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query parameter required"})
		return
	}
	results := s.store.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   query,
		"data":    results,
		"count":   len(results),
	})
}

func (s *Server) handleAPIStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s.store.Stats()})
}
