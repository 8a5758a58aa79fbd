package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/models"
	"github.com/chronicle-dev/chronicle/pkg/services"
)

// handleCreateTask submits a synthetic viewpoint task.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	t, err := s.taskService.CreateTask(c.Request.Context(), req, task.TaskTypeSyntheticViewpoint)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.NewTaskResponse(t))
}

// handleCreateTaskFromEntity submits an entity-canonical task: a timeline
// seeded by a stored entity's name.
func (s *Server) handleCreateTaskFromEntity(c *gin.Context) {
	entityID := c.Param("entity_id")

	entity, err := s.dbClient.Entity.Get(c.Request.Context(), entityID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}

	req := models.CreateTaskRequest{
		TopicText: entity.EntityName,
		Config:    map[string]any{"entity_id": entity.ID},
	}
	t, err := s.taskService.CreateTask(c.Request.Context(), req, task.TaskTypeEntityCanonical)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.NewTaskResponse(t))
}

// handleCreateTaskFromDocument submits a document-canonical task.
func (s *Server) handleCreateTaskFromDocument(c *gin.Context) {
	docID, err := strconv.Atoi(c.Param("source_document_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source document id"})
		return
	}

	doc, err := s.dbClient.SourceDocument.Get(c.Request.Context(), docID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "source document not found"})
		return
	}

	req := models.CreateTaskRequest{
		TopicText: doc.Title,
		Config:    map[string]any{"source_document_id": doc.ID},
	}
	t, err := s.taskService.CreateTask(c.Request.Context(), req, task.TaskTypeDocumentCanonical)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.NewTaskResponse(t))
}

// handleGetTask returns a task with its progress messages.
func (s *Server) handleGetTask(c *gin.Context) {
	t, err := s.taskService.GetTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := models.NewTaskResponse(t)
	if messages, err := s.progressService.List(c.Request.Context(), t.ID); err == nil {
		resp.ProgressMessages = messages
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetTaskResult returns a task with its embedded timeline events.
func (s *Server) handleGetTaskResult(c *gin.Context) {
	t, err := s.taskService.GetTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := s.timelineService.GetTimelineResult(c.Request.Context(), t)
	if err != nil {
		if errors.Is(err, services.ErrNoTimeline) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task has no timeline"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := models.NewTaskResponse(t)
	c.JSON(http.StatusOK, gin.H{"task": resp, "timeline": result})
}

// handleUpdateSharing toggles a task's public visibility.
func (s *Server) handleUpdateSharing(c *gin.Context) {
	var req models.UpdateSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	t, err := s.taskService.UpdateSharing(c.Request.Context(), c.Param("task_id"), req.IsPublic)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.NewTaskResponse(t))
}

// handleListPublicTimelines lists completed public tasks.
func (s *Server) handleListPublicTimelines(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, err := s.taskService.ListPublicCompleted(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, models.NewTaskResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"timelines": out, "limit": limit, "offset": offset})
}
