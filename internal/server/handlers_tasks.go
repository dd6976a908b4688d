package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfaridn/lacak/internal/db"
)

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(owner(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, sessions, err := s.tasks.GetTask(id, owner(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":     task,
		"sessions": sessions,
	})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req db.CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.tasks.CreateTask(owner(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req db.UpdateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.tasks.UpdateTask(id, owner(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := s.tasks.DeleteTask(id, owner(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
