package handlers

import (
	"net/http"

	"darimaids/models"
	"darimaids/services/worker"
	"darimaids/utils"

	"github.com/gin-gonic/gin"
)

// WorkerHandler serves the worker portal and bank details. Every route
// sits behind BearerAuth.
type WorkerHandler struct {
	Worker *worker.Service
}

func NewWorkerHandler(svc *worker.Service) *WorkerHandler {
	return &WorkerHandler{Worker: svc}
}

func token(c *gin.Context) string {
	return c.GetString(utils.ContextTokenKey)
}

func (h *WorkerHandler) ListAssignments(c *gin.Context) {
	list, err := h.Worker.Assignments(c.Request.Context(), token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "data": list})
}

func (h *WorkerHandler) GetAssignment(c *gin.Context) {
	record, err := h.Worker.Assignment(c.Request.Context(), token(c), c.Param("bookingID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *WorkerHandler) RespondToAssignment(c *gin.Context) {
	if err := h.Worker.Respond(c.Request.Context(), token(c), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking response recorded"})
}

func (h *WorkerHandler) CompleteAssignment(c *gin.Context) {
	if err := h.Worker.Complete(c.Request.Context(), token(c), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking marked as completed!"})
}

// GetBank answers {"data": null} when no account is on file.
func (h *WorkerHandler) GetBank(c *gin.Context) {
	view, err := h.Worker.Bank(c.Request.Context(), token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (h *WorkerHandler) CreateBank(c *gin.Context) {
	var in models.BankInput
	if !bindJSON(c, &in) {
		return
	}
	view, err := h.Worker.CreateBank(c.Request.Context(), token(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Bank details saved", "data": view})
}

// UpdateBank edits ?bankId=, or the caller's account when omitted.
func (h *WorkerHandler) UpdateBank(c *gin.Context) {
	var in models.BankInput
	if !bindJSON(c, &in) {
		return
	}
	view, err := h.Worker.UpdateBank(c.Request.Context(), token(c), c.Query("bankId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank details updated", "data": view})
}

func (h *WorkerHandler) DeleteBank(c *gin.Context) {
	if err := h.Worker.DeleteBank(c.Request.Context(), token(c), c.Query("bankId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank details deleted"})
}
