package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hr-management-api/internal/store"
)

// ExecuteHandler serves the privileged ad-hoc query endpoint. It bypasses
// per-resource schema validation on purpose: filters and updates are raw
// documents. It stays behind the authentication gate.
type ExecuteHandler struct {
	store store.ExecuteStore
}

// NewExecuteHandler creates the ad-hoc query handler.
func NewExecuteHandler(s store.ExecuteStore) *ExecuteHandler {
	return &ExecuteHandler{store: s}
}

type executeRequest struct {
	Operation  string         `json:"operation"`
	Collection string         `json:"collection"`
	Query      map[string]any `json:"query"`
	Update     map[string]any `json:"update"`
}

// Execute dispatches one of find, update or delete against an arbitrary
// collection. Identifier-shaped filter values are normalized to ObjectIDs
// before execution.
func (h *ExecuteHandler) Execute(c *gin.Context) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Operation == "" || req.Collection == "" {
		respondError(c, http.StatusBadRequest, "Operation and collection are required")
		return
	}

	switch req.Operation {
	case "find":
		if req.Query == nil {
			respondError(c, http.StatusBadRequest, "Query is required for find operation")
			return
		}
		query := bson.M(req.Query)
		if !h.normalizeID(c, query) {
			return
		}
		docs, err := h.store.Find(c.Request.Context(), req.Collection, query)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)

	case "update":
		if req.Query == nil || req.Update == nil {
			respondError(c, http.StatusBadRequest, "Query and update are required for update operation")
			return
		}
		query := bson.M(req.Query)
		if !h.normalizeID(c, query) {
			return
		}
		modified, err := h.store.UpdateMany(c.Request.Context(), req.Collection, query, bson.M(req.Update))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})

	case "delete":
		if req.Query == nil {
			respondError(c, http.StatusBadRequest, "Query is required for delete operation")
			return
		}
		query := bson.M(req.Query)
		if !h.normalizeID(c, query) {
			return
		}
		deleted, err := h.store.DeleteMany(c.Request.Context(), req.Collection, query)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})

	default:
		respondError(c, http.StatusBadRequest, "Invalid operation")
	}
}

func (h *ExecuteHandler) normalizeID(c *gin.Context, query bson.M) bool {
	if err := store.NormalizeID(query); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			respondError(c, http.StatusBadRequest, "Invalid ID")
			return false
		}
		h.fail(c, err)
		return false
	}
	return true
}

func (h *ExecuteHandler) fail(c *gin.Context, err error) {
	logrus.WithField("error", err.Error()).Error("Ad-hoc query failed")
	respondError(c, http.StatusInternalServerError, "Failed to execute query")
}
