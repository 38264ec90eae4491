package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hr-management-api/internal/resource"
	"hr-management-api/internal/store"
)

// ResourceHandler serves one resource family through the generic pipeline:
// parse, validate, resolve references, perform exactly one persistence
// operation, shape the response. Resources differ only by their definition.
type ResourceHandler struct {
	def   resource.Definition
	store store.ResourceStore
}

// NewResourceHandler creates a handler for the given resource definition.
func NewResourceHandler(def resource.Definition, s store.ResourceStore) *ResourceHandler {
	return &ResourceHandler{def: def, store: s}
}

// Get lists the collection, or fetches a single document when an id query
// parameter is present.
func (h *ResourceHandler) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		h.list(c)
		return
	}

	doc, err := h.store.Get(c.Request.Context(), h.def, id)
	if err != nil {
		handleError(c, h.def, err)
		return
	}
	c.JSON(http.StatusOK, shapeDocument(h.def, doc))
}

func (h *ResourceHandler) list(c *gin.Context) {
	docs, err := h.store.List(c.Request.Context(), h.def)
	if err != nil {
		handleError(c, h.def, err)
		return
	}

	out := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		out = append(out, shapeDocument(h.def, doc))
	}
	c.JSON(http.StatusOK, out)
}

// Create validates the payload, resolves any reference, and inserts a new
// document. Responds 201 with the created representation.
func (h *ResourceHandler) Create(c *gin.Context) {
	doc, refDoc, ok := h.buildDocument(c)
	if !ok {
		return
	}

	if h.def.Transform != nil {
		if err := h.def.Transform(doc); err != nil {
			handleError(c, h.def, err)
			return
		}
	}

	inserted, err := h.store.Insert(c.Request.Context(), h.def, doc)
	if err != nil {
		handleError(c, h.def, err)
		return
	}

	body := shapeDocument(h.def, inserted)
	h.attachDisplayField(body, refDoc)
	c.JSON(http.StatusCreated, body)
}

// Update replaces the mutable fields of an existing document. The
// identifier and created_at are preserved.
func (h *ResourceHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "ID is required")
		return
	}

	fields, refDoc, ok := h.buildDocument(c)
	if !ok {
		return
	}

	if h.def.Transform != nil {
		if err := h.def.Transform(fields); err != nil {
			handleError(c, h.def, err)
			return
		}
	}

	updated, err := h.store.Replace(c.Request.Context(), h.def, id, fields)
	if err != nil {
		handleError(c, h.def, err)
		return
	}

	body := shapeDocument(h.def, updated)
	h.attachDisplayField(body, refDoc)
	c.JSON(http.StatusOK, body)
}

// Delete removes a document. Responds 204 with an empty body.
func (h *ResourceHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.store.Delete(c.Request.Context(), h.def, id); err != nil {
		handleError(c, h.def, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// buildDocument parses and validates the request body and resolves the
// resource's reference when one is carried in the payload. The reference
// check and the subsequent write are not atomic; a concurrent delete of the
// referenced document between them is an accepted race.
func (h *ResourceHandler) buildDocument(c *gin.Context) (bson.M, bson.M, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON payload")
		return nil, nil, false
	}

	doc, err := h.def.BuildDocument(payload)
	if err != nil {
		handleError(c, h.def, err)
		return nil, nil, false
	}

	var refDoc bson.M
	if h.def.Reference != nil {
		if oid, present := doc[h.def.Reference.Field].(bson.ObjectID); present {
			refDoc, err = h.store.ResolveReference(c.Request.Context(), *h.def.Reference, oid)
			if err != nil {
				handleError(c, h.def, err)
				return nil, nil, false
			}
		}
	}

	return doc, refDoc, true
}

func (h *ResourceHandler) attachDisplayField(body gin.H, refDoc bson.M) {
	if refDoc == nil || h.def.Reference == nil {
		return
	}
	body[h.def.Reference.As] = refDoc[h.def.Reference.DisplayField]
}
