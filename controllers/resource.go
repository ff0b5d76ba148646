package controllers

import (
	"context"
	"net/http"
)

// crudService is the shape every entity service shares
type crudService[T any, F any] interface {
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, form *F) (*T, error)
	Update(ctx context.Context, id int, form *F) (*T, error)
	Delete(ctx context.Context, id int) error
}

// resource serves GET/POST/PUT/DELETE for one entity. Controllers embed it
// and add their own List with entity-specific filters.
type resource[T any, F any] struct {
	entity  string
	service crudService[T, F]
}

// Get handles GET /api/<entity>/{id}
func (c *resource[T, F]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	item, err := c.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "load", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Create handles POST /api/<entity>
func (c *resource[T, F]) Create(w http.ResponseWriter, r *http.Request) {
	form := new(F)
	if !decodeJSON(w, r, form) {
		return
	}
	item, err := c.service.Create(r.Context(), form)
	if err != nil {
		respondError(w, err, "create", c.entity)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/<entity>/{id}
func (c *resource[T, F]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	form := new(F)
	if !decodeJSON(w, r, form) {
		return
	}
	item, err := c.service.Update(r.Context(), id, form)
	if err != nil {
		respondError(w, err, "update", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/<entity>/{id}
func (c *resource[T, F]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	if err := c.service.Delete(r.Context(), id); err != nil {
		respondError(w, err, "delete", c.entity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondList writes a list, never as JSON null
func respondList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	respondJSON(w, http.StatusOK, items)
}
