package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valbrand/crm-backend/internal/http/response"
	"github.com/valbrand/crm-backend/internal/repository"
)

// CRUDHandler serves the catalog entities whose HTTP surface is plain
// list/get/create/update/delete. The zero ID on decoded payloads lets the
// database assign identifiers on create; on update the path ID wins.
type CRUDHandler[T any] struct {
	repo     *repository.CRUDRepository[T]
	notFound string
	setID    func(*T, uint)
}

func NewCRUDHandler[T any](repo *repository.CRUDRepository[T], notFound string, setID func(*T, uint)) *CRUDHandler[T] {
	return &CRUDHandler[T]{repo: repo, notFound: notFound, setID: setID}
}

func (h *CRUDHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.repo.List(repository.PageRequest{
		Skip:  queryInt(q.Get("skip"), 0),
		Limit: queryInt(q.Get("limit"), repository.DefaultLimit),
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *CRUDHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	record, err := h.repo.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, record)
}

func (h *CRUDHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.setID(&record, 0)
	if err := h.repo.Create(&record); err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusCreated, record)
}

func (h *CRUDHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.repo.Get(id); err != nil {
		h.writeError(w, err)
		return
	}

	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.setID(&record, id)
	if err := h.repo.Save(&record); err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, record)
}

func (h *CRUDHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.repo.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CRUDHandler[T]) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, http.StatusNotFound, h.notFound)
		return
	}
	response.Error(w, http.StatusInternalServerError, "internal server error")
}
