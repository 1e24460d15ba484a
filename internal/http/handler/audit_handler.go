package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/valbrand/crm-backend/internal/http/response"
	"github.com/valbrand/crm-backend/internal/repository"
	"github.com/valbrand/crm-backend/internal/service"
)

type AuditHandler struct {
	audit *service.AuditService
}

func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

func (h *AuditHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.AuditLogFilter{
		Endpoint: q.Get("endpoint"),
		Method:   strings.ToUpper(q.Get("method")),
		APIKey:   q.Get("api_key"),
		Skip:     queryInt(q.Get("skip"), 0),
		Limit:    queryInt(q.Get("limit"), repository.DefaultLimit),
	}

	var err error
	if filter.DateFrom, err = parseQueryDate(q.Get("date_from"), false); err != nil {
		response.Error(w, http.StatusBadRequest, "date_from must be YYYY-MM-DD")
		return
	}
	if filter.DateTo, err = parseQueryDate(q.Get("date_to"), true); err != nil {
		response.Error(w, http.StatusBadRequest, "date_to must be YYYY-MM-DD")
		return
	}

	logs, err := h.audit.List(filter)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, logs)
}

func (h *AuditHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid audit log id")
		return
	}

	log, err := h.audit.Get(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrAuditLogNotFound) {
			response.Error(w, http.StatusNotFound, "Audit log not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, log)
}

func (h *AuditHandler) Stats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dateFrom, err := parseQueryDate(q.Get("date_from"), false)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "date_from must be YYYY-MM-DD")
		return
	}
	dateTo, err := parseQueryDate(q.Get("date_to"), true)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "date_to must be YYYY-MM-DD")
		return
	}

	stats, err := h.audit.Stats(dateFrom, dateTo)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

func (h *AuditHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r.URL.Query().Get("days_to_keep"), 30)
	if days < 1 || days > 365 {
		response.Error(w, http.StatusBadRequest, "days_to_keep must be between 1 and 365")
		return
	}

	deleted, cutoff, err := h.audit.Cleanup(days)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("Se eliminaron %d logs anteriores a %s", deleted, cutoff.Format("2006-01-02")),
		"deleted_count": deleted,
	})
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseQueryDate parses a YYYY-MM-DD query value. With endOfDay set the
// returned instant is the last moment of that day so a date_to filter
// includes the whole day.
func parseQueryDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
