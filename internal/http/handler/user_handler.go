package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/http/response"
	"github.com/valbrand/crm-backend/internal/repository"
	"github.com/valbrand/crm-backend/internal/security"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	RoleID     uint              `json:"role_id"`
	Phone      string            `json:"phone"`
	Position   string            `json:"position"`
	Department string            `json:"department"`
	Status     domain.UserStatus `json:"status"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       req.RoleID,
		Phone:        req.Phone,
		Position:     req.Position,
		Department:   req.Department,
		Status:       req.Status,
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	if err := h.users.Create(user); err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip := queryInt(q.Get("skip"), 0)
	limit := queryInt(q.Get("limit"), repository.DefaultLimit)

	users, err := h.users.List(skip, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.findUser(w, r)
	if !ok {
		return
	}
	response.JSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	FirstName  *string            `json:"first_name"`
	LastName   *string            `json:"last_name"`
	Email      *string            `json:"email"`
	Password   *string            `json:"password"`
	RoleID     *uint              `json:"role_id"`
	Phone      *string            `json:"phone"`
	Position   *string            `json:"position"`
	Department *string            `json:"department"`
	Status     *domain.UserStatus `json:"status"`
}

// Update applies only the fields present in the body. A password in the
// payload is hashed before it touches the record.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.findUser(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := security.HashPassword(*req.Password)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "internal server error")
			return
		}
		user.PasswordHash = hash
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Status != nil {
		user.Status = *req.Status
	}

	if err := h.users.Update(user); err != nil {
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	response.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) findUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "Usuario no encontrado")
			return nil, false
		}
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return user, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
