package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/todoapi/todoapi/internal/api/request"
	"github.com/todoapi/todoapi/internal/api/response"
	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/store/sqlite"
)

// TaskHandler handles the /todos resource.
type TaskHandler struct {
	store  *sqlite.Store
	logger zerolog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(store *sqlite.Store, logger zerolog.Logger) *TaskHandler {
	return &TaskHandler{store: store, logger: logger}
}

// ListTasks handles GET /todos.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.Tasks().List(r.Context())
	if err != nil {
		h.internalError(w, "list tasks", err)
		return
	}

	response.OK(w, tasks)
}

// GetTask handles GET /todos/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDParam(r)
	if err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid task id in path"}))
		return
	}

	task, err := h.store.Tasks().GetByID(r.Context(), taskID)
	if err != nil {
		h.fail(w, "get task", err)
		return
	}

	response.OK(w, task)
}

// CreateTask handles POST /todos.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req request.TaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.ValidateCreate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	task := toTask(req)
	if err := h.store.Tasks().Create(r.Context(), &task); err != nil {
		h.fail(w, "create task", err)
		return
	}

	response.Created(w, task)
}

// UpdateTask handles PUT /todos/{id}. The body replaces the stored task.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDParam(r)
	if err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid task id in path"}))
		return
	}

	var req request.TaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.ValidateUpdate(taskID); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	task := toTask(req)
	task.ID = taskID
	if err := h.store.Tasks().Update(r.Context(), &task); err != nil {
		h.fail(w, "update task", err)
		return
	}

	response.OK(w, task)
}

// taskIDParam returns the decoded {id} segment. chi routes on the escaped
// path whenever one is present, so the segment may still be escaped.
func taskIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id, nil
	}
	return url.PathUnescape(id)
}

// fail writes domain errors as they are and logs anything else as internal.
func (h *TaskHandler) fail(w http.ResponseWriter, op string, err error) {
	if domain.IsCode(err, domain.ErrCodeTaskNotFound) || domain.IsCode(err, domain.ErrCodeTaskExists) {
		response.Error(w, err)
		return
	}
	h.internalError(w, op, err)
}

func (h *TaskHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error().Err(err).Str("op", op).Msg("store failure")
	response.Error(w, domain.NewInternalError(err))
}

func toTask(req request.TaskRequest) domain.Task {
	task := domain.Task{
		UserID:     *req.UserID,
		Title:      *req.Title,
		IsFinished: *req.IsFinished,
	}
	if req.ID != nil {
		task.ID = *req.ID
	}
	return task
}
