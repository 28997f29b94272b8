package book

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"bookshelf/internal/httpx"
)

const (
	msgAdded         = "Buku berhasil ditambahkan"
	msgAddFailed     = "Buku gagal ditambahkan"
	msgUpdated       = "Buku berhasil diperbarui"
	msgDeleted       = "Buku berhasil dihapus"
	msgNotFound      = "Buku tidak ditemukan"
	msgUpdateMissing = "Gagal memperbarui buku. Id tidak ditemukan"
	msgDeleteMissing = "Buku gagal dihapus. Id tidak ditemukan"
	msgBadBody       = "Body request tidak valid"
	msgInternal      = "Terjadi kesalahan pada server"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{bookId}", h.Get)
	mux.HandleFunc("PUT /books/{bookId}", h.Update)
	mux.HandleFunc("DELETE /books/{bookId}", h.Delete)
}

// Create handles POST /books
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if !h.decode(w, r, actionAdd, &in) {
		return
	}

	id, err := h.service.Add(r.Context(), in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.JSONFail(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.logger.ErrorContext(r.Context(), "add book", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONError(w, http.StatusInternalServerError, msgAddFailed)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, msgAdded, map[string]string{"bookId": id})
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param reading query int false "1 for books being read, 0 otherwise"
// @Param finished query int false "1 for finished books, 0 otherwise"
// @Success 200 {object} httpx.Envelope
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	f := Filter{Name: query.Get("name")}
	if query.Has("reading") {
		v := parseFlag(query.Get("reading"))
		f.Reading = &v
	}
	if query.Has("finished") {
		v := parseFlag(query.Get("finished"))
		f.Finished = &v
	}

	books, err := h.service.ListFiltered(r.Context(), f)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "list books", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"books": books})
}

// Get handles GET /books/{bookId}
// @Summary Get a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /books/{bookId} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("bookId"))
	if err != nil {
		h.writeError(w, r, err, msgNotFound)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"book": b})
}

// Update handles PUT /books/{bookId}
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /books/{bookId} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if !h.decode(w, r, actionUpdate, &in) {
		return
	}

	if err := h.service.Update(r.Context(), r.PathValue("bookId"), in); err != nil {
		h.writeError(w, r, err, msgUpdateMissing)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgUpdated, nil)
}

// Delete handles DELETE /books/{bookId}
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /books/{bookId} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("bookId")); err != nil {
		h.writeError(w, r, err, msgDeleteMissing)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgDeleted, nil)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, action string, in *Input) bool {
	err := httpx.DecodeJSON(r, in)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.JSONFail(w, http.StatusRequestEntityTooLarge, action+". Ukuran body request terlalu besar")
		return false
	}
	httpx.JSONFail(w, http.StatusBadRequest, action+". "+msgBadBody)
	return false
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSONFail(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, ErrNotFound):
		httpx.JSONFail(w, http.StatusNotFound, notFoundMsg)
	default:
		h.logger.ErrorContext(r.Context(), "book request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", httpx.RequestIDFrom(r),
		)
		httpx.JSONError(w, http.StatusInternalServerError, msgInternal)
	}
}

// parseFlag treats a query value as a number: zero, blank or non-numeric
// values are false, anything else is true.
func parseFlag(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return false
	}
	return v != 0
}
