package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/paulchambaz/illiad/internal/library"
	"github.com/paulchambaz/illiad/internal/models"
	"github.com/paulchambaz/illiad/internal/repositories"
	"github.com/paulchambaz/illiad/internal/shared"
)

// APIHandler serves the authenticated audiobook API: catalog listing, archive
// download, and playback position sync. It implements the [Handler] interface.
//
// The credential endpoints ([APIHandler.Login], [APIHandler.Register]) are
// not part of [APIHandler.Routes]; the caller mounts them explicitly so that
// registration can be left unmounted and the pair can carry rate limiting.
type APIHandler struct {
	audiobooks *repositories.AudiobookRepository
	positions  *repositories.PositionRepository
	accounts   *repositories.AccountRepository
	logger     *log.Logger
}

// NewAPIHandler creates an APIHandler over the given repositories.
func NewAPIHandler(
	audiobooks *repositories.AudiobookRepository,
	positions *repositories.PositionRepository,
	accounts *repositories.AccountRepository,
	logger *log.Logger,
) *APIHandler {
	return &APIHandler{
		audiobooks: audiobooks,
		positions:  positions,
		accounts:   accounts,
		logger:     logger,
	}
}

// Routes returns the method-qualified patterns of the authenticated routes.
func (h *APIHandler) Routes() []string {
	return []string{
		"GET /audiobooks",
		"GET /audiobook/{hash}",
		"GET /audiobook/{hash}/position",
		"POST /audiobook/{hash}/position",
	}
}

// ServeHTTP authenticates the caller via the Auth header, then dispatches to
// the matched route.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.GetByKey(r.Header.Get("Auth"))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, cantAuth())
		return
	}

	hash := r.PathValue("hash")

	switch {
	case r.URL.Path == "/audiobooks":
		h.listAudiobooks(w)
	case hash != "" && r.URL.Path == fmt.Sprintf("/audiobook/%s/position", hash):
		if r.Method == http.MethodPost {
			h.postPosition(w, r, hash, user)
		} else {
			h.getPosition(w, hash, user)
		}
	case hash != "":
		h.getAudiobook(w, hash)
	default:
		writeJSON(w, http.StatusNotFound, notFound())
	}
}

// listAudiobooks writes the full catalog without storage paths.
func (h *APIHandler) listAudiobooks(w http.ResponseWriter) {
	audiobooks, err := h.audiobooks.List()
	if err != nil {
		h.logger.Error("failed to query audiobooks", "error", err)
		writeJSON(w, http.StatusInternalServerError, audiobooksCantQuery())
		return
	}

	writeJSON(w, http.StatusOK, models.Catalog{Audiobooks: audiobooks})
}

// getAudiobook builds and writes the gzip-compressed archive for one audiobook.
//
// The archive is fully materialized before the first response byte, so the
// client never sees a truncated archive with a success status.
func (h *APIHandler) getAudiobook(w http.ResponseWriter, hash string) {
	path, err := h.audiobooks.GetPath(hash)
	if err != nil {
		writeJSON(w, http.StatusNotFound, hashCantQuery())
		return
	}

	data, err := library.BuildArchive(path)
	if err != nil {
		h.logger.Error("failed to build archive", "hash", hash, "error", err)
		writeJSON(w, http.StatusInternalServerError, binaryCantCreate())
		return
	}

	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}

// getPosition writes the caller's last known position for one audiobook.
func (h *APIHandler) getPosition(w http.ResponseWriter, hash, user string) {
	position, err := h.positions.Get(hash, user)
	if errors.Is(err, shared.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, positionCantQuery())
		return
	}
	if err != nil {
		h.logger.Error("failed to query position", "hash", hash, "error", err)
		writeJSON(w, http.StatusInternalServerError, positionCantQuery())
		return
	}

	writeJSON(w, http.StatusOK, position)
}

// postPosition records the caller's position for one audiobook. The most
// recent write for a (audiobook, user) pair always wins.
func (h *APIHandler) postPosition(w http.ResponseWriter, r *http.Request, hash, user string) {
	var position models.Position
	if err := json.NewDecoder(r.Body).Decode(&position); err != nil {
		writeJSON(w, http.StatusBadRequest, positionCantUpdate())
		return
	}

	if err := h.positions.Upsert(hash, user, position); err != nil {
		h.logger.Error("failed to upsert position", "hash", hash, "error", err)
		writeJSON(w, http.StatusInternalServerError, positionCantUpdate())
		return
	}

	writeJSON(w, http.StatusOK, success())
}

// Register creates an account and returns its API key. Mounted only when
// registration is enabled in the configuration.
func (h *APIHandler) Register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeJSON(w, http.StatusBadRequest, cantRegister())
		return
	}

	if credentials.User == "" || credentials.Password == "" {
		writeJSON(w, http.StatusBadRequest, cantRegister())
		return
	}

	key, err := h.accounts.Create(credentials.User, credentials.Password)
	if err != nil {
		h.logger.Warn("registration failed", "user", credentials.User, "error", err)
		writeJSON(w, http.StatusConflict, cantRegister())
		return
	}

	writeJSON(w, http.StatusOK, models.APIKey{Key: key})
}

// Login returns the API key for an existing account.
func (h *APIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeJSON(w, http.StatusBadRequest, cantLogin())
		return
	}

	key, err := h.accounts.Login(credentials.User, credentials.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, cantLogin())
		return
	}

	writeJSON(w, http.StatusOK, models.APIKey{Key: key})
}

// NotFoundHandler answers unmatched routes with the closed not-found Answer
// instead of the stdlib plain-text 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, notFound())
	})
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
