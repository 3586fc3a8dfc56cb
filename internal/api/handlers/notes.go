package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/deva-sh/keepnotes/internal/api/middleware"
	"github.com/deva-sh/keepnotes/internal/notes"
	"github.com/deva-sh/keepnotes/internal/utils"
)

// NoteHandler serves the owner-scoped note endpoints. All routes sit behind
// the auth middleware, so the request context always carries a user.
type NoteHandler struct {
	notes *notes.Manager
}

func NewNoteHandler(mgr *notes.Manager) *NoteHandler {
	return &NoteHandler{notes: mgr}
}

type noteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func decodeNoteInput(r *http.Request) (noteInput, error) {
	var input noteInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&input)
	return input, err
}

// POST /notes and GET /notes
func (h *NoteHandler) Collection(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	switch r.Method {
	case http.MethodPost:
		input, err := decodeNoteInput(r)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid input")
			return
		}
		note, err := h.notes.Create(user.ID, input.Title, input.Content)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Could not create note")
			return
		}
		utils.WriteJSON(w, http.StatusCreated, note)

	case http.MethodGet:
		list, err := h.notes.List(user.ID)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Could not list notes")
			return
		}
		utils.WriteJSON(w, http.StatusOK, list)

	default:
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// PUT /notes/{id} and DELETE /notes/{id}
func (h *NoteHandler) Item(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		// A non-numeric id can never name a note.
		utils.WriteError(w, http.StatusNotFound, "Note not found")
		return
	}
	noteID := uint(id)

	switch r.Method {
	case http.MethodPut:
		input, err := decodeNoteInput(r)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid input")
			return
		}
		note, err := h.notes.Update(user.ID, noteID, input.Title, input.Content)
		switch {
		case err == nil:
			utils.WriteJSON(w, http.StatusOK, note)
		case errors.Is(err, notes.ErrNotFound):
			utils.WriteError(w, http.StatusNotFound, "Note not found")
		default:
			utils.WriteError(w, http.StatusInternalServerError, "Could not update note")
		}

	case http.MethodDelete:
		err := h.notes.Delete(user.ID, noteID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, notes.ErrNotFound):
			utils.WriteError(w, http.StatusNotFound, "Note not found")
		default:
			utils.WriteError(w, http.StatusInternalServerError, "Could not delete note")
		}

	default:
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
