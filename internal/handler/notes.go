package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/service"
	"github.com/msomdec/notekeeper/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

const msgNoteNotFound = "Note not found"

// NoteHandler serves the note listing and note mutations.
type NoteHandler struct {
	notes        *service.NoteService
	cookieSecure bool
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes *service.NoteService, cookieSecure bool) *NoteHandler {
	return &NoteHandler{notes: notes, cookieSecure: cookieSecure}
}

// isDatastar reports whether the request was issued by the datastar client.
func isDatastar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}

// HandleList renders one page of the user's notes.
// GET /?page=N
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	page, err := h.notes.List(r.Context(), user.ID, service.ParsePageNumber(r.URL.Query().Get("page")))
	if err != nil {
		slog.Error("list notes", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	msgs := consumeFlash(w, r)
	view.HomePage(user, page, msgs).Render(r.Context(), w)
}

// HandleCreate adds a note from the listing page form.
// POST /notes
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err := h.notes.Create(r.Context(), user.ID, r.FormValue("title"), r.FormValue("body"))
	if err != nil {
		var fe domain.FieldErrors
		if errors.As(err, &fe) {
			redirectWithFlash(w, r, h.cookieSecure, "/", errorMsgs(fe.Messages()...)...)
			return
		}
		slog.Error("create note", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	redirectWithFlash(w, r, h.cookieSecure, "/", successMsg("Note added successfully"))
}

// HandleUpdate edits a note in place. Plain requests get a JSON
// acknowledgment; datastar requests get the re-rendered card over SSE.
// POST /notes/update (note_id, title, body)
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.updateFailed(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	noteID, err := strconv.ParseInt(r.FormValue("note_id"), 10, 64)
	if err != nil {
		h.updateFailed(w, r, http.StatusBadRequest, "Invalid note id.")
		return
	}

	note, err := h.notes.Update(r.Context(), user.ID, noteID, r.FormValue("title"), r.FormValue("body"))
	if err != nil {
		var fe domain.FieldErrors
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.updateFailed(w, r, http.StatusNotFound, msgNoteNotFound)
		case errors.As(err, &fe):
			if isDatastar(r) {
				sse := datastar.NewSSE(w, r)
				sse.PatchElementTempl(view.Messages(errorMsgs(fe.Messages()...)))
				return
			}
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"success": false,
				"error":   fe.Error(),
				"errors":  fe,
			})
		default:
			slog.Error("update note", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	if isDatastar(r) {
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.NoteCard(*note))
		sse.PatchElementTempl(view.Messages([]view.Message{successMsg("Note updated successfully")}))
		return
	}
	setFlash(w, h.cookieSecure, successMsg("Note updated successfully"))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *NoteHandler) updateFailed(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if isDatastar(r) {
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.Messages(errorMsgs(msg)))
		return
	}
	writeError(w, status, msg)
}

// HandleDelete removes a note owned by the user.
// POST /notes/{id}/delete
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	msg := successMsg("Note deleted successfully")
	noteID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		msg = errorMsgs(msgNoteNotFound)[0]
	} else if err := h.notes.Delete(r.Context(), user.ID, noteID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("delete note", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		msg = errorMsgs(msgNoteNotFound)[0]
	}

	if isDatastar(r) {
		setFlash(w, h.cookieSecure, msg)
		sse := datastar.NewSSE(w, r)
		sse.Redirect("/")
		return
	}
	redirectWithFlash(w, r, h.cookieSecure, "/", msg)
}
