package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/startpage-backend/internal/http/response"
	"github.com/yungbote/startpage-backend/internal/notes"
	"github.com/yungbote/startpage-backend/internal/services"
)

type NotesHandler struct {
	notes  services.NoteService
	export services.ExportService
}

func NewNotesHandler(notes services.NoteService, export services.ExportService) *NotesHandler {
	return &NotesHandler{notes: notes, export: export}
}

type historyView struct {
	Length   int `json:"length"`
	Position int `json:"position"`
}

func notesPayload(st notes.State) gin.H {
	out := gin.H{
		"note":    st.Note,
		"columns": st.Columns,
		"history": historyView{Length: st.HistoryLength, Position: st.HistoryPosition},
		"format":  st.Toolbar,
	}
	if st.Caret != nil {
		out["caret"] = *st.Caret
	}
	return out
}

// GET /api/notes
func (h *NotesHandler) GetNotes(c *gin.Context) {
	response.RespondOK(c, notesPayload(h.notes.State(c.Request.Context())))
}

// PUT /api/notes
// body: { "html": "..." }
func (h *NotesHandler) EditNotes(c *gin.Context) {
	var req struct {
		HTML *string `json:"html"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.HTML == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errOr(err, "html is required"))
		return
	}
	response.RespondOK(c, notesPayload(h.notes.Edit(c.Request.Context(), *req.HTML)))
}

type selectionRequest struct {
	Start  *int   `json:"start"`
	End    *int   `json:"end"`
	Format string `json:"format"`
	Color  string `json:"color"`
}

func bindSelection(c *gin.Context) (selectionRequest, bool) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Start == nil || req.End == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errOr(err, "start and end are required"))
		return req, false
	}
	return req, true
}

// POST /api/notes/format
// body: { "start": 0, "end": 5, "format"?: "bold", "color"?: "yellow" }
func (h *NotesHandler) ApplyFormat(c *gin.Context) {
	req, ok := bindSelection(c)
	if !ok {
		return
	}
	st, err := h.notes.Format(c.Request.Context(), services.FormatRequest{
		Start:  *req.Start,
		End:    *req.End,
		Format: req.Format,
		Color:  req.Color,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, notesPayload(st))
}

// POST /api/notes/format/clear
func (h *NotesHandler) ClearFormat(c *gin.Context) {
	req, ok := bindSelection(c)
	if !ok {
		return
	}
	st, err := h.notes.ClearFormatting(c.Request.Context(), *req.Start, *req.End)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, notesPayload(st))
}

// POST /api/notes/toolbar
// body: { "format"?: "italic", "color"?: "pink" }
func (h *NotesHandler) UpdateToolbar(c *gin.Context) {
	var req struct {
		Format *string `json:"format"`
		Color  *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	tb, err := h.notes.UpdateToolbar(c.Request.Context(), req.Format, req.Color)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"format": tb})
}

// POST /api/notes/undo
func (h *NotesHandler) Undo(c *gin.Context) {
	res, err := h.notes.Undo(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out := notesPayload(res.State)
	out["changed"] = res.Changed
	if res.Message != "" {
		out["message"] = res.Message
	}
	response.RespondOK(c, out)
}

// GET /api/notes/columns
func (h *NotesHandler) GetColumns(c *gin.Context) {
	response.RespondOK(c, gin.H{"columns": h.notes.Columns(c.Request.Context())})
}

// PUT /api/notes/columns
// body: { "columns": "2" }
func (h *NotesHandler) SetColumns(c *gin.Context) {
	var req struct {
		Columns string `json:"columns"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cols, err := h.notes.SetColumns(c.Request.Context(), req.Columns)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"columns": cols})
}

// GET /api/notes/export
func (h *NotesHandler) Export(c *gin.Context) {
	page, err := h.export.PrintableNotes(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="notes.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
