package http

import (
	"time"

	"breeze/internal/model"
	"breeze/internal/note"
)

type createReq struct {
	Title   string `json:"title"   binding:"required,max=255"`
	Content string `json:"content" binding:"required,max=20000"`
}

type updateReq struct {
	Title   string `json:"title"   binding:"omitempty,max=255"`
	Content string `json:"content" binding:"omitempty,max=20000"`
}

type noteResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type noteItemResp struct {
	Note noteResp `json:"note"`
}

type listResp struct {
	Notes []noteResp `json:"notes"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	ns := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		ns[i] = newNoteResp(n)
	}
	return listResp{Notes: ns}
}
