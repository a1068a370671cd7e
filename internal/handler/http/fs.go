package http

import (
	"net/http"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/utils"
)

const itemIDParam = "id"

func (h *Handler) children(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	children, err := h.camera.Children(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, children)
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.camera.Metadata(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, item)
}

func (h *Handler) thumbnail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	data, err := h.camera.Thumbnail(id)
	if err != nil {
		h.metrics.RecordThumbnail(0, false)
		h.writeError(w, r, err)
		return
	}

	h.metrics.RecordThumbnail(len(data), true)
	if _, err = utils.WriteJPEG(w, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("write thumbnail")
	}
}

func (h *Handler) itemID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get(itemIDParam)
	if id == "" {
		h.writeError(w, r, ErrMissingItemID)
		return "", false
	}
	return id, true
}
