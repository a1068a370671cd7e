package http

import (
	"net/http"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/utils"
)

func (h *Handler) deviceInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.camera.Info())
}

func (h *Handler) commandCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.camera.Categories())
}

func (h *Handler) storages(w http.ResponseWriter, r *http.Request) {
	storages, err := h.camera.StorageInfos()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, storages)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("command failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("command refused")
	}
	http.Error(w, err.Error(), status)
}
