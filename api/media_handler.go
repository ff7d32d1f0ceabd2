package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ptroncoso/portfolio-admin/errs"
	"github.com/ptroncoso/portfolio-admin/services"
)

const maxUploadBytes = 10 << 20

// mediaHandler uploads images to object storage. media may be nil when no
// storage is configured; every endpoint then reports offline.
type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	media     *services.MediaStore
}

func newMediaHandler(media *services.MediaStore) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()
	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		media:     media,
	}
}

func (h mediaHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.media == nil {
			h.responder.WriteError(w, errs.NewOfflineOnly("media uploads need object storage"))
			return
		}
		bucket := chi.URLParam(r, "bucket")

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("invalid upload, expected multipart form"))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequest("missing file field"))
			return
		}
		defer file.Close()

		url, err := h.media.Upload(r.Context(), bucket, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			h.logger.Error().Err(err).Str("bucket", bucket).Msg("media upload failed")
			h.responder.WriteError(w, errs.NewRemoteUnavailable(err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{"url": url})
	}
}

func (h mediaHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.media == nil {
			h.responder.WriteError(w, errs.NewOfflineOnly("media deletion needs object storage"))
			return
		}
		var req struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			h.responder.WriteError(w, errs.NewBadRequest("missing media url"))
			return
		}
		if err := h.media.Delete(r.Context(), req.URL); err != nil {
			h.logger.Error().Err(err).Msg("media delete failed")
			h.responder.WriteError(w, errs.NewRemoteUnavailable(err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{"ok": true})
	}
}
