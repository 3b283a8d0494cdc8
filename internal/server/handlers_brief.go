package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/joshwakefield/jd-brief/internal/server/middleware"
	"github.com/joshwakefield/jd-brief/internal/storage"
	"github.com/joshwakefield/jd-brief/internal/types"
)

// handleCreateBrief runs the full pipeline for one JD: admission, generation,
// PDF render, upload, share link. The response body is the PDF itself; the
// share link and its expiry ride along as headers.
func (s *Server) handleCreateBrief(w http.ResponseWriter, r *http.Request) {
	var req types.BriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Token check comes first, before validation and any external call
	if !middleware.TokenEqual(req.BotToken, s.botToken) {
		err := &ErrUnauthorized{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	brief, err := s.generator.Generate(r.Context(), req.JDText, req.Role, req.Company)
	if err != nil {
		log.Printf("[server] brief generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := s.renderer.Render(r.Context(), brief)
	if err != nil {
		log.Printf("[server] PDF render failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to render brief")
		return
	}

	now := time.Now().UTC()
	key := storage.NewObjectKey(brief.JDFields.Company, now)

	record, err := s.store.Upload(r.Context(), key, pdf)
	if err != nil {
		log.Printf("[server] upload failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "failed to store brief")
		return
	}

	shareURL, err := s.store.SignedURL(key, 0)
	if err != nil {
		log.Printf("[server] signing failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "failed to create share link")
		return
	}

	filename := storage.Filename(brief.JDFields.Company, brief.JDFields.Role, now)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Share-URL", shareURL)
	w.Header().Set("X-Share-Expires", record.ExpiresAt.Format(time.RFC3339))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(pdf); err != nil {
		log.Printf("[server] failed to write PDF response: %v", err)
	}
}

// handleGetBrief streams a stored brief back to an authenticated caller.
func (s *Server) handleGetBrief(w http.ResponseWriter, r *http.Request) {
	key := storage.KeyFromBasename(r.PathValue("id"))

	rc, err := s.store.Stream(r.Context(), key)
	if err != nil {
		notFound := &ErrArtifactNotFound{Key: key}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("[server] failed to stream %s: %v", key, err)
	}
}

// handleDeleteBrief removes a stored brief.
func (s *Server) handleDeleteBrief(w http.ResponseWriter, r *http.Request) {
	key := storage.KeyFromBasename(r.PathValue("id"))

	if err := s.store.Delete(r.Context(), key); err != nil {
		notFound := &ErrArtifactNotFound{Key: key}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}
