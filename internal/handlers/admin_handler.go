package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/sales-intake/internal/dtos"
	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler serves the HR review screen. Every route requires the session
// to be on the admin step.
type AdminHandler struct {
	Sessions *services.SessionStore
	Review   *services.ReviewService
	Digest   *services.DigestService
	logger   *zap.Logger
}

func NewAdminHandler(sessions *services.SessionStore, review *services.ReviewService, digest *services.DigestService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Sessions: sessions, Review: review, Digest: digest, logger: logger.Named("admin")}
}

func (h *AdminHandler) authorize(c *gin.Context) bool {
	s, err := h.Sessions.Get(c.Param("id"))
	if err == nil {
		err = s.RequireAdmin()
	}
	if errors.Is(err, services.ErrWrongStep) {
		c.JSON(http.StatusForbidden, gin.H{"error": "HR login required"})
		return false
	}
	if err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// List is the GET /sessions/:id/applications endpoint
func (h *AdminHandler) List(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	entries := h.Review.List()
	c.JSON(http.StatusOK, gin.H{"total": len(entries), "entries": entries})
}

// Export streams the workbook. An empty log answers 204 with no body.
func (h *AdminHandler) Export(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	var buf bytes.Buffer
	name, err := h.Review.Export(&buf)
	if errors.Is(err, services.ErrNothingToExport) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.logger.Error("export failed", zap.Error(err))
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(name)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ShowDigest is the GET /sessions/:id/applications/:appID/digest endpoint
func (h *AdminHandler) ShowDigest(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	id, err := strconv.ParseInt(c.Param("appID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}
	app, ok := h.Review.Log.Find(id)
	if !ok {
		respondError(c, services.ErrApplicationNotFound)
		return
	}
	text, err := h.Digest.Summarize(c.Request.Context(), app)
	if err != nil {
		if !errors.Is(err, services.ErrDigestDisabled) {
			h.logger.Warn("digest failed", zap.Int64("id", id), zap.Error(err))
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.DigestResponse{ID: id, Digest: text})
}
