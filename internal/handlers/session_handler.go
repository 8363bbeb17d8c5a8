package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/sales-intake/internal/dtos"
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/justsurfingit/sales-intake/internal/services"
	"go.uber.org/zap"
)

// SessionHandler maps the candidate's form intents onto server-side sessions.
type SessionHandler struct {
	Sessions *services.SessionStore
	logger   *zap.Logger
}

func NewSessionHandler(sessions *services.SessionStore, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Sessions: sessions, logger: logger.Named("http")}
}

func (h *SessionHandler) session(c *gin.Context) (*services.Session, bool) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return s, true
}

// apply runs one intent and answers with the resulting view
func (h *SessionHandler) apply(c *gin.Context, intent func(s *services.Session) error) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := intent(s); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// Create is the POST /sessions endpoint
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.Sessions.Create()
	c.JSON(http.StatusCreated, s.View())
}

func (h *SessionHandler) Get(c *gin.Context) {
	h.apply(c, func(*services.Session) error { return nil })
}

func (h *SessionHandler) UpdateField(c *gin.Context) {
	var req dtos.FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.apply(c, func(s *services.Session) error {
		return s.SetField(models.Field(req.Field), req.Value)
	})
}

func (h *SessionHandler) ToggleSalesType(c *gin.Context) {
	h.apply(c, func(s *services.Session) error {
		return s.ToggleSalesType(models.SalesTypeID(c.Param("type")))
	})
}

func (h *SessionHandler) AddLanguage(c *gin.Context) {
	var req dtos.AddLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.apply(c, func(s *services.Session) error { return s.AddLanguage(req.ID) })
}

func (h *SessionHandler) SetLanguageLevel(c *gin.Context) {
	var req dtos.LanguageLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.apply(c, func(s *services.Session) error {
		return s.SetLanguageLevel(c.Param("lang"), models.Level(req.Level))
	})
}

func (h *SessionHandler) RemoveLanguage(c *gin.Context) {
	h.apply(c, func(s *services.Session) error { return s.RemoveLanguage(c.Param("lang")) })
}

// Submit is the POST /sessions/:id/submit endpoint. It waits for the remote
// send unless the client goes away first; the send itself carries on.
func (h *SessionHandler) Submit(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	done, err := s.Submit()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "session": s.View()})
		return
	}

	select {
	case err := <-done:
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to deliver application: " + err.Error(), "session": s.View()})
			return
		}
		c.JSON(http.StatusOK, s.View())
	case <-c.Request.Context().Done():
		h.logger.Info("client left before delivery finished", zap.String("session", s.ID))
	}
}

func (h *SessionHandler) OpenLogin(c *gin.Context) {
	h.apply(c, func(s *services.Session) error { return s.OpenLogin() })
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}
	granted, err := s.Login(req.Passphrase)
	if err != nil {
		respondError(c, err)
		return
	}
	if !granted {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong passphrase", "session": s.View()})
		return
	}
	c.JSON(http.StatusOK, s.View())
}

func (h *SessionHandler) Back(c *gin.Context) {
	h.apply(c, func(s *services.Session) error { return s.Back() })
}

func (h *SessionHandler) StartOver(c *gin.Context) {
	h.apply(c, func(s *services.Session) error { return s.StartOver() })
}
