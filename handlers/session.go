package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meishimail/utils"
)

// CreateSessionHandler opens a new wizard session. The returned ID goes into
// the X-Session-ID header on every later request.
func (h *WizardHandler) CreateSessionHandler(c *gin.Context) {
	sess, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		respondWizardError(c, err)
		return
	}
	utils.GetLogger().Info("Wizard session created", zap.String("session", sess.ID))
	c.JSON(http.StatusCreated, sess)
}

// GetSessionHandler returns the full session snapshot. The confirm screen
// and dev tooling read it; nothing here mutates.
func (h *WizardHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Svc.Snapshot(c.Request.Context(), sessionID(c))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// DeleteSessionHandler discards the session.
func (h *WizardHandler) DeleteSessionHandler(c *gin.Context) {
	if err := h.Svc.Discard(c.Request.Context(), sessionID(c)); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "discarded"})
}
