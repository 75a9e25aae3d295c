package handlers

import (
	"net/http"

	"meishimail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftRequest carries user edits to the generated draft.
type DraftRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerateEmailHandler composes the draft. Hitting it again regenerates;
// an earlier call still in flight is not cancelled and the last one to
// settle wins.
func (h *WizardHandler) GenerateEmailHandler(c *gin.Context) {
	subject, body, err := h.Svc.ComposeEmail(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.GetLogger().Error("Email generation failed", zap.Error(err))
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": subject, "body": body})
}

// UpdateDraftHandler saves the user's edits to subject and body.
func (h *WizardHandler) UpdateDraftHandler(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.Svc.UpdateDraft(c.Request.Context(), sessionID(c), req.Subject, req.Body); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// SendEmailHandler hands the draft off to the user's mail client as a
// mailto URI. Whether anything is actually sent is out of our sight; the
// confirm screen that follows is informational only.
func (h *WizardHandler) SendEmailHandler(c *gin.Context) {
	uri, next, err := h.Svc.SendEmail(c.Request.Context(), sessionID(c))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mailto": uri, "next": next})
}
