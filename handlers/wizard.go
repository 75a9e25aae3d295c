package handlers

import (
	"errors"
	"net/http"

	"meishimail/models"
	"meishimail/services/intelligence"
	"meishimail/services/wizard"
	"meishimail/utils"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the wizard service over HTTP. One instance serves
// every screen; per-screen handlers live in the sibling files.
type WizardHandler struct {
	Svc *wizard.Service
}

func NewWizardHandler(svc *wizard.Service) *WizardHandler {
	return &WizardHandler{Svc: svc}
}

// sessionID returns the session ID placed on the context by the session
// middleware.
func sessionID(c *gin.Context) string {
	if id, exists := c.Get("sessionID"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// cardOwner parses the :owner path parameter.
func cardOwner(c *gin.Context) (models.CardOwner, bool) {
	owner := models.CardOwner(c.Param("owner"))
	if !owner.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown card owner", "owner must be 'my' or 'partner'")
		return "", false
	}
	return owner, true
}

// respondWizardError maps service failures onto HTTP statuses. Extraction
// and generation failures carry their user-facing Japanese messages through
// to the client; the screen stays retryable.
func respondWizardError(c *gin.Context, err error) {
	var extErr *intelligence.ExtractionError
	if errors.As(err, &extErr) {
		utils.JSONError(c, http.StatusBadGateway, extErr.Message, "")
		return
	}
	var genErr *intelligence.GenerationError
	if errors.As(err, &genErr) {
		utils.JSONError(c, http.StatusBadGateway, intelligence.MsgGenerationFailed, "")
		return
	}

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found or expired", "")
	case errors.Is(err, wizard.ErrMissingRecords):
		utils.JSONError(c, http.StatusConflict, wizard.MsgMissingInfo, "")
	case errors.Is(err, wizard.ErrTooManyServices), errors.Is(err, wizard.ErrServiceTooLong):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
	case errors.Is(err, wizard.ErrUnknownOwner):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
