package handlers

import (
	"net/http"

	"meishimail/services/wizard"
	"meishimail/utils"

	"github.com/gin-gonic/gin"
)

// EditCardHandler saves the reviewed contact record. Kana fields come back
// empty after every save; the capture flow is what computes readings.
func (h *WizardHandler) EditCardHandler(c *gin.Context) {
	owner, ok := cardOwner(c)
	if !ok {
		return
	}

	var form wizard.EditForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	next, record, err := h.Svc.SubmitEdit(c.Request.Context(), sessionID(c), owner, form)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record, "next": next})
}
