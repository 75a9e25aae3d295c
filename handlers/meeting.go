package handlers

import (
	"net/http"

	"meishimail/models"
	"meishimail/utils"

	"github.com/gin-gonic/gin"
)

// SetMeetingHandler stores the event/place where the two parties met. The
// email prompt folds it into the opening thanks.
func (h *WizardHandler) SetMeetingHandler(c *gin.Context) {
	var info models.MeetingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	next, err := h.Svc.SetMeeting(c.Request.Context(), sessionID(c), info)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetingInfo": info, "next": next})
}
