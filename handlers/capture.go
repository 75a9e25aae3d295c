package handlers

import (
	"net/http"

	"meishimail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MsgCameraFailure is shown when no usable frame arrived with the request.
const MsgCameraFailure = "カメラから画像を取得できませんでした。"

// StartCaptureRequest selects single- or double-sided capture for one card.
type StartCaptureRequest struct {
	DoubleSided bool `json:"doubleSided"`
}

// CaptureRequest carries one still frame, either as a data URI
// ("data:image/jpeg;base64,...") or as bare base64.
type CaptureRequest struct {
	Image string `json:"image"`
}

// StartCaptureHandler resets the owner's capture flow to its first screen.
func (h *WizardHandler) StartCaptureHandler(c *gin.Context) {
	owner, ok := cardOwner(c)
	if !ok {
		return
	}

	var req StartCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	progress, err := h.Svc.StartCapture(c.Request.Context(), sessionID(c), owner, req.DoubleSided)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// CaptureHandler runs one shutter press: decode the frame, extract, merge
// into the session and tell the client where to go next. Failures leave the
// capture screen in a retryable state; the client just submits another frame.
func (h *WizardHandler) CaptureHandler(c *gin.Context) {
	logger := utils.GetLogger()

	owner, ok := cardOwner(c)
	if !ok {
		return
	}

	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, MsgCameraFailure, err.Error())
		return
	}
	if req.Image == "" {
		utils.JSONError(c, http.StatusBadRequest, MsgCameraFailure, "no image in request")
		return
	}

	frame, err := utils.DecodeCameraImage(req.Image)
	if err != nil {
		logger.Warn("Rejected capture frame", zap.String("owner", string(owner)), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, MsgCameraFailure, err.Error())
		return
	}

	result, err := h.Svc.Capture(c.Request.Context(), sessionID(c), owner, frame)
	if err != nil {
		logger.Error("Capture failed", zap.String("owner", string(owner)), zap.Error(err))
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
