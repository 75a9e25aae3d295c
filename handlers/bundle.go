// File: meishimail/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Session endpoints.
	CreateSessionHandler gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	DeleteSessionHandler gin.HandlerFunc

	// Capture endpoints.
	StartCaptureHandler gin.HandlerFunc
	CaptureHandler      gin.HandlerFunc

	// Review/edit endpoints.
	EditCardHandler   gin.HandlerFunc
	SetMeetingHandler gin.HandlerFunc

	// Email endpoints.
	GenerateEmailHandler gin.HandlerFunc
	UpdateDraftHandler   gin.HandlerFunc
	SendEmailHandler     gin.HandlerFunc
}

// NewHandlerBundle wires the wizard handler's methods into a bundle.
func NewHandlerBundle(wh *WizardHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateSessionHandler: wh.CreateSessionHandler,
		GetSessionHandler:    wh.GetSessionHandler,
		DeleteSessionHandler: wh.DeleteSessionHandler,
		StartCaptureHandler:  wh.StartCaptureHandler,
		CaptureHandler:       wh.CaptureHandler,
		EditCardHandler:      wh.EditCardHandler,
		SetMeetingHandler:    wh.SetMeetingHandler,
		GenerateEmailHandler: wh.GenerateEmailHandler,
		UpdateDraftHandler:   wh.UpdateDraftHandler,
		SendEmailHandler:     wh.SendEmailHandler,
	}
}
