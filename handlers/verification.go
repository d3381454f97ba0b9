package handlers

import (
	"errors"
	"net/http"
	"time"

	"shramic/services/verification"
	"shramic/utils"

	"github.com/gin-gonic/gin"
)

// VerificationHandler exposes the phone challenge/response flow.
type VerificationHandler struct {
	Manager *verification.Manager
}

// NewVerificationHandler creates a new VerificationHandler instance.
func NewVerificationHandler(manager *verification.Manager) *VerificationHandler {
	return &VerificationHandler{Manager: manager}
}

// StartHandler opens a fresh verification session.
func (h *VerificationHandler) StartHandler(c *gin.Context) {
	session := h.Manager.Open()
	c.JSON(http.StatusOK, session.Snapshot())
}

// RequestCodeHandler dispatches a one-time code to the submitted number.
func (h *VerificationHandler) RequestCodeHandler(c *gin.Context) {
	var req struct {
		SessionID   string `json:"sessionId" binding:"required"`
		PhoneNumber string `json:"phoneNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Manager.Get(req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusGone, "Verification session expired", "Please start over.")
		return
	}

	if err := session.RequestCode(c.Request.Context(), req.PhoneNumber); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// ConfirmCodeHandler confirms the submitted code; on success it returns the
// verified identity plus a session token for the remaining wizard steps.
func (h *VerificationHandler) ConfirmCodeHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Code      string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Manager.Get(req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusGone, "Verification session expired", "Please start over.")
		return
	}

	identity, err := session.ConfirmCode(c.Request.Context(), req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(identity.SubjectID, identity.PhoneNumber, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue session token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"identity": identity,
		"token":    token,
		"session":  session.Snapshot(),
	})
}

// ResendCodeHandler re-dispatches the code once the cooldown has elapsed.
func (h *VerificationHandler) ResendCodeHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Manager.Get(req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusGone, "Verification session expired", "Please start over.")
		return
	}

	if err := session.ResendCode(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// ResetHandler returns the session to the phone-entry step.
func (h *VerificationHandler) ResetHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.Manager.Get(req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusGone, "Verification session expired", "Please start over.")
		return
	}

	session.Reset()
	c.JSON(http.StatusOK, session.Snapshot())
}

// StatusHandler reports the session's current state, including the resend
// cooldown and any self-clearing error message.
func (h *VerificationHandler) StatusHandler(c *gin.Context) {
	session, err := h.Manager.Get(c.Param("sessionId"))
	if err != nil {
		utils.JSONError(c, http.StatusGone, "Verification session expired", "Please start over.")
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// CloseHandler discards an abandoned or completed session.
func (h *VerificationHandler) CloseHandler(c *gin.Context) {
	h.Manager.Close(c.Param("sessionId"))
	c.Status(http.StatusNoContent)
}

func (h *VerificationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, verification.ErrSessionExpired):
		utils.JSONError(c, http.StatusGone, "Verification session expired", "Please request a new code.")
	case errors.Is(err, verification.ErrCooldownActive):
		utils.JSONError(c, http.StatusTooManyRequests, "Please wait before resending", "The resend cooldown has not elapsed.")
	case errors.Is(err, verification.ErrInvalidCode):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid code", "Please check the code and try again.")
	case errors.Is(err, verification.ErrCodeExpired):
		utils.JSONError(c, http.StatusUnauthorized, "Code expired", "Please request a new code.")
	case errors.Is(err, verification.ErrRequestInFlight):
		utils.JSONError(c, http.StatusConflict, "A request is already in progress", "Please wait for it to finish.")
	default:
		var perr *verification.ProviderError
		if errors.As(err, &perr) {
			utils.JSONTransientError(c, http.StatusBadGateway, "Verification provider error", perr.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Verification failed", err.Error())
	}
}
