package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"routemarket/internal/managers"
	"routemarket/internal/schemas"
	"routemarket/internal/store"
	"routemarket/internal/utils"
)

// ModerationHdl defines the interface for handling moderation-related HTTP requests.
type ModerationHdl interface {
	BanUser(c *gin.Context)
	UnbanUser(c *gin.Context)
	ReconcileExpiration(c *gin.Context)
}

// ModerationHandler provides methods to handle moderation-related HTTP requests.
type ModerationHandler struct {
	StoreManager managers.StoreMgr
}

// NewModerationHandler returns a new ModerationHandler with the provided store manager.
func NewModerationHandler(storeManager *managers.StoreMgr) ModerationHdl {
	return &ModerationHandler{
		StoreManager: *storeManager,
	}
}

// BanUser applies a ban of the requested kind to the user. A temporary ban
// expires after the requested number of days, a permanent one never does.
func (handler *ModerationHandler) BanUser(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	request := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.BanRequest)

	err := handler.StoreManager.BanUser(nickname, store.BanKind(request.Kind), request.Duration, request.Reason)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UnbanUser lifts the user's ban regardless of its kind.
func (handler *ModerationHandler) UnbanUser(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)

	if err := handler.StoreManager.UnbanUser(nickname); err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ReconcileExpiration performs the lazy expiry check for the user and reports
// whether this call lifted a lapsed temporary ban.
func (handler *ModerationHandler) ReconcileExpiration(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)

	if _, found := handler.StoreManager.GetUser(nickname); !found {
		utils.WriteAndLogError(ctx, schemas.UserNotFound, http.StatusNotFound, errors.New("user not found"))
		return
	}

	expired := handler.StoreManager.CheckAndReconcileExpiration(nickname)
	utils.WriteAndLogResponse(ctx, &schemas.ReconciliationDTO{Expired: expired}, http.StatusOK)
}
