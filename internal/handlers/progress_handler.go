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

// ProgressHdl defines the interface for handling achievement progress HTTP requests.
type ProgressHdl interface {
	RecordProgress(c *gin.Context)
	ListProgress(c *gin.Context)
	GetProgress(c *gin.Context)
}

// ProgressHandler provides methods to handle achievement progress HTTP requests.
type ProgressHandler struct {
	StoreManager managers.StoreMgr
}

// NewProgressHandler returns a new ProgressHandler with the provided store manager.
func NewProgressHandler(storeManager *managers.StoreMgr) ProgressHdl {
	return &ProgressHandler{
		StoreManager: *storeManager,
	}
}

// RecordProgress stores the progress from the payload and returns the record
// as stored, with the current progress clamped into the goal's range.
func (handler *ProgressHandler) RecordProgress(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	request := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.RecordProgressRequest)

	err := handler.StoreManager.RecordProgress(nickname, request.AchievementId, request.CurrentProgress, request.TotalProgress)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	record, _ := handler.StoreManager.GetProgress(nickname, request.AchievementId)
	utils.WriteAndLogResponse(ctx, progressToDto(record), http.StatusOK)
}

// ListProgress returns all progress records of the user as a paginated
// response. An unknown nickname yields an empty list.
func (handler *ProgressHandler) ListProgress(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	offset, limit := utils.ParsePaginationParams(ctx)

	progress := handler.StoreManager.ListProgress(nickname)
	records := make([]schemas.ProgressDTO, 0, len(progress))
	for _, record := range progress {
		records = append(records, progressToDto(record))
	}

	utils.SendPaginatedResponse(ctx, records, offset, limit, len(records))
}

// GetProgress returns the user's progress toward a single achievement.
func (handler *ProgressHandler) GetProgress(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	achievementId := ctx.Param(utils.AchievementIdKey)

	if _, found := handler.StoreManager.GetUser(nickname); !found {
		utils.WriteAndLogError(ctx, schemas.UserNotFound, http.StatusNotFound, errors.New("user not found"))
		return
	}

	record, found := handler.StoreManager.GetProgress(nickname, achievementId)
	if !found {
		utils.WriteAndLogError(ctx, schemas.ProgressNotFound, http.StatusNotFound, errors.New("progress not found"))
		return
	}

	utils.WriteAndLogResponse(ctx, progressToDto(record), http.StatusOK)
}

func progressToDto(record store.ProgressRecord) schemas.ProgressDTO {
	return schemas.ProgressDTO{
		AchievementId:   record.AchievementId,
		CurrentProgress: record.CurrentProgress,
		TotalProgress:   record.TotalProgress,
		Completed:       record.Completed(),
	}
}
