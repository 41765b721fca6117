// Package handlers implements the handlers for the different routes of the server
// to handle the incoming HTTP requests.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"routemarket/internal/managers"
	"routemarket/internal/schemas"
	"routemarket/internal/store"
	"routemarket/internal/utils"
)

// UserHdl defines the interface for handling user-related HTTP requests.
type UserHdl interface {
	CreateUser(c *gin.Context)
	HandleGetUserRequest(c *gin.Context)
	GetUserCollections(c *gin.Context)
}

// UserHandler provides methods to handle user-related HTTP requests.
type UserHandler struct {
	StoreManager managers.StoreMgr
}

// NewUserHandler returns a new UserHandler with the provided store manager.
func NewUserHandler(storeManager *managers.StoreMgr) UserHdl {
	return &UserHandler{
		StoreManager: *storeManager,
	}
}

// CreateUser registers a new user under the nickname from the validated
// payload. The nickname is supplied by the caller; this service performs no
// authentication of its own.
func (handler *UserHandler) CreateUser(ctx *gin.Context) {
	request := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.CreateUserRequest)

	user, err := handler.StoreManager.CreateUser(request.Nickname)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			utils.WriteAndLogError(ctx, schemas.NicknameTaken, http.StatusConflict, err)
			return
		}
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(ctx, userToDto(user), http.StatusCreated)
}

// HandleGetUserRequest returns the user's record including the current ban
// state. A lapsed temporary ban is reconciled first, so a reader never sees
// a ban reported past its expiry.
func (handler *UserHandler) HandleGetUserRequest(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)

	handler.StoreManager.CheckAndReconcileExpiration(nickname)

	user, found := handler.StoreManager.GetUser(nickname)
	if !found {
		utils.WriteAndLogError(ctx, schemas.UserNotFound, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.WriteAndLogResponse(ctx, userToDto(user), http.StatusOK)
}

// GetUserCollections returns the user's collections as a paginated response.
// An unknown nickname yields an empty list; absence is not an error for this read.
func (handler *UserHandler) GetUserCollections(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	offset, limit := utils.ParsePaginationParams(ctx)

	collections := handler.StoreManager.GetUserCollections(nickname)
	records := make([]schemas.CollectionDTO, 0, len(collections))
	for _, collection := range collections {
		records = append(records, collectionToDto(collection))
	}

	utils.SendPaginatedResponse(ctx, records, offset, limit, len(records))
}

func userToDto(user store.User) *schemas.UserDTO {
	dto := &schemas.UserDTO{
		Nickname:  user.Nickname,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		Ban: schemas.BanStateDTO{
			Banned: user.IsBanned,
			Kind:   string(user.BanKind),
			Reason: user.BanReason,
		},
	}
	if user.BanExpiresAt != nil {
		dto.Ban.ExpiresAt = user.BanExpiresAt.Format(time.RFC3339)
	}
	return dto
}

func collectionToDto(collection store.Collection) schemas.CollectionDTO {
	return schemas.CollectionDTO{
		Id:        collection.Id,
		Name:      collection.Name,
		RouteIds:  collection.RouteIds,
		CreatedAt: collection.CreatedAt.Format(time.RFC3339),
	}
}
