package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"routemarket/internal/managers"
	"routemarket/internal/schemas"
	"routemarket/internal/store"
	"routemarket/internal/utils"
)

// CollectionHdl defines the interface for handling collection-related HTTP requests.
type CollectionHdl interface {
	CreateCollection(c *gin.Context)
	DeleteCollection(c *gin.Context)
	AddRoute(c *gin.Context)
	RemoveRoute(c *gin.Context)
}

// CollectionHandler provides methods to handle collection-related HTTP requests.
type CollectionHandler struct {
	StoreManager managers.StoreMgr
}

// NewCollectionHandler returns a new CollectionHandler with the provided store manager.
func NewCollectionHandler(storeManager *managers.StoreMgr) CollectionHdl {
	return &CollectionHandler{
		StoreManager: *storeManager,
	}
}

// CreateCollection creates a new collection for the user, optionally seeded
// with a single route id from the payload.
func (handler *CollectionHandler) CreateCollection(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	request := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.CreateCollectionRequest)

	collection, err := handler.StoreManager.CreateCollection(nickname, request.Name, request.RouteId)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, collectionToDto(collection), http.StatusCreated)
}

// DeleteCollection removes the collection with the id from the path entirely.
func (handler *CollectionHandler) DeleteCollection(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	collectionId, ok := parseCollectionId(ctx)
	if !ok {
		return
	}

	if err := handler.StoreManager.DeleteCollection(nickname, collectionId); err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddRoute adds the route id from the payload to the collection. Adding a
// route that is already a member succeeds without duplicating it.
func (handler *CollectionHandler) AddRoute(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	request := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.AddRouteRequest)
	collectionId, ok := parseCollectionId(ctx)
	if !ok {
		return
	}

	if err := handler.StoreManager.AddRouteToCollection(nickname, collectionId, request.RouteId); err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemoveRoute removes the route id from the path out of the collection.
// Removing a route that was never a member is reported as a failure.
func (handler *CollectionHandler) RemoveRoute(ctx *gin.Context) {
	nickname := ctx.Param(utils.NicknameKey)
	routeId := ctx.Param(utils.RouteIdKey)
	collectionId, ok := parseCollectionId(ctx)
	if !ok {
		return
	}

	if err := handler.StoreManager.RemoveRouteFromCollection(nickname, collectionId, routeId); err != nil {
		writeStoreError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseCollectionId reads the collection id path parameter. On failure it
// writes the bad request error and reports false.
func parseCollectionId(ctx *gin.Context) (int, bool) {
	collectionId, err := strconv.Atoi(ctx.Param(utils.CollectionIdKey))
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.BadRequest, http.StatusBadRequest, err)
		return 0, false
	}
	return collectionId, true
}

// writeStoreError maps the store's error kinds to their HTTP representation.
func writeStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		utils.WriteAndLogError(ctx, schemas.UserNotFound, http.StatusNotFound, err)
	case errors.Is(err, store.ErrCollectionNotFound):
		utils.WriteAndLogError(ctx, schemas.CollectionNotFound, http.StatusNotFound, err)
	case errors.Is(err, store.ErrRouteNotInCollection):
		utils.WriteAndLogError(ctx, schemas.RouteNotInCollection, http.StatusNotFound, err)
	case errors.Is(err, store.ErrInvalidBanRequest):
		utils.WriteAndLogError(ctx, schemas.InvalidBanRequest, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrInvalidProgress):
		utils.WriteAndLogError(ctx, schemas.InvalidProgress, http.StatusBadRequest, err)
	default:
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
	}
}
