package utils

const (
	// NicknameKey is the key for the user nickname used in routing parameters.
	NicknameKey = "nickname"

	// CollectionIdKey is the key for the collection id used in routing parameters.
	CollectionIdKey = "collectionId"

	// RouteIdKey is the key for the route id used in routing parameters.
	RouteIdKey = "routeId"

	// AchievementIdKey is the key for the achievement id used in routing parameters.
	AchievementIdKey = "achievementId"

	// OffsetParamKey is the key for offset used in pagination query parameters.
	OffsetParamKey = "offset"

	// LimitParamKey is the key for limit used in pagination query parameters.
	LimitParamKey = "limit"
)
