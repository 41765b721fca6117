package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"routemarket/internal/schemas"
	"routemarket/internal/utils"
)

// ValidateAndSanitizeStruct binds the JSON body into a fresh instance of the
// given struct type, strips any markup from its string fields and validates
// it. A new instance is allocated per request; binding into the registration
// prototype itself would leak optional fields between requests and race under
// concurrent callers. On any failure the request is aborted with the generic
// bad request error.
func ValidateAndSanitizeStruct(obj interface{}) gin.HandlerFunc {
	objType := reflect.TypeOf(obj)
	if objType.Kind() == reflect.Ptr {
		objType = objType.Elem()
	}

	return func(c *gin.Context) {
		payload := reflect.New(objType).Interface()

		if err := c.ShouldBindJSON(payload); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &schemas.ErrorDTO{Error: *schemas.BadRequest})
			return
		}
		validator := utils.GetValidator()
		// Sanitize the data
		if err := validator.SanitizeData(payload); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &schemas.ErrorDTO{Error: *schemas.BadRequest})
			return
		}

		if err := validator.Validate.Struct(payload); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &schemas.ErrorDTO{Error: *schemas.BadRequest})
			return
		}
		// Set the sanitized object in the context
		c.Set(utils.SanitizedPayloadKey.String(), payload)
		c.Next()
	}
}
