package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routemarket/internal/schemas"
	"routemarket/internal/utils"
)

func performJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func setupValidationRouter(bound *[]*schemas.CreateCollectionRequest) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/collections", ValidateAndSanitizeStruct(&schemas.CreateCollectionRequest{}), func(c *gin.Context) {
		payload := c.Value(utils.SanitizedPayloadKey.String()).(*schemas.CreateCollectionRequest)
		*bound = append(*bound, payload)
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestValidateAndSanitizeStructAllocatesPerRequest(t *testing.T) {
	var bound []*schemas.CreateCollectionRequest
	router := setupValidationRouter(&bound)

	first := performJSON(router, "/collections", `{"name":"Europe","routeId":"route-7"}`)
	second := performJSON(router, "/collections", `{"name":"Asia"}`)

	require.Equal(t, http.StatusNoContent, first.Code)
	require.Equal(t, http.StatusNoContent, second.Code)
	require.Len(t, bound, 2)

	// The optional field of the first request must not bleed into the second.
	assert.Equal(t, "route-7", bound[0].RouteId)
	assert.Equal(t, "Asia", bound[1].Name)
	assert.Empty(t, bound[1].RouteId)
	assert.NotSame(t, bound[0], bound[1])
}

func TestValidateAndSanitizeStructStripsMarkup(t *testing.T) {
	var bound []*schemas.CreateCollectionRequest
	router := setupValidationRouter(&bound)

	response := performJSON(router, "/collections", `{"name":"<script>alert(1)</script>Europe"}`)

	require.Equal(t, http.StatusNoContent, response.Code)
	require.Len(t, bound, 1)
	assert.Equal(t, "Europe", bound[0].Name)
}

func TestValidateAndSanitizeStructRejectsInvalidPayload(t *testing.T) {
	var bound []*schemas.CreateCollectionRequest
	router := setupValidationRouter(&bound)

	testCases := []struct {
		name string
		body string
	}{
		{"MissingRequiredField", `{"routeId":"route-7"}`},
		{"MalformedJson", `{"name":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response := performJSON(router, "/collections", tc.body)

			assert.Equal(t, http.StatusBadRequest, response.Code)
			assert.Contains(t, response.Body.String(), schemas.BadRequest.Code)
		})
	}
	assert.Empty(t, bound)
}
