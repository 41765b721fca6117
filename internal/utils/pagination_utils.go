package utils

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"

	"routemarket/internal/schemas"
)

// ParsePaginationParams extracts the 'offset' and 'limit' parameters from the request's
// query parameters. It provides default values and ensures that the returned values
// are non-negative.
func ParsePaginationParams(c *gin.Context) (int, int) {
	offsetString := c.Query(OffsetParamKey)
	if offsetString == "" {
		offsetString = "0"
	}
	offset, err := strconv.Atoi(offsetString)
	if err != nil || offset < 0 {
		offset = 0
	}

	limitString := c.Query(LimitParamKey)
	if limitString == "" {
		limitString = "10"
	}
	limit, err := strconv.Atoi(limitString)
	if err != nil || limit < 0 {
		limit = 10
	}

	return offset, limit
}

// SendPaginatedResponse sends a paginated HTTP response with the subset of records
// determined by the offset and limit. It handles the slicing of records and constructs
// a response structure that includes pagination details.
func SendPaginatedResponse(c *gin.Context, records interface{}, offset, limit, totalRecords int) {
	v := reflect.ValueOf(records)

	// Check if v is not a slice.
	if v.Kind() != reflect.Slice {
		WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, errors.New("records not a valid list"))
		return
	}

	if offset > v.Len() {
		offset = v.Len()
	}

	end := offset + limit
	if end > v.Len() {
		end = v.Len()
	}

	var subset interface{}
	// subset only if records is not empty
	if v.Len() > 0 {
		subset = v.Slice(offset, end).Interface()
	} else {
		// If the records slice was empty, subset is an empty slice too
		subset = records
	}

	paginationDto := schemas.Pagination{
		Offset:  offset,
		Limit:   limit,
		Records: totalRecords,
	}

	paginatedResponse := schemas.PaginatedResponse{
		Records:    subset,
		Pagination: paginationDto,
	}

	WriteAndLogResponse(c, paginatedResponse, http.StatusOK)
}
