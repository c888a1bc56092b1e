package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/types"
)

// ContextURL is the gin context key under which the URL middleware stores
// the base URL used to construct resource links.
const ContextURL = "spendwise-url"

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(io.EOF, err) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ParseID parses the URI parameter as UUID.
func ParseID(c *gin.Context, param string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}

// ParseAccount parses the mandatory "account" query parameter.
func ParseAccount(c *gin.Context) (uuid.UUID, error) {
	parsed, err := uuid.Parse(c.Query("account"))
	if err != nil {
		return uuid.Nil, ErrAccountNotSet
	}

	return parsed, nil
}

// ParseAccountMonth parses the query parameters shared by all reports.
func ParseAccountMonth(c *gin.Context) (uuid.UUID, types.Month, error) {
	accountID, err := ParseAccount(c)
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	month, err := ParseMonth(c)
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	return accountID, month, nil
}

// ParseMonth parses the optional "month" query parameter in YYYY-MM format.
// The zero Month is returned when the parameter is not set.
func ParseMonth(c *gin.Context) (types.Month, error) {
	value := c.Query("month")
	if value == "" {
		return types.Month{}, nil
	}

	month, err := types.ParseMonth(value)
	if err != nil {
		return types.Month{}, ErrInvalidMonth
	}

	return month, nil
}
