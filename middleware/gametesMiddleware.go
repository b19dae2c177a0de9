package middleware

import (
	"fmt"
	"mendel/api/contexts"
	"mendel/api/models/dtos/errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo"
)

func ValidatePotentialDistinctQueryParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MendelContext)

		distinctQP := c.QueryParam("distinct")
		if len(distinctQP) > 0 {
			distinct, err := strconv.ParseBool(distinctQP)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("Invalid distinct flag %q", distinctQP)))
			}
			gc.DistinctGametes = distinct
		}

		return next(gc)
	}
}
