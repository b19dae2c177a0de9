package middleware

import (
	"fmt"
	"mendel/api/contexts"
	viewMode "mendel/api/models/constants/view-mode"
	"mendel/api/models/dtos/errors"
	"net/http"

	"github.com/labstack/echo"
)

func ValidatePotentialViewModeQueryParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MendelContext)

		gc.ViewMode = viewMode.Both
		viewQP := c.QueryParam("view")
		if len(viewQP) > 0 {
			if !viewMode.IsKnownViewMode(viewQP) {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("Invalid view %q; expected genotype, phenotype or both", viewQP)))
			}
			gc.ViewMode = viewMode.CastToViewMode(viewQP)
		}

		return next(gc)
	}
}
