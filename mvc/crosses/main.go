package crosses

import (
	"fmt"
	"mendel/api/contexts"
	"mendel/api/models/dtos"
	e "mendel/api/models/dtos/errors"
	"mendel/api/models/presets"
	"mendel/api/mvc"
	"mendel/api/services/genetics"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo"
)

func CrossesCalculate(c echo.Context) error {
	fmt.Printf("[%s] - CrossesCalculate hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	var request dtos.CrossRequestDto
	if bound, err := mvc.BindJson(c, &request); !bound {
		return err
	}

	response, err := gc.CrossService.Calculate(request.Genes, mvc.RetrieveCrossOptions(c))
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func CrossesCalculateBatch(c echo.Context) error {
	fmt.Printf("[%s] - CrossesCalculateBatch hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	var request dtos.BatchCrossRequestDto
	if bound, err := mvc.BindJson(c, &request); !bound {
		return err
	}
	if len(request.Crosses) == 0 {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest("at least one cross is required"))
	}

	results, err := gc.CrossService.CalculateBatch(c.Request().Context(), request.Crosses, mvc.RetrieveCrossOptions(c))
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.BatchCrossResponseDto{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   len(results),
		Results: results,
	})
}

func PresetsGet(c echo.Context) error {
	fmt.Printf("[%s] - PresetsGet hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	return c.JSON(http.StatusOK, dtos.PresetsResponseDto{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   len(gc.Presets),
		Results: gc.Presets,
	})
}

func PresetsCalculate(c echo.Context) error {
	fmt.Printf("[%s] - PresetsCalculate hit!\n", time.Now())
	gc := c.(*contexts.MendelContext)

	name := c.Param("name")
	preset, found := presets.Find(gc.Presets, name)
	if !found {
		return c.JSON(http.StatusNotFound, e.CreateSimpleNotFound(fmt.Sprintf("No preset named %q", name)))
	}

	response, err := gc.CrossService.Calculate(preset.Genes, mvc.RetrieveCrossOptions(c))
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func GenesGetTemplate(c echo.Context) error {
	fmt.Printf("[%s] - GenesGetTemplate hit!\n", time.Now())

	index := 1
	indexQP := c.QueryParam("index")
	if len(indexQP) > 0 {
		parsed, err := strconv.Atoi(indexQP)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(fmt.Sprintf("Invalid index %q", indexQP)))
		}
		index = parsed
	}

	return c.JSON(http.StatusOK, genetics.NewDefaultGene(index))
}
