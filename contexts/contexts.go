package contexts

import (
	"mendel/api/models"
	"mendel/api/models/constants"
	"mendel/api/models/dtos"
	"mendel/api/services"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the service singletons and other variables
	MendelContext struct {
		echo.Context
		Config       *models.Config
		CrossService *services.CrossService
		TutorService *services.TutorService
		Presets      []dtos.PresetDto

		// set by middleware
		ViewMode        constants.ViewMode
		DistinctGametes bool
		QuizTopic       constants.QuizTopic
	}
)
