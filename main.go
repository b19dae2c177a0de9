package main

import (
	"fmt"
	"mendel/api/contexts"
	gam "mendel/api/middleware"
	"mendel/api/models"
	"mendel/api/models/dtos"
	"mendel/api/models/presets"
	"mendel/api/mvc/crosses"
	serviceInfo "mendel/api/mvc/service-info"
	"mendel/api/mvc/tutor"
	"mendel/api/services"
	"mendel/api/utils"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Load an optional .env before reading the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println(err)
		os.Exit(2)
	}

	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tMax Genes per Cross : %d\n"+
		"\tLarge Grid Threshold : %d\n"+
		"\tBatch Concurrency Level : %d\n"+
		"\tPresets Path : %s\n\n"+

		"\tTutor Model : %s\n"+
		"\tTutor Base Url : %s\n"+
		"\tTutor Timeout (seconds) : %d\n"+
		"\tTutor API Key Configured : %t\n\n"+

		"\tAuthorization Enabled : %t\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.MaxGenes,
		cfg.Api.LargeGridThreshold,
		cfg.Api.BatchConcurrencyLevel,
		cfg.Api.PresetsPath,
		cfg.Tutor.Model,
		cfg.Tutor.BaseUrl,
		cfg.Tutor.TimeoutSeconds,
		cfg.Tutor.ApiKey != "",
		cfg.AuthX.IsAuthorizationEnabled,
		cfg.Api.Port)
	// --

	// Presets
	crossPresets, err := presets.LoadOrDefault(cfg.Api.PresetsPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	// Service Connections:
	// -- Tutor text generation
	generator := utils.CreateTutorConnection(&cfg)

	e := newServer(&cfg, crossPresets, generator)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}

func newServer(cfg *models.Config, crossPresets []dtos.PresetDto, generator services.TextGenerator) *echo.Echo {
	// Instantiate Server
	e := echo.New()
	e.HideBanner = !cfg.Debug

	// Service Singletons
	az := services.NewAuthzService(cfg)
	cs := services.NewCrossService(cfg)
	ts := services.NewTutorService(generator)

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom Mendel" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.MendelContext{
				Context:      c,
				Config:       cfg,
				CrossService: cs,
				TutorService: ts,
				Presets:      crossPresets,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return serviceInfo.GetWelcome(c)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfo.GetServiceInfo)

	// -- Crosses
	e.POST("/crosses", crosses.CrossesCalculate,
		// middleware
		gam.ValidatePotentialViewModeQueryParameter,
		gam.ValidatePotentialDistinctQueryParameter)
	e.POST("/crosses/batch", crosses.CrossesCalculateBatch,
		// middleware
		gam.ValidatePotentialViewModeQueryParameter,
		gam.ValidatePotentialDistinctQueryParameter)
	e.GET("/crosses/presets", crosses.PresetsGet)
	e.GET("/crosses/presets/:name", crosses.PresetsCalculate,
		// middleware
		gam.ValidatePotentialViewModeQueryParameter,
		gam.ValidatePotentialDistinctQueryParameter)

	// -- Genes
	e.GET("/genes/template", crosses.GenesGetTemplate)

	// -- Tutor
	e.POST("/learn/explain", tutor.LearnExplain,
		// middleware
		az.MandateAuthorizationTokensMiddleware)
	e.GET("/learn/suggestions", tutor.LearnGetSuggestions)

	e.GET("/quiz/topics", tutor.QuizGetTopics)
	e.POST("/quiz/generate", tutor.QuizGenerate,
		// middleware
		az.MandateAuthorizationTokensMiddleware,
		gam.ValidatePotentialQuizTopicQueryParameter)
	e.POST("/quiz/score", tutor.QuizScore)

	return e
}
