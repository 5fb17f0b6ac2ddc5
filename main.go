package main

import (
	"genosplit/api/contexts"
	gam "genosplit/api/middleware"
	"genosplit/api/models"
	serviceInfo "genosplit/api/models/constants/service-info"
	distributionsMvc "genosplit/api/mvc/distributions"
	serviceInfoMvc "genosplit/api/mvc/service-info"
	validationMvc "genosplit/api/mvc/validation"
	"genosplit/api/services"
	"time"

	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tData Directory Path : %s \n"+
		"\tTrain File : %s \n"+
		"\tValidation File : %s \n"+
		"\tTest File : %s \n\n"+

		"\tPartition Concurrency Level : %d\n"+
		"\tRevalidation Interval : %s\n"+
		"\tInvalid Length Sample Size : %d\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Data.Path,
		cfg.Data.TrainFile,
		cfg.Data.ValidationFile,
		cfg.Data.TestFile,
		cfg.Validation.PartitionConcurrencyLevel,
		cfg.Validation.RevalidationInterval,
		cfg.Validation.InvalidLengthSampleSize,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()
	e.Debug = cfg.Debug

	// Service Singletons
	vs := services.NewValidationService(&cfg)
	vs.Init()

	// initial run so the first requests are served from memory
	if run, runErr := vs.Run(context.Background()); runErr != nil {
		fmt.Printf("[%s] - Initial validation %s failed : %v\n", time.Now(), run.Id, runErr)
	} else {
		fmt.Println(run.Overlaps.Summary)
	}

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// -- Override handlers with "custom Genosplit" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.GenosplitContext{
				Context:           c,
				Config:            &cfg,
				ValidationService: vs,
			}
			return h(cc)
		}
	})

	// Global Middleware
	e.Use(gam.ValidatePotentialFormatQueryParameter)

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Validation
	e.GET("/validation/run", validationMvc.RunValidation)
	e.GET("/validation/runs", validationMvc.GetAllValidationRuns)
	e.GET("/validation/latest", validationMvc.GetLatestValidation)

	e.GET("/overlaps", validationMvc.GetOverlaps)
	e.GET("/variants/lengths", validationMvc.GetVariantLengths)

	// -- Distributions
	e.GET("/distributions/:partition", distributionsMvc.GetPartitionDistributions,
		// middleware
		gam.MandatePartitionAttribute)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
