package main

import (
	"context"
	"os"
	"zscore/cmd/internal/domain/database"
	"zscore/cmd/internal/domain/database/repository"
	"zscore/cmd/internal/http/handler"
	"zscore/cmd/internal/infrastructure/aws/storage"
	"zscore/cmd/internal/infrastructure/metrics"
	"zscore/cmd/internal/service"
	"zscore/cmd/internal/utils/uid"
	"zscore/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const envVarsPrefix = "/zscore/prod/"

func main() {
	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env, a missing file just means we rely on the process env
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			panic(err)
		}
	}
	setLogLevel(os.Getenv("LOG_LEVEL"))
	uid.InitFromEnv()

	db, err := database.Init()
	if err != nil {
		panic(err)
	}

	// S3 archive, disabled when no bucket is configured
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}
	archive := storage.NewFinancialsArchive(s3Client)
	if !archive.Enabled() {
		log.Info("S3_BUCKET_NAME not set, financials archiving disabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Getting repos
	countryRepo := repository.NewCountryRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	// Getting services
	countryService := service.NewCountryService(countryRepo, validate)
	companyService := service.NewCompanyService(companyRepo, countryRepo, m, validate)
	scoreService := service.NewScoreService(scoreRepo, companyService, archive, m, validate)

	// Getting handlers
	routes := &handler.Routes{
		Countries: handler.NewCountryDefault(countryService),
		Companies: handler.NewCompanyDefault(companyService),
		Scores:    handler.NewScoreDefault(scoreService),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	routes.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}

	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(envVarsPrefix)
	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			log.Fatalf("unable to load prod environment, %v", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := (*param.Name)[prefixLength:]
			value := *param.Value
			enverr := os.Setenv(key, value)
			if enverr != nil {
				log.Fatalf("unable to set environment variable, %v", enverr)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
}
