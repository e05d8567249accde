package main

import (
	"context"
	"os"
	"signifiya/internal/domain/sqlite"
	"signifiya/internal/domain/sqlite/repository"
	handler2 "signifiya/internal/http/handler"
	middleware2 "signifiya/internal/http/middleware"
	"signifiya/internal/infrastructure/aws/identity"
	"signifiya/internal/infrastructure/aws/storage"
	"signifiya/internal/service"
	"signifiya/internal/utils/uid"
	"signifiya/internal/utils/validators"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/signifiya/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	machineID, _ := strconv.ParseInt(os.Getenv("MACHINE_ID"), 10, 64)
	if err := uid.Init(machineID); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init identity provider
	idp, err := identity.NewCognitoProvider()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	passRepo := repository.NewPassRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Getting services
	profileService := service.NewProfileService(userRepo, validate)
	avatarService := service.NewAvatarService(s3Client)
	supportService := service.NewSupportService(issueRepo, newsletterRepo)
	passService := service.NewPassService(passRepo, eventRepo, validate)

	// Getting handlers
	profileRoutes := handler2.NewProfileDefault(profileService)
	avatarRoutes := handler2.NewAvatarDefault(avatarService)
	supportRoutes := handler2.NewSupportDefault(supportService)
	passRoutes := handler2.NewPassDefault(passService)

	authMW := middleware2.NewAuthMiddleware(&middleware2.AuthMiddlewareConfig{
		Identity: idp,
		UserRepo: userRepo,
	})

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))

	// Public: support form and newsletter signup
	e.POST("/api/issues", supportRoutes.SubmitIssue)
	e.POST("/api/newsletter", supportRoutes.SubscribeNewsletter)

	// Signed-in surface
	api := e.Group("/api", authMW)
	api.GET("/profile", profileRoutes.GetProfile)
	api.PATCH("/profile", profileRoutes.UpdateProfile)
	api.POST("/avatars", avatarRoutes.UploadAvatar)
	api.POST("/passes", passRoutes.GeneratePass)
	api.POST("/registrations", passRoutes.RegisterEvent)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("mobileno", validators.MobileNo)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_SSM_REGION")))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
