package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusrecruit/backend/internal/apperror"
	"github.com/campusrecruit/backend/internal/cache"
	"github.com/campusrecruit/backend/internal/config"
	"github.com/campusrecruit/backend/internal/domain/fiber/handler"
	"github.com/campusrecruit/backend/internal/middleware"
	"github.com/campusrecruit/backend/internal/model"
	"github.com/campusrecruit/backend/internal/repository"
	"github.com/campusrecruit/backend/internal/service"
	"github.com/campusrecruit/backend/internal/usecase"
	"github.com/campusrecruit/backend/internal/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: errorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	candidateRepo := repository.NewCandidateRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	mailer := service.NewMailerService()

	decisionUC := usecase.NewDecisionUsecase(decisionRepo, cache.NewDecisionCache(cache.DefaultTTL))
	advancementUC := usecase.NewAdvancementUsecase(applicationRepo, decisionUC, mailer)
	scoreUC := usecase.NewScoreUsecase(scoreRepo, usecase.DefaultAutoSaveDelay)
	summaryUC := usecase.NewSummaryUsecase(evaluationRepo, usecase.DefaultAutoSaveDelay)
	stagingUC := usecase.NewStagingUsecase(applicationRepo, candidateRepo, scoreRepo, evaluationRepo, attendanceRepo, decisionUC)

	handler.NewScoreHandler(scoreUC).RegisterRoutes(app)
	handler.NewDecisionHandler(decisionUC, advancementUC).RegisterRoutes(app)
	handler.NewPipelineHandler(stagingUC, summaryUC).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// errorHandler maps the usecase error taxonomy onto HTTP codes. Validation
// and precondition failures block the action with an actionable message;
// not-found degrades to an empty "not available" view; network failures
// surface as a bad gateway the UI renders as an unsaved badge.
func errorHandler(c *fiber.Ctx, err error) error {
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: ve.Error(),
		}, err)
	}

	var pf *apperror.PreconditionFailure
	if errors.As(err, &pf) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: pf.Error(),
			Details: fiber.Map{"invalid": pf.Invalid},
		}, err)
	}

	var nf *apperror.NotFoundError
	if errors.As(err, &nf) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: nf.Error(),
		}, err)
	}

	var ne *apperror.NetworkError
	if errors.As(err, &ne) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "upstream service unavailable",
		}, err)
	}

	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Candidate{},
		&model.Application{},
		&model.DocumentScore{},
		&model.InterviewEvaluation{},
		&model.Decision{},
		&model.EventAttendance{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
