package main

import (
	"log"
	"time"

	"smartscholar/config"
	apiController "smartscholar/controllers/api"
	pageController "smartscholar/controllers/pages"
	"smartscholar/database"
	"smartscholar/middleware"
	"smartscholar/planner"
	"smartscholar/predictor"
	"smartscholar/routers/apiRoutes"
	"smartscholar/routers/pageRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.Fatalf("Failed to open review database: %v", err)
	}
	reviews := database.NewReviewStore(db)

	// a missing or broken model only disables prediction
	model := predictor.Load(cfg.ModelPath, predictor.LoadOptions{
		ModelURL:      cfg.ModelURL,
		FallbackCode:  cfg.EncoderFallbackCode,
		StrictEncoder: cfg.EncoderStrict,
	})
	if err := model.LoadError(); err != nil {
		log.Printf("Failed to load model: %v", err)
	} else {
		log.Printf("Model loaded from %s", cfg.ModelPath)
	}

	plan := planner.Options{RoundHours: cfg.PlanRoundHours}

	engine := html.New(cfg.ViewsDir, ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/static", cfg.PublicDir)

	apiRoutes.SetupAPIRoutes(app, apiController.New(model, reviews, plan))
	pageRoutes.SetupPageRoutes(app, &pageController.Controller{
		Sessions:     middleware.NewSessions(time.Duration(cfg.SessionExpiryHours) * time.Hour),
		Predictor:    model,
		Reviews:      reviews,
		Planner:      plan,
		ContactEmail: cfg.ContactEmail,
	})

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
