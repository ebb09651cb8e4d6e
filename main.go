package main

import (
	"log"

	"onlynerds/config"
	"onlynerds/database"
	assessmentRoutes "onlynerds/routers/assessmentRoutes"
	authRoutes "onlynerds/routers/authRoutes"
	challengeRoutes "onlynerds/routers/challengeRoutes"
	contestRoutes "onlynerds/routers/contestRoutes"
	courseRoutes "onlynerds/routers/courseRoutes"
	moduleRoutes "onlynerds/routers/moduleRoutes"
	userRoutes "onlynerds/routers/userRoutes"
	"onlynerds/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Keep score reconciled with the vote counters in the background
	utils.StartRankingScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	moduleRoutes.SetupModuleRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	challengeRoutes.SetupChallengeRoutes(app)
	contestRoutes.SetupContestRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
