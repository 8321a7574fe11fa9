package main

import (
	"fithub/config"
	"fithub/database"
	adminRoutes "fithub/routers/adminRoutes"
	applicationRoutes "fithub/routers/applicationRoutes"
	cartRoutes "fithub/routers/cartRoutes"
	classRoutes "fithub/routers/classRoutes"
	paymentRoutes "fithub/routers/paymentRoutes"
	userRoutes "fithub/routers/userRoutes"
	"fithub/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FitHub!")
	})

	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartCartScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
