package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/jobs"
	"Backend-Adventura-001/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and the background worker are optional; tracking degrades to
	// inline processing without them.
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Client-ID",
		AllowCredentials: false,
	}))

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
