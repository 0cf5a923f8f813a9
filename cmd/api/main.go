package main

import (
	"log"
	"os"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/database"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/handler"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/middleware"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/repository"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	// DATABASE_URL wins; otherwise the DSN is assembled from discrete vars.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")
		dbSslMode := os.Getenv("DB_SSLMODE")

		if dbHost == "" {
			dbHost = "localhost"
		}
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "postgres"
		}
		if dbSslMode == "" {
			dbSslMode = "disable"
		}

		dsn = "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode
	}

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	clientRepo := repository.NewClientRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	clientService := service.NewClientService(clientRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, txManager)

	clientHandler := handler.NewClientHandler(clientService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration: the API is consumed by a browser frontend on a
	// separate origin, so all origins are allowed.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.HeaderRequestID}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	clientHandler.RegisterRoutes(router.Group(""))
	invoiceHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
