package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/upload"
	"backend/internal/websocket"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Vehicle Service Center API
// @version         1.0
// @description     Multi-branch vehicle service center management: accounts, branches, vehicle catalog, accessories, services and appointments.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

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

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	saver, err := upload.NewSaver(uploadDir)
	if err != nil {
		log.Fatalf("Upload directory setup failed: %v", err)
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	accessoryRepo := repository.NewAccessoryRepository(db)
	serviceSystemRepo := repository.NewServiceSystemRepository(db)
	vehicleModelRepo := repository.NewVehicleModelRepository(db)
	vehiclesSystemRepo := repository.NewVehiclesSystemRepository(db)
	vehiclesCustomerRepo := repository.NewVehiclesCustomerRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, branchRepo)
	branchService := service.NewBranchService(branchRepo)
	accessoryService := service.NewAccessoryService(accessoryRepo)
	serviceSystemService := service.NewServiceSystemService(serviceSystemRepo, branchRepo, txManager)
	vehiclesSystemService := service.NewVehiclesSystemService(vehiclesSystemRepo, vehicleModelRepo)
	vehiclesCustomerService := service.NewVehiclesCustomerService(vehiclesCustomerRepo, vehiclesSystemRepo, userRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo, serviceSystemRepo, branchRepo, wsHub)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, saver)
	branchHandler := handler.NewBranchHandler(branchService, saver)
	accessoryHandler := handler.NewAccessoryHandler(accessoryService, saver)
	serviceSystemHandler := handler.NewServiceSystemHandler(serviceSystemService, saver)
	vehiclesSystemHandler := handler.NewVehiclesSystemHandler(vehiclesSystemService, saver)
	vehiclesCustomerHandler := handler.NewVehiclesCustomerHandler(vehiclesCustomerService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint (staff appointment feed)
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, db, middleware.GetJWTSecret())
	})

	// Uploaded images
	router.Static("/uploads", uploadDir)

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""), userRepo)
	branchHandler.RegisterRoutes(router.Group(""), userRepo)
	accessoryHandler.RegisterRoutes(router.Group(""), userRepo)
	serviceSystemHandler.RegisterRoutes(router.Group(""), userRepo)
	vehiclesSystemHandler.RegisterRoutes(router.Group(""), userRepo)
	vehiclesCustomerHandler.RegisterRoutes(router.Group(""), userRepo)
	appointmentHandler.RegisterRoutes(router.Group(""), userRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
