package main

import (
	"log"
	"os"
	"strconv"

	_ "ugel-backend/api/swagger" // swagger docs
	"ugel-backend/internal/database"
	"ugel-backend/internal/handler"
	"ugel-backend/internal/middleware"
	"ugel-backend/internal/repository"
	"ugel-backend/internal/service"
	"ugel-backend/internal/storage"
	"ugel-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           API Mesa de Partes UGEL
// @version         1.0
// @description     Backend administrativo de la UGEL: registro y seguimiento de trámites, comunicados, convocatorias y documentos.
// @host            localhost:8080
// @BasePath        /api
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
		dbName = "ugel"
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

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Upload storage
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	maxFileSize, _ := strconv.ParseInt(os.Getenv("MAX_FILE_SIZE"), 10, 64)
	store := storage.NewLocal(uploadPath, maxFileSize)

	// Set up dependencies (Repository -> Service -> Handler)
	tramiteRepo := repository.NewTramiteRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	comunicadoRepo := repository.NewComunicadoRepository(db)
	convocatoriaRepo := repository.NewConvocatoriaRepository(db)
	documentoRepo := repository.NewDocumentoRepository(db)

	tramiteService := service.NewTramiteService(tramiteRepo, wsHub)
	authService := service.NewAuthService(usuarioRepo)
	usuarioService := service.NewUsuarioService(usuarioRepo)
	comunicadoService := service.NewComunicadoService(comunicadoRepo, store)
	convocatoriaService := service.NewConvocatoriaService(convocatoriaRepo, store)
	documentoService := service.NewDocumentoService(documentoRepo, store)

	// Initialize Handlers
	tramiteHandler := handler.NewTramiteHandler(tramiteService, store)
	authHandler := handler.NewAuthHandler(authService)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	comunicadoHandler := handler.NewComunicadoHandler(comunicadoService, store)
	convocatoriaHandler := handler.NewConvocatoriaHandler(convocatoriaService, store)
	documentoHandler := handler.NewDocumentoHandler(documentoService, store)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	}
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

	// WebSocket endpoint for the admin dashboard
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Uploaded files are served statically
	router.Static("/uploads", uploadPath)

	// Register API Routes
	api := router.Group("/api")
	tramiteHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)
	usuarioHandler.RegisterRoutes(api)
	comunicadoHandler.RegisterRoutes(api)
	convocatoriaHandler.RegisterRoutes(api)
	documentoHandler.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
