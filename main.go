package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Broannn/BookNest-RestAPI/config"
	"github.com/Broannn/BookNest-RestAPI/controllers"
	"github.com/Broannn/BookNest-RestAPI/data_access"
	"github.com/Broannn/BookNest-RestAPI/middleware"
	"github.com/Broannn/BookNest-RestAPI/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	log.Println("Configuration loaded for environment:", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	authorRepo := data_access.NewAuthorRepository(mongodb)
	genreRepo := data_access.NewGenreRepository(mongodb)
	bookRepo := data_access.NewBookRepository(mongodb)
	bookGenreRepo := data_access.NewBookGenreRepository(mongodb)
	favoriteRepo := data_access.NewUserBookRepository(mongodb, data_access.CollFavorites)
	wishlistRepo := data_access.NewUserBookRepository(mongodb, data_access.CollWishlists)
	alreadyReadRepo := data_access.NewUserBookRepository(mongodb, data_access.CollAlreadyRead)
	critiqueRepo := data_access.NewCritiqueRepository(mongodb)
	bodRepo := data_access.NewBookOfDayRepository(mongodb)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	authorService := services.NewAuthorService(authorRepo)
	genreService := services.NewGenreService(genreRepo)
	bookService := services.NewBookService(bookRepo)
	bookGenreService := services.NewBookGenreService(bookGenreRepo)
	favoriteService := services.NewUserBookService(favoriteRepo)
	wishlistService := services.NewUserBookService(wishlistRepo)
	alreadyReadService := services.NewUserBookService(alreadyReadRepo)
	critiqueService := services.NewCritiqueService(critiqueRepo)
	bodService := services.NewBookOfDayService(bodRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, cfg.BaseURL)
	userController := controllers.NewUserController(userService)
	userBookController := controllers.NewUserBookController(favoriteService, wishlistService, alreadyReadService)
	authorController := controllers.NewAuthorController(authorService, cfg.BaseURL)
	genreController := controllers.NewGenreController(genreService, cfg.BaseURL)
	bookController := controllers.NewBookController(bookService, cfg.BaseURL)
	bookGenreController := controllers.NewBookGenreController(bookGenreService)
	critiqueController := controllers.NewCritiqueController(critiqueService)
	bodController := controllers.NewBookOfDayController(bodService)
	adminController := controllers.NewAdminController(mongodb)

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)

	// Setup Gin router
	r := gin.Default()
	r.Use(setupCORS())

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	api.Use(middleware.RequireJSON())
	{
		users := api.Group("/users")
		{
			users.POST("", authController.Register)
			users.POST("/login", authController.Login)
			users.GET("", userController.List)
			users.GET("/:userId", userController.Get)
			users.PUT("/:userId", authRequired, middleware.RequireSelf("userId"), userController.Update)
			users.DELETE("/:userId", authRequired, middleware.RequireSelf("userId"), userController.Delete)

			users.POST("/:userId/favorites", authRequired, middleware.RequireSelf("userId"), userBookController.MarkFavorite)
			users.GET("/:userId/favorites", userBookController.ListFavorites)
			users.DELETE("/:userId/favorites/:bookId", authRequired, middleware.RequireSelf("userId"), userBookController.RemoveFavorite)

			users.POST("/:userId/wishlist", authRequired, middleware.RequireSelf("userId"), userBookController.AddToWishlist)
			users.GET("/:userId/wishlist", userBookController.ListWishlist)
			users.DELETE("/:userId/wishlist/:bookId", authRequired, middleware.RequireSelf("userId"), userBookController.RemoveFromWishlist)

			users.POST("/:userId/already-read", authRequired, middleware.RequireSelf("userId"), userBookController.MarkAsRead)
			users.GET("/:userId/already-read", userBookController.ListRead)
			users.DELETE("/:userId/already-read/:bookId", authRequired, middleware.RequireSelf("userId"), userBookController.RemoveFromRead)
		}

		authors := api.Group("/authors")
		{
			authors.POST("", authorController.Create)
			authors.GET("", authorController.List)
			authors.GET("/:id", authorController.Get)
			authors.PUT("/:id", authorController.Update)
			authors.DELETE("/:id", authorController.Delete)
		}

		genres := api.Group("/genres")
		{
			genres.POST("", genreController.Create)
			genres.GET("", genreController.List)
			genres.GET("/:id", genreController.Get)
			genres.PUT("/:id", genreController.Update)
			genres.DELETE("/:id", genreController.Delete)
		}

		books := api.Group("/books")
		{
			books.POST("", bookController.Create)
			books.GET("", bookController.List)
			books.GET("/genre/:genreId", bookController.ListByGenre)

			// Book of the day routes come before the parameterized book
			// routes so the static "bod" segment takes priority.
			books.POST("/bod", bodController.Add)
			books.GET("/bod", bodController.List)
			books.DELETE("/bod/:bookOfDayId", bodController.Delete)
			books.POST("/bod/:bookOfDayId/discussions", authRequired, bodController.AddDiscussion)
			books.GET("/bod/:bookOfDayId/discussions", bodController.ListDiscussions)

			critiqueOwner := middleware.RequireOwner("critiqueId", critiqueService.Owner)
			books.PUT("/critiques/:critiqueId", authRequired, critiqueOwner, critiqueController.Update)
			books.DELETE("/critiques/:critiqueId", authRequired, critiqueOwner, critiqueController.Delete)

			books.GET("/:bookId", bookController.Get)
			books.PUT("/:bookId", bookController.Update)
			books.DELETE("/:bookId", bookController.Delete)

			books.POST("/:bookId/genres", bookGenreController.Add)
			books.GET("/:bookId/genres", bookGenreController.List)
			books.DELETE("/:bookId/genres/:genreId", bookGenreController.Remove)

			books.POST("/:bookId/critiques", authRequired, critiqueController.Add)
			books.GET("/:bookId/critiques", critiqueController.ListByBook)
			books.GET("/:bookId/critiques/user/:userId", critiqueController.GetByUserAndBook)

			books.GET("/:bookId/readers", userBookController.ListReaders)
		}
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminToken(cfg.AdminToken))
	{
		admin.POST("/reset", adminController.Reset)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
