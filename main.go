package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"estatehub/bootstrap"
	"estatehub/configs"
	"estatehub/database"
	_ "estatehub/docs"
	"estatehub/internal/assets"
	"estatehub/internal/handlers"
	"estatehub/internal/middleware"
	"estatehub/internal/repository"
	"estatehub/internal/routes"
	"estatehub/model"
	"estatehub/services"
)

// @title        estatehub API
// @version      1.0
// @description  Real-estate classifieds backend: listings, posts, comments, favorites.
// @BasePath     /
func main() {
	cfg := configs.Load()

	// --- MongoDB Connection ---
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Stores & collaborators ---
	users := repository.NewMongoStore[model.User](db, "users")
	estates := repository.NewMongoStore[model.Estate](db, "estates")
	posts := repository.NewMongoStore[model.Post](db, "posts")
	comments := repository.NewMongoStore[model.Comment](db, "comments")
	reader := repository.NewAggregationReader(db)

	images, err := assets.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	// --- Services ---
	userSvc := services.NewUserService(users)
	estateSvc := services.NewEstateService(estates, users, images)
	postSvc := services.NewPostService(posts, users, estates)
	commentSvc := services.NewCommentService(comments, posts, users)
	favoriteSvc := services.NewFavoriteService(users, estates)
	cascadeSvc := services.NewCascadeService(users, estates, posts, comments, images)

	// --- Fiber App Setup ---
	app := fiber.New()

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))
	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, routes.Deps{
		Auth:      handlers.NewAuthHandler(userSvc, []byte(cfg.JWTSecret)),
		Users:     handlers.NewUserHandler(userSvc, cascadeSvc),
		Estates:   handlers.NewEstateHandler(estateSvc, cascadeSvc, reader),
		Posts:     handlers.NewPostHandler(postSvc, cascadeSvc, reader),
		Comments:  handlers.NewCommentHandler(commentSvc, cascadeSvc, reader),
		Favorites: handlers.NewFavoriteHandler(favoriteSvc),
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
