package routes

import (
	"github.com/gofiber/fiber/v2"

	"estatehub/internal/handlers"
	"estatehub/internal/middleware"
)

type Deps struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Estates   *handlers.EstateHandler
	Posts     *handlers.PostHandler
	Comments  *handlers.CommentHandler
	Favorites *handlers.FavoriteHandler
}

func Register(app *fiber.App, d Deps) {
	auth := app.Group("/auth")
	auth.Post("/register", d.Auth.Register)
	auth.Post("/login", d.Auth.Login)

	users := app.Group("/users")
	users.Get("/", d.Users.List)
	users.Get("/:id", d.Users.Get)
	users.Put("/:id", middleware.RequireAuth(), d.Users.Update)
	users.Delete("/:id", middleware.RequireAuth(), d.Users.Delete)

	estates := app.Group("/estates")
	estates.Get("/", d.Estates.List)
	estates.Get("/with-owner", d.Estates.ListWithOwner)
	estates.Post("/", middleware.RequireAuth(), d.Estates.Create)
	estates.Get("/:id", d.Estates.Get)
	estates.Put("/:id", middleware.RequireAuth(), d.Estates.Update)
	estates.Delete("/:id", middleware.RequireAuth(), d.Estates.Delete)

	estates.Post("/:estateId/favorite", middleware.RequireAuth(), d.Favorites.Add)
	estates.Delete("/:estateId/favorite", middleware.RequireAuth(), d.Favorites.Remove)
	estates.Get("/:estateId/can-favorite", middleware.RequireAuth(), d.Favorites.CanFavorite)

	posts := app.Group("/posts")
	posts.Get("/", d.Posts.List)
	posts.Get("/with-details", d.Posts.ListWithDetails)
	posts.Post("/", middleware.RequireAuth(), d.Posts.Create)
	posts.Get("/:id", d.Posts.Get)
	posts.Put("/:id", middleware.RequireAuth(), d.Posts.Update)
	posts.Delete("/:id", middleware.RequireAuth(), d.Posts.Delete)

	posts.Post("/:postId/comments", middleware.RequireAuth(), d.Comments.Create)
	posts.Get("/:postId/comments", d.Comments.List)
	posts.Get("/:postId/comments/with-author", d.Comments.ListWithAuthor)

	comments := app.Group("/comments")
	comments.Put("/:commentId", middleware.RequireAuth(), d.Comments.Update)
	comments.Delete("/:commentId", middleware.RequireAuth(), d.Comments.Delete)
}
