// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"biblio/internal/delivery/http/middleware"
	"biblio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	StudentHandler  *handler.StudentHandler
	BookHandler     *handler.BookHandler
	AuthorHandler   *handler.AuthorHandler
	CategoryHandler *handler.CategoryHandler
	BorrowHandler   *handler.BorrowHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	studentHandler  *handler.StudentHandler
	bookHandler     *handler.BookHandler
	authorHandler   *handler.AuthorHandler
	categoryHandler *handler.CategoryHandler
	borrowHandler   *handler.BorrowHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		studentHandler:  params.StudentHandler,
		bookHandler:     params.BookHandler,
		authorHandler:   params.AuthorHandler,
		categoryHandler: params.CategoryHandler,
		borrowHandler:   params.BorrowHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes
	bookGroup := e.Group("/books")
	{
		bookGroup.GET("", r.bookHandler.ListBooks)
		bookGroup.POST("", r.bookHandler.CreateBook)
		bookGroup.GET("/:id", r.bookHandler.GetBook)
		bookGroup.POST("/:id/toggle-like", r.bookHandler.ToggleLike)
		bookGroup.GET("/:id/reviews", r.bookHandler.ListReviews)
		// Leaving a review requires an authenticated student.
		bookGroup.POST("/:id/reviews", r.bookHandler.CreateReview, r.authMiddleware.Authenticate)
	}

	authorGroup := e.Group("/authors")
	{
		authorGroup.GET("", r.authorHandler.ListAuthors)
		authorGroup.POST("", r.authorHandler.CreateAuthor)
		authorGroup.DELETE("/:id", r.authorHandler.DeleteAuthor)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.POST("", r.categoryHandler.CreateCategory)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoryGroup.PUT("/:id", r.categoryHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	// Student routes
	studentGroup := e.Group("/students")
	{
		studentGroup.POST("", r.studentHandler.CreateStudent)
		studentGroup.GET("/:id", r.studentHandler.GetStudent)
	}

	// Borrow lifecycle routes
	borrowGroup := e.Group("/borrows")
	{
		borrowGroup.GET("", r.borrowHandler.ListBorrows)
		borrowGroup.POST("", r.borrowHandler.CreateBorrow)
		borrowGroup.GET("/:id", r.borrowHandler.GetBorrow)
		borrowGroup.POST("/:id/return", r.borrowHandler.ReturnBook)
	}
}
