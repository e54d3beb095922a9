package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/container"
	"github.com/joshua-takyi/kost/internal/handlers"
	"github.com/joshua-takyi/kost/internal/middleware"
)

type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
	ReleaseMode    bool
}

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, opts Options) *gin.Engine {
	if opts.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics(container.Metrics))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "kost-api",
			})
		})
		v1.GET("/metrics", gin.WrapH(container.Metrics.Handler()))

		// public routes
		v1.POST("/users/register", handlers.CreateUser(container.UserService))
		v1.POST("/users/login", handlers.AuthenticateUser(container.UserService, container.Tokens.TTL(), opts.SecureCookies))
		v1.POST("/users/logout", handlers.Logout())

		v1.GET("/listings", handlers.ListListings(container.ListingService))
		v1.GET("/listings/:id", handlers.GetListing(container.ListingService))
		v1.GET("/reviews/listing/:listing_id", handlers.ListListingReviews(container.ReviewService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Tokens, container.Logger))

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/profile", handlers.GetProfile(container.UserService))
		userRoutes.PUT("/profile", handlers.UpdateProfile(container.UserService))
	}

	listingRoutes := protected.Group("/listings")
	{
		listingRoutes.POST("", handlers.CreateListing(container.ListingService))
		listingRoutes.PATCH("/:id/status", handlers.UpdateListingStatus(container.ListingService))
		listingRoutes.GET("/owner/:owner_id", handlers.ListOwnerListings(container.ListingService))
	}

	roomRoutes := protected.Group("/rooms")
	{
		roomRoutes.GET("/listing/:listing_id", handlers.ListRooms(container.RoomService))
		roomRoutes.POST("", handlers.CreateRoom(container.RoomService))
		roomRoutes.PUT("/:id", handlers.UpdateRoom(container.RoomService))
		roomRoutes.DELETE("/:id", handlers.DeleteRoom(container.RoomService))
	}

	protected.POST("/reviews", handlers.CreateReview(container.ReviewService))

	favRoutes := protected.Group("/favourites")
	{
		favRoutes.GET("", handlers.GetUserFavourites(container.FavouritesService))
		favRoutes.POST("/:listing_id", handlers.AddToFavourites(container.FavouritesService))
		favRoutes.DELETE("/:listing_id", handlers.RemoveFromFavourite(container.FavouritesService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("", handlers.ListAllBookings(container.BookingService))
		bookingRoutes.GET("/user/:user_id", handlers.ListUserBookings(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PATCH("/:id/status", handlers.UpdateBookingStatus(container.BookingService))
	}

	contractRoutes := protected.Group("/contracts")
	{
		contractRoutes.GET("", handlers.ListContracts(container.ContractService))
		contractRoutes.GET("/user/:user_id", handlers.ListUserContracts(container.ContractService))
	}

	transactionRoutes := protected.Group("/transactions")
	{
		transactionRoutes.GET("", handlers.ListTransactions(container.TransactionService))
		transactionRoutes.GET("/user/:user_id", handlers.ListUserTransactions(container.TransactionService))
	}

	messageRoutes := protected.Group("/messages")
	{
		messageRoutes.POST("", handlers.SendMessage(container.MessageService))
		messageRoutes.GET("/rooms", handlers.ListChatRooms(container.MessageService))
		messageRoutes.GET("/:listing_id/:user1_id/:user2_id", handlers.GetThread(container.MessageService))
		messageRoutes.PATCH("/:listing_id/:user_id/read", handlers.MarkThreadRead(container.MessageService))
	}

	return r
}
