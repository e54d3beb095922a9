package container

import (
	"log/slog"

	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/metrics"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Tokens  *helpers.TokenManager

	MongoDBClient *mongo.Client
	Repo          *models.MongodbRepo

	UserService        *services.UserService
	ListingService     *services.ListingService
	RoomService        *services.RoomService
	BookingService     *services.BookingService
	MessageService     *services.MessageService
	ReviewService      *services.ReviewService
	FavouritesService  *services.FavouriteService
	ContractService    *services.ContractService
	TransactionService *services.TransactionService
}

// NewContainer creates a new dependency injection container. cache and
// publisher may be the no-op implementations when Redis or NATS is not configured.
func NewContainer(
	logger *slog.Logger,
	mongoDBClient *mongo.Client,
	dbName string,
	cache models.ListingCache,
	publisher services.EventPublisher,
	tokens *helpers.TokenManager,
	m *metrics.Metrics,
) *Container {
	clock := services.SystemClock()
	repo := models.MongodbNewRepo(mongoDBClient, dbName)

	return &Container{
		Logger:             logger,
		Metrics:            m,
		Tokens:             tokens,
		MongoDBClient:      mongoDBClient,
		Repo:               repo,
		UserService:        services.NewUserService(repo, tokens, clock),
		ListingService:     services.NewListingService(repo, cache, clock, logger),
		RoomService:        services.NewRoomService(repo, repo, clock),
		BookingService:     services.NewBookingService(repo, repo, clock, publisher, m, logger),
		MessageService:     services.NewMessageService(repo, repo, repo, clock, m, logger),
		ReviewService:      services.NewReviewService(repo, clock),
		FavouritesService:  services.NewFavouriteService(repo, clock),
		ContractService:    services.NewContractService(repo, repo, logger),
		TransactionService: services.NewTransactionService(repo, repo, logger),
	}
}
