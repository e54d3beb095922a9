// Package mocks holds testify mocks of the store and broker contracts.
package mocks

import (
	"context"
	"time"

	"github.com/joshua-takyi/kost/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepo struct {
	mock.Mock
}

func (m *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *BookingRepo) ListBookingsByRenter(ctx context.Context, renterID primitive.ObjectID) ([]*models.Booking, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *BookingRepo) ListAllBookings(ctx context.Context) ([]*models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *BookingRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus, at time.Time) (*models.Booking, error) {
	args := m.Called(ctx, id, from, to, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type ListingRepo struct {
	mock.Mock
}

func (m *ListingRepo) GetListingByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *ListingRepo) GetListingNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[primitive.ObjectID]string), args.Error(1)
}

func (m *ListingRepo) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *ListingRepo) ListListings(ctx context.Context, offset, limit int) ([]*models.Listing, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Listing), args.Get(1).(int64), args.Error(2)
}

func (m *ListingRepo) ListListingsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Listing), args.Error(1)
}

func (m *ListingRepo) UpdateListingStatus(ctx context.Context, id primitive.ObjectID, status models.ListingStatus) (*models.Listing, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

type MessageRepo struct {
	mock.Mock
}

func (m *MessageRepo) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MessageRepo) ListThreadMessages(ctx context.Context, listingID, userA, userB primitive.ObjectID) ([]*models.Message, error) {
	args := m.Called(ctx, listingID, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

func (m *MessageRepo) ListMessagesByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*models.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

func (m *MessageRepo) MarkThreadRead(ctx context.Context, listingID, receiverID, senderID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, listingID, receiverID, senderID)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepo struct {
	mock.Mock
}

func (m *UserRepo) GetUserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[primitive.ObjectID]string), args.Error(1)
}

func (m *UserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate, at time.Time) (*models.User, error) {
	args := m.Called(ctx, id, update, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type RoomRepo struct {
	mock.Mock
}

func (m *RoomRepo) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *RoomRepo) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *RoomRepo) ListRoomsByListing(ctx context.Context, listingID primitive.ObjectID) ([]*models.Room, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Room), args.Error(1)
}

func (m *RoomRepo) UpdateRoom(ctx context.Context, id primitive.ObjectID, update models.RoomUpdate) (*models.Room, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *RoomRepo) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ReviewsRepo struct {
	mock.Mock
}

func (m *ReviewsRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *ReviewsRepo) GetReviewsByListing(ctx context.Context, listingID primitive.ObjectID) ([]*models.Review, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

type FavouriteRepo struct {
	mock.Mock
}

func (m *FavouriteRepo) AddToFavourites(ctx context.Context, userID, listingID primitive.ObjectID, at time.Time) (*models.Favourite, error) {
	args := m.Called(ctx, userID, listingID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favourite), args.Error(1)
}

func (m *FavouriteRepo) RemoveFromFavourites(ctx context.Context, userID, listingID primitive.ObjectID, at time.Time) error {
	return m.Called(ctx, userID, listingID, at).Error(0)
}

func (m *FavouriteRepo) GetFavouritesByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Favourite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favourite), args.Error(1)
}

type ContractRepo struct {
	mock.Mock
}

func (m *ContractRepo) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Contract), args.Error(1)
}

func (m *ContractRepo) ListContractsByParty(ctx context.Context, userID primitive.ObjectID) ([]*models.Contract, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Contract), args.Error(1)
}

type TransactionRepo struct {
	mock.Mock
}

func (m *TransactionRepo) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *TransactionRepo) ListTransactionsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}
