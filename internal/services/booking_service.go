package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/joshua-takyi/kost/internal/events"
	"github.com/joshua-takyi/kost/internal/metrics"
	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxBookingNumberAttempts = 5
	defaultPaymentMethod     = "transfer"
)

// CreateBookingInput holds the fields a renter supplies for a booking.
//
// Defaults: DurationCount 1 when zero or negative, DurationUnit "month",
// PaymentMethod "transfer". EndDate is optional but may not precede StartDate.
type CreateBookingInput struct {
	ListingID     string              `json:"listing_id" validate:"required"`
	RoomID        string              `json:"room_id" validate:"required"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       time.Time           `json:"end_date"`
	DurationCount int                 `json:"duration_count"`
	DurationUnit  models.DurationUnit `json:"duration_unit"`
	UnitPrice     float64             `json:"unit_price" validate:"gte=0"`
	PaymentMethod string              `json:"payment_method" validate:"max=50"`
	Note          string              `json:"note" validate:"max=1000"`
}

func (in *CreateBookingInput) applyDefaults() {
	if in.DurationCount <= 0 {
		in.DurationCount = 1
	}
	if in.DurationUnit == "" {
		in.DurationUnit = models.DurationMonth
	}
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if in.PaymentMethod == "" {
		in.PaymentMethod = defaultPaymentMethod
	}
	in.Note = strings.TrimSpace(in.Note)
}

type BookingService struct {
	bookingsRepo models.BookingRepo
	listings     models.ListingLookup
	clock        Clock
	publisher    EventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

func NewBookingService(
	bookingsRepo models.BookingRepo,
	listings models.ListingLookup,
	clock Clock,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		listings:     listings,
		clock:        clock,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
	}
}

// GenerateBookingNumber builds "BOOK-" + epoch milliseconds + a three digit suffix.
func GenerateBookingNumber(at time.Time, suffix int) string {
	return fmt.Sprintf("BOOK-%d%03d", at.UnixMilli(), suffix%1000)
}

func (bs *BookingService) CreateBooking(ctx context.Context, renterID string, in CreateBookingInput) (*models.Booking, error) {
	renter, err := models.ParseObjectID("renter id", renterID)
	if err != nil {
		return nil, err
	}
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: invalid booking data provided: %v", models.ErrValidation, err)
	}
	listingID, err := models.ParseObjectID("listing_id", in.ListingID)
	if err != nil {
		return nil, err
	}
	roomID, err := models.ParseObjectID("room_id", in.RoomID)
	if err != nil {
		return nil, err
	}

	in.applyDefaults()
	if in.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", models.ErrValidation)
	}
	if !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", models.ErrValidation)
	}
	if !in.DurationUnit.Valid() {
		return nil, fmt.Errorf("%w: unsupported duration_unit %q (expected day, week, month, year)", models.ErrValidation, in.DurationUnit)
	}

	now := bs.clock.Now()
	booking := &models.Booking{
		RenterID:      renter,
		ListingID:     listingID,
		RoomID:        roomID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		DurationCount: in.DurationCount,
		DurationUnit:  in.DurationUnit,
		UnitPrice:     in.UnitPrice,
		AdminFee:      0,
		TotalDue:      in.UnitPrice * float64(in.DurationCount),
		PaymentMethod: in.PaymentMethod,
		Status:        models.BookingPending,
		Note:          in.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(models.BookingHoldPeriod),
	}

	for attempt := 1; attempt <= maxBookingNumberAttempts; attempt++ {
		booking.BookingNumber = GenerateBookingNumber(now, rand.Intn(1000))

		created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
		if err == nil {
			bs.metrics.BookingCreated()
			bs.publish(ctx, events.SubjectBookingCreated, created, "", renterID)
			return created, nil
		}
		if !errors.Is(err, models.ErrConflict) {
			return nil, err
		}
		bs.logger.Warn("Booking number collision, retrying",
			"booking_number", booking.BookingNumber,
			"attempt", attempt,
		)
	}

	return nil, fmt.Errorf("%w: could not allocate a unique booking number", models.ErrStore)
}

// ListByUser returns the renter's bookings, newest first, with expiry applied
// and listing names filled in.
func (bs *BookingService) ListByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	renter, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}

	bookings, err := bs.bookingsRepo.ListBookingsByRenter(ctx, renter)
	if err != nil {
		return nil, err
	}
	return bs.prepareReads(ctx, bookings), nil
}

// ListAll returns every booking, newest first. Admin only.
func (bs *BookingService) ListAll(ctx context.Context, actor Actor) ([]*models.Booking, error) {
	if err := requireAdmin(actor, "bookings"); err != nil {
		return nil, err
	}

	bookings, err := bs.bookingsRepo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return bs.prepareReads(ctx, bookings), nil
}

// prepareReads applies expiry, orders newest first and fills in listing names.
func (bs *BookingService) prepareReads(ctx context.Context, bookings []*models.Booking) []*models.Booking {
	if bookings == nil {
		bookings = []*models.Booking{}
	}

	now := bs.clock.Now()
	listingIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		b.ApplyExpiry(now)
		listingIDs = append(listingIDs, b.ListingID)
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	names := lookupListingNames(ctx, bs.listings, bs.logger, listingIDs)
	for _, b := range bookings {
		b.ListingName = names[b.ListingID]
	}
	return bookings
}

func (bs *BookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	id, err := models.ParseObjectID("booking id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.ApplyExpiry(bs.clock.Now())
	return booking, nil
}

// GetBookingFor returns the booking when actor is its renter, the owner of
// its listing or an admin.
func (bs *BookingService) GetBookingFor(ctx context.Context, bookingID string, actor Actor) (*models.Booking, error) {
	booking, err := bs.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && booking.RenterID.Hex() != actor.ID {
		listing, err := bs.listings.GetListingByID(ctx, booking.ListingID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		if !canManageListing(actor, listing) {
			return nil, fmt.Errorf("%w: not your booking", models.ErrForbidden)
		}
	}

	names := lookupListingNames(ctx, bs.listings, bs.logger, []primitive.ObjectID{booking.ListingID})
	booking.ListingName = names[booking.ListingID]
	return booking, nil
}

// TransitionStatus moves a booking to target on behalf of actor. Terminal
// bookings never move, whatever the target; a pending booking past its hold
// period is stored as expired and rejected the same way.
func (bs *BookingService) TransitionStatus(ctx context.Context, bookingID string, target models.BookingStatus, actor Actor) (*models.Booking, error) {
	id, err := models.ParseObjectID("booking id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := bs.clock.Now()
	if booking.IsExpired(now) {
		if _, err := bs.bookingsRepo.UpdateBookingStatus(ctx, id, models.BookingPending, models.BookingExpired, now); err != nil && !errors.Is(err, models.ErrConflict) {
			bs.logger.Warn("Failed to persist booking expiry", "booking_id", bookingID, "error", err)
		}
		booking.Status = models.BookingExpired
	}

	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: booking %s is already %s", models.ErrInvalidTransition, booking.BookingNumber, booking.Status)
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unsupported status %q", models.ErrValidation, target)
	}
	if err := bs.authorizeTransition(ctx, booking, target, actor); err != nil {
		return nil, err
	}

	previous := booking.Status
	updated, err := bs.bookingsRepo.UpdateBookingStatus(ctx, id, previous, target, now)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("%w: booking %s changed status concurrently", models.ErrInvalidTransition, booking.BookingNumber)
		}
		return nil, err
	}

	bs.metrics.BookingTransitioned(string(target))
	bs.publish(ctx, events.SubjectBookingStatusChanged, updated, previous, actor.ID)
	return updated, nil
}

// authorizeTransition lets admins and the listing owner apply any transition
// and lets the renter cancel their own booking.
func (bs *BookingService) authorizeTransition(ctx context.Context, booking *models.Booking, target models.BookingStatus, actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if target == models.BookingCancelled && booking.RenterID.Hex() == actor.ID {
		return nil
	}

	listing, err := bs.listings.GetListingByID(ctx, booking.ListingID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if canManageListing(actor, listing) {
		return nil
	}
	return fmt.Errorf("%w: only the listing owner or an admin may set a booking to %s", models.ErrForbidden, target)
}

func (bs *BookingService) publish(ctx context.Context, subject string, b *models.Booking, previous models.BookingStatus, actorID string) {
	event := events.BookingEvent{
		BookingID:      b.ID.Hex(),
		BookingNumber:  b.BookingNumber,
		RenterID:       b.RenterID.Hex(),
		ListingID:      b.ListingID.Hex(),
		Status:         string(b.Status),
		PreviousStatus: string(previous),
		ActorID:        actorID,
		OccurredAt:     b.UpdatedAt,
	}
	if err := bs.publisher.Publish(ctx, subject, event); err != nil {
		bs.logger.Warn("Failed to publish booking event", "subject", subject, "booking_id", event.BookingID, "error", err)
	}
}
