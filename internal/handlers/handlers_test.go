package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/kost/internal/helpers"
	"github.com/joshua-takyi/kost/internal/middleware"
	"github.com/joshua-takyi/kost/internal/mocks"
	"github.com/joshua-takyi/kost/internal/models"
	"github.com/joshua-takyi/kost/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testClock struct{ now time.Time }

func (c testClock) Now() time.Time { return c.now }

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	router    *gin.Engine
	tokens    *helpers.TokenManager
	bookings  *mocks.BookingRepo
	listings  *mocks.ListingRepo
	messages  *mocks.MessageRepo
	users     *mocks.UserRepo
	publisher *mocks.Publisher
}

func newHarness() *harness {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := &harness{
		tokens:    helpers.NewTokenManager("handler-test-secret-handler-test", time.Hour),
		bookings:  new(mocks.BookingRepo),
		listings:  new(mocks.ListingRepo),
		messages:  new(mocks.MessageRepo),
		users:     new(mocks.UserRepo),
		publisher: new(mocks.Publisher),
	}
	h.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	clock := testClock{now: now}
	bookingSvc := services.NewBookingService(h.bookings, h.listings, clock, h.publisher, nil, logger)
	messageSvc := services.NewMessageService(h.messages, h.listings, h.users, clock, nil, logger)
	userSvc := services.NewUserService(h.users, h.tokens, clock)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	r.POST("/users/login", AuthenticateUser(userSvc, time.Hour, false))

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(h.tokens, logger))
	protected.POST("/bookings", CreateBooking(bookingSvc))
	protected.GET("/bookings", ListAllBookings(bookingSvc))
	protected.GET("/bookings/user/:user_id", ListUserBookings(bookingSvc))
	protected.GET("/bookings/:id", GetBooking(bookingSvc))
	protected.PATCH("/bookings/:id/status", UpdateBookingStatus(bookingSvc))
	protected.POST("/messages", SendMessage(messageSvc))
	protected.GET("/messages/rooms", ListChatRooms(messageSvc))
	protected.GET("/messages/:listing_id/:user1_id/:user2_id", GetThread(messageSvc))

	h.router = r
	return h
}

func (h *harness) do(t *testing.T, method, path, userID, role string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := h.tokens.IssueToken(userID, role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuth_MissingToken(t *testing.T) {
	h := newHarness()
	w := h.do(t, http.MethodGet, "/messages/rooms", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_CookieFallback(t *testing.T) {
	h := newHarness()
	user := primitive.NewObjectID()
	h.messages.On("ListMessagesByParticipant", mock.Anything, user).Return([]*models.Message{}, nil)
	h.listings.On("GetListingNames", mock.Anything, mock.Anything).Return(map[primitive.ObjectID]string{}, nil)
	h.users.On("GetUserNames", mock.Anything, mock.Anything).Return(map[primitive.ObjectID]string{}, nil)

	token, err := h.tokens.IssueToken(user.Hex(), "renter")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/messages/rooms", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateBooking_Created(t *testing.T) {
	h := newHarness()
	renter := primitive.NewObjectID()

	created := &models.Booking{}
	h.bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) { *created = *args.Get(1).(*models.Booking) }).
		Return(created, nil)

	w := h.do(t, http.MethodPost, "/bookings", renter.Hex(), "renter", map[string]interface{}{
		"listing_id":     primitive.NewObjectID().Hex(),
		"room_id":        primitive.NewObjectID().Hex(),
		"start_date":     now.Add(48 * time.Hour).Format(time.RFC3339),
		"duration_count": 2,
		"unit_price":     500000,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(1000000), data["total_due"])
}

func TestCreateBooking_BadPayload(t *testing.T) {
	h := newHarness()
	w := h.do(t, http.MethodPost, "/bookings", primitive.NewObjectID().Hex(), "renter", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestListUserBookings_OtherUserForbidden(t *testing.T) {
	h := newHarness()
	w := h.do(t, http.MethodGet, "/bookings/user/"+primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "renter", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUserBookings_AdminAllowed(t *testing.T) {
	h := newHarness()
	renter := primitive.NewObjectID()
	h.bookings.On("ListBookingsByRenter", mock.Anything, renter).Return([]*models.Booking{}, nil)

	w := h.do(t, http.MethodGet, "/bookings/user/"+renter.Hex(), primitive.NewObjectID().Hex(), "admin", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["data"])
}

func TestListAllBookings(t *testing.T) {
	t.Run("renter is forbidden", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodGet, "/bookings", primitive.NewObjectID().Hex(), "renter", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin sees listing names", func(t *testing.T) {
		h := newHarness()
		listing := primitive.NewObjectID()
		h.bookings.On("ListAllBookings", mock.Anything).Return([]*models.Booking{{
			ID:        primitive.NewObjectID(),
			ListingID: listing,
			Status:    models.BookingConfirmed,
			CreatedAt: now,
		}}, nil)
		h.listings.On("GetListingNames", mock.Anything, mock.Anything).
			Return(map[primitive.ObjectID]string{listing: "Kost Dahlia"}, nil)

		w := h.do(t, http.MethodGet, "/bookings", primitive.NewObjectID().Hex(), "admin", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].([]interface{})
		require.Len(t, data, 1)
		assert.Equal(t, "Kost Dahlia", data[0].(map[string]interface{})["listing_name"])
	})
}

func TestUpdateBookingStatus_StatusCodes(t *testing.T) {
	renter := primitive.NewObjectID()
	listing := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	booking := func(status models.BookingStatus) *models.Booking {
		return &models.Booking{
			ID:        primitive.NewObjectID(),
			RenterID:  renter,
			ListingID: listing,
			Status:    status,
			ExpiresAt: now.Add(time.Hour),
		}
	}

	t.Run("terminal booking conflicts", func(t *testing.T) {
		h := newHarness()
		b := booking(models.BookingCancelled)
		h.bookings.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)

		w := h.do(t, http.MethodPatch, fmt.Sprintf("/bookings/%s/status", b.ID.Hex()), owner.Hex(), "owner", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("renter confirming is forbidden", func(t *testing.T) {
		h := newHarness()
		b := booking(models.BookingPending)
		h.bookings.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
		h.listings.On("GetListingByID", mock.Anything, listing).Return(&models.Listing{ID: listing, OwnerID: owner}, nil)

		w := h.do(t, http.MethodPatch, fmt.Sprintf("/bookings/%s/status", b.ID.Hex()), renter.Hex(), "renter", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown booking", func(t *testing.T) {
		h := newHarness()
		id := primitive.NewObjectID()
		h.bookings.On("GetBookingByID", mock.Anything, id).Return(nil, models.ErrNotFound)

		w := h.do(t, http.MethodPatch, fmt.Sprintf("/bookings/%s/status", id.Hex()), owner.Hex(), "owner", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPatch, "/bookings/nope/status", owner.Hex(), "owner", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure is hidden", func(t *testing.T) {
		h := newHarness()
		id := primitive.NewObjectID()
		h.bookings.On("GetBookingByID", mock.Anything, id).Return(nil, fmt.Errorf("%w: finding booking: socket closed", models.ErrStore))

		w := h.do(t, http.MethodPatch, fmt.Sprintf("/bookings/%s/status", id.Hex()), owner.Hex(), "owner", map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "socket closed")
	})

	t.Run("owner confirms", func(t *testing.T) {
		h := newHarness()
		b := booking(models.BookingPending)
		confirmed := *b
		confirmed.Status = models.BookingConfirmed
		h.bookings.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
		h.listings.On("GetListingByID", mock.Anything, listing).Return(&models.Listing{ID: listing, OwnerID: owner}, nil)
		h.bookings.On("UpdateBookingStatus", mock.Anything, b.ID, models.BookingPending, models.BookingConfirmed, now).Return(&confirmed, nil)

		w := h.do(t, http.MethodPatch, fmt.Sprintf("/bookings/%s/status", b.ID.Hex()), owner.Hex(), "owner", map[string]string{"status": "confirmed"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "confirmed", decode(t, w)["data"].(map[string]interface{})["status"])
	})
}

func TestGetThread_NonParticipantForbidden(t *testing.T) {
	h := newHarness()
	path := fmt.Sprintf("/messages/%s/%s/%s", primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	w := h.do(t, http.MethodGet, path, primitive.NewObjectID().Hex(), "renter", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendMessage_ValidationError(t *testing.T) {
	h := newHarness()
	sender := primitive.NewObjectID()
	w := h.do(t, http.MethodPost, "/messages", sender.Hex(), "renter", map[string]string{
		"receiver_id": sender.Hex(),
		"listing_id":  primitive.NewObjectID().Hex(),
		"message":     "hello me",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_UnknownUserGetsNoCookie(t *testing.T) {
	h := newHarness()
	h.users.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, models.ErrNotFound)

	w := h.do(t, http.MethodPost, "/users/login", "", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "Secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
