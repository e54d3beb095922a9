package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/joshua-takyi/kost/internal/metrics"
	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SendMessageInput struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	ListingID  string `json:"listing_id" binding:"required"`
	Body       string `json:"message" binding:"required"`
}

type MessageService struct {
	messagesRepo models.MessageRepo
	listingNames models.ListingNameResolver
	userNames    models.UserNameResolver
	clock        Clock
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

func NewMessageService(
	messagesRepo models.MessageRepo,
	listingNames models.ListingNameResolver,
	userNames models.UserNameResolver,
	clock Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *MessageService {
	return &MessageService{
		messagesRepo: messagesRepo,
		listingNames: listingNames,
		userNames:    userNames,
		clock:        clock,
		metrics:      m,
		logger:       logger,
	}
}

func (ms *MessageService) Send(ctx context.Context, senderID string, in SendMessageInput) (*models.Message, error) {
	sender, err := models.ParseObjectID("sender id", senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := models.ParseObjectID("receiver_id", strings.TrimSpace(in.ReceiverID))
	if err != nil {
		return nil, err
	}
	listing, err := models.ParseObjectID("listing_id", strings.TrimSpace(in.ListingID))
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", models.ErrValidation)
	}
	if sender == receiver {
		return nil, fmt.Errorf("%w: cannot send a message to yourself", models.ErrValidation)
	}

	msg, err := ms.messagesRepo.CreateMessage(ctx, &models.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		ListingID:  listing,
		Body:       body,
		IsRead:     false,
		CreatedAt:  ms.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	ms.metrics.MessageSent()
	ms.logger.Debug("Message sent",
		"message_id", msg.ID.Hex(),
		"listing_id", msg.ListingID.Hex(),
		"sender_id", senderID,
		"receiver_id", msg.ReceiverID.Hex(),
	)
	return msg, nil
}

// ListThread returns the listing's messages between the two users, oldest first.
func (ms *MessageService) ListThread(ctx context.Context, listingID, userAID, userBID string) ([]*models.Message, error) {
	listing, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return nil, err
	}
	userA, err := models.ParseObjectID("first user id", userAID)
	if err != nil {
		return nil, err
	}
	userB, err := models.ParseObjectID("second user id", userBID)
	if err != nil {
		return nil, err
	}

	messages, err := ms.messagesRepo.ListThreadMessages(ctx, listing, userA, userB)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*models.Message{}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

// ListRoomsForUser returns one conversation thread per (listing, counterpart)
// the user has exchanged messages about, most recent first.
func (ms *MessageService) ListRoomsForUser(ctx context.Context, userID string) ([]models.ConversationThread, error) {
	viewer, err := models.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}

	messages, err := ms.messagesRepo.ListMessagesByParticipant(ctx, viewer)
	if err != nil {
		return nil, err
	}

	listingIDs := make([]primitive.ObjectID, 0, len(messages))
	userIDs := make([]primitive.ObjectID, 0, 2*len(messages))
	for _, msg := range messages {
		listingIDs = append(listingIDs, msg.ListingID)
		userIDs = append(userIDs, msg.SenderID, msg.ReceiverID)
	}

	listingNames, err := ms.listingNames.GetListingNames(ctx, listingIDs)
	if err != nil {
		return nil, err
	}
	userNames, err := ms.userNames.GetUserNames(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	threads := BuildConversationThreads(viewer, messages, listingNames, userNames)
	ms.logger.Debug("Conversation threads built",
		"user_id", userID,
		"messages", len(messages),
		"threads", len(threads),
	)
	return threads, nil
}

// MarkThreadRead flags every message the counterpart sent the viewer about
// the listing as read and returns how many changed.
func (ms *MessageService) MarkThreadRead(ctx context.Context, listingID, viewerID, counterpartID string) (int64, error) {
	listing, err := models.ParseObjectID("listing id", listingID)
	if err != nil {
		return 0, err
	}
	viewer, err := models.ParseObjectID("user id", viewerID)
	if err != nil {
		return 0, err
	}
	counterpart, err := models.ParseObjectID("counterpart id", counterpartID)
	if err != nil {
		return 0, err
	}
	return ms.messagesRepo.MarkThreadRead(ctx, listing, viewer, counterpart)
}

type threadKey struct {
	listing     primitive.ObjectID
	counterpart primitive.ObjectID
}

// BuildConversationThreads folds the viewer's messages into one thread per
// (listing, counterpart). Messages are ordered newest first before the fold;
// equal timestamps keep their input order, so callers pass them later-stored
// first. The first message seen for a key becomes the thread's last message.
// Messages whose listing or either party has no resolved name are skipped.
func BuildConversationThreads(
	viewer primitive.ObjectID,
	messages []*models.Message,
	listingNames map[primitive.ObjectID]string,
	userNames map[primitive.ObjectID]string,
) []models.ConversationThread {
	ordered := make([]*models.Message, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	index := make(map[threadKey]int)
	threads := make([]models.ConversationThread, 0)

	for _, msg := range ordered {
		if msg == nil || msg.SenderID == msg.ReceiverID {
			continue
		}
		if msg.SenderID != viewer && msg.ReceiverID != viewer {
			continue
		}
		listingName, ok := listingNames[msg.ListingID]
		if !ok {
			continue
		}
		if _, ok := userNames[msg.SenderID]; !ok {
			continue
		}
		if _, ok := userNames[msg.ReceiverID]; !ok {
			continue
		}

		counterpart := msg.ReceiverID
		if msg.ReceiverID == viewer {
			counterpart = msg.SenderID
		}
		key := threadKey{listing: msg.ListingID, counterpart: counterpart}

		pos, seen := index[key]
		if !seen {
			pos = len(threads)
			index[key] = pos
			threads = append(threads, models.ConversationThread{
				ListingID:      msg.ListingID,
				ListingName:    listingName,
				OtherUserID:    counterpart,
				OtherUserName:  userNames[counterpart],
				LastMessage:    msg.Body,
				LastMessageAt:  msg.CreatedAt,
				LastSenderID:   msg.SenderID,
				LastReceiverID: msg.ReceiverID,
			})
		}
		if msg.ReceiverID == viewer && !msg.IsRead {
			threads[pos].UnreadCount++
		}
	}
	return threads
}
