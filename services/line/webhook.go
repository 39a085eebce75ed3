package line

import (
	"context"
	"strings"

	"go.uber.org/zap"

	catalogRepo "yungwing/database/repository/catalog"
	userRepo "yungwing/database/repository/user"
	"yungwing/utils"
)

// WebhookRequest is the body LINE posts to the webhook endpoint.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is one webhook event. Only the fields the bot reacts to are
// decoded.
type Event struct {
	Type       string `json:"type"`
	ReplyToken string `json:"replyToken"`
	Timestamp  int64  `json:"timestamp"`
	Source     struct {
		Type   string `json:"type"`
		UserID string `json:"userId"`
	} `json:"source"`
	Message struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
	Postback struct {
		Data string `json:"data"`
	} `json:"postback"`
}

// Replier abstracts the LINE client so the dispatcher can be tested
// without network calls.
type Replier interface {
	Reply(ctx context.Context, replyToken string, messages []Message) error
}

// DefaultLineService handles webhook events from the studio's LINE
// official account.
type DefaultLineService struct {
	Client  Replier
	Users   userRepo.UserRepository
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

// NewDefaultLineService constructs the service with its dependencies.
func NewDefaultLineService(client Replier, users userRepo.UserRepository, catalog catalogRepo.CatalogRepository) *DefaultLineService {
	return &DefaultLineService{
		Client:  client,
		Users:   users,
		Catalog: catalog,
		Logger:  utils.GetLogger().Named("line"),
	}
}

// HandleEvents dispatches every event in a webhook delivery. Individual
// event failures are logged and skipped so one bad event cannot stall
// the batch; LINE retries the whole delivery on a non-200 response.
func (s *DefaultLineService) HandleEvents(ctx context.Context, events []Event) {
	for _, ev := range events {
		var err error
		switch ev.Type {
		case "message":
			err = s.handleMessage(ctx, ev)
		case "follow":
			err = s.reply(ctx, ev.ReplyToken, welcomeReply())
		case "postback":
			err = s.handleText(ctx, ev, ev.Postback.Data)
		case "unfollow":
			// Nothing to reply to; the account just left.
		default:
			s.Logger.Debug("ignoring LINE event", zap.String("type", ev.Type))
		}
		if err != nil {
			s.Logger.Error("failed to handle LINE event",
				zap.String("type", ev.Type), zap.Error(err))
		}
	}
}

func (s *DefaultLineService) handleMessage(ctx context.Context, ev Event) error {
	if ev.Message.Type != "text" {
		return s.reply(ctx, ev.ReplyToken, fallbackReply())
	}
	return s.handleText(ctx, ev, ev.Message.Text)
}

func (s *DefaultLineService) handleText(ctx context.Context, ev Event, text string) error {
	switch {
	case containsAny(text, "預約", "booking", "book"):
		return s.reply(ctx, ev.ReplyToken, bookingReply())
	case containsAny(text, "會員", "member"):
		return s.reply(ctx, ev.ReplyToken, s.memberReply(ev.Source.UserID))
	case containsAny(text, "服務", "service", "menu"):
		return s.reply(ctx, ev.ReplyToken, s.servicesReply())
	default:
		return s.reply(ctx, ev.ReplyToken, fallbackReply())
	}
}

func (s *DefaultLineService) reply(ctx context.Context, replyToken string, messages []Message) error {
	if replyToken == "" || len(messages) == 0 {
		return nil
	}
	return s.Client.Reply(ctx, replyToken, messages)
}

func containsAny(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
