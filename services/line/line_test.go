package line

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	catalogRepo "yungwing/database/repository/catalog"
	"yungwing/models"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "channel-secret"
	body := []byte(`{"events":[]}`)

	assert.True(t, ValidateSignature(secret, body, sign(secret, body)))
	assert.False(t, ValidateSignature(secret, body, sign("other-secret", body)))
	assert.False(t, ValidateSignature(secret, []byte(`tampered`), sign(secret, body)))
	assert.False(t, ValidateSignature(secret, body, ""))
	assert.False(t, ValidateSignature("", body, sign("", body)))
}

type fakeReplier struct {
	tokens   []string
	messages [][]Message
}

func (f *fakeReplier) Reply(ctx context.Context, replyToken string, messages []Message) error {
	f.tokens = append(f.tokens, replyToken)
	f.messages = append(f.messages, messages)
	return nil
}

type fakeUsers struct {
	byLineID map[string]*models.User
}

func (f *fakeUsers) Create(u *models.User) error                       { return nil }
func (f *fakeUsers) Update(u *models.User) error                       { return nil }
func (f *fakeUsers) UpdateSetDocument(id string, doc bson.M) error     { return nil }
func (f *fakeUsers) GetByID(id string) (*models.User, error)           { return nil, nil }
func (f *fakeUsers) GetByPhone(phone string) (*models.User, error)     { return nil, nil }
func (f *fakeUsers) GetByLineUserID(id string) (*models.User, error)   { return f.byLineID[id], nil }
func (f *fakeUsers) CountAll() (int64, error)                          { return 0, nil }
func (f *fakeUsers) AddSpendAndPoints(id string, a float64, p int) error { return nil }

func (f *fakeUsers) List(search, level string, page, limit int) ([]models.User, int64, error) {
	return nil, 0, nil
}

type fakeCatalog struct {
	services []models.Service
}

func (f *fakeCatalog) ListServices(category string, active catalogRepo.ActiveFilter) ([]models.Service, error) {
	return f.services, nil
}
func (f *fakeCatalog) GetServiceByID(id string) (*models.Service, error) { return nil, nil }
func (f *fakeCatalog) ListCategories() ([]string, error)                 { return nil, nil }
func (f *fakeCatalog) ListServicesByCategories(c []string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeCatalog) CreateService(svc *models.Service) error { return nil }
func (f *fakeCatalog) UpdateService(id string, doc map[string]interface{}) (*models.Service, error) {
	return nil, nil
}
func (f *fakeCatalog) DeleteService(id string) error { return nil }
func (f *fakeCatalog) ListStaff(active catalogRepo.ActiveFilter) ([]models.Staff, error) {
	return nil, nil
}
func (f *fakeCatalog) GetStaffByID(id string) (*models.Staff, error) { return nil, nil }

func textEvent(text string) Event {
	ev := Event{Type: "message", ReplyToken: "tok-1"}
	ev.Source.UserID = "U123"
	ev.Message.Type = "text"
	ev.Message.Text = text
	return ev
}

func newTestLineService(replier *fakeReplier, users *fakeUsers, catalog *fakeCatalog) *DefaultLineService {
	if users == nil {
		users = &fakeUsers{byLineID: map[string]*models.User{}}
	}
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	return NewDefaultLineService(replier, users, catalog)
}

func TestKeywordRouting(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contains string
	}{
		{"booking keyword zh", "我要預約", "預約"},
		{"booking keyword en", "how to book?", "預約系統"},
		{"services keyword", "有哪些服務", "服務項目"},
		{"fallback", "hello there", "關鍵字"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replier := &fakeReplier{}
			svc := newTestLineService(replier, nil, nil)

			svc.HandleEvents(context.Background(), []Event{textEvent(tt.text)})

			require.Len(t, replier.messages, 1)
			assert.Equal(t, "tok-1", replier.tokens[0])
			assert.Contains(t, replier.messages[0][0].Text, tt.contains)
		})
	}
}

func TestMemberReplyKnownUser(t *testing.T) {
	replier := &fakeReplier{}
	users := &fakeUsers{byLineID: map[string]*models.User{
		"U123": {Name: "林小姐", MemberLevel: models.MemberGold, Points: 188, TotalSpent: 18800},
	}}
	svc := newTestLineService(replier, users, nil)

	svc.HandleEvents(context.Background(), []Event{textEvent("會員資訊")})

	require.Len(t, replier.messages, 1)
	text := replier.messages[0][0].Text
	assert.Contains(t, text, "林小姐")
	assert.Contains(t, text, models.MemberGold)
	assert.Contains(t, text, "188")
}

func TestMemberReplyUnknownUser(t *testing.T) {
	replier := &fakeReplier{}
	svc := newTestLineService(replier, nil, nil)

	svc.HandleEvents(context.Background(), []Event{textEvent("member")})

	require.Len(t, replier.messages, 1)
	assert.Contains(t, replier.messages[0][0].Text, "尚未成為會員")
}

func TestServicesReplyListsCatalogue(t *testing.T) {
	replier := &fakeReplier{}
	catalog := &fakeCatalog{services: []models.Service{
		{Name: "精油按摩", Duration: 60, Price: 1800},
		{Name: "腳底按摩", Duration: 40, Price: 800},
	}}
	svc := newTestLineService(replier, nil, catalog)

	svc.HandleEvents(context.Background(), []Event{textEvent("服務")})

	require.Len(t, replier.messages, 1)
	text := replier.messages[0][0].Text
	assert.Contains(t, text, "精油按摩")
	assert.Contains(t, text, "60 分鐘")
	assert.Contains(t, text, "NT$800")
}

func TestFollowEventSendsWelcome(t *testing.T) {
	replier := &fakeReplier{}
	svc := newTestLineService(replier, nil, nil)

	ev := Event{Type: "follow", ReplyToken: "tok-follow"}
	svc.HandleEvents(context.Background(), []Event{ev})

	require.Len(t, replier.messages, 1)
	assert.Contains(t, replier.messages[0][0].Text, "歡迎")
}

func TestNonTextMessageGetsFallback(t *testing.T) {
	replier := &fakeReplier{}
	svc := newTestLineService(replier, nil, nil)

	ev := Event{Type: "message", ReplyToken: "tok-sticker"}
	ev.Message.Type = "sticker"
	svc.HandleEvents(context.Background(), []Event{ev})

	require.Len(t, replier.messages, 1)
	assert.Contains(t, replier.messages[0][0].Text, "關鍵字")
}
