package line

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	catalogRepo "yungwing/database/repository/catalog"
)

func welcomeReply() []Message {
	return []Message{TextMessage(
		"歡迎加入永盈養生館！\n" +
			"輸入「預約」查看預約方式\n" +
			"輸入「服務」查看服務項目\n" +
			"輸入「會員」查詢會員資訊")}
}

func bookingReply() []Message {
	return []Message{TextMessage(
		"線上預約請使用我們的預約系統，登入後即可查看每日可預約時段。\n" +
			"營業時間：每日 09:00–21:00\n" +
			"如需更改或取消，請於預約時間兩小時前辦理。")}
}

func fallbackReply() []Message {
	return []Message{TextMessage(
		"您好！請輸入以下關鍵字：\n" +
			"「預約」－ 預約說明\n" +
			"「服務」－ 服務項目與價格\n" +
			"「會員」－ 會員等級與點數")}
}

// memberReply looks the member up by their LINE identity and reports
// level and points, or invites them to register.
func (s *DefaultLineService) memberReply(lineUserID string) []Message {
	if lineUserID == "" {
		return fallbackReply()
	}
	u, err := s.Users.GetByLineUserID(lineUserID)
	if err != nil {
		s.Logger.Error("failed to look up LINE member", zap.Error(err))
		return fallbackReply()
	}
	if u == nil {
		return []Message{TextMessage(
			"您尚未成為會員，請透過預約系統以 LINE 登入即可完成註冊。")}
	}
	return []Message{TextMessage(fmt.Sprintf(
		"%s 您好！\n會員等級：%s\n累積點數：%d 點\n累積消費：NT$%.0f",
		u.Name, u.MemberLevel, u.Points, u.TotalSpent))}
}

// servicesReply renders the active catalogue as a text menu.
func (s *DefaultLineService) servicesReply() []Message {
	services, err := s.Catalog.ListServices("", catalogRepo.ActiveOnly)
	if err != nil {
		s.Logger.Error("failed to list services for LINE reply", zap.Error(err))
		return fallbackReply()
	}
	if len(services) == 0 {
		return []Message{TextMessage("目前沒有可預約的服務項目。")}
	}

	var b strings.Builder
	b.WriteString("服務項目：\n")
	for _, svc := range services {
		fmt.Fprintf(&b, "・%s（%d 分鐘）NT$%.0f\n", svc.Name, svc.Duration, svc.Price)
	}
	b.WriteString("輸入「預約」了解預約方式")
	return []Message{TextMessage(b.String())}
}
