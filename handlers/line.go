package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yungwing/config"
	lineSvc "yungwing/services/line"
	"yungwing/utils"
)

// LineWebhookHandler receives webhook deliveries from the LINE
// platform. The signature is verified against the raw body before any
// parsing; events are handled off the request goroutine so LINE gets
// its 200 within the delivery deadline.
func LineWebhookHandler(svc *lineSvc.DefaultLineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		signature := c.GetHeader("X-Line-Signature")
		if !lineSvc.ValidateSignature(config.AppConfig.LineChannelSecret, body, signature) {
			utils.GetLogger().Warn("rejected LINE webhook with bad signature")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}

		var req lineSvc.WebhookRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		go func(events []lineSvc.Event) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			defer func() {
				if r := recover(); r != nil {
					utils.GetLogger().Error("panic in LINE event handler", zap.Any("panic", r))
				}
			}()
			svc.HandleEvents(ctx, events)
		}(req.Events)

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
