package handlers

import (
	"time"

	"dispatch_service/internal/adapter/http/middleware"
	"dispatch_service/internal/infrastructure/events"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 15 * time.Second

// EventsHandler streams dispatch events of the caller's business as
// server-sent events.
type EventsHandler struct {
	broker    *events.Broker
	heartbeat time.Duration
}

func NewEventsHandler(broker *events.Broker) *EventsHandler {
	return &EventsHandler{broker: broker, heartbeat: heartbeatInterval}
}

// Stream godoc
// @Summary      Live dispatch events (SSE)
// @Tags         events
// @Produce      text/event-stream
// @Param        tech_id  query  string  false  "only events about this technician"
// @Success      200
// @Security     Bearer
// @Router       /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	businessID := middleware.BusinessID(c)
	sub := h.broker.Subscribe(businessID, c.Query("tech_id"))
	defer h.broker.Unsubscribe(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("connected", gin.H{"business_id": businessID, "timestamp": time.Now().UTC()})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub.C:
			if !ok {
				return
			}
			c.SSEvent(string(e.Type), e)
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"timestamp": time.Now().UTC()})
		}
		c.Writer.Flush()
	}
}
