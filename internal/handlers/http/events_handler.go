package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/netpro-backend/internal/domain/ports"
	"github.com/rafabene/netpro-backend/internal/handlers/dto"
	"github.com/rafabene/netpro-backend/internal/handlers/middleware"
	"github.com/rafabene/netpro-backend/internal/services"
)

const eventWriteTimeout = 10 * time.Second

// EventsHandler expõe o stream websocket de eventos de permissão, para que
// sessões abertas do SPA recarreguem o snapshot do operador quando um admin
// edita permissões
type EventsHandler struct {
	events   *services.EventBroadcaster
	logger   ports.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler cria um novo EventsHandler
func NewEventsHandler(events *services.EventBroadcaster, logger ports.Logger) *EventsHandler {
	return &EventsHandler{
		events: events,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// A origem já passou pelo CORS do router
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Stream faz o upgrade para websocket e repassa eventos de permissão.
// Exige sessão autenticada; o conteúdo dos eventos não é sensível (apenas
// ids), então não há filtragem por permissão aqui.
func (h *EventsHandler) Stream(c *gin.Context) {
	operator := middleware.CurrentOperator(c)
	if operator == nil {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ch := h.events.Subscribe()
	defer h.events.Unsubscribe(ch)

	h.logger.Debug("event stream opened", "operator_id", operator.ID)

	// Descartar mensagens do cliente e detectar fechamento
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout)); err != nil {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("event stream write failed", "operator_id", operator.ID, "error", err)
				return
			}
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
