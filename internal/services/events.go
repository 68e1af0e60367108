package services

import (
	"sync"

	"github.com/rafabene/netpro-backend/internal/domain/ports"
)

// EventPermissionsUpdated sinaliza que os overrides de um operador mudaram
const EventPermissionsUpdated = "permissions.updated"

// PermissionEvent notifica sessões conectadas sobre mudanças de autorização,
// para que telas abertas recarreguem o snapshot do operador
type PermissionEvent struct {
	Type       string `json:"type"`
	OperatorID string `json:"operator_id"`
}

// EventBroadcaster distribui eventos de permissão para assinantes (sessões
// websocket). Entrega é melhor esforço: assinante lento perde o evento ao
// invés de bloquear quem publica.
type EventBroadcaster struct {
	mu     sync.RWMutex
	subs   map[chan PermissionEvent]struct{}
	logger ports.Logger
}

// NewEventBroadcaster cria um novo EventBroadcaster
func NewEventBroadcaster(logger ports.Logger) *EventBroadcaster {
	return &EventBroadcaster{
		subs:   make(map[chan PermissionEvent]struct{}),
		logger: logger,
	}
}

// Subscribe registra um novo assinante e retorna seu canal de eventos
func (b *EventBroadcaster) Subscribe() chan PermissionEvent {
	ch := make(chan PermissionEvent, 8)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	return ch
}

// Unsubscribe remove um assinante e fecha seu canal
func (b *EventBroadcaster) Unsubscribe(ch chan PermissionEvent) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish envia o evento para todos os assinantes sem bloquear
func (b *EventBroadcaster) Publish(event PermissionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping permission event for slow subscriber",
				"type", event.Type,
				"operator_id", event.OperatorID,
			)
		}
	}
}
