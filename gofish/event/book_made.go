package event

import (
	"sync"

	"github.com/ratel-online/gofish/gofish/card"
)

var BookMade = &bookMadeEmitter{}

type BookMadePayload struct {
	RoomID     int64
	PlayerName string
	Rank       card.Rank
}

type BookMadeListener interface {
	OnBookMade(BookMadePayload)
}

type bookMadeEmitter struct {
	mu        sync.RWMutex
	listeners []BookMadeListener
}

func (e *bookMadeEmitter) AddListener(listener BookMadeListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *bookMadeEmitter) Emit(payload BookMadePayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnBookMade(payload)
	}
}
