package event

import (
	"sync"

	"github.com/ratel-online/gofish/gofish/game"
)

var GameOver = &gameOverEmitter{}

type GameOverPayload struct {
	RoomID  int64
	Winners []game.Participant
	Line    string
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type gameOverEmitter struct {
	mu        sync.RWMutex
	listeners []GameOverListener
}

func (e *gameOverEmitter) AddListener(listener GameOverListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *gameOverEmitter) Emit(payload GameOverPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnGameOver(payload)
	}
}
