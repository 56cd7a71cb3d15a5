package event

import "sync"

type DummyListener struct {
	mu               sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]interface{}(nil), l.receivedPayloads...)
}

func (l *DummyListener) OnBookMade(payload BookMadePayload) {
	l.record(payload)
}

func (l *DummyListener) OnGameOver(payload GameOverPayload) {
	l.record(payload)
}

func (l *DummyListener) record(payload interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
