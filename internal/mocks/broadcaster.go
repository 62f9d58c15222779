package mocks

import (
	"github.com/stretchr/testify/mock"
)

type Broadcaster struct {
	mock.Mock
}

func (m *Broadcaster) Publish(room, event string, data interface{}) {
	m.Called(room, event, data)
}
