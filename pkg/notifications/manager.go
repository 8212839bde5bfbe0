package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type Provider interface {
	send(ctx context.Context, msg Message) error
}

// Manager hands out chat services that deliver to every configured provider
type Manager interface {
	ChatService(project string, room string) ChatService
	AddProvider(provider Provider)
}

type ManagerImpl struct {
	provider []Provider
	sent     *prometheus.CounterVec
}

type DummyManagerImpl struct {
}

func NewManager() *ManagerImpl {
	return &ManagerImpl{
		provider: []Provider{},
	}
}

func NewDummyManager() *DummyManagerImpl {
	return &DummyManagerImpl{}
}

func (m *ManagerImpl) AddProvider(provider Provider) {
	m.provider = append(m.provider, provider)
}

// CountSent counts the delivered messages by color
func (m *ManagerImpl) CountSent(sent *prometheus.CounterVec) {
	m.sent = sent
}

// ChatService returns a service that posts to the given room.
// An empty room falls back to the providers' channel mapping and default channel.
func (m *ManagerImpl) ChatService(project string, room string) ChatService {
	return &roomService{
		providers: m.provider,
		sent:      m.sent,
		project:   project,
		room:      room,
	}
}

func (m *DummyManagerImpl) AddProvider(provider Provider) {
}

func (m *DummyManagerImpl) ChatService(project string, room string) ChatService {
	return &dummyService{}
}

type roomService struct {
	providers []Provider
	sent      *prometheus.CounterVec
	project   string
	room      string
}

func (s *roomService) Publish(ctx context.Context, message string, color model.Color) error {
	return s.send(ctx, message, color, formatHTML)
}

func (s *roomService) PublishText(ctx context.Context, message string, color model.Color) error {
	return s.send(ctx, message, color, formatText)
}

func (s *roomService) send(ctx context.Context, text string, color model.Color, format string) error {
	msg := &buildMessage{
		project: s.project,
		room:    s.room,
		text:    text,
		color:   color,
		format:  format,
	}

	var errs []error
	for _, p := range s.providers {
		err := p.send(ctx, msg)
		if err != nil {
			logrus.Warnf("cannot send notification: %s ", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cannot publish to %s: %w", s.project, errors.Join(errs...))
	}
	if s.sent != nil {
		s.sent.WithLabelValues(string(color)).Inc()
	}
	return nil
}

type dummyService struct {
}

func (s *dummyService) Publish(ctx context.Context, message string, color model.Color) error {
	return nil
}

func (s *dummyService) PublishText(ctx context.Context, message string, color model.Color) error {
	return nil
}
