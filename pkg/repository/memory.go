package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// Memory implements SubscriptionStore with in-memory storage
type Memory struct {
	mu            sync.RWMutex
	subscriptions map[types.SubscriptionID]*model.Subscription
	order         []types.SubscriptionID
	notification  model.NotificationSettings
}

// NewMemory creates a new memory store
func NewMemory() interfaces.SubscriptionStore {
	return newMemory()
}

func newMemory() *Memory {
	return &Memory{
		subscriptions: make(map[types.SubscriptionID]*model.Subscription),
		notification:  model.DefaultConfig().Notification,
	}
}

// GetSubscription retrieves a subscription by ID
func (m *Memory) GetSubscription(ctx context.Context, id types.SubscriptionID) (*model.Subscription, error) {
	if id == "" {
		return nil, goerr.New("subscription ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, exists := m.subscriptions[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSubscriptionNotFound, "failed to get subscription",
			goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return sub.Clone(), nil
}

// ListSubscriptions lists subscriptions in insertion order
func (m *Memory) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subs := make([]*model.Subscription, 0, len(m.order))
	for _, id := range m.order {
		subs = append(subs, m.subscriptions[id].Clone())
	}
	return subs, nil
}

// PutSubscription creates or replaces a subscription
func (m *Memory) PutSubscription(ctx context.Context, sub *model.Subscription) error {
	if sub == nil {
		return goerr.New("subscription is nil")
	}
	if err := sub.Validate(); err != nil {
		return goerr.Wrap(err, "invalid subscription")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.subscriptions[sub.ID]; !exists {
		m.order = append(m.order, sub.ID)
	}
	m.subscriptions[sub.ID] = sub.Clone()
	return nil
}

// DeleteSubscription removes a subscription
func (m *Memory) DeleteSubscription(ctx context.Context, id types.SubscriptionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.subscriptions[id]; !exists {
		return goerr.Wrap(model.ErrSubscriptionNotFound, "failed to delete subscription",
			goerr.V("id", id))
	}
	delete(m.subscriptions, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetNotificationSettings returns the webhook settings
func (m *Memory) GetNotificationSettings(ctx context.Context) (*model.NotificationSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	settings := m.notification
	return &settings, nil
}

// PutNotificationSettings replaces the webhook settings
func (m *Memory) PutNotificationSettings(ctx context.Context, settings *model.NotificationSettings) error {
	if settings == nil {
		return goerr.New("notification settings is nil")
	}
	if err := settings.Validate(); err != nil {
		return goerr.Wrap(err, "invalid notification settings")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.notification = *settings
	return nil
}

// Close does nothing for the memory store
func (m *Memory) Close() error {
	return nil
}

// snapshot returns the stored state as a configuration document
func (m *Memory) snapshot() *model.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := &model.Config{
		Subscriptions: make([]model.Subscription, 0, len(m.order)),
		Notification:  m.notification,
	}
	for _, id := range m.order {
		cfg.Subscriptions = append(cfg.Subscriptions, *m.subscriptions[id].Clone())
	}
	return cfg
}

// load replaces the stored state with cfg
func (m *Memory) load(cfg *model.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subscriptions = make(map[types.SubscriptionID]*model.Subscription, len(cfg.Subscriptions))
	m.order = m.order[:0]
	for i := range cfg.Subscriptions {
		sub := cfg.Subscriptions[i].Clone()
		if _, exists := m.subscriptions[sub.ID]; !exists {
			m.order = append(m.order, sub.ID)
		}
		m.subscriptions[sub.ID] = sub
	}
	m.notification = cfg.Notification
}
