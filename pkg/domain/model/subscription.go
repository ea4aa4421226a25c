package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// Subscription is one tenant integration together with its captured browser session
type Subscription struct {
	ID               types.SubscriptionID `json:"id" yaml:"id"`
	Name             string               `json:"name" yaml:"name"`
	Cookies          string               `json:"cookies" yaml:"cookies"`
	UserCreateConfig *UserCreateConfig    `json:"user_create_config,omitempty" yaml:"user_create_config,omitempty"`
	UserCreateCurl   string               `json:"user_create_curl,omitempty" yaml:"user_create_curl,omitempty"`
	SubscriptionData SubscriptionData     `json:"subscription_data" yaml:"subscription_data"`
	ExpiresAt        *time.Time           `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// UserCreateConfig is the captured request context of the user management surface.
// An empty Cookies field falls back to the owning subscription's cookies.
type UserCreateConfig struct {
	Headers map[string]string `json:"headers" yaml:"headers"`
	Cookies string            `json:"cookies" yaml:"cookies"`
	APIURL  string            `json:"api_url" yaml:"api_url"`
}

// SubscriptionData is the cached license inventory of a subscription
type SubscriptionData struct {
	Skus []Sku `json:"Skus" yaml:"Skus"`
}

// Sku is a licensable product with a finite seat count
type Sku struct {
	SkuID         string `json:"SkuId" yaml:"SkuId"`
	SkuPartNumber string `json:"SkuPartNumber" yaml:"SkuPartNumber"`
	Available     int    `json:"Available" yaml:"Available"`
}

// HasUserManagement reports whether the subscription carries a user management configuration
func (s *Subscription) HasUserManagement() bool {
	return s.UserCreateConfig != nil
}

// HasCapture reports whether a non-blank curl capture is stored
func (s *Subscription) HasCapture() bool {
	return strings.TrimSpace(s.UserCreateCurl) != ""
}

// FirstAvailableSku returns the first SKU with remaining seats, or nil.
// First-fit in inventory order; callers rely on the order being stable.
func (s *Subscription) FirstAvailableSku() *Sku {
	for _, sku := range s.SubscriptionData.Skus {
		if sku.SkuID != "" && sku.Available > 0 {
			result := sku
			return &result
		}
	}
	return nil
}

// DaysUntilExpiry returns whole days left before ExpiresAt. ok is false without an expiry date.
func (s *Subscription) DaysUntilExpiry(now time.Time) (days int, ok bool) {
	if s.ExpiresAt == nil {
		return 0, false
	}
	return int(s.ExpiresAt.Sub(now).Hours() / 24), true
}

// Validate validates the subscription
func (s *Subscription) Validate() error {
	if s.ID == "" {
		return goerr.New("subscription ID is required")
	}
	if s.Name == "" {
		return goerr.New("subscription name is required", goerr.V("id", s.ID))
	}
	if s.UserCreateConfig != nil && s.UserCreateConfig.APIURL == "" {
		return goerr.New("user_create_config.api_url is required", goerr.V("id", s.ID))
	}
	return nil
}

// Clone returns a deep copy of the subscription
func (s *Subscription) Clone() *Subscription {
	c := *s
	if s.UserCreateConfig != nil {
		cfg := *s.UserCreateConfig
		if s.UserCreateConfig.Headers != nil {
			cfg.Headers = make(map[string]string, len(s.UserCreateConfig.Headers))
			for k, v := range s.UserCreateConfig.Headers {
				cfg.Headers[k] = v
			}
		}
		c.UserCreateConfig = &cfg
	}
	if s.SubscriptionData.Skus != nil {
		c.SubscriptionData.Skus = append([]Sku(nil), s.SubscriptionData.Skus...)
	}
	if s.ExpiresAt != nil {
		t := *s.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}
