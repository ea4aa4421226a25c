package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
)

func TestSubscriptionFirstAvailableSku(t *testing.T) {
	t.Run("first SKU with seats wins", func(t *testing.T) {
		sub := &model.Subscription{
			SubscriptionData: model.SubscriptionData{
				Skus: []model.Sku{
					{SkuID: "sku-a", SkuPartNumber: "A", Available: 0},
					{SkuID: "sku-b", SkuPartNumber: "B", Available: 3},
					{SkuID: "sku-c", SkuPartNumber: "C", Available: 100},
				},
			},
		}
		sku := sub.FirstAvailableSku()
		gt.V(t, sku).NotNil()
		gt.Equal(t, sku.SkuID, "sku-b")
	})

	t.Run("SKU without ID is skipped", func(t *testing.T) {
		sub := &model.Subscription{
			SubscriptionData: model.SubscriptionData{
				Skus: []model.Sku{
					{SkuPartNumber: "NOID", Available: 5},
					{SkuID: "sku-x", SkuPartNumber: "X", Available: 1},
				},
			},
		}
		gt.Equal(t, sub.FirstAvailableSku().SkuID, "sku-x")
	})

	t.Run("no seats left", func(t *testing.T) {
		sub := &model.Subscription{
			SubscriptionData: model.SubscriptionData{
				Skus: []model.Sku{{SkuID: "sku-a", Available: 0}},
			},
		}
		gt.V(t, sub.FirstAvailableSku()).Nil()
	})
}

func TestSubscriptionHasCapture(t *testing.T) {
	gt.False(t, (&model.Subscription{UserCreateCurl: "  \n"}).HasCapture())
	gt.True(t, (&model.Subscription{UserCreateCurl: "curl 'x'"}).HasCapture())
}

func TestSubscriptionDaysUntilExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := (&model.Subscription{}).DaysUntilExpiry(now)
	gt.False(t, ok)

	expires := now.Add(10*24*time.Hour + time.Hour)
	days, ok := (&model.Subscription{ExpiresAt: &expires}).DaysUntilExpiry(now)
	gt.True(t, ok)
	gt.Equal(t, days, 10)

	past := now.Add(-48 * time.Hour)
	days, ok = (&model.Subscription{ExpiresAt: &past}).DaysUntilExpiry(now)
	gt.True(t, ok)
	gt.Equal(t, days, -2)
}
