package model

import "github.com/m-mizutani/goerr/v2"

// ErrSubscriptionNotFound is returned by stores for an unknown subscription ID
var ErrSubscriptionNotFound = goerr.New("subscription not found")
