package resources

import (
	"context"
	"fmt"
	"time"

	"github.com/miquelruiz/go-stripe-api/client"
	"github.com/miquelruiz/go-stripe-api/params"
)

// UsageRecordAction says how a reported quantity applies to the period
// total. The zero value means increment.
type UsageRecordAction int

const (
	Increment UsageRecordAction = iota
	Set
)

func (a UsageRecordAction) name() string {
	if a == Set {
		return "set"
	}
	return "increment"
}

// UsageRecordParams is the payload reporting usage against a subscription
// item.
type UsageRecordParams struct {
	Timestamp params.Timestamp `json:"timestamp"`
	Quantity  uint64           `json:"quantity"`
	Action    string           `json:"action,omitempty"`
}

// NewUsageRecordParams builds usage record params stamped with the current
// wall-clock time.
func NewUsageRecordParams(quantity uint64, action UsageRecordAction) *UsageRecordParams {
	return &UsageRecordParams{
		Timestamp: time.Now().Unix(),
		Quantity:  quantity,
		Action:    action.name(),
	}
}

// UsageRecord mirrors the remote usage record resource.
type UsageRecord struct {
	Id               string           `json:"id"`
	Object           string           `json:"object"`
	Livemode         bool             `json:"livemode"`
	Quantity         uint64           `json:"quantity"`
	SubscriptionItem string           `json:"subscription_item"`
	Timestamp        params.Timestamp `json:"timestamp"`
}

// CreateUsageRecord reports usage against a metered subscription item,
// stamped with the current time.
func CreateUsageRecord(ctx context.Context, c *client.Client, subscriptionItemId string, quantity uint64, action UsageRecordAction) (*UsageRecord, error) {
	p := NewUsageRecordParams(quantity, action)
	var u UsageRecord
	if err := c.Post(ctx, fmt.Sprintf("/subscription_items/%s/usage_records", subscriptionItemId), p, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
