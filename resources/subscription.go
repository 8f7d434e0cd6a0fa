// Package resources maps the API's subscription and usage endpoints onto Go
// types. Parameter structs serialize into a single outbound request; resource
// structs mirror the response shapes. Every operation composes a path and
// delegates to the shared client, which owns transport and auth.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/go-querystring/query"

	"github.com/miquelruiz/go-stripe-api/client"
	"github.com/miquelruiz/go-stripe-api/params"
)

// CancelParams is query-encoded into the cancel request's URL.
type CancelParams struct {
	AtPeriodEnd *bool `url:"at_period_end,omitempty" json:"at_period_end,omitempty"`
}

// ItemParams describes one plan line when creating or updating a
// subscription.
type ItemParams struct {
	Plan     string  `json:"plan"`
	Quantity *uint64 `json:"quantity,omitempty"`
}

// SubscriptionParams is the set of parameters accepted when creating or
// updating a subscription. Unset fields are left out of the payload so the
// remote keeps its defaults (or, on update, the current values).
type SubscriptionParams struct {
	Customer              string            `json:"customer,omitempty"`
	ApplicationFeePercent *float64          `json:"application_fee_percent,omitempty"`
	Coupon                string            `json:"coupon,omitempty"`
	Items                 []*ItemParams     `json:"items,omitempty"`
	Metadata              params.Metadata   `json:"metadata,omitempty"`
	Plan                  string            `json:"plan,omitempty"`
	Prorate               *bool             `json:"prorate,omitempty"`
	ProrationDate         *params.Timestamp `json:"proration_date,omitempty"`
	Quantity              *uint64           `json:"quantity,omitempty"`
	Source                string            `json:"source,omitempty"`
	TaxPercent            *float64          `json:"tax_percent,omitempty"`
	TrialEnd              *TrialEnd         `json:"trial_end,omitempty"`
	TrialPeriodDays       *uint64           `json:"trial_period_days,omitempty"`
}

// TrialEnd is either a timestamp or the literal "now". Build one with
// TrialEndAt or TrialEndNow.
type TrialEnd struct {
	Timestamp params.Timestamp
	Now       bool
}

func TrialEndAt(ts params.Timestamp) *TrialEnd {
	return &TrialEnd{Timestamp: ts}
}

func TrialEndNow() *TrialEnd {
	return &TrialEnd{Now: true}
}

func (t TrialEnd) MarshalJSON() ([]byte, error) {
	if t.Now {
		return json.Marshal("now")
	}
	return json.Marshal(t.Timestamp)
}

func (t *TrialEnd) UnmarshalJSON(b []byte) error {
	if string(b) == `"now"` {
		*t = TrialEnd{Now: true}
		return nil
	}
	return json.Unmarshal(b, &t.Timestamp)
}

// SubscriptionItem is one plan line of a subscription.
type SubscriptionItem struct {
	Id       string           `json:"id"`
	Created  params.Timestamp `json:"created"`
	Plan     Plan             `json:"plan"`
	Quantity *uint64          `json:"quantity"`
}

// Subscription mirrors the remote subscription resource. No lifecycle is
// modeled locally; the remote service owns every transition.
type Subscription struct {
	Id                    string                        `json:"id"`
	ApplicationFeePercent *float64                      `json:"application_fee_percent"`
	CancelAtPeriodEnd     bool                          `json:"cancel_at_period_end"`
	CanceledAt            *params.Timestamp             `json:"canceled_at"`
	Created               *params.Timestamp             `json:"created"`
	CurrentPeriodStart    params.Timestamp              `json:"current_period_start"`
	CurrentPeriodEnd      params.Timestamp              `json:"current_period_end"`
	Customer              string                        `json:"customer"`
	Discount              *Discount                     `json:"discount"`
	EndedAt               *params.Timestamp             `json:"ended_at"`
	Items                 params.List[SubscriptionItem] `json:"items"`
	Livemode              bool                          `json:"livemode"`
	Metadata              params.Metadata               `json:"metadata"`
	Plan                  Plan                          `json:"plan"`
	Quantity              *uint64                       `json:"quantity"`
	Start                 params.Timestamp              `json:"start"`
	// One of: trialing, active, past_due, canceled, unpaid.
	Status     string            `json:"status"`
	TaxPercent *float64          `json:"tax_percent"`
	TrialStart *params.Timestamp `json:"trial_start"`
	TrialEnd   *params.Timestamp `json:"trial_end"`
}

// CreateSubscription creates a new subscription for a customer.
func CreateSubscription(ctx context.Context, c *client.Client, p *SubscriptionParams) (*Subscription, error) {
	var s Subscription
	if err := c.Post(ctx, "/subscriptions", p, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSubscription retrieves the details of a subscription.
func GetSubscription(ctx context.Context, c *client.Client, id string) (*Subscription, error) {
	var s Subscription
	if err := c.Get(ctx, fmt.Sprintf("/subscriptions/%s", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSubscription updates a subscription's properties. Only the fields
// set in p are touched.
func UpdateSubscription(ctx context.Context, c *client.Client, id string, p *SubscriptionParams) (*Subscription, error) {
	var s Subscription
	if err := c.Post(ctx, fmt.Sprintf("/subscriptions/%s", id), p, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CancelSubscription cancels a subscription, immediately or at period end
// depending on p. The parameters travel in the query string; an encoding
// failure is returned before any network call is made.
func CancelSubscription(ctx context.Context, c *client.Client, id string, p *CancelParams) (*Subscription, error) {
	path := fmt.Sprintf("/subscriptions/%s", id)
	if p != nil {
		values, err := query.Values(p)
		if err != nil {
			return nil, fmt.Errorf("error encoding cancel params: %w", err)
		}
		if qs := values.Encode(); qs != "" {
			path += "?" + qs
		}
	}

	var s Subscription
	if err := c.Delete(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
