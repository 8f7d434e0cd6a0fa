package resources

import (
	"context"
	"fmt"

	"github.com/miquelruiz/go-stripe-api/client"
	"github.com/miquelruiz/go-stripe-api/params"
)

// PlanParams is the set of parameters accepted when creating or updating a
// plan.
type PlanParams struct {
	Id                  string          `json:"id,omitempty"`
	Amount              *uint64         `json:"amount,omitempty"`
	Currency            string          `json:"currency,omitempty"`
	Interval            string          `json:"interval,omitempty"`
	IntervalCount       *uint64         `json:"interval_count,omitempty"`
	Metadata            params.Metadata `json:"metadata,omitempty"`
	Name                string          `json:"name,omitempty"`
	StatementDescriptor string          `json:"statement_descriptor,omitempty"`
	TrialPeriodDays     *uint64         `json:"trial_period_days,omitempty"`
}

// Plan mirrors the remote plan resource.
type Plan struct {
	Id                  string            `json:"id"`
	Amount              uint64            `json:"amount"`
	Created             *params.Timestamp `json:"created"`
	Currency            string            `json:"currency"`
	Interval            string            `json:"interval"`
	IntervalCount       uint64            `json:"interval_count"`
	Livemode            bool              `json:"livemode"`
	Metadata            params.Metadata   `json:"metadata"`
	Name                string            `json:"name"`
	StatementDescriptor *string           `json:"statement_descriptor"`
	TrialPeriodDays     *uint64           `json:"trial_period_days"`
}

// Deleted is the acknowledgement returned when a resource is removed.
type Deleted struct {
	Deleted bool   `json:"deleted"`
	Id      string `json:"id"`
}

// CreatePlan creates a new plan.
func CreatePlan(ctx context.Context, c *client.Client, p *PlanParams) (*Plan, error) {
	var plan Plan
	if err := c.Post(ctx, "/plans", p, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetPlan retrieves the details of a plan.
func GetPlan(ctx context.Context, c *client.Client, id string) (*Plan, error) {
	var plan Plan
	if err := c.Get(ctx, fmt.Sprintf("/plans/%s", id), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan updates a plan's properties. Only the fields set in p are
// touched.
func UpdatePlan(ctx context.Context, c *client.Client, id string, p *PlanParams) (*Plan, error) {
	var plan Plan
	if err := c.Post(ctx, fmt.Sprintf("/plans/%s", id), p, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan deletes a plan. Subscriptions already on the plan are not
// affected.
func DeletePlan(ctx context.Context, c *client.Client, id string) (*Deleted, error) {
	var d Deleted
	if err := c.Delete(ctx, fmt.Sprintf("/plans/%s", id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}
