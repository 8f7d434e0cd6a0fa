package resources

import "github.com/miquelruiz/go-stripe-api/params"

// Coupon mirrors the remote coupon resource. Coupons only appear embedded in
// discounts here; their own endpoints are not bound.
type Coupon struct {
	Id               string            `json:"id"`
	AmountOff        *uint64           `json:"amount_off"`
	Currency         *string           `json:"currency"`
	Duration         string            `json:"duration"`
	DurationInMonths *uint64           `json:"duration_in_months"`
	Livemode         bool              `json:"livemode"`
	MaxRedemptions   *uint64           `json:"max_redemptions"`
	Metadata         params.Metadata   `json:"metadata"`
	PercentOff       *float64          `json:"percent_off"`
	RedeemBy         *params.Timestamp `json:"redeem_by"`
	TimesRedeemed    uint64            `json:"times_redeemed"`
	Valid            bool              `json:"valid"`
}

// Discount describes a coupon applied to a customer or subscription.
type Discount struct {
	Coupon       Coupon            `json:"coupon"`
	Customer     string            `json:"customer"`
	Start        params.Timestamp  `json:"start"`
	End          *params.Timestamp `json:"end"`
	Subscription *string           `json:"subscription"`
}
