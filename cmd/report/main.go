package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samber/lo"

	"github.com/miquelruiz/go-stripe-api/client"
	"github.com/miquelruiz/go-stripe-api/resources"
)

var (
	apiKey = flag.String("api-key", os.Getenv("STRIPE_API_KEY"), "Secret key for the payment API")
	subId  = flag.String("subscription", "", "Id of the subscription to report on")
)

func main() {
	flag.Parse()

	if *apiKey == "" {
		log.Fatal("No API key given")
	}
	if *subId == "" {
		log.Fatal("No subscription id given")
	}

	c := client.New(*apiKey)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sub, err := resources.GetSubscription(ctx, c, *subId)
	if err != nil {
		log.Fatalf("error retrieving subscription: %s", err)
	}

	byPlan := lo.CountValuesBy(sub.Items.Data, func(it resources.SubscriptionItem) string {
		return it.Plan.Id
	})

	fmt.Printf("Subscription %s: %s\n", sub.Id, sub.Status)
	fmt.Printf("Current period ends:  %s\n", time.Unix(sub.CurrentPeriodEnd, 0).Format(time.DateOnly))
	fmt.Printf("Total items:          %03d\n", len(sub.Items.Data))
	for plan, n := range byPlan {
		fmt.Printf("Items on plan %s: %03d\n", plan, n)
	}
	if sub.Discount != nil {
		fmt.Printf("Active coupon:        %s\n", sub.Discount.Coupon.Id)
	}
}
