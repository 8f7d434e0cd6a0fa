package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/miquelruiz/go-stripe-api/client"
	"github.com/miquelruiz/go-stripe-api/resources"
	"github.com/miquelruiz/go-stripe-api/version"
)

var (
	apiKey      string
	itemId      string
	quantity    uint64
	set         bool
	versionflag bool
)

func init() {
	flag.StringVar(&apiKey, "api-key", os.Getenv("STRIPE_API_KEY"), "Secret key for the payment API")
	flag.StringVar(&itemId, "item", "", "Id of the subscription item to report usage for")
	flag.Uint64Var(&quantity, "quantity", 0, "Usage quantity to report")
	flag.BoolVar(&set, "set", false, "Overwrite the period total instead of incrementing it")
	flag.BoolVar(&versionflag, "version", false, "Print the version and exit")
}

func main() {
	flag.Parse()

	if versionflag {
		version.PrintVersion()
		return
	}

	if apiKey == "" {
		log.Fatal("No API key given")
	}

	if itemId == "" {
		log.Fatal("No subscription item id given")
	}

	action := resources.Increment
	if set {
		action = resources.Set
	}

	c := client.New(apiKey)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u, err := resources.CreateUsageRecord(ctx, c, itemId, quantity, action)
	if err != nil {
		log.Fatalf("error creating usage record: %s", err)
	}

	log.Printf("Recorded usage %s: quantity %d on %s", u.Id, u.Quantity, u.SubscriptionItem)
}
