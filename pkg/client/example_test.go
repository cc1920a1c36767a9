package client_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/proofdeck/server/pkg/client"
)

// Example demonstrates basic usage of the ProofDeck client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.proofdeck.app",
	})

	ctx := context.Background()

	if _, err := c.Login(ctx, "owner@example.com", "password"); err != nil {
		log.Fatal(err)
	}

	forms, err := c.Forms().List(ctx, client.ListOptions{})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d forms\n", forms.TotalItems)
}

// ExampleRequestService_Send demonstrates sending a quota-gated
// feedback request
func ExampleRequestService_Send() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.proofdeck.app",
	})

	ctx := context.Background()
	if _, err := c.Login(ctx, "owner@example.com", "password"); err != nil {
		log.Fatal(err)
	}

	req, err := c.Requests().Send(ctx, client.SendRequestRequest{
		FormID:         1,
		RecipientEmail: "customer@example.com",
		RecipientName:  "Ada",
		Message:        "We'd love to hear how the project went.",
	})
	if err != nil {
		if apiErr, ok := err.(*client.APIError); ok && apiErr.IsQuotaExceeded() {
			log.Fatal("monthly quota reached; upgrade to pro")
		}
		log.Fatal(err)
	}

	fmt.Printf("Request %d sent to %s\n", req.ID, req.RecipientEmail)
}

// ExampleShareService_Image demonstrates downloading a testimonial PNG
func ExampleShareService_Image() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.proofdeck.app",
	})

	ctx := context.Background()
	if _, err := c.Login(ctx, "owner@example.com", "password"); err != nil {
		log.Fatal(err)
	}

	png, err := c.Shares().Image(ctx, 42)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("testimonial.png", png, 0644); err != nil {
		log.Fatal(err)
	}
}

// ExampleClient_Usage demonstrates checking the current month's quota
func ExampleClient_Usage() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.proofdeck.app",
	})

	ctx := context.Background()
	if _, err := c.Login(ctx, "owner@example.com", "password"); err != nil {
		log.Fatal(err)
	}

	status, err := c.Usage(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d feedback requests used this month\n", status.FeedbackRequestsUsed)
}
