package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func initSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Printf("AWS config load failed, email disabled: %v", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender; a missing SES_EMAIL disables mail quietly
func sendEmail(to string, subject string, body string) error {
	source := os.Getenv("SES_EMAIL")
	if source == "" {
		return nil
	}
	sesOnce.Do(initSES)
	if sesClient == nil {
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(source),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// Payment confirmation after a paid signup checkout
func SendPaymentConfirmationEmail(to string, amount int64, currency string) error {
	subject := "Your NutriTrack payment"
	body := fmt.Sprintf(
		"We received your payment of %.2f %s.\n\nYour NutriTrack account is now active.",
		float64(amount)/100, currency,
	)
	return sendEmail(to, subject, body)
}
