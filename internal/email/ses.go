package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/proofdeck/server/internal/config"
	"github.com/proofdeck/server/internal/pkg/errors"
	"github.com/proofdeck/server/internal/pkg/logger"
)

// SESSender delivers email through Amazon SES
type SESSender struct {
	client *ses.Client
	source string
	logger *logger.Logger
}

// NewSESSender creates an SES-backed sender using the default AWS
// credential chain
func NewSESSender(ctx context.Context, cfg config.EmailConfig, log *logger.Logger) (*SESSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	source := cfg.FromAddress
	if cfg.FromName != "" {
		source = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}

	return &SESSender{
		client: ses.NewFromConfig(awsCfg),
		source: source,
		logger: log,
	}, nil
}

// Send delivers one message via SES
func (s *SESSender) Send(ctx context.Context, msg Message) error {
	body := &types.Body{}
	if msg.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(msg.TextBody)}
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody)}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.source),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body:    body,
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		s.logger.ErrorWithErr(err, "SES send failed")
		return errors.EmailDeliveryError(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"to":         msg.To,
		"message_id": aws.ToString(out.MessageId),
	}).Info("Email sent")

	return nil
}
