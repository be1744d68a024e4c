package sns

import (
	"context"

	"github.com/agaman/jobboard-api/internal/config"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SMSSender delivers account-recovery codes over SMS via AWS SNS.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
	SendPasswordResetOTP(ctx context.Context, to, code string) error
}

type sender struct {
	client *sns.Client
}

func NewSender(cfg *config.Config) (SMSSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &sender{client: sns.NewFromConfig(awsCfg)}, nil
}

func (s *sender) SendSMS(ctx context.Context, to, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: &to,
		Message:     &message,
	})
	return err
}

// SendPasswordResetOTP texts the one-time password-reset code. The SMS
// counterpart of smtp.SendForgotPasswordOTP for accounts recovering by phone.
func (s *sender) SendPasswordResetOTP(ctx context.Context, to, code string) error {
	return s.SendSMS(ctx, to, passwordResetMessage(code))
}

func passwordResetMessage(code string) string {
	return "Your password reset code: " + code
}
