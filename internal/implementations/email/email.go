package email

import (
	"context"
	"fmt"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/owner"
	"reemind/internal/core/domain/reminder"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
	now    func() time.Time
}

func NewEmailSender(awsConfig aws.Config, sender string, now func() time.Time) *EmailSender {
	return &EmailSender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
		now:    now,
	}
}

func (s *EmailSender) SendReminder(ctx context.Context, r reminder.Reminder) error {
	daysLeft := r.DaysLeft(s.now())
	var when string
	switch daysLeft {
	case 0:
		when = "today"
	case 1:
		when = "tomorrow"
	default:
		when = fmt.Sprintf("in %d days", daysLeft)
	}

	subject := fmt.Sprintf("%s's birthday is %s!", r.Name, when)
	body := fmt.Sprintf(
		"Hi,\n\n%s's birthday is %s, on %s %d.\n\n"+
			"Don't forget to send your wishes!\n\n"+
			"— Reemind",
		r.Name, when, time.Month(r.Month), r.Day,
	)
	return s.send(ctx, r.Email, subject, body)
}

func (s *EmailSender) SendConfirmation(ctx context.Context, r reminder.Reminder) error {
	subject := fmt.Sprintf("Reminder saved for %s", r.Name)
	body := fmt.Sprintf(
		"Hi,\n\nWe saved your birthday reminder for %s (%s %d).\n\n"+
			"You'll get an email %d day(s) before the date.\n\n"+
			"— Reemind",
		r.Name, time.Month(r.Month), r.Day, r.LeadDays,
	)
	return s.send(ctx, r.Email, subject, body)
}

func (s *EmailSender) SendLoginCode(ctx context.Context, email c.Email, code owner.LoginCode) error {
	subject := "Your Reemind login code"
	body := fmt.Sprintf(
		"Hi,\n\nYour login code is: %s\n\n"+
			"The code expires in 10 minutes. If you didn't request it, ignore this email.\n\n"+
			"— Reemind",
		code,
	)
	return s.send(ctx, email, subject, body)
}

func (s *EmailSender) send(ctx context.Context, to c.Email, subject string, body string) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(to)},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Charset: aws.String(charset),
					Data:    aws.String(subject),
				},
				Body: &types.Body{
					Text: &types.Content{
						Charset: aws.String(charset),
						Data:    aws.String(body),
					},
				},
			},
		},
	)
	return err
}
