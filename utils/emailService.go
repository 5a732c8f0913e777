package utils

import (
	"fmt"
	"log"
	"time"

	"learnhub/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. A missing API key
// turns the call into a logged no-op so local development works
// without credentials.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		log.Printf("Email skipped (no SENDGRID_API_KEY): %s -> %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email to %s rejected, code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("email rejected, code: %d", resp.StatusCode)
	}

	return nil
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D4ED8; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #111827; line-height: 1.6; }
			.content h2 { color: #1D4ED8; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #EFF6FF; padding: 15px; border-radius: 4px; border-left: 4px solid #1D4ED8; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; %d LearnHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent, time.Now().Year())
}

// SendWelcomeEmail greets a new user after registration.
func SendWelcomeEmail(name, email string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to LearnHub! Browse the catalog, enroll in a course and start learning.</p>
		<div class="info-box">You can track your enrollments and certificates from your dashboard.</div>
	`, name)

	if err := SendEmail(name, email, "Welcome to LearnHub", getEmailTemplate("Welcome aboard!", body)); err != nil {
		log.Printf("Welcome email failed for %s: %v", email, err)
	}
}

// SendCertificateEmail notifies a student that their certificate is ready.
func SendCertificateEmail(name, email, courseTitle, certificateID string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box">Your certificate number is <strong>%s</strong>. You can view and print it from your dashboard.</div>
	`, name, courseTitle, certificateID)

	if err := SendEmail(name, email, "Your LearnHub certificate is ready", getEmailTemplate("Certificate issued", body)); err != nil {
		log.Printf("Certificate email failed for %s: %v", email, err)
	}
}
