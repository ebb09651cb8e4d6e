package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"onlynerds/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: OnlyNerds <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0D0D1A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0D0D1A; line-height: 1.6; }
			.content h2 { color: #0D0D1A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ONLYNERDS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 OnlyNerds. Learn, fork, repeat.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendForkNotificationEmail tells a course creator their course was forked.
// Best effort: fired in the background, failures only logged.
func SendForkNotificationEmail(email, courseName, forkerAddress string) {
	if email == "" {
		return
	}

	subject := "Your course was forked: " + courseName
	body := fmt.Sprintf(`
		<p>Good news!</p>
		<p>Your course <strong>%s</strong> was just forked by <strong>%s</strong>.</p>
		<p>Forks start out private; the new owner can adapt your modules and publish their own version.</p>
	`, courseName, forkerAddress)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Forked", body))
}
