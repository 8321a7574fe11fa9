package utils

import (
	"fithub/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: FitHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #16C79A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FITHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 FitHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendClassStatusEmail notifies the instructor after an admin decision.
func SendClassStatusEmail(email, className, status, reason string) {
	subject := fmt.Sprintf("Your class %q was %s", className, status)
	body := fmt.Sprintf("<p>Your class <b>%s</b> has been <b>%s</b>.</p>", className, status)
	if reason != "" {
		body += fmt.Sprintf(`<div class="info-box">%s</div>`, reason)
	}
	if err := SendEmail([]string{email}, subject, getEmailTemplate("Class Review Update", body)); err != nil {
		log.Printf("Error sending class status email to %s: %v", email, err)
	}
}

// SendRoleUpdateEmail notifies a user after a role promotion.
func SendRoleUpdateEmail(email, name, role string) {
	subject := "Your FitHub role has been updated"
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your account role is now <b>%s</b>.</p>", name, role)
	if err := SendEmail([]string{email}, subject, getEmailTemplate("Role Updated", body)); err != nil {
		log.Printf("Error sending role update email to %s: %v", email, err)
	}
}
