package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lms/config"
)

// Mailer sends notification emails. All sends are fire-and-forget: callers
// run them in a goroutine and failures are only logged.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// send delivers a single HTML mail over SMTP; a blank sender disables mailing
func (m *Mailer) send(to []string, subject string, htmlBody string) error {
	if m.cfg.EmailSender == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := m.cfg.EmailSender
	password := m.cfg.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LMS <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<body style="font-family: Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0;">
		<div style="max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; padding: 30px;">
			<h2 style="color: #00004D;">%s</h2>
			%s
			<p style="font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; padding-top: 12px;">
				You are receiving this because of activity on your LMS account.
			</p>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentEmail notifies a student they were enrolled in a course.
// Usernames double as mail addresses; anything that isn't one is skipped.
func (m *Mailer) SendEnrollmentEmail(email, name, courseTitle string) {
	if !strings.Contains(email, "@") {
		return
	}
	body := fmt.Sprintf(`<p>Hi %s,</p><p>You are now enrolled in <b>%s</b>. Head to your dashboard to see lessons and upcoming assignments.</p>`, name, courseTitle)
	_ = m.send([]string{email}, "Enrollment confirmed: "+courseTitle, emailTemplate("Enrollment confirmed", body))
}

// SendGradeEmail notifies a student their submission was graded
func (m *Mailer) SendGradeEmail(email, name, assignmentTitle string, grade int) {
	if !strings.Contains(email, "@") {
		return
	}
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Your submission for <b>%s</b> was graded: <b>%d/100</b>. Check your submissions page for feedback.</p>`, name, assignmentTitle, grade)
	_ = m.send([]string{email}, "Your assignment has been graded", emailTemplate("Assignment graded", body))
}
