package mailer

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"

	"hrbuddy_backend/internals/configs"
	helper "hrbuddy_backend/internals/helpers"
)

// LeaveStatusEvent is the structured notification emitted after an admin
// decides a leave request. Delivery is best-effort: callers run Send in a
// goroutine and never let a mail failure touch the recorded transition.
type LeaveStatusEvent struct {
	EmployeeName  string
	EmployeeEmail string
	Status        string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
}

// SendLeaveStatusEmail delivers the decision mail over SMTP. Failures are
// logged and swallowed.
func SendLeaveStatusEmail(ev LeaveStatusEvent) {
	if configs.SMTPUser == "" || ev.EmployeeEmail == "" {
		log.Println("[MAIL] skipped: SMTP not configured or empty recipient")
		return
	}

	subject := fmt.Sprintf("Leave Request %s", ev.Status)

	m := gomail.NewMessage()
	m.SetHeader("From", configs.SMTPFrom)
	m.SetHeader("To", ev.EmployeeEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", leaveStatusBody(ev))

	d := gomail.NewDialer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("[ERROR] Failed to send leave status email to %s: %v", ev.EmployeeEmail, err)
		return
	}
	log.Printf("[MAIL] Leave %s notification sent to %s", ev.Status, ev.EmployeeEmail)
}

func leaveStatusBody(ev LeaveStatusEvent) string {
	headerColor := "#c62828"
	closing := "<p>Please contact HR for more details.</p>"
	if ev.Status == "Approved" {
		headerColor = "#2e7d32"
		closing = "<p>Enjoy your leave!</p>"
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2 style="color: %s;">Leave Request %s</h2>
			<p>Dear %s,</p>
			<p>Your leave request has been <strong>%s</strong>.</p>
			<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
				<p><strong>Leave Type:</strong> %s</p>
				<p><strong>From:</strong> %s</p>
				<p><strong>To:</strong> %s</p>
				<p><strong>Total Days:</strong> %d</p>
			</div>
			%s
			<p style="margin-top: 30px; font-size: 12px; color: #777;">
				This is an automated message from HR Buddy.
			</p>
		</div>`,
		headerColor, ev.Status,
		ev.EmployeeName, ev.Status,
		ev.LeaveType,
		ev.StartDate.Format(helper.DisplayDateLayout),
		ev.EndDate.Format(helper.DisplayDateLayout),
		ev.TotalDays,
		closing,
	)
}
