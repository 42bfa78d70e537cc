package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hariprabhu571/npc-backend/models"
	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email using SMTP
func SendEmail(to, subject, body string) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return WrapError(err, "failed to send email")
	}
	return nil
}

// SendOTP sends a verification OTP via email
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to NPC Pest Control!</h2>
		<p>Thank you for registering. Please use the following OTP to verify your email address:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 15 minutes.</p>
		<p>If you didn't request this OTP, please ignore this email.</p>
	`, otp)
	return SendEmail(to, "Your NPC Pest Control Registration OTP", body)
}

// SendPasswordResetOTP sends a password reset OTP
func SendPasswordResetOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Password Reset Request</h2>
		<p>Use the following OTP to reset your password:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 15 minutes.</p>
		<p>If you didn't request this reset, please ignore this email.</p>
	`, otp)
	return SendEmail(to, "NPC Pest Control Password Reset", body)
}

// SendBookingConfirmation sends the booking confirmation mail with the invoice
// PDF attached. Callers treat failure as a soft, logged outcome; it never
// changes the booking result.
func SendBookingConfirmation(booking *models.Booking, invoicePDF []byte) error {
	config := emailConfigFromEnv()

	body := fmt.Sprintf(`
		<h2>Your booking is confirmed!</h2>
		<p>Hi %s,</p>
		<p>Your %s service is scheduled for <b>%s</b> (%s).</p>
		<p>Booking ID: <b>%d</b><br>
		Amount: <b>Rs. %.2f</b><br>
		Payment: %s</p>
		<p>Your invoice is attached. Our technician will reach out before the visit.</p>
	`, booking.User.FirstName, booking.ServiceName,
		booking.ServiceDate.Format("2006-01-02"), booking.TimeSlot,
		booking.ID, booking.TotalAmount, booking.PaymentMethod)

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", booking.User.Email)
	m.SetHeader("Subject", fmt.Sprintf("Booking Confirmed - #%d", booking.ID))
	m.SetBody("text/html", body)
	m.Attach(fmt.Sprintf("invoice-%d.pdf", booking.ID),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(invoicePDF)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return WrapError(err, "failed to send booking confirmation")
	}
	return nil
}

// SendServiceReminder mails a customer about tomorrow's scheduled visit.
func SendServiceReminder(booking *models.Booking) error {
	body := fmt.Sprintf(`
		<h2>Service Reminder</h2>
		<p>Hi %s,</p>
		<p>This is a reminder that your <b>%s</b> service is scheduled for tomorrow, %s (%s).</p>
		<p>Please keep the premises accessible for our technician.</p>
	`, booking.User.FirstName, booking.ServiceName,
		booking.ServiceDate.Format("2006-01-02"), booking.TimeSlot)
	return SendEmail(booking.User.Email, "Reminder: your pest control service is tomorrow", body)
}
