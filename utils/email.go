package utils

import (
	"bytes"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strconv"

	jwemail "github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// ReceiptEmailData feeds the receipt email template.
type ReceiptEmailData struct {
	RestaurantName string
	OrderCode      string
	TableName      string
	TotalAmount    float64
	ReceiptText    string
}

// SendReceiptEmail mails the settled order receipt (async so the
// mark-paid response is not delayed by SMTP).
func SendReceiptEmail(to string, data ReceiptEmailData) {
	go func() {
		tmplPath := "templates/receipt_email.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load receipt email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render receipt email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your receipt for order #"+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send receipt email: %v", err)
		}
	}()
}

// SendPasswordResetEmail sends the plain-text reset link.
func SendPasswordResetEmail(to, resetLink string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	e := jwemail.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Reset your password"
	e.Text = []byte("A password reset was requested for your account.\n\nOpen this link to choose a new password:\n" + resetLink + "\n\nThe link expires in 30 minutes. If you did not request this, ignore this email.")

	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}
