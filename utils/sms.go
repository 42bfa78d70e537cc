package utils

import (
	"fmt"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var smsClient *twilio.RestClient

// InitSMSClient configures the Twilio client from environment variables.
// SMS sending stays disabled when credentials are absent.
func InitSMSClient() {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid == "" || authToken == "" {
		LogInfo("Twilio credentials not configured, SMS notifications disabled")
		return
	}
	smsClient = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
}

// SendSMS sends a text message to a customer phone number. Best-effort;
// callers log the returned error and move on.
func SendSMS(to, body string) error {
	if smsClient == nil {
		return fmt.Errorf("sms client not configured")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := smsClient.Api.CreateMessage(params)
	if err != nil {
		return WrapError(err, "failed to send sms")
	}
	if resp.Sid != nil {
		LogInfo("SMS sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}

// SendBookingSMS sends the short booking confirmation text.
func SendBookingSMS(phone, serviceName, serviceDate, timeSlot string, bookingID uint) error {
	body := fmt.Sprintf("NPC Pest Control: booking #%d confirmed. %s on %s (%s). Our technician will call before the visit.",
		bookingID, serviceName, serviceDate, timeSlot)
	return SendSMS(phone, body)
}
