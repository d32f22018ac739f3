package event

const LoginOTPRequestedDestination string = "auth_login_otp_requested"
const LoginOTPRequestedConsumerNotification string = "auth_login_otp_requested_notification"

// LoginOTPRequestedMessage is published by the login flow after it has stored a fresh OTP.
type LoginOTPRequestedMessage struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	FullName string `json:"full_name"`
}
