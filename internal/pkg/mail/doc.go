// Package mail sends email over SMTP.
//
// Use cases depend on the Mail interface and the provider-agnostic Message
// payload. The SMTP implementation opens one connection per call, bounds it
// with a timeout and always releases it before returning.
package mail
