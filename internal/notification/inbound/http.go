package inbound

import (
	"github.com/shandysiswandi/sentinel/internal/pkg/router"
	"github.com/shandysiswandi/sentinel/internal/pkg/validator"
)

const (
	ScopeOTPSend   = "notification.otp:send"
	ScopeOTPVerify = "notification.otp:verify"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc, v validator.Validator) {
	end := &HTTPEndpoint{uc: uc, validator: v}

	r.POST("/api/v1/notification/otp", end.SendOTP)
	r.GET("/api/v1/notification/otp/transport", end.TransportHealth)
}
