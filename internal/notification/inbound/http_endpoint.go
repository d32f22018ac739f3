package inbound

import (
	"github.com/shandysiswandi/sentinel/internal/notification/usecase"
	"github.com/shandysiswandi/sentinel/internal/pkg/goerror"
	"github.com/shandysiswandi/sentinel/internal/pkg/jwt"
	"github.com/shandysiswandi/sentinel/internal/pkg/router"
	"github.com/shandysiswandi/sentinel/internal/pkg/validator"
)

type HTTPEndpoint struct {
	uc        uc
	validator validator.Validator
}

// SendOTP delivers a login OTP by email.
//
// A failed delivery is still a 200 response; "succeeded" carries the outcome
// because the OTP stays valid and the login flow goes on.
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	if !jwt.GetAuth(r.Context()).HasScope(ScopeOTPSend) {
		return nil, goerror.NewBusiness("Missing scope "+ScopeOTPSend, goerror.CodeForbidden)
	}

	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(req); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	res := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{
		Destination:    req.Destination,
		Code:           req.Code,
		RecipientLabel: req.RecipientLabel,
	})

	return newDeliveryResponse(res), nil
}

// TransportHealth checks the SMTP transport without sending a message.
func (h *HTTPEndpoint) TransportHealth(r *router.Request) (any, error) {
	auth := jwt.GetAuth(r.Context())
	if !auth.HasScope(ScopeOTPVerify) && !auth.HasScope(ScopeOTPSend) {
		return nil, goerror.NewBusiness("Missing scope "+ScopeOTPVerify, goerror.CodeForbidden)
	}

	return TransportHealthResponse{Healthy: h.uc.VerifyTransport(r.Context())}, nil
}
