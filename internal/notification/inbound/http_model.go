package inbound

import "github.com/shandysiswandi/sentinel/internal/notification/entity"

type SendOTPRequest struct {
	Destination    string `json:"destination" validate:"required,email"`
	Code           string `json:"code" validate:"required,otp"`
	RecipientLabel string `json:"recipient_label" validate:"omitempty,max=200,nocontrol"`
}

type DeliveryResponse struct {
	Succeeded    bool   `json:"succeeded"`
	DiagnosticID string `json:"diagnostic_id,omitempty"`
	ErrorDetail  string `json:"error_detail,omitempty"`
	Narrative    string `json:"narrative"`
}

func (r DeliveryResponse) Message() string { return r.Narrative }

func newDeliveryResponse(res entity.DeliveryResult) DeliveryResponse {
	return DeliveryResponse{
		Succeeded:    res.Succeeded,
		DiagnosticID: res.DiagnosticID,
		ErrorDetail:  res.ErrorDetail,
		Narrative:    res.Narrative,
	}
}

type TransportHealthResponse struct {
	Healthy bool `json:"healthy"`
}
