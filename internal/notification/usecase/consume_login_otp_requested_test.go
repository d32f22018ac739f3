package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/sentinel/internal/notification/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUsecase_ConsumeLoginOTPRequested(t *testing.T) {
	valid := ConsumeLoginOTPRequestedInput{Email: "patient@example.com", OTP: "482913", FullName: "Alex Doe"}

	t.Run("InvalidEventIsDropped", func(t *testing.T) {
		f := newFixture(t, credentialsYAML)
		f.mail.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		f.uc.ConsumeLoginOTPRequested(context.Background(), ConsumeLoginOTPRequestedInput{Email: "not-an-email", OTP: "abc"})
		assert.Empty(t, f.deliveries(t))
	})

	t.Run("DeliversValidEvent", func(t *testing.T) {
		f := newFixture(t, credentialsYAML)
		f.mail.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return("abc123", nil)
		f.audit.EXPECT().Sent(gomock.Any(), gomock.Any()).Do(func(_ context.Context, rec entity.AuditRecord) {
			assert.Equal(t, "patient@example.com", rec.Destination)
			assert.Equal(t, "abc123", rec.MessageID)
		})

		f.uc.ConsumeLoginOTPRequested(context.Background(), valid)
		assert.Equal(t, map[string]int64{"sent": 1}, f.deliveries(t))
	})

	t.Run("FailedDeliveryIsNotRedelivered", func(t *testing.T) {
		f := newFixture(t, credentialsYAML)
		f.mail.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("auth rejected"))
		f.audit.EXPECT().Fallback(gomock.Any(), gomock.Any())

		f.uc.ConsumeLoginOTPRequested(context.Background(), valid)
		assert.Equal(t, map[string]int64{"failed": 1}, f.deliveries(t))
	})

	t.Run("SkippedWithoutCredentials", func(t *testing.T) {
		f := newFixture(t, noCredentialsYAML)
		f.audit.EXPECT().Skipped(gomock.Any(), gomock.AssignableToTypeOf(entity.AuditRecord{}))

		f.uc.ConsumeLoginOTPRequested(context.Background(), valid)
		assert.Equal(t, map[string]int64{"skipped": 1}, f.deliveries(t))
	})
}
