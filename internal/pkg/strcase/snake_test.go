package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLowerSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "Destination", want: "destination"},
		{in: "RecipientLabel", want: "recipient_label"},
		{in: "SMTPHost", want: "smtp_host"},
		{in: "userID", want: "user_id"},
		{in: "Code2FA", want: "code2_fa"},
		{in: "already_snake", want: "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLowerSnake(tt.in))
		})
	}
}
