package stacktrace

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 1 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/sentinel/internal/notification/usecase.(*Usecase).SendOTP(...)
	/src/internal/notification/usecase/send_otp.go:42 +0x1d
github.com/shandysiswandi/sentinel/internal/pkg/router.middlewareRecoverer.func1()
	/src/internal/pkg/router/middleware_recover.go:17
`)

	assert.Equal(t, []string{
		"internal/notification/usecase/send_otp.go:42",
		"internal/pkg/router/middleware_recover.go:17",
	}, InternalPaths(stack))
}

func TestInternalPaths_LiveStack(t *testing.T) {
	paths := InternalPaths(debug.Stack())
	assert.NotEmpty(t, paths)
	assert.Contains(t, paths[0], "internal/pkg/stacktrace/")
}
