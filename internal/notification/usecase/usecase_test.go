package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/sentinel/internal/notification/usecase/mocks"
	"github.com/shandysiswandi/sentinel/internal/pkg/config"
	"github.com/shandysiswandi/sentinel/internal/pkg/validator"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

const (
	credentialsYAML = `
mail:
  host: smtp.example.com
  port: 2525
  username: sentinel@example.com
  password: app-password
`
	noCredentialsYAML = `
mail:
  host: smtp.example.com
`
)

type testInstrument struct {
	mp *sdkmetric.MeterProvider
}

func (i *testInstrument) Tracer(name string) trace.Tracer { return tracenoop.NewTracerProvider().Tracer(name) }
func (i *testInstrument) Meter(name string) metric.Meter  { return i.mp.Meter(name) }
func (i *testInstrument) Shutdown(ctx context.Context) error {
	return i.mp.Shutdown(ctx)
}

type fixture struct {
	uc     *Usecase
	mail   *mocks.MockrepoMail
	audit  *mocks.MockrepoAudit
	reader *sdkmetric.ManualReader
}

func newFixture(t *testing.T, yaml string) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	reader := sdkmetric.NewManualReader()
	ins := &testInstrument{mp: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))}

	f := &fixture{
		mail:   mocks.NewMockrepoMail(ctrl),
		audit:  mocks.NewMockrepoAudit(ctrl),
		reader: reader,
	}
	f.uc = NewNotification(Dependency{
		Config:     cfg,
		Validator:  v,
		RepoMail:   f.mail,
		RepoAudit:  f.audit,
		Instrument: ins,
	})

	return f
}

// deliveries returns the delivery counter value per outcome.
func (f *fixture) deliveries(t *testing.T) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, f.reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "notification.otp.deliveries" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value("outcome")
				out[outcome.AsString()] += dp.Value
			}
		}
	}

	return out
}
