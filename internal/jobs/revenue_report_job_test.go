package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRevenueCalculator struct {
	mock.Mock
}

func (m *MockRevenueCalculator) Handle(
	ctx context.Context,
	query queries.CalculateRevenueQuery,
) (queries.CalculateRevenueQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CalculateRevenueQueryResponse), args.Error(1)
}

// syncBuffer lets the cron goroutine and the test share a log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger(w *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

func TestRevenueReportJob_Run(t *testing.T) {
	t.Run("should log revenue", func(t *testing.T) {
		var out syncBuffer
		calc := new(MockRevenueCalculator)
		calc.On("Handle", mock.Anything, mock.AnythingOfType("queries.CalculateRevenueQuery")).
			Return(queries.CalculateRevenueQueryResponse{
				Revenue:    decimal.RequireFromString("12.5"),
				PaidOrders: 3,
			}, nil).Once()

		job := jobs.NewRevenueReportJob(calc, jobs.DefaultRevenueReportSchedule, newLogger(&out))
		job.Run(context.Background())

		assert.Contains(t, out.String(), "Revenue report")
		assert.Contains(t, out.String(), "revenue=12.50")
		assert.Contains(t, out.String(), "paid_orders=3")
		assert.Contains(t, out.String(), "component=revenue_report_job")
		calc.AssertExpectations(t)
	})

	t.Run("should log failures", func(t *testing.T) {
		var out syncBuffer
		calc := new(MockRevenueCalculator)
		calc.On("Handle", mock.Anything, mock.Anything).
			Return(queries.CalculateRevenueQueryResponse{}, errors.New("connection refused")).Once()

		job := jobs.NewRevenueReportJob(calc, jobs.DefaultRevenueReportSchedule, newLogger(&out))
		job.Run(context.Background())

		assert.Contains(t, out.String(), "Revenue report job failed")
		assert.Contains(t, out.String(), "connection refused")
	})
}

func TestRevenueReportJob_StartAndStop(t *testing.T) {
	t.Run("should run on schedule", func(t *testing.T) {
		var out syncBuffer
		calc := new(MockRevenueCalculator)
		called := make(chan struct{}, 10)
		calc.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { called <- struct{}{} }).
			Return(queries.CalculateRevenueQueryResponse{}, nil)

		job := jobs.NewRevenueReportJob(calc, "* * * * * *", newLogger(&out))
		require.NoError(t, job.Start())

		select {
		case <-called:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}

		job.Stop()
		assert.Contains(t, out.String(), "Revenue report job stopped")
	})

	t.Run("should reject invalid schedule", func(t *testing.T) {
		var out syncBuffer
		job := jobs.NewRevenueReportJob(new(MockRevenueCalculator), "every hour", newLogger(&out))

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should be a no-op when schedule is empty", func(t *testing.T) {
		var out syncBuffer
		calc := new(MockRevenueCalculator)
		jm := jobs.NewJobManager(calc, "", newLogger(&out))

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Empty(t, out.String())
		calc.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should wrap start errors", func(t *testing.T) {
		var out syncBuffer
		jm := jobs.NewJobManager(new(MockRevenueCalculator), "61 * * * * *", newLogger(&out))

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start revenue report job")
	})

	t.Run("should start and stop the revenue job", func(t *testing.T) {
		var out syncBuffer
		jm := jobs.NewJobManager(new(MockRevenueCalculator), jobs.DefaultRevenueReportSchedule, newLogger(&out))

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Contains(t, out.String(), "Revenue report job started")
		assert.Contains(t, out.String(), "Revenue report job stopped")
	})
}
