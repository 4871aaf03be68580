package intake

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/gabapcia/ospeople/internal/infra/storage/yamlstore"
	"github.com/gabapcia/ospeople/internal/people"
	peopletest "github.com/gabapcia/ospeople/internal/people/mocks"
	"github.com/gabapcia/ospeople/internal/pkg/logger"
	"github.com/gabapcia/ospeople/internal/pkg/validator"
	"github.com/gabapcia/ospeople/internal/pkg/x/chflow"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.WithLevel("debug"), logger.WithOutput(io.Discard)); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var rejection = &validator.Report{
	Schema:     people.SchemaPerson,
	Violations: []validator.Violation{{Path: "id", Kind: validator.KindFieldFormat, Message: "must match ocd-person/UUID"}},
}

func personDoc(id int) string {
	return fmt.Sprintf(`id: ocd-person/b1c0a5e8-6f3e-4f1d-9f3c-2a7b6d1e%04d
name: Person %d
party:
  - name: Independent
roles:
  - type: lower
    district: %d
    jurisdiction: ocd-jurisdiction/country:us/state:nc/government
`, id, id, id)
}

func run(t *testing.T, svc *service, roots ...string) []Result {
	t.Helper()

	ch, err := svc.Run(t.Context(), people.SchemaPerson, roots...)
	require.NoError(t, err)

	results := chflow.Collect(t.Context(), ch)
	SortByPath(results)
	return results
}

func TestNew(t *testing.T) {
	t.Run("creates service with a single worker by default", func(t *testing.T) {
		loader := NewLoaderMock(t)
		records := peopletest.NewService(t)

		svc, err := New(loader, records)

		require.NoError(t, err)
		assert.Equal(t, loader, svc.loader)
		assert.Equal(t, records, svc.records)
		assert.Equal(t, 1, svc.workers)
	})

	t.Run("applies worker count", func(t *testing.T) {
		svc, err := New(NewLoaderMock(t), peopletest.NewService(t), WithWorkers(8))

		require.NoError(t, err)
		assert.Equal(t, 8, svc.workers)
	})

	t.Run("ignores non-positive worker counts", func(t *testing.T) {
		svc, err := New(NewLoaderMock(t), peopletest.NewService(t), WithWorkers(0), WithWorkers(-3))

		require.NoError(t, err)
		assert.Equal(t, 1, svc.workers)
	})
}

func TestService_Run(t *testing.T) {
	t.Run("returns discovery errors", func(t *testing.T) {
		loader := NewLoaderMock(t)
		loader.EXPECT().Discover(mock.Anything, "data").Return(nil, assert.AnError).Once()

		svc, err := New(loader, peopletest.NewService(t))
		require.NoError(t, err)

		ch, err := svc.Run(t.Context(), people.SchemaPerson, "data")

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, ch)
	})

	t.Run("classifies every document", func(t *testing.T) {
		loader := NewLoaderMock(t)
		records := peopletest.NewService(t)

		good := map[string]any{"name": "good"}
		bad := map[string]any{"name": "bad"}

		loader.EXPECT().Discover(mock.Anything, "data").Return([]string{"a.yml", "b.yml", "c.yml"}, nil).Once()
		loader.EXPECT().Load(mock.Anything, "a.yml").Return(good, nil).Once()
		loader.EXPECT().Load(mock.Anything, "b.yml").Return(bad, nil).Once()
		loader.EXPECT().Load(mock.Anything, "c.yml").Return(nil, assert.AnError).Once()
		records.EXPECT().ValidateRecord(good, people.SchemaPerson).Return(people.Person{Name: "good"}, nil).Once()
		records.EXPECT().ValidateRecord(bad, people.SchemaPerson).Return(nil, rejection).Once()

		svc, err := New(loader, records, WithWorkers(2))
		require.NoError(t, err)

		results := run(t, svc, "data")

		require.Len(t, results, 3)
		assert.Equal(t, Result{Path: "a.yml", Record: people.Person{Name: "good"}}, results[0])
		assert.Equal(t, OutcomeAccepted, results[0].Outcome())
		assert.Equal(t, "b.yml", results[1].Path)
		assert.Equal(t, OutcomeRejected, results[1].Outcome())
		assert.Equal(t, "c.yml", results[2].Path)
		assert.Equal(t, OutcomeFailed, results[2].Outcome())
		assert.ErrorIs(t, results[2].Err, assert.AnError)
	})

	t.Run("closes the channel for an empty batch", func(t *testing.T) {
		loader := NewLoaderMock(t)
		loader.EXPECT().Discover(mock.Anything, "empty").Return(nil, nil).Once()

		svc, err := New(loader, peopletest.NewService(t), WithWorkers(3))
		require.NoError(t, err)

		assert.Empty(t, run(t, svc, "empty"))
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		loader := NewLoaderMock(t)
		records := peopletest.NewService(t)

		paths := make([]string, 100)
		for i := range paths {
			paths[i] = fmt.Sprintf("doc-%03d.yml", i)
		}

		loader.EXPECT().Discover(mock.Anything, "data").Return(paths, nil).Once()
		loader.EXPECT().Load(mock.Anything, mock.Anything).Return(map[string]any{}, nil).Maybe()
		records.EXPECT().ValidateRecord(mock.Anything, mock.Anything).Return(nil, rejection).Maybe()

		svc, err := New(loader, records, WithWorkers(2))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		ch, err := svc.Run(ctx, people.SchemaPerson, "data")
		require.NoError(t, err)

		_, ok := chflow.Receive(t.Context(), ch)
		require.True(t, ok)
		cancel()

		done := make(chan []Result)
		go func() { done <- chflow.Collect(t.Context(), ch) }()

		select {
		case rest := <-done:
			assert.Less(t, len(rest), len(paths)-1)
		case <-time.After(time.Second):
			t.Fatal("results channel should close after cancellation")
		}
	})

	t.Run("validates documents from a yaml store", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		const docs = 20
		for i := range docs {
			require.NoError(t, afero.WriteFile(fsys, fmt.Sprintf("data/nc/p%02d.yml", i), []byte(personDoc(i)), 0o644))
		}
		require.NoError(t, afero.WriteFile(fsys, "data/nc/broken.yml", []byte("id: bogus\nname: Broken\n"), 0o644))

		svc, err := New(yamlstore.New(fsys), people.New(), WithWorkers(4))
		require.NoError(t, err)

		results := run(t, svc, "data")

		require.Len(t, results, docs+1)
		assert.Equal(t, Summary{Total: docs + 1, Accepted: docs, Rejected: 1}, Summarize(results))

		broken := results[0]
		assert.Equal(t, "data/nc/broken.yml", broken.Path)
		report := validator.ExtractReport(broken.Err)
		require.NotNil(t, report)
		assert.Equal(t, []string{"id", "party", "roles"}, report.Paths())

		person, ok := results[1].Record.(people.Person)
		require.True(t, ok)
		assert.Equal(t, "Person 0", person.Name)
		assert.Equal(t, "0", person.Roles[0].District)
	})
}

func TestService_Telemetry(t *testing.T) {
	loader := NewLoaderMock(t)
	records := peopletest.NewService(t)

	good := map[string]any{"name": "good"}
	bad := map[string]any{"name": "bad"}

	loader.EXPECT().Discover(mock.Anything, "data").Return([]string{"a.yml", "b.yml", "c.yml", "d.yml"}, nil).Once()
	loader.EXPECT().Load(mock.Anything, "a.yml").Return(good, nil).Once()
	loader.EXPECT().Load(mock.Anything, "b.yml").Return(good, nil).Once()
	loader.EXPECT().Load(mock.Anything, "c.yml").Return(bad, nil).Once()
	loader.EXPECT().Load(mock.Anything, "d.yml").Return(nil, assert.AnError).Once()
	records.EXPECT().ValidateRecord(good, people.SchemaPerson).Return(people.Person{}, nil).Twice()
	records.EXPECT().ValidateRecord(bad, people.SchemaPerson).Return(nil, rejection).Once()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	svc, err := New(loader, records, WithWorkers(2), WithTracerProvider(tp), WithMeterProvider(mp))
	require.NoError(t, err)

	results := run(t, svc, "data")
	require.Len(t, results, 4)

	t.Run("records one span per document", func(t *testing.T) {
		ended := spans.Ended()
		require.Len(t, ended, 4)

		statuses := make(map[string]codes.Code)
		for _, span := range ended {
			assert.Equal(t, "intake.validate", span.Name())

			var path string
			for _, attr := range span.Attributes() {
				if attr.Key == "document.path" {
					path = attr.Value.AsString()
				}
			}
			statuses[path] = span.Status().Code
		}

		assert.Equal(t, map[string]codes.Code{
			"a.yml": codes.Unset,
			"b.yml": codes.Unset,
			"c.yml": codes.Error,
			"d.yml": codes.Error,
		}, statuses)
	})

	t.Run("counts documents by outcome", func(t *testing.T) {
		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(t.Context(), &rm))

		counts := make(map[string]int64)
		for _, scope := range rm.ScopeMetrics {
			for _, m := range scope.Metrics {
				if m.Name != "ospeople.records.validated" {
					continue
				}

				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				for _, dp := range sum.DataPoints {
					outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
					counts[outcome.AsString()] += dp.Value
				}
			}
		}

		assert.Equal(t, map[string]int64{
			OutcomeAccepted: 2,
			OutcomeRejected: 1,
			OutcomeFailed:   1,
		}, counts)
	})
}
