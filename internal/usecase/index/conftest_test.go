package index

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// mockStore implements the Store contract for tests.
type mockStore struct {
	listStates []domain.IndexState
	listErr    error

	stateFn    func(call int, name string) (domain.IndexState, bool, error)
	stateCalls int

	createErr    error
	createCalls  int
	createdNames []string
	createdKinds []domain.IndexKind
	createdDims  []int
}

func (m *mockStore) ListSearchIndexes(_ context.Context) ([]domain.IndexState, error) {
	return m.listStates, m.listErr
}

func (m *mockStore) SearchIndexState(_ context.Context, name string) (domain.IndexState, bool, error) {
	m.stateCalls++
	if m.stateFn != nil {
		return m.stateFn(m.stateCalls, name)
	}
	return domain.IndexState{Name: name, Status: domain.IndexStatusReady}, true, nil
}

func (m *mockStore) CreateSearchIndex(_ context.Context, name string, kind domain.IndexKind, dims int) error {
	m.createCalls++
	m.createdNames = append(m.createdNames, name)
	m.createdKinds = append(m.createdKinds, kind)
	m.createdDims = append(m.createdDims, dims)
	return m.createErr
}

// fakeClock advances simulated time by exactly the slept duration.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time         { return c.t }
func (c *fakeClock) sleep(d time.Duration)  { c.t = c.t.Add(d) }
func (c *fakeClock) elapsed() time.Duration { return c.t.Sub(time.Time{}) }

func newTestService(t *testing.T, store *mockStore) (*Service, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	svc := New(store, zap.NewNop())
	svc.now = clock.now
	svc.sleep = clock.sleep
	return svc, clock
}

func readyAfter(building int) func(call int, name string) (domain.IndexState, bool, error) {
	return func(call int, name string) (domain.IndexState, bool, error) {
		if call <= building {
			return domain.IndexState{Name: name, Status: "BUILDING"}, true, nil
		}
		return domain.IndexState{Name: name, Status: domain.IndexStatusReady}, true, nil
	}
}
