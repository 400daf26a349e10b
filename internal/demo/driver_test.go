package demo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

func TestRun_Sequence(t *testing.T) {
	h := newHarness(t, nil)

	if err := h.driver.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if h.pinger.calls != 1 || h.seeder.calls != 1 || h.indexer.calls != 1 || h.searcher.calls != 1 {
		t.Errorf("phase calls = ping:%d seed:%d index:%d search:%d, want 1 each",
			h.pinger.calls, h.seeder.calls, h.indexer.calls, h.searcher.calls)
	}
	if h.indexer.lexical != "movies_text_index" || h.indexer.vector != "movies_vector_index" || h.indexer.dims != 1536 {
		t.Errorf("indexer got %s/%s/%d", h.indexer.lexical, h.indexer.vector, h.indexer.dims)
	}
	if h.searcher.query != "space galaxy adventure" {
		t.Errorf("search query = %q", h.searcher.query)
	}
}

func TestRun_RendersFusedRanking(t *testing.T) {
	h := newHarness(t, nil)
	h.searcher.results = []domain.ScoredResult{
		{Title: "Star Wars: A New Hope", Plot: "Luke Skywalker joins forces with a Jedi Knight.", Score: 0.0164},
		{Title: "Pulp Fiction", Plot: "The lives of two mob hitmen intertwine.", Score: 0.0113},
		{Title: "The Dark Knight", Plot: "Batman must face the Joker.", Score: 0.0111},
		{Title: "The Godfather", Plot: "The aging patriarch transfers control.", Score: 0.0109},
		{Title: "Forrest Gump", Plot: "A simple man from Alabama.", Score: 0.0108},
	}

	if err := h.driver.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := h.out.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	var entries []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "0.0") {
			entries = append(entries, strings.TrimSpace(line))
		}
	}
	if len(entries) != 5 {
		t.Fatalf("rendered %d entries, want 5:\n%s", len(entries), out)
	}
	if !strings.HasPrefix(entries[0], "0.0164  Star Wars: A New Hope") {
		t.Errorf("first entry = %q, want Star Wars at 0.0164", entries[0])
	}
	if !strings.Contains(out, "Luke Skywalker") {
		t.Errorf("plot not rendered:\n%s", out)
	}
	// Server order, not score order, decides the listing.
	if strings.Index(out, "Pulp Fiction") > strings.Index(out, "The Dark Knight") {
		t.Errorf("entries rendered out of server order:\n%s", out)
	}
}

func TestRun_PingFailureStopsBeforeCollaborators(t *testing.T) {
	h := newHarness(t, nil)
	h.pinger.err = domain.ErrConnectivity

	err := h.driver.Run(context.Background())
	if !errors.Is(err, domain.ErrConnectivity) {
		t.Fatalf("expected connectivity error, got %v", err)
	}
	if h.seeder.calls != 0 || h.indexer.calls != 0 || h.searcher.calls != 0 {
		t.Errorf("collaborators invoked after failed liveness check: seed:%d index:%d search:%d",
			h.seeder.calls, h.indexer.calls, h.searcher.calls)
	}
}

func TestRun_SeedFailurePropagates(t *testing.T) {
	h := newHarness(t, nil)
	h.seeder.err = errors.New("insert failed")

	if err := h.driver.Run(context.Background()); err == nil {
		t.Fatal("expected seeding error")
	}
	if h.indexer.calls != 0 {
		t.Errorf("index phase ran after seed failure")
	}
}

func TestTeardown_PromptYesDrops(t *testing.T) {
	h := newHarness(t, strings.NewReader("YES\n"))
	coll := &mockDropper{}

	h.driver.Teardown(context.Background(), coll, false, true)

	if coll.calls != 1 {
		t.Errorf("drop calls = %d, want 1", coll.calls)
	}
	if !strings.Contains(h.out.String(), `Drop collection "movies"?`) {
		t.Errorf("prompt not shown: %q", h.out.String())
	}
}

func TestTeardown_PromptAnythingElseSkips(t *testing.T) {
	for _, answer := range []string{"no\n", "y\n", "\n", "yes please\n"} {
		h := newHarness(t, strings.NewReader(answer))
		coll := &mockDropper{}

		h.driver.Teardown(context.Background(), coll, false, true)

		if coll.calls != 0 {
			t.Errorf("answer %q dropped the collection", answer)
		}
	}
}

func TestTeardown_FlagForcesDropWithoutPrompt(t *testing.T) {
	h := newHarness(t, nil)
	coll := &mockDropper{}

	h.driver.Teardown(context.Background(), coll, true, false)

	if coll.calls != 1 {
		t.Errorf("drop calls = %d, want 1", coll.calls)
	}
	if strings.Contains(h.out.String(), "Drop collection") {
		t.Errorf("prompt shown despite flag")
	}
}

func TestTeardown_NonInteractiveSkips(t *testing.T) {
	h := newHarness(t, nil)
	coll := &mockDropper{}

	h.driver.Teardown(context.Background(), coll, false, false)

	if coll.calls != 0 {
		t.Errorf("non-interactive run dropped the collection")
	}
}

func TestTeardown_DropFailureIsNonFatal(t *testing.T) {
	h := newHarness(t, nil)
	coll := &mockDropper{err: errors.New("not primary")}

	// Must not panic or propagate; teardown is best-effort.
	h.driver.Teardown(context.Background(), coll, true, false)
}
