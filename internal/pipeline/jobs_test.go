package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/syllafetch/internal/summarize"
)

func TestNewJob(t *testing.T) {
	j := NewJob("GATE")
	if j.Exam != "GATE" {
		t.Errorf("exam = %q", j.Exam)
	}
	if j.Status() != StatusQueued {
		t.Errorf("status = %q, want queued", j.Status())
	}
	if len(j.ID) != 20 {
		t.Errorf("job id %q should be 20 chars", j.ID)
	}
	j2 := NewJob("GATE")
	if j.ID == j2.ID {
		t.Error("job ids should differ")
	}
}

func TestJob_ProgressRecordsStageAndMessage(t *testing.T) {
	j := NewJob("GATE")
	j.Progress(StatusSearching, "Searching for syllabus...")
	j.Progress(StatusCrawling, "Crawling: https://a.com")
	j.Progress(StatusSummarizing, "Summarizing syllabus...")

	snap := j.Snapshot()
	if snap.Status != StatusSummarizing {
		t.Errorf("status = %q", snap.Status)
	}
	want := []string{
		"Searching for syllabus...",
		"Crawling: https://a.com",
		"Summarizing syllabus...",
	}
	if len(snap.Progress) != len(want) {
		t.Fatalf("progress = %v", snap.Progress)
	}
	for i := range want {
		if snap.Progress[i] != want[i] {
			t.Errorf("progress %d = %q, want %q", i, snap.Progress[i], want[i])
		}
	}
}

func TestJob_SetResult(t *testing.T) {
	j := NewJob("GATE")
	s := &summarize.Syllabus{Exam: "GATE", Subjects: []summarize.Subject{{Subject: "Math"}}}
	j.SetResult(s)

	if j.Status() != StatusCompleted {
		t.Errorf("status = %q", j.Status())
	}
	if j.Result() != s {
		t.Error("result not stored")
	}
	if !j.Status().Terminal() {
		t.Error("completed should be terminal")
	}
}

func TestJob_Fail(t *testing.T) {
	j := NewJob("GATE")
	j.Fail(StatusNoResults, NoSyllabusMessage)

	snap := j.Snapshot()
	if snap.Status != StatusNoResults {
		t.Errorf("status = %q", snap.Status)
	}
	if snap.Error != "No relevant syllabus found." {
		t.Errorf("error message = %q, want the exact literal", snap.Error)
	}
}

func TestTerminal(t *testing.T) {
	cases := map[JobStatus]bool{
		StatusQueued:      false,
		StatusSearching:   false,
		StatusCrawling:    false,
		StatusSummarizing: false,
		StatusCompleted:   true,
		StatusNoResults:   true,
		StatusFailed:      true,
	}
	for status, want := range cases {
		if got := status.Terminal(); got != want {
			t.Errorf("%q.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	j := NewJob("GATE")
	store.Put(j)
	if store.Get(j.ID) != j {
		t.Error("stored job not retrievable")
	}
	if store.Get("missing") != nil {
		t.Error("missing job should be nil")
	}
}

func TestJobStore_CleanupEvictsStale(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	stale := NewJob("OLD")
	store.Put(stale)

	time.Sleep(25 * time.Millisecond)
	fresh := NewJob("NEW")
	store.Put(fresh)

	store.Cleanup()
	if store.Get(stale.ID) != nil {
		t.Error("stale job should be evicted")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("fresh job should survive cleanup")
	}
}
