package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tgienger/taskman/internal/models"
)

// createTestStore creates a store backed by a file in a temp dir.
func createTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	return New(path), path
}

// seedTasks adds tasks and fails the test on any persistence error.
func seedTasks(t *testing.T, s *Store, rows [][3]string) []models.Task {
	t.Helper()

	var tasks []models.Task
	for _, row := range rows {
		task, err := s.Add(row[0], row[1], row[2])
		if err != nil {
			t.Fatalf("Failed to seed task %q: %v", row[0], err)
		}
		tasks = append(tasks, *task)
	}
	return tasks
}

func strptr(s string) *string { return &s }

// =============================================================================
// ID assignment
// =============================================================================

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	// Given an empty store
	s, _ := createTestStore(t)

	// When adding N tasks
	for i := 1; i <= 5; i++ {
		task, err := s.Add(fmt.Sprintf("task %d", i), "", models.PriorityMedium)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		// Then ids are exactly 1..N in call order
		if task.ID != int64(i) {
			t.Errorf("Add() #%d assigned id %d, want %d", i, task.ID, i)
		}
		if task.Status != models.StatusPending {
			t.Errorf("Add() status = %q, want %q", task.Status, models.StatusPending)
		}
		if task.CreatedAt.IsZero() || !task.UpdatedAt.Equal(task.CreatedAt) {
			t.Errorf("Add() timestamps: created=%v updated=%v, want equal and non-zero",
				task.CreatedAt, task.UpdatedAt)
		}
	}
}

func TestAdd_NeverReusesDeletedIDs(t *testing.T) {
	tests := []struct {
		name     string
		seed     int
		deleteID int64
		wantNext int64
	}{
		{
			name:     "Given three tasks When deleting the middle one Then next id is 4",
			seed:     3,
			deleteID: 2,
			wantNext: 4,
		},
		{
			name:     "Given three tasks When deleting the last one Then id 3 is not reassigned",
			seed:     3,
			deleteID: 3,
			wantNext: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestStore(t)
			for i := 0; i < tt.seed; i++ {
				if _, err := s.Add(fmt.Sprintf("task %d", i+1), "", models.PriorityMedium); err != nil {
					t.Fatalf("Add() error = %v", err)
				}
			}

			removed, err := s.Delete(tt.deleteID)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if !removed {
				t.Fatalf("Delete(%d) = false, want true", tt.deleteID)
			}

			task, err := s.Add("after delete", "", models.PriorityMedium)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if task.ID != tt.wantNext {
				t.Errorf("Add() after delete assigned id %d, want %d", task.ID, tt.wantNext)
			}
		})
	}
}

func TestNew_NextIDAfterReload(t *testing.T) {
	// Given a store with tasks 1..3 where 3 was deleted
	s, path := createTestStore(t)
	seedTasks(t, s, [][3]string{
		{"a", "", "high"}, {"b", "", "low"}, {"c", "", "medium"},
	})
	s.Delete(3)

	// When reloading from the same document
	reloaded := New(path)

	// Then the next id is 1 + max(remaining ids)
	task, err := reloaded.Add("d", "", models.PriorityMedium)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if task.ID != 3 {
		t.Errorf("Add() after reload assigned id %d, want 3", task.ID)
	}
}

// =============================================================================
// Update
// =============================================================================

func TestUpdate_NotFoundLeavesDocumentUntouched(t *testing.T) {
	// Given a persisted collection
	s, path := createTestStore(t)
	seedTasks(t, s, [][3]string{{"a", "", "high"}})

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// When updating a nonexistent id
	task, err := s.Update(99, UpdateFields{Title: strptr("new")})

	// Then absence is signaled and the document is byte-for-byte unchanged
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if task != nil {
		t.Errorf("Update(99) = %+v, want nil", task)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(before) != string(after) {
		t.Error("Update() on missing id rewrote the backing document")
	}
}

func TestUpdate_RefreshesUpdatedAtOnly(t *testing.T) {
	s, _ := createTestStore(t)
	seeded := seedTasks(t, s, [][3]string{{"a", "desc", "high"}})
	orig := seeded[0]

	// When updating a single field
	task, err := s.Update(orig.ID, UpdateFields{Status: strptr(models.StatusCompleted)})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if task == nil {
		t.Fatal("Update() = nil, want task")
	}

	// Then updated_at advances and created_at never changes
	if task.UpdatedAt.Before(orig.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", orig.UpdatedAt, task.UpdatedAt)
	}
	if !task.CreatedAt.Equal(orig.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", orig.CreatedAt, task.CreatedAt)
	}

	// And untouched fields survive
	if task.Title != "a" || task.Description != "desc" || task.Priority != "high" {
		t.Errorf("Update() clobbered unrelated fields: %+v", task)
	}
	if task.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want %q", task.Status, models.StatusCompleted)
	}
}

func TestUpdate_AppliesOnlySuppliedFields(t *testing.T) {
	tests := []struct {
		name   string
		fields UpdateFields
		want   models.Task
	}{
		{
			name:   "Given a task When updating title Then only title changes",
			fields: UpdateFields{Title: strptr("renamed")},
			want:   models.Task{Title: "renamed", Description: "d", Priority: "low", Status: "pending"},
		},
		{
			name:   "Given a task When updating description Then only description changes",
			fields: UpdateFields{Description: strptr("new desc")},
			want:   models.Task{Title: "t", Description: "new desc", Priority: "low", Status: "pending"},
		},
		{
			name: "Given a task When updating several fields Then all supplied fields change",
			fields: UpdateFields{
				Priority: strptr("high"),
				Status:   strptr("completed"),
			},
			want: models.Task{Title: "t", Description: "d", Priority: "high", Status: "completed"},
		},
		{
			name:   "Given a task When supplying no fields Then the record is unchanged",
			fields: UpdateFields{},
			want:   models.Task{Title: "t", Description: "d", Priority: "low", Status: "pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestStore(t)
			seedTasks(t, s, [][3]string{{"t", "d", "low"}})

			got, err := s.Update(1, tt.fields)
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if got == nil {
				t.Fatal("Update() = nil, want task")
			}

			if got.Title != tt.want.Title {
				t.Errorf("Title = %q, want %q", got.Title, tt.want.Title)
			}
			if got.Description != tt.want.Description {
				t.Errorf("Description = %q, want %q", got.Description, tt.want.Description)
			}
			if got.Priority != tt.want.Priority {
				t.Errorf("Priority = %q, want %q", got.Priority, tt.want.Priority)
			}
			if got.Status != tt.want.Status {
				t.Errorf("Status = %q, want %q", got.Status, tt.want.Status)
			}
		})
	}
}

func TestUpdate_StoresUnrecognizedEnumValuesVerbatim(t *testing.T) {
	// The store deliberately does not validate enum values; callers do.
	s, _ := createTestStore(t)
	seedTasks(t, s, [][3]string{{"t", "", "medium"}})

	task, err := s.Update(1, UpdateFields{Priority: strptr("urgent")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if task.Priority != "urgent" {
		t.Errorf("Priority = %q, want the verbatim value %q", task.Priority, "urgent")
	}
}

// =============================================================================
// Delete / Get
// =============================================================================

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		seed        int
		deleteID    int64
		wantRemoved bool
		wantCount   int
	}{
		{
			name:        "Given tasks exist When deleting one Then it is removed",
			seed:        2,
			deleteID:    1,
			wantRemoved: true,
			wantCount:   1,
		},
		{
			name:        "Given tasks exist When deleting unknown id Then nothing changes",
			seed:        2,
			deleteID:    99,
			wantRemoved: false,
			wantCount:   2,
		},
		{
			name:        "Given an empty store When deleting Then no error",
			seed:        0,
			deleteID:    1,
			wantRemoved: false,
			wantCount:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestStore(t)
			for i := 0; i < tt.seed; i++ {
				s.Add(fmt.Sprintf("task %d", i+1), "", models.PriorityMedium)
			}

			removed, err := s.Delete(tt.deleteID)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if removed != tt.wantRemoved {
				t.Errorf("Delete(%d) = %v, want %v", tt.deleteID, removed, tt.wantRemoved)
			}
			if got := len(s.List("", "")); got != tt.wantCount {
				t.Errorf("After delete: %d tasks, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestGet(t *testing.T) {
	s, _ := createTestStore(t)
	seedTasks(t, s, [][3]string{{"a", "", "high"}, {"b", "", "low"}})

	if task := s.Get(2); task == nil || task.Title != "b" {
		t.Errorf("Get(2) = %+v, want task b", task)
	}
	if task := s.Get(99); task != nil {
		t.Errorf("Get(99) = %+v, want nil", task)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s, _ := createTestStore(t)
	seedTasks(t, s, [][3]string{{"a", "", "high"}})

	task := s.Get(1)
	task.Title = "mutated"

	if fresh := s.Get(1); fresh.Title != "a" {
		t.Error("Get() exposed internal state to caller mutation")
	}
}

// =============================================================================
// List
// =============================================================================

func TestList(t *testing.T) {
	seed := [][3]string{
		{"one", "", "high"},     // id 1, pending
		{"two", "", "low"},      // id 2, pending
		{"three", "", "high"},   // id 3, pending
		{"four", "", "medium"},  // id 4, completed below
	}

	tests := []struct {
		name     string
		status   string
		priority string
		wantIDs  []int64
	}{
		{
			name:    "Given tasks When listing without filters Then all are returned ascending by id",
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "Given tasks When filtering by status Then only matches are returned",
			status:  "completed",
			wantIDs: []int64{4},
		},
		{
			name:     "Given tasks When filtering by priority Then only matches are returned",
			priority: "high",
			wantIDs:  []int64{1, 3},
		},
		{
			name:     "Given tasks When filtering by status and priority Then both must match",
			status:   "pending",
			priority: "high",
			wantIDs:  []int64{1, 3},
		},
		{
			name:     "Given tasks When no task matches Then the result is empty",
			status:   "completed",
			priority: "low",
			wantIDs:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestStore(t)
			seedTasks(t, s, seed)
			if _, err := s.Update(4, UpdateFields{Status: strptr(models.StatusCompleted)}); err != nil {
				t.Fatalf("Update() error = %v", err)
			}

			got := s.List(tt.status, tt.priority)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("List(%q, %q) returned %d tasks, want %d",
					tt.status, tt.priority, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("List()[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestList_ReturnsFreshCopies(t *testing.T) {
	s, _ := createTestStore(t)
	seedTasks(t, s, [][3]string{{"a", "", "high"}})

	got := s.List("", "")
	got[0].Title = "mutated"

	if fresh := s.Get(1); fresh.Title != "a" {
		t.Error("List() exposed internal state to caller mutation")
	}
}

// =============================================================================
// Search
// =============================================================================

func TestSearch(t *testing.T) {
	seed := [][3]string{
		{"Design api layer", "", "high"},
		{"Write docs", "document every api endpoint", "medium"},
		{"Buy groceries", "milk and eggs", "low"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{
			name:    "Given tasks When searching Then title matches case-insensitively",
			query:   "API",
			wantIDs: []int64{1, 2},
		},
		{
			name:    "Given tasks When searching Then description is matched too",
			query:   "endpoint",
			wantIDs: []int64{2},
		},
		{
			name:    "Given tasks When nothing matches Then the result is empty",
			query:   "xyzzy",
			wantIDs: []int64{},
		},
		{
			name:    "Given tasks When query is empty Then everything matches",
			query:   "",
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := createTestStore(t)
			seedTasks(t, s, seed)

			got := s.Search(tt.query)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d tasks, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Search(%q)[%d].ID = %d, want %d", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

// =============================================================================
// Stats
// =============================================================================

func TestStats(t *testing.T) {
	s, _ := createTestStore(t)
	seedTasks(t, s, [][3]string{
		{"a", "", "high"},
		{"b", "", "high"},
		{"c", "", "low"},
	})
	if _, err := s.Update(2, UpdateFields{Status: strptr(models.StatusCompleted)}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	stats := s.Stats()

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Pending != 2 {
		t.Errorf("Pending = %d, want 2", stats.Pending)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.ByPriority["high"] != 2 || stats.ByPriority["low"] != 1 {
		t.Errorf("ByPriority = %v, want high=2 low=1", stats.ByPriority)
	}
	if len(stats.ByPriority) != 2 {
		t.Errorf("ByPriority has %d keys, want 2", len(stats.ByPriority))
	}
}

func TestStats_EmptyStore(t *testing.T) {
	s, _ := createTestStore(t)

	stats := s.Stats()

	if stats.Total != 0 || stats.Pending != 0 || stats.Completed != 0 {
		t.Errorf("Stats() on empty store = %+v, want zeros", stats)
	}
	if len(stats.ByPriority) != 0 {
		t.Errorf("ByPriority = %v, want empty", stats.ByPriority)
	}
}

// =============================================================================
// Persistence
// =============================================================================

func TestNew_RoundTrip(t *testing.T) {
	// Given a persisted collection
	s, path := createTestStore(t)
	seedTasks(t, s, [][3]string{
		{"a", "first", "high"},
		{"b", "second", "low"},
	})
	s.Update(2, UpdateFields{Status: strptr(models.StatusCompleted)})
	want := s.List("", "")

	// When reloading from the same path
	got := New(path).List("", "")

	// Then the collection is identical in content and order
	if len(got) != len(want) {
		t.Fatalf("Reloaded %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title ||
			got[i].Description != want[i].Description ||
			got[i].Priority != want[i].Priority || got[i].Status != want[i].Status {
			t.Errorf("Task %d differs after reload: got %+v, want %+v", i, got[i], want[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) || !got[i].UpdatedAt.Equal(want[i].UpdatedAt) {
			t.Errorf("Task %d timestamps differ after reload", i)
		}
	}
}

func TestNew_MalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Given invalid JSON When loading Then the store starts empty", "{not json"},
		{"Given a non-array document When loading Then the store starts empty", `{"id": 1}`},
		{"Given an empty file When loading Then the store starts empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			s := New(path)

			if got := len(s.List("", "")); got != 0 {
				t.Errorf("New() loaded %d tasks from malformed document, want 0", got)
			}

			// The next id starts at 1
			task, err := s.Add("fresh", "", models.PriorityMedium)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if task.ID != 1 {
				t.Errorf("Add() assigned id %d, want 1", task.ID)
			}
		})
	}
}

func TestNew_MissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	s := New(path)

	if got := len(s.List("", "")); got != 0 {
		t.Errorf("New() on missing file loaded %d tasks, want 0", got)
	}
}

func TestSave_WriteFailurePropagates(t *testing.T) {
	// Point the store at a path whose parent directory does not exist.
	path := filepath.Join(t.TempDir(), "missing", "tasks.json")
	s := New(path)

	if _, err := s.Add("a", "", models.PriorityMedium); err == nil {
		t.Error("Add() with unwritable document path returned nil error")
	}
}

// =============================================================================
// Integration scenario
// =============================================================================

func TestStore_IntegrationScenario(t *testing.T) {
	s, path := createTestStore(t)

	// Phase 1: populate
	seedTasks(t, s, [][3]string{
		{"Design api layer", "", "high"},
		{"Write tests", "unit tests for the store", "medium"},
		{"Ship it", "", "low"},
	})

	// Phase 2: mutate
	if _, err := s.Update(1, UpdateFields{Status: strptr(models.StatusCompleted)}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if removed, _ := s.Delete(3); !removed {
		t.Fatal("Delete(3) = false, want true")
	}

	// Phase 3: query
	pending := s.List(models.StatusPending, "")
	if len(pending) != 1 || pending[0].ID != 2 {
		t.Errorf("Pending tasks = %+v, want just id 2", pending)
	}

	results := s.Search("api")
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("Search(api) = %+v, want just id 1", results)
	}

	stats := s.Stats()
	if stats.Total != 2 || stats.Pending != 1 || stats.Completed != 1 {
		t.Errorf("Stats() = %+v, want total=2 pending=1 completed=1", stats)
	}

	// Phase 4: survive a reload
	reloaded := New(path)
	if got := len(reloaded.List("", "")); got != 2 {
		t.Errorf("Reloaded %d tasks, want 2", got)
	}
	if task, _ := reloaded.Add("new", "", models.PriorityMedium); task.ID != 3 {
		t.Errorf("Add() after reload assigned id %d, want 3", task.ID)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkList(b *testing.B) {
	s := New(filepath.Join(b.TempDir(), "tasks.json"))
	priorities := []string{"high", "medium", "low"}
	for i := 0; i < 1000; i++ {
		s.Add(fmt.Sprintf("task %d", i), "", priorities[i%3])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.List("", "high")
	}
}

func BenchmarkSearch(b *testing.B) {
	s := New(filepath.Join(b.TempDir(), "tasks.json"))
	for i := 0; i < 1000; i++ {
		s.Add(fmt.Sprintf("task %d", i), "description text", "medium")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Search("500")
	}
}
