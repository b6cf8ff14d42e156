package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), zerolog.Nop())
}

func strPtr(s string) *string {
	return &s
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		reminder string
		wantKind Kind
		wantTask Task
	}{
		{name: "plain", text: "buy milk", wantTask: Task{Text: "buy milk"}},
		{name: "trimmed", text: "  buy milk \t", wantTask: Task{Text: "buy milk"}},
		{name: "with reminder", text: "call mom", reminder: "18:45", wantTask: Task{Text: "call mom", Reminder: "18:45"}},
		{name: "blank", text: "   ", wantKind: EmptyInput},
		{name: "bad reminder", text: "call mom", reminder: "6pm", wantKind: InvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			err := s.Add(tt.text, tt.reminder)

			if tt.wantKind != 0 {
				if !IsKind(err, tt.wantKind) {
					t.Fatalf("Add() error = %v, want kind %v", err, tt.wantKind)
				}
				if s.Len() != 0 {
					t.Errorf("store has %d tasks after failed Add, want 0", s.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() unexpected error: %v", err)
			}

			got, ok := s.Get(tt.wantTask.Text)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.wantTask.Text)
			}
			if got != tt.wantTask {
				t.Errorf("Get() = %+v, want %+v", got, tt.wantTask)
			}
		})
	}
}

func TestAdd_Duplicate(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("buy milk", "09:00"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	err := s.Add("buy milk ", "")
	if !IsKind(err, DuplicateTask) {
		t.Fatalf("second Add error = %v, want DuplicateTask", err)
	}

	want := []Task{{Text: "buy milk", Reminder: "09:00"}}
	if got := s.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tasks() = %+v, want %+v", got, want)
	}
}

func TestAdd_CaseSensitive(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("Buy milk", ""); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("buy milk", ""); err != nil {
		t.Errorf("Add with different case failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestRename(t *testing.T) {
	tests := []struct {
		name     string
		oldText  string
		newText  string
		reminder *string
		wantKind Kind
		want     []Task
	}{
		{
			name:    "keeps reminder when none supplied",
			oldText: "buy milk",
			newText: "buy oat milk",
			want:    []Task{{Text: "buy oat milk", Reminder: "09:30"}, {Text: "walk dog"}},
		},
		{
			name:     "uses supplied reminder",
			oldText:  "buy milk",
			newText:  "buy oat milk",
			reminder: strPtr("10:15"),
			want:     []Task{{Text: "buy oat milk", Reminder: "10:15"}, {Text: "walk dog"}},
		},
		{
			name:     "empty supplied reminder disarms",
			oldText:  "buy milk",
			newText:  "buy oat milk",
			reminder: strPtr(""),
			want:     []Task{{Text: "buy oat milk"}, {Text: "walk dog"}},
		},
		{
			name:     "same text only updates reminder",
			oldText:  "buy milk",
			newText:  "buy milk",
			reminder: strPtr("07:00"),
			want:     []Task{{Text: "buy milk", Reminder: "07:00"}, {Text: "walk dog"}},
		},
		{
			name:     "missing task",
			oldText:  "feed cat",
			newText:  "feed cats",
			wantKind: TaskNotFound,
		},
		{
			name:     "collides with another task",
			oldText:  "buy milk",
			newText:  "walk dog",
			wantKind: DuplicateTask,
		},
		{
			name:     "blank new text",
			oldText:  "buy milk",
			newText:  " ",
			wantKind: EmptyInput,
		},
		{
			name:     "bad supplied reminder",
			oldText:  "buy milk",
			newText:  "buy oat milk",
			reminder: strPtr("24:00"),
			wantKind: InvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := s.Add("buy milk", "09:30"); err != nil {
				t.Fatal(err)
			}
			if err := s.Add("walk dog", ""); err != nil {
				t.Fatal(err)
			}
			before := s.Tasks()

			err := s.Rename(tt.oldText, tt.newText, tt.reminder)
			if tt.wantKind != 0 {
				if !IsKind(err, tt.wantKind) {
					t.Fatalf("Rename() error = %v, want kind %v", err, tt.wantKind)
				}
				if got := s.Tasks(); !reflect.DeepEqual(got, before) {
					t.Errorf("store changed after failed Rename: %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rename() unexpected error: %v", err)
			}
			if got := s.Tasks(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tasks() = %+v, want %+v", got, tt.want)
			}
			if tt.oldText != tt.newText {
				if _, ok := s.Get(tt.oldText); ok {
					t.Errorf("old text %q still present", tt.oldText)
				}
			}
		})
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	for _, text := range []string{"a", "b", "c"} {
		if err := s.Add(text, ""); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Remove("b"); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}
	want := []Task{{Text: "a"}, {Text: "c"}}
	if got := s.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tasks() = %+v, want %+v", got, want)
	}

	err := s.Remove("zzz")
	if !IsKind(err, TaskNotFound) {
		t.Fatalf("Remove(absent) error = %v, want TaskNotFound", err)
	}
	if got := s.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("store changed after failed Remove: %+v", got)
	}
}

func TestSetReminder(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("stretch", ""); err != nil {
		t.Fatal(err)
	}

	if err := s.SetReminder("stretch", "25:00"); !IsKind(err, InvalidTimeFormat) {
		t.Errorf("SetReminder(25:00) error = %v, want InvalidTimeFormat", err)
	}
	if task, _ := s.Get("stretch"); task.Armed() {
		t.Errorf("task armed after invalid SetReminder: %+v", task)
	}

	if err := s.SetReminder("stretch", "09:30"); err != nil {
		t.Fatalf("SetReminder(09:30) unexpected error: %v", err)
	}
	if task, _ := s.Get("stretch"); task.Reminder != "09:30" {
		t.Errorf("Reminder = %q, want 09:30", task.Reminder)
	}

	if err := s.SetReminder("nap", "12:00"); !IsKind(err, TaskNotFound) {
		t.Errorf("SetReminder(absent) error = %v, want TaskNotFound", err)
	}
}

func TestClearReminder(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("stretch", "08:00"); err != nil {
		t.Fatal(err)
	}

	if err := s.ClearReminder("stretch"); err != nil {
		t.Fatalf("ClearReminder() unexpected error: %v", err)
	}
	if task, _ := s.Get("stretch"); task.Armed() {
		t.Errorf("task still armed: %+v", task)
	}
	if len(s.Armed()) != 0 {
		t.Errorf("Armed() = %+v, want none", s.Armed())
	}

	if err := s.ClearReminder("nap"); err != nil {
		t.Errorf("ClearReminder(absent) error = %v, want nil", err)
	}
}

func TestParseReminder(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "00:00", want: "00:00"},
		{in: "23:59", want: "23:59"},
		{in: " 09:30 ", want: "09:30"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "0930", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReminder(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReminder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseReminder(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	err := error(newError(DuplicateTask, "buy milk", nil))

	se, ok := AsError(err)
	if !ok {
		t.Fatal("AsError() = false")
	}
	if se.Message() != "This task is already in the list" {
		t.Errorf("Message() = %q", se.Message())
	}
	if got := err.Error(); got != `duplicate task: "buy milk"` {
		t.Errorf("Error() = %q", got)
	}
}
