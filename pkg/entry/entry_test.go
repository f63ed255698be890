package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/mood"
)

func TestNewNormalizesMood(t *testing.T) {
	e := New("2024-03-01", "hello", mood.Mood("confused"))
	if e.Mood != mood.Normal {
		t.Fatalf("expected unknown mood to normalize, got %q", e.Mood)
	}
	if e.WordCount != 1 {
		t.Fatalf("expected word count 1, got %d", e.WordCount)
	}
	if e.Created.IsZero() || e.Updated.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestTouchKeepsCreated(t *testing.T) {
	e := New("2024-03-01", "first draft", mood.Happy)
	created := e.Created.Time
	e.Content = "second draft with more words"
	e.Touch()
	if !e.Created.Time.Equal(created) {
		t.Fatalf("touch must not change creation time")
	}
	if e.WordCount != 5 {
		t.Fatalf("expected recounted words, got %d", e.WordCount)
	}
	if e.Updated.Time.Before(created) {
		t.Fatalf("updated should not precede created")
	}
}

func TestValidateContent(t *testing.T) {
	if err := ValidateContent("a fine day"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateContent("   \n\t"); err == nil {
		t.Fatalf("blank content should fail")
	}
	if err := ValidateContent(strings.Repeat("a", MaxContentLength+1)); err == nil {
		t.Fatalf("oversized content should fail")
	}
	if err := ValidateContent(strings.Repeat("a", MaxContentLength)); err != nil {
		t.Fatalf("content at the limit should pass: %v", err)
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-03-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateDate("03/01/2024"); err == nil {
		t.Fatalf("non-canonical date should fail")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	now := time.Date(2024, time.March, 1, 20, 30, 0, 0, time.UTC)
	e := New("2024-03-01", "hi", mood.Happy)
	e.Created = Timestamp{Time: now}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Entry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Created.Time.Equal(now) {
		t.Fatalf("created timestamp mismatch: %v", back.Created)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("one\ntwo   three", 60); got != "one two three" {
		t.Fatalf("excerpt should flatten whitespace, got %q", got)
	}
	long := strings.Repeat("word ", 40)
	got := Excerpt(long, 20)
	if len([]rune(got)) > 21 {
		t.Fatalf("excerpt too long: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}
