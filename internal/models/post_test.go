package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestActionTarget(t *testing.T) {
	tests := []struct {
		action Action
		want   Status
		ok     bool
	}{
		{ActionPublish, StatusPublished, true},
		{ActionDraft, StatusDraft, true},
		{ActionArchive, StatusArchived, true},
		// Unarchive maps to published, not the pre-archive status.
		{ActionUnarchive, StatusPublished, true},
		{Action("delete"), "", false},
		{Action(""), "", false},
	}

	for _, tt := range tests {
		got, ok := tt.action.Target()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Target(%q): got (%q, %v), want (%q, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPublished, StatusArchived} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []Status{"", "deleted", "Published"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestPostUnmarshalReadTimeAlias(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "camelCase spelling",
			body: `{"title":"T","readTime":"5 min read"}`,
			want: "5 min read",
		},
		{
			name: "snake_case spelling",
			body: `{"title":"T","read_time":"7 min read"}`,
			want: "7 min read",
		},
		{
			name: "camelCase wins when both present",
			body: `{"title":"T","readTime":"5 min read","read_time":"9 min read"}`,
			want: "5 min read",
		},
		{
			name: "absent",
			body: `{"title":"T"}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Post
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.ReadTime != tt.want {
				t.Errorf("ReadTime: got %q, want %q", p.ReadTime, tt.want)
			}
		})
	}
}

func TestPostMarshalUsesCamelCase(t *testing.T) {
	p := Post{Title: "T", Slug: "t", ReadTime: "5 min read"}
	out, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"readTime":"5 min read"`) {
		t.Errorf("expected readTime in output, got %s", out)
	}
	if strings.Contains(string(out), "read_time") {
		t.Errorf("storage column name leaked into JSON output: %s", out)
	}
}

func TestPostBody(t *testing.T) {
	p := Post{Markdown: "# Hi", Content: "<h1>Hi</h1>"}
	src, isMD := p.Body()
	if !isMD || src != "# Hi" {
		t.Errorf("expected markdown to take precedence, got (%q, %v)", src, isMD)
	}

	p.Markdown = ""
	src, isMD = p.Body()
	if isMD || src != "<h1>Hi</h1>" {
		t.Errorf("expected legacy content fallback, got (%q, %v)", src, isMD)
	}
}
