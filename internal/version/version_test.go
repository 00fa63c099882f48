package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{name: "dev build", commit: "unknown", date: "unknown", want: "mindlog version dev ("},
		{name: "release build", commit: "0123456789abcdef", date: "2026-01-02T03:04:05Z", want: "(commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{name: "short commit", commit: "abc", date: "2026-01-02T03:04:05Z", want: "(commit: abc,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldCommit, oldDate := Commit, Date
			t.Cleanup(func() { Commit, Date = oldCommit, oldDate })
			Commit, Date = tt.commit, tt.date

			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestShort(t *testing.T) {
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}
