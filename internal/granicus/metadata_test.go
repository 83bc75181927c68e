package granicus

import (
	"strings"
	"testing"
)

func TestExtractMeta(t *testing.T) {
	tests := []struct {
		name       string
		clipID     int
		title      string
		agendaText string
		wantDate   string
		wantBody   string
		wantTitle  string
	}{
		{
			name:      "named date in title",
			clipID:    6700,
			title:     "Council Work Session January 8, 2026",
			wantDate:  "2026-01-08",
			wantBody:  "Council",
			wantTitle: "Council Work Session January 8, 2026",
		},
		{
			name:      "named date without comma",
			clipID:    6700,
			title:     "Planning Commission March 5 2025",
			wantDate:  "2025-03-05",
			wantBody:  "Commission",
			wantTitle: "Planning Commission March 5 2025",
		},
		{
			name:      "numeric date in title",
			clipID:    6700,
			title:     "WQFB Meeting 3/10/2025",
			wantDate:  "2025-03-10",
			wantBody:  "WQFB",
			wantTitle: "WQFB Meeting 3/10/2025",
		},
		{
			name:       "date only in agenda text",
			clipID:     6700,
			title:      "Budget Hearing",
			agendaText: "LFUCG Budget Hearing\nFebruary 20, 2025\n6:00 PM",
			wantDate:   "2025-02-20",
			wantBody:   "Budget Hearing",
			wantTitle:  "Budget Hearing",
		},
		{
			name:       "date beyond agenda head is ignored",
			clipID:     6700,
			title:      "Untitled Meeting",
			agendaText: strings.Repeat("x", 600) + " January 8, 2026",
			wantDate:   "",
			wantBody:   "",
			wantTitle:  "Untitled Meeting",
		},
		{
			name:      "invalid calendar date rejected",
			clipID:    6700,
			title:     "Council 2/30/2025",
			wantDate:  "",
			wantBody:  "Council",
			wantTitle: "Council 2/30/2025",
		},
		{
			name:      "empty title falls back to clip ID",
			clipID:    6712,
			wantTitle: "Clip 6712",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractMeta(tt.clipID, tt.title, tt.agendaText)
			if meta.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", meta.Date, tt.wantDate)
			}
			if meta.MeetingBody != tt.wantBody {
				t.Errorf("MeetingBody = %q, want %q", meta.MeetingBody, tt.wantBody)
			}
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"spaces to underscores", "Council Work Session", "Council_Work_Session"},
		{"duplicate counter stripped", "Council Meeting (2)", "Council_Meeting"},
		{"spaced counter stripped", "Council Meeting ( 3 )", "Council_Meeting"},
		{"unsafe characters removed", "Budget: FY2025 Q1?", "Budget_FY2025_Q1"},
		{"dashes collapsed", "Work - Session -- Final", "Work_Session_Final"},
		{"dots kept", "v2.1 release", "v2.1_release"},
		{"empty falls back", "", "clip"},
		{"only unsafe falls back", "???!!!", "clip"},
		{"long title truncated", strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.title); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
