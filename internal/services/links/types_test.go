package links

import (
	"testing"
	"time"
)

func TestLinkTypeString(t *testing.T) {
	tests := []struct {
		linkType LinkType
		want     string
	}{
		{LinkTypeFile, "file"},
		{LinkTypeFolder, "folder"},
		{LinkType(42), "folder"},
	}

	for _, tt := range tests {
		if got := tt.linkType.String(); got != tt.want {
			t.Errorf("LinkType(%d).String() = %q, want %q", tt.linkType, got, tt.want)
		}
	}
}

func TestParseLinkType(t *testing.T) {
	tests := []struct {
		wire string
		want LinkType
	}{
		{"file", LinkTypeFile},
		{"folder", LinkTypeFolder},
		{"File", LinkTypeFolder},
		{"FILE", LinkTypeFolder},
		{"", LinkTypeFolder},
		{"directory", LinkTypeFolder},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			if got := ParseLinkType(tt.wire); got != tt.want {
				t.Errorf("ParseLinkType(%q) = %v, want %v", tt.wire, got, tt.want)
			}
		})
	}
}

func TestAccessibilityString(t *testing.T) {
	tests := []struct {
		accessibility Accessibility
		want          string
	}{
		{AccessibilityAnyone, "anyone"},
		{AccessibilityPassword, "password"},
		{AccessibilityDomain, "domain"},
		{AccessibilityRecipients, "recipients"},
		{Accessibility(99), "anyone"},
	}

	for _, tt := range tests {
		if got := tt.accessibility.String(); got != tt.want {
			t.Errorf("Accessibility(%d).String() = %q, want %q", tt.accessibility, got, tt.want)
		}
	}
}

func TestParseAccessibility(t *testing.T) {
	tests := []struct {
		wire string
		want Accessibility
	}{
		{"anyone", AccessibilityAnyone},
		{"password", AccessibilityPassword},
		{"domain", AccessibilityDomain},
		{"recipients", AccessibilityRecipients},
		{"Password", AccessibilityAnyone},
		{"", AccessibilityAnyone},
		{"public", AccessibilityAnyone},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			if got := ParseAccessibility(tt.wire); got != tt.want {
				t.Errorf("ParseAccessibility(%q) = %v, want %v", tt.wire, got, tt.want)
			}
		})
	}
}

func TestListOptionsEncodeOrder(t *testing.T) {
	before := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	after := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	linkType := LinkTypeFolder
	accessibility := AccessibilityRecipients
	offset := 5
	count := 50

	opts := ListOptions{
		Path:          "/Private/jsmith",
		Username:      "jsmith",
		CreatedBefore: &before,
		CreatedAfter:  &after,
		Type:          &linkType,
		Accessibility: &accessibility,
		Offset:        &offset,
		Count:         &count,
	}

	want := "path=%2FPrivate%2Fjsmith&username=jsmith&created_before=2024-05-01&created_after=2024-04-01&type=folder&accessibility=recipients&offset=5&count=50"
	if got := opts.encode(); got != want {
		t.Errorf("encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestListOptionsEncodeEmpty(t *testing.T) {
	if got := (ListOptions{}).encode(); got != "" {
		t.Errorf("expected empty query string, got %q", got)
	}
}

func TestListOptionsEncodeEscapesValues(t *testing.T) {
	opts := ListOptions{Path: "/Shared/Q1 Reports & Plans"}
	want := "path=%2FShared%2FQ1+Reports+%26+Plans"
	if got := opts.encode(); got != want {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}
