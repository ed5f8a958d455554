package links

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339",
			in:   "2024-02-10T15:04:05Z",
			want: time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name: "no offset",
			in:   "2024-02-10T15:04:05",
			want: time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name: "space separated",
			in:   "2024-02-10 15:04:05",
			want: time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name: "date only",
			in:   "2024-02-10",
			want: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "garbage maps to zero time",
			in:   "next tuesday",
			want: time.Time{},
		},
		{
			name: "empty maps to zero time",
			in:   "",
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, parseTimestamp(tt.in).Equal(tt.want), "parseTimestamp(%q)", tt.in)
		})
	}
}

func TestMapLinkDetails(t *testing.T) {
	raw := &linkDetailsResponse{
		ID:            "abc123",
		Path:          "/Shared/reports/q1.pdf",
		URL:           "https://acme.egnyte.com/dl/abc123",
		LinkType:      "file",
		Accessibility: "recipients",
		Notify:        true,
		Protection:    "PREVIEW",
		LinkToCurrent: true,
		CreationDate:  "2024-02-10T09:00:00Z",
		CreatedBy:     "jsmith",
		Recipients:    []string{"a@example.com", "b@example.com"},
	}

	details := mapLinkDetails(raw)

	assert.Equal(t, "abc123", details.ID)
	assert.Equal(t, "/Shared/reports/q1.pdf", details.Path)
	assert.Equal(t, "https://acme.egnyte.com/dl/abc123", details.URL)
	assert.Equal(t, LinkTypeFile, details.Type)
	assert.Equal(t, AccessibilityRecipients, details.Accessibility)
	assert.True(t, details.Notify)
	assert.Equal(t, "PREVIEW", details.Protection)
	assert.True(t, details.LinkToCurrent)
	assert.Equal(t, time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC), details.CreationDate)
	assert.Equal(t, "jsmith", details.CreatedBy)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, details.Recipients)
}

func TestMapLinkDetailsDefaults(t *testing.T) {
	details := mapLinkDetails(&linkDetailsResponse{ID: "x"})

	assert.Equal(t, LinkTypeFolder, details.Type)
	assert.Equal(t, AccessibilityAnyone, details.Accessibility)
	assert.True(t, details.CreationDate.IsZero())
	assert.Empty(t, details.Recipients)
}

func TestMapCreateLinkRequestOmitsUnsetFields(t *testing.T) {
	body, err := json.Marshal(mapCreateLinkRequest(NewLink{Path: "/Shared/a.txt"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"path":"/Shared/a.txt"}`, string(body))
}

func TestMapCreateLinkRequestFullySpecified(t *testing.T) {
	linkType := LinkTypeFile
	accessibility := AccessibilityPassword
	sendEmail := true
	copyMe := false
	notify := true
	linkToCurrent := false
	expiry := time.Date(2025, 6, 30, 13, 45, 0, 0, time.UTC)
	clicks := 3
	addFileName := true

	req := mapCreateLinkRequest(NewLink{
		Path:          "/Shared/a.txt",
		Type:          &linkType,
		Accessibility: &accessibility,
		SendEmail:     &sendEmail,
		Recipients:    []string{"a@example.com"},
		Message:       "have a look",
		CopyMe:        &copyMe,
		Notify:        &notify,
		LinkToCurrent: &linkToCurrent,
		ExpiryDate:    &expiry,
		ExpiryClicks:  &clicks,
		AddFileName:   &addFileName,
	})

	assert.Equal(t, "file", req.Type)
	assert.Equal(t, "password", req.Accessibility)
	// Expiry serializes date-only regardless of time-of-day.
	assert.Equal(t, "2025-06-30", req.ExpiryDate)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	// False booleans are provided explicitly and must survive omitempty.
	assert.Equal(t, false, decoded["copy_me"])
	assert.Equal(t, false, decoded["link_to_current"])
	assert.Equal(t, "have a look", decoded["message"])
	assert.EqualValues(t, 3, decoded["expiry_clicks"])
}

func TestMapCreatedLinks(t *testing.T) {
	raw := &createLinkResponse{
		Links: []createdLinkResponse{
			{ID: "l1", URL: "https://acme.egnyte.com/dl/l1", Recipients: []string{"a@example.com"}},
			{ID: "l2", URL: "https://acme.egnyte.com/dl/l2", Recipients: []string{"b@example.com"}},
		},
		Path:          "/Shared/a.txt",
		Type:          "file",
		Accessibility: "recipients",
		Notify:        true,
		LinkToCurrent: false,
		ExpiryDate:    "2025-01-01",
		CreationDate:  "2024-06-01T08:00:00Z",
		CreatedBy:     "jsmith",
	}

	created := mapCreatedLinks(raw)

	require.Len(t, created.Links, 2)
	assert.Equal(t, "l1", created.Links[0].ID)
	assert.Equal(t, []string{"b@example.com"}, created.Links[1].Recipients)
	assert.Equal(t, LinkTypeFile, created.Type)
	assert.Equal(t, AccessibilityRecipients, created.Accessibility)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), created.ExpiryDate)
	assert.Equal(t, "jsmith", created.CreatedBy)
}
