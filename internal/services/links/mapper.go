package links

import "time"

// Wire shapes for the links endpoints. Kept apart from the domain model
// so the response-to-model mapping stays explicit.

type linkDetailsResponse struct {
	ID            string   `json:"id"`
	Path          string   `json:"path"`
	URL           string   `json:"url"`
	LinkType      string   `json:"link_type"`
	Accessibility string   `json:"accessibility"`
	Notify        bool     `json:"notify"`
	Protection    string   `json:"protection"`
	LinkToCurrent bool     `json:"link_to_current"`
	CreationDate  string   `json:"creation_date"`
	CreatedBy     string   `json:"created_by"`
	Recipients    []string `json:"recipients"`
}

type createLinkRequest struct {
	Path          string   `json:"path"`
	Type          string   `json:"type,omitempty"`
	Accessibility string   `json:"accessibility,omitempty"`
	SendEmail     *bool    `json:"send_email,omitempty"`
	Recipients    []string `json:"recipients,omitempty"`
	Message       string   `json:"message,omitempty"`
	CopyMe        *bool    `json:"copy_me,omitempty"`
	Notify        *bool    `json:"notify,omitempty"`
	LinkToCurrent *bool    `json:"link_to_current,omitempty"`
	ExpiryDate    string   `json:"expiry_date,omitempty"`
	ExpiryClicks  *int     `json:"expiry_clicks,omitempty"`
	AddFileName   *bool    `json:"add_file_name,omitempty"`
}

type createdLinkResponse struct {
	ID         string   `json:"id"`
	URL        string   `json:"url"`
	Recipients []string `json:"recipients"`
}

type createLinkResponse struct {
	Links         []createdLinkResponse `json:"links"`
	Path          string                `json:"path"`
	Type          string                `json:"type"`
	Accessibility string                `json:"accessibility"`
	Notify        bool                  `json:"notify"`
	LinkToCurrent bool                  `json:"link_to_current"`
	ExpiryDate    string                `json:"expiry_date"`
	CreationDate  string                `json:"creation_date"`
	CreatedBy     string                `json:"created_by"`
}

// timestampLayouts covers the formats the API has been observed to emit.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateFormat,
}

// parseTimestamp tries the known layouts in order. Unparseable values map
// to the zero time rather than failing the whole response.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func mapLinkDetails(raw *linkDetailsResponse) *LinkDetails {
	return &LinkDetails{
		ID:            raw.ID,
		Path:          raw.Path,
		URL:           raw.URL,
		Type:          ParseLinkType(raw.LinkType),
		Accessibility: ParseAccessibility(raw.Accessibility),
		Notify:        raw.Notify,
		Protection:    raw.Protection,
		LinkToCurrent: raw.LinkToCurrent,
		CreationDate:  parseTimestamp(raw.CreationDate),
		CreatedBy:     raw.CreatedBy,
		Recipients:    raw.Recipients,
	}
}

func mapCreateLinkRequest(link NewLink) createLinkRequest {
	req := createLinkRequest{
		Path:          link.Path,
		SendEmail:     link.SendEmail,
		Recipients:    link.Recipients,
		Message:       link.Message,
		CopyMe:        link.CopyMe,
		Notify:        link.Notify,
		LinkToCurrent: link.LinkToCurrent,
		ExpiryClicks:  link.ExpiryClicks,
		AddFileName:   link.AddFileName,
	}
	if link.Type != nil {
		req.Type = link.Type.String()
	}
	if link.Accessibility != nil {
		req.Accessibility = link.Accessibility.String()
	}
	if link.ExpiryDate != nil {
		req.ExpiryDate = link.ExpiryDate.Format(dateFormat)
	}
	return req
}

func mapCreatedLinks(raw *createLinkResponse) *CreatedLinks {
	created := &CreatedLinks{
		Links:         make([]CreatedLink, 0, len(raw.Links)),
		Path:          raw.Path,
		Type:          ParseLinkType(raw.Type),
		Accessibility: ParseAccessibility(raw.Accessibility),
		Notify:        raw.Notify,
		LinkToCurrent: raw.LinkToCurrent,
		ExpiryDate:    parseTimestamp(raw.ExpiryDate),
		CreationDate:  parseTimestamp(raw.CreationDate),
		CreatedBy:     raw.CreatedBy,
	}
	for _, l := range raw.Links {
		created.Links = append(created.Links, CreatedLink{
			ID:         l.ID,
			URL:        l.URL,
			Recipients: l.Recipients,
		})
	}
	return created
}
