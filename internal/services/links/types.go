package links

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// dateFormat is how the API expects and emits calendar dates.
const dateFormat = "2006-01-02"

// LinkType classifies what a link points at.
type LinkType int

const (
	// LinkTypeFolder is the fallback when the wire value is absent or unrecognized.
	LinkTypeFolder LinkType = iota
	LinkTypeFile
)

// String returns the wire representation of the link type.
func (t LinkType) String() string {
	if t == LinkTypeFile {
		return "file"
	}
	return "folder"
}

// ParseLinkType maps a wire string to a LinkType. Anything other than
// exactly "file" is a folder.
func ParseLinkType(s string) LinkType {
	if s == "file" {
		return LinkTypeFile
	}
	return LinkTypeFolder
}

// Accessibility describes who may use a link.
type Accessibility int

const (
	// AccessibilityAnyone is the fallback when the wire value is absent or unrecognized.
	AccessibilityAnyone Accessibility = iota
	AccessibilityPassword
	AccessibilityDomain
	AccessibilityRecipients
)

// String returns the wire representation of the accessibility level.
func (a Accessibility) String() string {
	switch a {
	case AccessibilityPassword:
		return "password"
	case AccessibilityDomain:
		return "domain"
	case AccessibilityRecipients:
		return "recipients"
	default:
		return "anyone"
	}
}

// ParseAccessibility maps a wire string to an Accessibility, falling back
// to AccessibilityAnyone for unknown values. The match is case-sensitive.
func ParseAccessibility(s string) Accessibility {
	switch s {
	case "password":
		return AccessibilityPassword
	case "domain":
		return AccessibilityDomain
	case "recipients":
		return AccessibilityRecipients
	default:
		return AccessibilityAnyone
	}
}

// LinkDetails is the full description of a single link.
type LinkDetails struct {
	ID            string
	Path          string
	URL           string
	Type          LinkType
	Accessibility Accessibility
	Notify        bool
	LinkToCurrent bool
	CreationDate  time.Time
	CreatedBy     string
	Protection    string
	Recipients    []string
}

// LinksList is one page of link IDs, passed through from the API as-is.
// Callers page manually via ListOptions.Offset and Count.
type LinksList struct {
	IDs        []string `json:"ids"`
	Offset     int      `json:"offset"`
	Count      int      `json:"count"`
	TotalCount int      `json:"total_count"`
}

// ListOptions holds the optional filters for ListLinks. Nil or blank
// fields are omitted from the request entirely.
type ListOptions struct {
	Path          string
	Username      string
	CreatedBefore *time.Time
	CreatedAfter  *time.Time
	Type          *LinkType
	Accessibility *Accessibility
	Offset        *int
	Count         *int
}

// encode serializes the provided filters as a query string. Parameter
// order is fixed (path, username, created_before, created_after, type,
// accessibility, offset, count), so url.Values is out: its Encode sorts
// keys alphabetically.
func (o ListOptions) encode() string {
	var params []string
	add := func(key, value string) {
		params = append(params, key+"="+url.QueryEscape(value))
	}

	if strings.TrimSpace(o.Path) != "" {
		add("path", o.Path)
	}
	if strings.TrimSpace(o.Username) != "" {
		add("username", o.Username)
	}
	if o.CreatedBefore != nil {
		add("created_before", o.CreatedBefore.Format(dateFormat))
	}
	if o.CreatedAfter != nil {
		add("created_after", o.CreatedAfter.Format(dateFormat))
	}
	if o.Type != nil {
		add("type", o.Type.String())
	}
	if o.Accessibility != nil {
		add("accessibility", o.Accessibility.String())
	}
	if o.Offset != nil {
		add("offset", strconv.Itoa(*o.Offset))
	}
	if o.Count != nil {
		add("count", strconv.Itoa(*o.Count))
	}

	return strings.Join(params, "&")
}

// NewLink describes a link to create. Path is required; every other
// field is optional and left out of the request body when unset.
type NewLink struct {
	Path          string
	Type          *LinkType
	Accessibility *Accessibility
	SendEmail     *bool
	Recipients    []string
	Message       string
	CopyMe        *bool
	Notify        *bool
	LinkToCurrent *bool
	ExpiryDate    *time.Time
	ExpiryClicks  *int
	AddFileName   *bool
}

// CreatedLink is one link minted by CreateLink. The API returns one entry
// per recipient when send_email is set, otherwise a single entry.
type CreatedLink struct {
	ID         string
	URL        string
	Recipients []string
}

// CreatedLinks is the result of a CreateLink call.
type CreatedLinks struct {
	Links         []CreatedLink
	Path          string
	Type          LinkType
	Accessibility Accessibility
	Notify        bool
	LinkToCurrent bool
	ExpiryDate    time.Time
	CreationDate  time.Time
	CreatedBy     string
}
