package links

import "context"

// ClientAPI defines the methods required to interact with the links API.
// It mirrors the concrete client so it can be mocked in tests.
type ClientAPI interface {
	ListLinks(ctx context.Context, opts ListOptions) (*LinksList, error)
	GetLinkDetails(ctx context.Context, linkID string) (*LinkDetails, error)
	CreateLink(ctx context.Context, link NewLink) (*CreatedLinks, error)
	DeleteLink(ctx context.Context, linkID string) error
}
