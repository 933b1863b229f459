// Package confluence provides the client and wire types for the Confluence
// Cloud REST API (v2) page endpoints.
package confluence

// Page is a Confluence page. Body is only populated when requested.
type Page struct {
	ID         string   `json:"id"`
	Status     string   `json:"status"`
	Title      string   `json:"title"`
	SpaceID    string   `json:"spaceId"`
	ParentID   *string  `json:"parentId,omitempty"`
	ParentType *string  `json:"parentType,omitempty"`
	Position   *int     `json:"position,omitempty"`
	AuthorID   string   `json:"authorId"`
	OwnerID    *string  `json:"ownerId,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	Version    *Version `json:"version,omitempty"`
	Body       *Body    `json:"body,omitempty"`
	Links      Links    `json:"_links"`
}

// Version describes the page's latest revision.
type Version struct {
	CreatedAt string `json:"createdAt"`
	Message   string `json:"message,omitempty"`
	Number    int    `json:"number"`
	MinorEdit bool   `json:"minorEdit"`
	AuthorID  string `json:"authorId,omitempty"`
}

// Body holds the page content in whichever representations were requested.
type Body struct {
	Storage        *Representation `json:"storage,omitempty"`
	AtlasDocFormat *Representation `json:"atlas_doc_format,omitempty"`
}

// Representation is one encoding of page content.
type Representation struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

// Links are the UI-relative links of a page.
type Links struct {
	WebUI  string `json:"webui,omitempty"`
	EditUI string `json:"editui,omitempty"`
	TinyUI string `json:"tinyui,omitempty"`
}

// PageList is one page of a cursor-paginated listing.
type PageList struct {
	Results []Page `json:"results"`
	Links   struct {
		Next string `json:"next,omitempty"`
		Base string `json:"base,omitempty"`
	} `json:"_links"`
}
