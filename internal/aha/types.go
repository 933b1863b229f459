// Package aha provides the client and wire types for the Aha! REST API (v1).
package aha

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Feature is a roadmap feature as returned by /features and /features/:id.
type Feature struct {
	ID             string          `json:"id"`
	ReferenceNum   string          `json:"reference_num"`
	Name           string          `json:"name"`
	Description    *Text           `json:"description,omitempty"`
	CreatedAt      string          `json:"created_at"`
	WorkflowStatus *WorkflowStatus `json:"workflow_status,omitempty"`
	Release        *Release        `json:"release,omitempty"`
	AssignedTo     *User           `json:"assigned_to_user,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Score          *float64        `json:"score,omitempty"`
	Progress       *float64        `json:"progress,omitempty"`
	CreatedBy      *User           `json:"created_by_user,omitempty"`
	Initiative     *InitiativeRef  `json:"initiative,omitempty"`
	URL            *string         `json:"url,omitempty"`
}

// WorkflowStatus is the workflow state of a record.
type WorkflowStatus struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Release is the release a feature is scheduled into.
type Release struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReferenceNum string `json:"reference_num"`
	Released     bool   `json:"released"`
	ReleaseDate  string `json:"release_date,omitempty"`
}

// User is an Aha! user reference.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// InitiativeRef is the abbreviated initiative embedded in a feature.
type InitiativeRef struct {
	ID             string          `json:"id"`
	ReferenceNum   string          `json:"reference_num"`
	Name           string          `json:"name"`
	WorkflowStatus *WorkflowStatus `json:"workflow_status,omitempty"`
}

// Initiative is a strategic initiative (shown as a "launch" in some workspaces).
type Initiative struct {
	ID             string          `json:"id"`
	ReferenceNum   string          `json:"reference_num"`
	Name           string          `json:"name"`
	Description    *Text           `json:"description,omitempty"`
	WorkflowStatus *WorkflowStatus `json:"workflow_status,omitempty"`
	FeaturesCount  *int            `json:"features_count,omitempty"`
	CreatedAt      string          `json:"created_at,omitempty"`
	Goals          []NamedRef      `json:"goals,omitempty"`
	Releases       []NamedRef      `json:"releases,omitempty"`
	AssignedTo     *User           `json:"assigned_to_user,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Progress       *float64        `json:"progress,omitempty"`
}

// NamedRef is an {id, name} pair used for goals, releases and categories.
type NamedRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Idea is a customer feature request from an ideas portal.
type Idea struct {
	ID             string          `json:"id"`
	ReferenceNum   string          `json:"reference_num"`
	Name           string          `json:"name"`
	Description    *Text           `json:"description,omitempty"`
	CreatedAt      string          `json:"created_at"`
	Promoted       bool            `json:"promoted"`
	Score          *float64        `json:"score,omitempty"`
	Categories     []NamedRef      `json:"categories,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	WorkflowStatus *WorkflowStatus `json:"workflow_status,omitempty"`
	VotesCount     *int            `json:"votes_count,omitempty"`
	CommentsCount  *int            `json:"comments_count,omitempty"`
	CreatedBy      *User           `json:"created_by_user,omitempty"`
}

// Product is an Aha! product (workspace).
type Product struct {
	ID               string          `json:"id"`
	ReferencePrefix  string          `json:"reference_prefix"`
	Name             string          `json:"name"`
	Description      *Text           `json:"description,omitempty"`
	CreatedAt        string          `json:"created_at,omitempty"`
	ProductLine      *NamedRef       `json:"product_line,omitempty"`
	WorkflowStatus   *WorkflowStatus `json:"workflow_status,omitempty"`
	InitiativesCount *int            `json:"initiatives_count,omitempty"`
	FeaturesCount    *int            `json:"features_count,omitempty"`
	IdeasCount       *int            `json:"ideas_count,omitempty"`
}

// PortalUser is an idea-portal user. Organizations are only reachable
// through the users that belong to them.
type PortalUser struct {
	ID           string           `json:"id"`
	Name         string           `json:"name,omitempty"`
	Email        string           `json:"email,omitempty"`
	Organization *OrganizationRef `json:"organization,omitempty"`
}

// OrganizationRef is the organization embedded in a portal user.
type OrganizationRef struct {
	ID           string   `json:"id"`
	ReferenceNum string   `json:"reference_num"`
	Name         string   `json:"name"`
	CustomFields FieldMap `json:"custom_fields,omitempty"`
}

// Pagination is the paging block Aha! attaches to list responses.
type Pagination struct {
	TotalRecords int `json:"total_records"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
}

// Text is a description that arrives either as a bare string or as an
// object with an HTML "body".
type Text struct {
	Body string
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &t.Body)
	}
	var obj struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("description: %w", err)
	}
	t.Body = obj.Body
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Body)
}

// FieldMap holds custom field values keyed by field key. It accepts both the
// object form {"ARR": 1000} and the list form [{"key": "arr", "value": 1000}].
type FieldMap map[string]interface{}

func (m *FieldMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	out := FieldMap{}
	if data[0] == '[' {
		var list []struct {
			Key   string      `json:"key"`
			Name  string      `json:"name"`
			Value interface{} `json:"value"`
		}
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("custom_fields: %w", err)
		}
		for _, f := range list {
			key := f.Key
			if key == "" {
				key = f.Name
			}
			out[key] = f.Value
		}
		*m = out
		return nil
	}
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("custom_fields: %w", err)
	}
	for k, v := range raw {
		out[k] = v
	}
	*m = out
	return nil
}
