package model

import "github.com/goccy/go-json"

// Template is one outfit template from the templates JSON file.
// Items carries the display content untouched; only the fields used for
// filtering are typed.
type Template struct {
	TemplateID  string          `json:"template_id"`
	Name        string          `json:"name,omitempty"`
	Scene       string          `json:"scene"`
	Style       string          `json:"style"`
	Season      string          `json:"season"`
	Description string          `json:"description,omitempty"`
	Items       json.RawMessage `json:"items,omitempty"`
}
