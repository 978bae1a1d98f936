package model

import "encoding/json"

// Envelope is the response wrapper every CitaSalud endpoint uses:
// {success, data, message}. Data is kept raw so each API module can decode
// it into its own type.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// PageMeta carries the pagination fields some list endpoints wrap around
// their data array.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// Page is the pagination wrapper {data: [...], meta fields}. List endpoints
// return either a bare array or this wrapper, so callers decode defensively
// via UnwrapList.
type Page struct {
	Data json.RawMessage `json:"data"`
	PageMeta
}

// UnwrapList decodes a list payload that may be either a bare JSON array or
// a pagination wrapper whose data field holds the array.
func UnwrapList(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err == nil {
		return nil
	}
	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return err
	}
	return json.Unmarshal(page.Data, out)
}

// ListParams represents common list query parameters
type ListParams struct {
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
	Search  string `json:"search,omitempty"`
}

// JSONMap represents a generic JSON object
type JSONMap map[string]interface{}
