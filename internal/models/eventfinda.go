package models

import "encoding/json"

// EventfindaQuery selects a page of Eventfinda events.
type EventfindaQuery struct {
	Category string
	Page     int
	Rows     int
}

// EventfindaEvents is the upstream event list, forwarded as-is.
type EventfindaEvents []json.RawMessage

// EventfindaCategories is the upstream category list, forwarded as-is.
type EventfindaCategories []json.RawMessage
