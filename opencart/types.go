package opencart

// Response is the envelope every Product API endpoint returns. Success is
// the primary outcome discriminator; a well-formed envelope with
// Success=false is returned as data, never as an error.
type Response struct {
	Success bool
	// Data holds the endpoint's payload: a record, a list of records, or
	// absent. Records are opaque key-value mappings defined by the server.
	Data any
	// Message carries the server's human-readable note, when present.
	Message string
	// Count is the total reported for paginated listings.
	Count int
	// Error carries the server's error text for envelopes with Success=false.
	Error string
	// Fields is the complete decoded envelope, including members the named
	// fields above do not cover. The debug endpoint reports several.
	Fields map[string]any
}

// Field returns the named envelope member and whether it was present.
func (r *Response) Field(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// DataMap returns Data as a single record, or nil when the payload is absent
// or not an object.
func (r *Response) DataMap() map[string]any {
	m, _ := r.Data.(map[string]any)
	return m
}

// DataList returns Data as a list of records, skipping any non-object
// entries. It returns nil when the payload is absent or not a list.
func (r *Response) DataList() []map[string]any {
	items, ok := r.Data.([]any)
	if !ok {
		return nil
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records
}

// newResponse builds a Response view over a decoded envelope. The envelope
// map is retained as Fields.
func newResponse(envelope map[string]any) *Response {
	resp := &Response{
		Success: truthy(envelope["success"]),
		Fields:  envelope,
	}
	if v, ok := envelope["data"]; ok {
		resp.Data = v
	}
	if s, ok := envelope["message"].(string); ok {
		resp.Message = s
	}
	if n, ok := envelope["count"].(float64); ok {
		resp.Count = int(n)
	}
	if s, ok := envelope["error"].(string); ok {
		resp.Error = s
	}
	return resp
}

// truthy interprets the loose success flags PHP backends emit: true, any
// non-zero number and any non-empty string all count as success.
func truthy(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != ""
	default:
		return false
	}
}
