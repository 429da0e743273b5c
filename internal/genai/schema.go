package genai

// Schema mirrors the subset of the Gemini response-schema format this
// service declares. Field names follow the API's camelCase JSON.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// TimelineSchema declares the expected response shape: an array of event
// objects with required string fields year, title, description and details,
// plus an optional link. Paired with responseMimeType "application/json"
// this constrains the model to emit decodable output.
func TimelineSchema() *Schema {
	return &Schema{
		Type: "ARRAY",
		Items: &Schema{
			Type: "OBJECT",
			Properties: map[string]*Schema{
				"year": {
					Type:        "STRING",
					Description: `Year of the event as text, "BC"-prefixed for years before the common era.`,
				},
				"title": {
					Type:        "STRING",
					Description: "Short name of the event.",
				},
				"description": {
					Type:        "STRING",
					Description: "One to two sentence summary.",
				},
				"details": {
					Type:        "STRING",
					Description: "Extended narrative about the event.",
				},
				"link": {
					Type:        "STRING",
					Description: "Optional reference URL.",
				},
			},
			Required: []string{"year", "title", "description", "details"},
		},
	}
}
