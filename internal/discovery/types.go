package discovery

// PlaceResult is one recommended place returned by a discovery search.
type PlaceResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Category    string `json:"category"`
	URL         string `json:"url,omitempty"`
}

// generateContent request wire types.

type generateRequest struct {
	Contents         []wireContent  `json:"contents"`
	Tools            []wireTool     `json:"tools,omitempty"`
	GenerationConfig *wireGenConfig `json:"generationConfig,omitempty"`
}

type wireContent struct {
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text string `json:"text"`
}

type wireTool struct {
	GoogleSearch *struct{} `json:"google_search,omitzero"`
}

type wireGenConfig struct {
	ResponseMimeType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   *wireSchema `json:"responseSchema,omitempty"`
}

type wireSchema struct {
	Type       string                `json:"type"`
	Enum       []string              `json:"enum,omitempty"`
	Items      *wireSchema           `json:"items,omitempty"`
	Properties map[string]wireSchema `json:"properties,omitempty"`
	Required   []string              `json:"required,omitempty"`
}

// generateContent response wire types. Only the fields we read.

type generateResponse struct {
	Candidates []wireCandidate `json:"candidates"`
}

type wireCandidate struct {
	Content           wireContent            `json:"content"`
	GroundingMetadata *wireGroundingMetadata `json:"groundingMetadata"`
}

type wireGroundingMetadata struct {
	GroundingChunks []wireGroundingChunk `json:"groundingChunks"`
}

type wireGroundingChunk struct {
	Web *wireWebSource `json:"web"`
}

type wireWebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// placeSchema constrains the model output to a JSON array of places.
var placeSchema = &wireSchema{
	Type: "ARRAY",
	Items: &wireSchema{
		Type: "OBJECT",
		Properties: map[string]wireSchema{
			"name":        {Type: "STRING"},
			"description": {Type: "STRING"},
			"address":     {Type: "STRING"},
			"category":    {Type: "STRING", Enum: []string{"food", "attraction", "accommodation"}},
		},
		Required: []string{"name", "description", "address", "category"},
	},
}
