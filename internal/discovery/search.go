package discovery

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
)

const maxResults = 5

// SearchPlaces asks the model for up to five place recommendations matching
// query in destination, grounded with live web search. Each result carries a
// source URL when the grounding metadata provides one.
func (c *Client) SearchPlaces(ctx context.Context, query, destination string) ([]PlaceResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	prompt := fmt.Sprintf(`Find %d high-quality, up-to-date recommendations for "%s" in %s.
Focus on places travelers would actually visit.
For each place, provide its name, a short descriptive summary, and its physical address.
Categorize each as 'food', 'attraction', or 'accommodation'.`, maxResults, query, destination)

	reqBody := generateRequest{
		Contents: []wireContent{
			{Parts: []wirePart{{Text: prompt}}},
		},
		Tools: []wireTool{
			{GoogleSearch: &struct{}{}},
		},
		GenerationConfig: &wireGenConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   placeSchema,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	c.logger.Debug("discovery search",
		"query", query,
		"destination", destination,
		"model", c.model,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.UnmarshalRead(resp.Body, &genResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return []PlaceResult{}, nil
	}
	candidate := genResp.Candidates[0]

	text := ""
	if len(candidate.Content.Parts) > 0 {
		text = candidate.Content.Parts[0].Text
	}
	if text == "" {
		return []PlaceResult{}, nil
	}

	var results []PlaceResult
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	// Pair grounding sources with results by position. The model lists its
	// chunks in roughly the same order as the places it describes.
	if candidate.GroundingMetadata != nil {
		chunks := candidate.GroundingMetadata.GroundingChunks
		for i := range results {
			if i < len(chunks) && chunks[i].Web != nil {
				results[i].URL = chunks[i].Web.URI
			}
		}
	}

	c.logger.Debug("discovery search results",
		"query", query,
		"count", len(results),
	)

	return results, nil
}
