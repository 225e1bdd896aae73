package researches

import "time"

const listSummaryLimit = 200

// ResearchResponse is the outward-facing representation of a research.
type ResearchResponse struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	Abstract  string    `json:"abstract"`
	FileName  string    `json:"fileName"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(research Research) ResearchResponse {
	return ResearchResponse{
		ID:        research.ID,
		Title:     research.Title,
		Abstract:  research.Abstract,
		FileName:  research.FileName,
		Summary:   research.Summary,
		CreatedAt: research.CreatedAt,
	}
}

// toListResponse renders the list view: when an abstract is present its
// truncated form stands in for the summary column.
func toListResponse(research Research) ResearchResponse {
	resp := toResponse(research)
	if research.Abstract != "" {
		resp.Summary = truncate(research.Abstract, listSummaryLimit)
	}
	return resp
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
