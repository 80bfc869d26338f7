package interaction

import "content-service/internal/domain"

// engagementItem is one entry of the interaction service response.
type engagementItem struct {
	Title      string `json:"title"`
	TotalReads int    `json:"totalReads"`
	TotalLikes int    `json:"totalLikes"`
}

func toDomain(items []engagementItem) []domain.EngagementRecord {
	records := make([]domain.EngagementRecord, len(items))
	for i, item := range items {
		records[i] = domain.EngagementRecord{
			Title:      item.Title,
			TotalReads: item.TotalReads,
			TotalLikes: item.TotalLikes,
		}
	}

	return records
}
