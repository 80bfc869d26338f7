package domain

// EngagementRecord holds externally sourced read/like counts for a title.
// Records are valid only for the page they were fetched on and are never
// persisted locally.
type EngagementRecord struct {
	Title      string `json:"title"`
	TotalReads int    `json:"totalReads"`
	TotalLikes int    `json:"totalLikes"`
}

// RankedContent is one entry of the merged top-content page: a content row
// annotated with its engagement counts. Filler entries carry zero counts.
type RankedContent struct {
	Title         string `json:"title"`
	Story         string `json:"story"`
	PublishedDate string `json:"published_date,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	TotalReads    int    `json:"totalReads"`
	TotalLikes    int    `json:"totalLikes"`
}

// Ranked builds a RankedContent from a stored row and its engagement counts.
func Ranked(c *Content, reads, likes int) RankedContent {
	entry := RankedContent{
		Title:      c.Title,
		Story:      c.Story,
		UserID:     c.UserID,
		TotalReads: reads,
		TotalLikes: likes,
	}
	if !c.PublishedDate.IsZero() {
		entry.PublishedDate = c.PublishedDate.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	return entry
}

// MergePage reconciles one engagement page against local storage.
//
// Engagement records keep their source order and resolve story, publish date
// and owner from the matched rows. A record whose title has no local row is
// dropped: the interaction service may list content this service never
// stored, and an entry without a story is useless to callers. Filler rows
// are appended after the ranked entries with zero engagement.
//
// Ordering contract: engagement-ranked entries first, then filler in the
// order storage returned them (title ascending).
func MergePage(records []EngagementRecord, matched []*Content, filler []*Content) []RankedContent {
	byTitle := make(map[string]*Content, len(matched))
	for _, c := range matched {
		byTitle[c.Title] = c
	}

	merged := make([]RankedContent, 0, len(records)+len(filler))
	for _, rec := range records {
		c, ok := byTitle[NormalizeTitle(rec.Title)]
		if !ok {
			continue
		}
		merged = append(merged, Ranked(c, rec.TotalReads, rec.TotalLikes))
	}

	for _, c := range filler {
		merged = append(merged, Ranked(c, 0, 0))
	}

	return merged
}

// TitleSet extracts the normalized titles of an engagement page.
func TitleSet(records []EngagementRecord) []string {
	titles := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		t := NormalizeTitle(rec.Title)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		titles = append(titles, t)
	}

	return titles
}
