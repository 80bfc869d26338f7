package domain

// PageSize is the fixed number of entries per listing page. Shared by the
// latest-content scan and the ranking merge filler query.
const PageSize = 100

// Page is a 1-based page number.
type Page int

// Validate rejects non-positive page numbers. Invalid pages are a client
// error, never silently clamped.
func (p Page) Validate() error {
	if p < 1 {
		return ErrInvalidPage
	}

	return nil
}

// Window returns the (offset, limit) pair for this page.
//
// Pages are fixed-size: limit is always PageSize. The historical
// implementation used limit = page*PageSize, which returned every page up to
// the requested one; that contradicted the one-page-per-request contract and
// is not preserved.
func (p Page) Window() (offset, limit int) {
	return (int(p) - 1) * PageSize, PageSize
}
