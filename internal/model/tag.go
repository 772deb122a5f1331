package model

// Tag is a derived index record: the set of articles carrying the tag plus a
// reference count of the published ones. A tag with no articles is deleted.
type Tag struct {
	ID             string
	TagName        string
	ArticleIDs     []string
	PublishedCount int
}

// References reports whether the tag already indexes the article.
func (t *Tag) References(articleID string) bool {
	for _, id := range t.ArticleIDs {
		if id == articleID {
			return true
		}
	}
	return false
}
