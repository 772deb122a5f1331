package service

// StatsService maintains per-author published-article counters.
type StatsService struct {
	stats StatsStore
	users UserStore
}

func NewStatsService(stats StatsStore, users UserStore) *StatsService {
	return &StatsService{stats: stats, users: users}
}

// EnsureExists lazily creates a zero-count record for the author.
func (s *StatsService) EnsureExists(authorID string) error {
	return wrap(s.stats.EnsureExists(authorID))
}

// Adjust shifts the author's published count by delta. When no record exists
// the delta is dropped; publish paths call EnsureExists first.
func (s *StatsService) Adjust(authorID string, delta int) error {
	return wrap(s.stats.Adjust(authorID, delta))
}

type TopAuthor struct {
	AuthorID     string
	FirstName    string
	LastName     string
	ArticleCount int
}

// TopAuthors pages authors with published articles, highest count first,
// joined with their display names.
func (s *StatsService) TopAuthors(pageNumber, pageSize int) ([]TopAuthor, error) {
	stats, err := s.stats.TopAuthors(pageNumber, pageSize)
	if err != nil {
		return nil, wrap(err)
	}

	authors := make([]TopAuthor, 0, len(stats))
	for _, st := range stats {
		author := TopAuthor{AuthorID: st.AuthorID, ArticleCount: st.ArticleCount}

		user, err := s.users.GetByID(st.AuthorID)
		if err != nil {
			return nil, wrap(err)
		}
		if user != nil {
			author.FirstName = user.FirstName
			author.LastName = user.LastName
		}

		authors = append(authors, author)
	}

	return authors, nil
}
