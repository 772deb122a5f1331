package service

import (
	"github.com/callmedory/sport-project/internal/model"
	"github.com/google/uuid"
)

// FavoritesService manages per-user sets of favorited article ids. Records
// are created lazily on the first add.
type FavoritesService struct {
	favorites FavoritesStore
}

func NewFavoritesService(favorites FavoritesStore) *FavoritesService {
	return &FavoritesService{favorites: favorites}
}

func (s *FavoritesService) find(userID string) (*model.Favorites, error) {
	favorites, err := s.favorites.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = &model.Favorites{ID: uuid.NewString(), UserID: userID}
	}
	return favorites, nil
}

// Add puts the article into the user's favorites. Adding an article twice
// leaves the set unchanged.
func (s *FavoritesService) Add(userID, articleID string) error {
	favorites, err := s.find(userID)
	if err != nil {
		return wrap(err)
	}
	if favorites.Contains(articleID) {
		return nil
	}
	favorites.ArticleIDs = append(favorites.ArticleIDs, articleID)
	return wrap(s.favorites.Upsert(favorites))
}

// Remove takes the article out of the user's favorites; removing an absent
// article is a no-op.
func (s *FavoritesService) Remove(userID, articleID string) error {
	favorites, err := s.find(userID)
	if err != nil {
		return wrap(err)
	}
	if !favorites.Contains(articleID) {
		return nil
	}
	kept := favorites.ArticleIDs[:0]
	for _, id := range favorites.ArticleIDs {
		if id != articleID {
			kept = append(kept, id)
		}
	}
	favorites.ArticleIDs = kept
	return wrap(s.favorites.Upsert(favorites))
}

// ListIDs returns the user's favorited article ids; no record means an empty
// set.
func (s *FavoritesService) ListIDs(userID string) ([]string, error) {
	favorites, err := s.favorites.GetByUser(userID)
	if err != nil {
		return nil, wrap(err)
	}
	if favorites == nil {
		return []string{}, nil
	}
	return favorites.ArticleIDs, nil
}

// RemoveArticleEverywhere scans all favorites sets containing the article and
// strips it out. Used by article deletion.
func (s *FavoritesService) RemoveArticleEverywhere(articleID string) error {
	records, err := s.favorites.WithArticle(articleID)
	if err != nil {
		return wrap(err)
	}

	for i := range records {
		record := &records[i]
		kept := record.ArticleIDs[:0]
		for _, id := range record.ArticleIDs {
			if id != articleID {
				kept = append(kept, id)
			}
		}
		record.ArticleIDs = kept
		if err := s.favorites.Upsert(record); err != nil {
			return wrap(err)
		}
	}

	return nil
}
