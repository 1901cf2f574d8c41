package feed

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/features/votes"
	"github.com/opencivic/civicfix/internal/pkg/cache"
)

const (
	rawFeedCacheKey = "feed:reports"
	rawFeedCacheTTL = 30 * time.Second
)

// Service assembles the community feed. The raw report list is cached
// in Redis for a short window; the per-viewer join (names are cached
// along with the reports, votes are not) runs on every request.
type Service struct {
	reports *reports.Repository
	users   *auth.Repository
	ledger  *votes.Repository
	cache   *cache.Cache
}

func NewService(reportRepo *reports.Repository, users *auth.Repository, ledger *votes.Repository, c *cache.Cache) *Service {
	return &Service{reports: reportRepo, users: users, ledger: ledger, cache: c}
}

// Feed returns every report in display form, newest first. viewerID is
// nil for anonymous callers.
//
// A ledger failure degrades to a feed without vote highlights; a name
// lookup failure degrades to anonymous labels. Only the report fetch
// itself is fatal.
func (s *Service) Feed(ctx context.Context, viewerID *primitive.ObjectID) ([]DisplayReport, error) {
	items, err := s.rawReports(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	reportIDs := make([]int64, 0, len(items))
	seen := make(map[primitive.ObjectID]bool, len(items))
	for _, r := range items {
		reportIDs = append(reportIDs, r.ReportID)
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}

	names, err := s.users.GetNamesByIDs(ctx, ids)
	if err != nil {
		log.Printf("feed: name lookup failed: %v", err)
		names = map[primitive.ObjectID]string{}
	}

	userVotes := map[int64]votes.VoteType{}
	if viewerID != nil {
		userVotes, err = s.ledger.GetUserVotes(ctx, *viewerID, reportIDs)
		if err != nil {
			log.Printf("feed: vote ledger lookup failed: %v", err)
			userVotes = map[int64]votes.VoteType{}
		}
	}

	return Aggregate(items, names, userVotes, viewerID, time.Now()), nil
}

func (s *Service) rawReports(ctx context.Context) ([]reports.Report, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, rawFeedCacheKey); err == nil {
			var items []reports.Report
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, rawFeedCacheKey, string(encoded), rawFeedCacheTTL); err != nil {
				log.Printf("feed: cache write failed: %v", err)
			}
		}
	}

	return items, nil
}
