package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/hunterjohnstone/honey-discount/internal/domain"
	"github.com/hunterjohnstone/honey-discount/internal/pkg/validator"
	"github.com/hunterjohnstone/honey-discount/internal/repository"

	"gorm.io/gorm"
)

// casAttempts bounds the read-append-swap loop under concurrent reports on
// the same promotion.
const casAttempts = 3

type Service struct {
	promotions *repository.PromotionRepository
}

func NewService(promotions *repository.PromotionRepository) *Service {
	return &Service{promotions: promotions}
}

// Submit appends one report entry to the promotion's serialized report list,
// at most one per reporter. The list lives in a single text column, so
// exclusivity cannot come from a constraint; instead each attempt re-reads
// the blob, checks the reporter, and writes back with a compare-and-swap on
// the previous value. A lost swap means a concurrent writer changed the
// blob, and the loop re-reads so a racing duplicate from the same user is
// still caught.
func (s *Service) Submit(ctx context.Context, req SubmitReportRequest) ([]domain.ReportEntry, error) {
	if missing := validator.MissingFields(req); len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	entry := domain.ReportEntry{
		ReporterID: req.UserID,
		Report:     fmt.Sprintf("%s: %s", req.Reason, req.Message),
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		raw, err := s.promotions.GetReported(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		entries := domain.ParseReports(raw)
		for _, e := range entries {
			if e.ReporterID == req.UserID {
				return nil, ErrDuplicate
			}
		}

		updated := append(entries, entry)
		swapped, err := s.promotions.CompareAndSwapReported(
			ctx, req.ProductID, raw, domain.EncodeReports(updated),
		)
		if err != nil {
			return nil, err
		}
		if swapped {
			return updated, nil
		}
	}

	return nil, ErrConflict
}
