package database

import (
	"context"
	"fmt"
	"time"

	"smartscholar/models"

	"gorm.io/gorm"
)

// ReviewStore keeps visitor reviews. Deletes are soft: the row stays in the table with
// deleted_at set and is hidden from List.
type ReviewStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db, now: time.Now}
}

// Add inserts a review. An empty Time is filled with the current time.
func (s *ReviewStore) Add(ctx context.Context, review *models.Review) error {
	if review.Time == "" {
		review.Time = s.now().Format(models.ReviewTimeLayout)
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("add review: %w", err)
	}
	return nil
}

// List returns every review, most recent first.
func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Delete removes the review with id. Unknown or already deleted ids are not an error.
func (s *ReviewStore) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Review{}, id).Error; err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}

// Ping checks that the database answers.
func (s *ReviewStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
