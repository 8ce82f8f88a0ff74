//go:build unit || e2e

package builder

import (
	"time"

	domreview "stayhub/internal/domain/review"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID  uuid.UUID
	TargetType domreview.TargetType
	TargetID   uuid.UUID
	AuthorID   uuid.UUID
	Rating     int
	Text       string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		BookingID:  uuid.New(),
		TargetType: domreview.TargetListing,
		TargetID:   uuid.New(),
		AuthorID:   uuid.New(),
		Rating:     5,
		Text:       "What a lovely place to stay!",
		CreatedAt:  time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.BookingID, r.TargetType, r.TargetID, r.AuthorID, r.Rating, r.Text)
}

func (r *ReviewBuilder) BuildInputRequestDTO() reqdto.ReviewInputRequest {
	return reqdto.ReviewInputRequest{Rating: r.Rating, Text: r.Text}
}

func (r *ReviewBuilder) BuildInput() commands.ReviewInput {
	return commands.ReviewInput{Rating: r.Rating, Text: r.Text}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         uuid.New(),
		BookingID:  r.BookingID,
		TargetType: string(r.TargetType),
		TargetID:   r.TargetID,
		AuthorID:   r.AuthorID,
		Rating:     int32(r.Rating),
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithTarget(targetType domreview.TargetType, targetID uuid.UUID) *ReviewBuilder {
	r.TargetType = targetType
	r.TargetID = targetID
	return r
}

func (r *ReviewBuilder) WithAuthorID(authorID uuid.UUID) *ReviewBuilder {
	r.AuthorID = authorID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithText(text string) *ReviewBuilder {
	r.Text = text
	return r
}
