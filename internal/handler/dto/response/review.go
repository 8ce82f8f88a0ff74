package response

import (
	"time"

	"stayhub/internal/domain/review"
	"stayhub/internal/federation"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	// Author is derived from the target: hosts review guests, guests review
	// hosts and locations. The stub points into the accounts service.
	Author     federation.Stub `json:"author"`
	TargetType string          `json:"targetType"`
	TargetID   uuid.UUID       `json:"targetId"`
	Rating     int32           `json:"rating"`
	Text       string          `json:"text"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type GuestReviewMutationResponse struct {
	Code        int             `json:"code"`
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	GuestReview *ReviewResponse `json:"guestReview,omitempty"`
}

type StayReviewsMutationResponse struct {
	Code           int             `json:"code"`
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	HostReview     *ReviewResponse `json:"hostReview,omitempty"`
	LocationReview *ReviewResponse `json:"locationReview,omitempty"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	if v == nil {
		return nil
	}
	authorRole := review.AuthorRole(review.TargetType(v.TargetType))
	return &ReviewResponse{
		ID:         v.ID,
		BookingID:  v.BookingID,
		Author:     federation.NewStub(authorRole.String(), v.AuthorID),
		TargetType: v.TargetType,
		TargetID:   v.TargetID,
		Rating:     v.Rating,
		Text:       v.Text,
		CreatedAt:  v.CreatedAt,
	}
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	responses := make([]*ReviewResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromReviewView(v))
	}
	return responses
}
