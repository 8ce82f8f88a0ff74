package request

import (
	"stayhub/internal/usecase/commands"
)

type ReviewInputRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
}

func (r ReviewInputRequest) ToInput() commands.ReviewInput {
	return commands.ReviewInput{Rating: r.Rating, Text: r.Text}
}

// SubmitStayReviewsRequest carries the guest's paired submission: their
// review of the host and of the location, written together.
type SubmitStayReviewsRequest struct {
	HostReview     ReviewInputRequest `json:"host_review" binding:"required"`
	LocationReview ReviewInputRequest `json:"location_review" binding:"required"`
}
