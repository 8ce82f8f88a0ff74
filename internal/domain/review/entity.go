package review

import (
	"github.com/google/uuid"
)

// Review is keyed by (bookingID, targetType): a booking carries at most one
// review of its guest, one of its host, and one of its listing. There is no
// update or delete path.
type Review struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	targetType TargetType
	targetID   uuid.UUID
	authorID   uuid.UUID
	rating     Rating
	text       Text
}

func NewReview(bookingID uuid.UUID, targetType TargetType, targetID, authorID uuid.UUID, ratingValue int, textValue string) (*Review, error) {
	if !targetType.IsValid() {
		return nil, ErrInvalidTargetType
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	text, err := NewText(textValue)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		bookingID:  bookingID,
		targetType: targetType,
		targetID:   targetID,
		authorID:   authorID,
		rating:     rating,
		text:       text,
	}, nil
}

func (r *Review) ID() uuid.UUID          { return r.id }
func (r *Review) BookingID() uuid.UUID   { return r.bookingID }
func (r *Review) TargetType() TargetType { return r.targetType }
func (r *Review) TargetID() uuid.UUID    { return r.targetID }
func (r *Review) AuthorID() uuid.UUID    { return r.authorID }
func (r *Review) Rating() Rating         { return r.rating }
func (r *Review) Text() Text             { return r.text }
