//go:build e2e

package entities_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/user"
	"stayhub/internal/federation"
	"stayhub/internal/handler/dto/request"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const entitiesURL = "/entities"

type EntitiesSuite struct {
	e2e.SharedSuite
}

func TestEntitiesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EntitiesSuite))
}

func (s *EntitiesSuite) TestResolveEntities() {
	s.Run("Normal case: Stubs hydrate into full records without authentication", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		listingID := dbtest.CreateTestListing(t, s.DB, hostID, 120)

		checkIn := time.Now().UTC().AddDate(0, 0, 10).Format(booking.DateLayout)
		checkOut := time.Now().UTC().AddDate(0, 0, 14).Format(booking.DateLayout)
		bookingID := dbtest.CreateTestBooking(t, s.DB, listingID, guestID, checkIn, checkOut, 480)
		reviewID := dbtest.CreateTestReview(t, s.DB, bookingID, hostID, guestID, "HOST", 5)

		reqBody := request.ResolveEntitiesRequest{
			Representations: []federation.Stub{
				federation.NewStub(federation.TypeListing, listingID),
				federation.NewStub(federation.TypeBooking, bookingID),
				federation.NewStub(federation.TypeHost, hostID),
				federation.NewStub(federation.TypeGuest, guestID),
				federation.NewStub(federation.TypeReview, reviewID),
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entitiesURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resolved struct {
			Entities []map[string]any `json:"entities"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Len(t, resolved.Entities, 5)

		listingEntity := resolved.Entities[0]
		require.Equal(t, listingID.String(), listingEntity["id"])
		require.Equal(t, "Test Listing", listingEntity["title"])

		bookingEntity := resolved.Entities[1]
		require.Equal(t, bookingID.String(), bookingEntity["id"])
		// Hydrated bookings nest references, not full records
		listingRef, ok := bookingEntity["listing"].(map[string]any)
		require.True(t, ok, "booking should reference its listing as a stub")
		require.Equal(t, "Listing", listingRef["__typename"])
		require.Equal(t, listingID.String(), listingRef["id"])

		hostEntity := resolved.Entities[2]
		require.Equal(t, hostID.String(), hostEntity["id"])

		guestEntity := resolved.Entities[3]
		require.Equal(t, guestID.String(), guestEntity["id"])

		reviewEntity := resolved.Entities[4]
		require.Equal(t, reviewID.String(), reviewEntity["id"])
		// Author role is derived from the target: a host review is written by the guest
		authorRef, ok := reviewEntity["author"].(map[string]any)
		require.True(t, ok, "review should reference its author as a stub")
		require.Equal(t, "Guest", authorRef["__typename"])
		require.Equal(t, guestID.String(), authorRef["id"])
	})

	s.Run("Normal case: Missing entities resolve to null without failing the batch", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))
		listingID := dbtest.CreateTestListing(t, s.DB, hostID, 120)

		reqBody := request.ResolveEntitiesRequest{
			Representations: []federation.Stub{
				federation.NewStub(federation.TypeListing, listingID),
				federation.NewStub(federation.TypeListing, uuid.New()),
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entitiesURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resolved struct {
			Entities []any `json:"entities"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Len(t, resolved.Entities, 2)
		require.NotNil(t, resolved.Entities[0])
		require.Nil(t, resolved.Entities[1])
	})

	s.Run("Error case: Unknown typename fails the whole batch", func() {
		t := s.T()

		reqBody := request.ResolveEntitiesRequest{
			Representations: []federation.Stub{
				federation.NewStub("Spaceship", uuid.New()),
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entitiesURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Role mismatch resolves the user reference to null", func() {
		t := s.T()

		// A Host stub pointing at a guest account must not leak the record
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		reqBody := request.ResolveEntitiesRequest{
			Representations: []federation.Stub{
				federation.NewStub(federation.TypeHost, guestID),
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, entitiesURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resolved struct {
			Entities []any `json:"entities"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Len(t, resolved.Entities, 1)
		require.Nil(t, resolved.Entities[0])
	})
}
