//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func createBookingRequest(itemID uuid.UUID, start, end time.Time) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ItemID: itemID,
		Start:  &start,
		End:    &end,
	}
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking starts in WAITING", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		reqBody := createBookingRequest(itemID, start, start.Add(48*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		expected := &response.BookingResponse{
			Status: "WAITING",
			Booker: response.BookerResponse{ID: bookerID},
			Item:   response.BookedItem{ID: itemID, Name: "Cordless drill"},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "Start", "End"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}

		// The booker can read the booking back
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, bookerID.String())
		require.Equal(t, http.StatusOK, dw.Code)
	})

	s.Run("Error case: overlap with an approved booking is rejected", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		otherID := dbtest.CreateTestUser(t, s.DB, "Other", "other@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, itemID, otherID, start, start.Add(5*24*time.Hour), "approved")

		reqBody := createBookingRequest(itemID, start.Add(2*24*time.Hour), start.Add(8*24*time.Hour))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Normal case: back-to-back periods do not conflict", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		otherID := dbtest.CreateTestUser(t, s.DB, "Other", "other@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		end := start.Add(5 * 24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, itemID, otherID, start, end, "approved")

		reqBody := createBookingRequest(itemID, end, end.Add(3*24*time.Hour))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("Error case: unavailable item cannot be booked", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Broken drill", false)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		reqBody := createBookingRequest(itemID, start, start.Add(24*time.Hour))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: unknown booker yields 404", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		reqBody := createBookingRequest(itemID, start, start.Add(24*time.Hour))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, uuid.New().String())
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: reversed period yields 400", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		reqBody := createBookingRequest(itemID, start, start.Add(-24*time.Hour))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *BookingSuite) TestSetApproval() {
	s.Run("Normal case: owner approves a waiting booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "waiting")

		url := bookingsURL + "/" + bookingID.String() + "?approved=true"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var decided response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &decided)
		require.NoError(t, err)
		require.Equal(t, "APPROVED", decided.Status)
	})

	s.Run("Normal case: owner rejects a waiting booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "waiting")

		url := bookingsURL + "/" + bookingID.String() + "?approved=false"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var decided response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &decided)
		require.NoError(t, err)
		require.Equal(t, "REJECTED", decided.Status)
	})

	s.Run("Error case: booker cannot decide their own booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "waiting")

		url := bookingsURL + "/" + bookingID.String() + "?approved=true"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, bookerID.String())
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: decided bookings are terminal", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "approved")

		url := bookingsURL + "/" + bookingID.String() + "?approved=false"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID.String())
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *BookingSuite) TestBookingAccess() {
	s.Run("Error case: a third party cannot read the booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		strangerID := dbtest.CreateTestUser(t, s.DB, "Stranger", "stranger@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "waiting")

		url := bookingsURL + "/" + bookingID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, strangerID.String())
		require.Equal(t, http.StatusForbidden, w.Code)

		// The owner still can
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, ownerID.String())
		require.Equal(t, http.StatusOK, ow.Code)
	})

	s.Run("Error case: unknown actor yields 404 on reads", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "waiting")

		ghost := uuid.New().String()

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+bookingID.String(), nil, ghost)
		require.Equal(t, http.StatusNotFound, gw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, ghost)
		require.Equal(t, http.StatusNotFound, lw.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/owner", nil, ghost)
		require.Equal(t, http.StatusNotFound, ow.Code)
	})
}

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: state filters partition the booker's bookings", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		now := time.Now().UTC().Truncate(time.Second)
		pastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-5*24*time.Hour), now.Add(-3*24*time.Hour), "approved")
		currentID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-24*time.Hour), now.Add(24*time.Hour), "approved")
		futureID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(3*24*time.Hour), now.Add(5*24*time.Hour), "waiting")

		cases := []struct {
			state string
			want  []uuid.UUID
		}{
			{"ALL", []uuid.UUID{futureID, currentID, pastID}},
			{"PAST", []uuid.UUID{pastID}},
			{"CURRENT", []uuid.UUID{currentID}},
			{"FUTURE", []uuid.UUID{futureID}},
			{"WAITING", []uuid.UUID{futureID}},
			{"REJECTED", []uuid.UUID{}},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state="+tc.state, nil, bookerID.String())
			require.Equal(t, http.StatusOK, w.Code, "state=%s", tc.state)

			var list []response.BookingResponse
			err := httptest.DecodeResponseBody(t, w.Body, &list)
			require.NoError(t, err)

			got := make([]uuid.UUID, 0, len(list))
			for _, b := range list {
				got = append(got, b.ID)
			}
			require.Equal(t, tc.want, got, "state=%s", tc.state)
		}
	})

	s.Run("Error case: unknown state filter yields 400", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=SOMEDAY", nil, bookerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Normal case: owner sees bookings across their items", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		drillID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)
		ladderID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, drillID, bookerID, start, start.Add(24*time.Hour), "waiting")
		dbtest.CreateTestBooking(t, s.DB, ladderID, bookerID, start, start.Add(24*time.Hour), "waiting")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/owner", nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var list []response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &list)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}

func (s *BookingSuite) TestCommentAfterRental() {
	s.Run("Normal case: booker comments after a completed rental", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		now := time.Now().UTC().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-5*24*time.Hour), now.Add(-3*24*time.Hour), "approved")

		url := "/items/" + itemID.String() + "/comment"
		reqBody := map[string]any{"text": "Worked perfectly"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code)

		var comment response.CommentResponse
		err := httptest.DecodeResponseBody(t, w.Body, &comment)
		require.NoError(t, err)
		require.Equal(t, "Worked perfectly", comment.Text)
		require.Equal(t, "Booker", comment.AuthorName)

		// The comment shows up on the item
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/items/"+itemID.String(), nil, "")
		require.Equal(t, http.StatusOK, iw.Code)

		var item response.ItemResponse
		err = httptest.DecodeResponseBody(t, iw.Body, &item)
		require.NoError(t, err)
		require.Len(t, item.Comments, 1)
	})

	s.Run("Error case: no completed rental means no comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless drill", true)

		start := time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "approved")

		url := "/items/" + itemID.String() + "/comment"
		reqBody := map[string]any{"text": "Too early"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, bookerID.String())
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
