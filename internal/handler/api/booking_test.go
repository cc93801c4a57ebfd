//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	identified := s.router.Group("/bookings")
	identified.Use(middleware.RequireIdentity())
	identified.POST("", s.handler.Create)
	identified.GET("", s.handler.ListByBooker)
	identified.GET("/owner", s.handler.ListByOwner)
	identified.GET("/:id", s.handler.Get)
	identified.PATCH("/:id", s.handler.SetApproval)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	callerID := b.BookerID.String()

	s.Run("success: returns 201 with uppercase status", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.BookerID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal("WAITING", body["status"])
		s.Equal(b.BookerID.String(), body["booker"].(map[string]any)["id"])
		item := body["item"].(map[string]any)
		s.Equal(b.ItemID.String(), item["id"])
		s.Equal(b.ItemName, item["name"])
	})

	s.Run("error: 400 without identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("error: 400 with malformed identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "UUID")
	})

	s.Run("error: 400 when itemId is missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("itemId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("use case error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown booker", err: commands.ErrUserNotFound, expectCode: http.StatusNotFound},
			{name: "unknown item", err: commands.ErrItemNotFound, expectCode: http.StatusNotFound},
			{name: "invalid period", err: commands.ErrInvalidBookingPeriod, expectCode: http.StatusBadRequest},
			{name: "item unavailable", err: commands.ErrItemUnavailable, expectCode: http.StatusConflict},
			{name: "period conflict", err: commands.ErrBookingConflict, expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestSetApproval() {
	b := builder.NewBookingBuilder().WithStatus("approved")
	returnView := b.BuildView()
	url := "/bookings/" + b.ID.String()
	ownerID := b.ItemOwnerID.String()

	s.Run("success: owner approves", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), b.ID, b.ItemOwnerID, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body["status"])
	})

	s.Run("success: owner rejects", func() {
		rejected := builder.NewBookingBuilder().WithStatus("rejected").BuildView()
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), b.ID, b.ItemOwnerID, false).
			Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, ownerID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("REJECTED", body["status"])
	})

	s.Run("error: 400 without approved parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved")
	})

	s.Run("error: 400 with non-boolean approved parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=maybe", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 with malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/abc?approved=true", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 when actor is not the owner", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(nil, commands.ErrApprovalNotOwner).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, uuid.New().String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 409 when already decided", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), gomock.Any(), gomock.Any(), false).
			Return(nil, commands.ErrBookingDecided).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().SetApproval(gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(nil, commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()
	url := "/bookings/" + b.ID.String()

	s.Run("success: booker reads own booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.BookerID, b.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, b.BookerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body["id"])
	})

	s.Run("error: 403 for unrelated user", func() {
		strangerID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), strangerID, b.ID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, strangerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, uuid.New().String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 404 for unknown actor", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, uuid.New().String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestListByBooker() {
	bookerID := uuid.New()
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithBookerID(bookerID).BuildView(),
		builder.NewBookingBuilder().WithBookerID(bookerID).WithStatus("approved").BuildView(),
	}

	s.Run("success: defaults to ALL", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), bookerID, booking.FilterAll).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, bookerID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: explicit state filter", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), bookerID, booking.FilterWaiting).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=WAITING", nil, bookerID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 for unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", nil, bookerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for unknown booker", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), gomock.Any(), booking.FilterAll).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, uuid.New().String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestListByOwner() {
	ownerID := uuid.New()
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), ownerID, booking.FilterAll).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, ownerID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 for unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=bogus", nil, ownerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
