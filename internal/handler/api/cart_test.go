//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gleamshop/internal/domain/cart"
	"gleamshop/internal/handler/api"
	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/queries"
	"gleamshop/tests/common/builder"
	"gleamshop/tests/common/httptest"
	"gleamshop/tests/common/testutil"
	commandsmock "gleamshop/tests/mock/commands"
	queriesmock "gleamshop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.GET("/cart", s.handler.GetCart)
	s.router.POST("/cart/items", s.handler.AddItem)
	s.router.PATCH("/cart/items/:id", s.handler.UpdateItem)
	s.router.DELETE("/cart/items/:id", s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: returns the session cart and mints a session cookie", func() {
		view := builder.NewCartBuilder().BuildView()
		s.mockQueries.EXPECT().GetBySession(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var response queries.CartView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.NotNil(httptest.ExtractCookie(rec, "cart_session"), "first visit should mint a session cookie")
	})

	s.Run("success: reuses the cookie's session id", func() {
		sessionID := uuid.New()
		view := builder.NewCartBuilder().BuildView()
		s.mockQueries.EXPECT().GetBySession(gomock.Any(), sessionID).
			Return(view, nil).Times(1)

		cookies := []*http.Cookie{{Name: "cart_session", Value: sessionID.String()}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/cart", nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	productID := uuid.New()
	reqBody := builder.NewCartBuilder().BuildAddItemDTO(productID, nil, 2)

	s.Run("success: returns the updated cart", func() {
		view := builder.NewCartBuilder().WithLine(productID, nil, 2, 99900).BuildView()
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), productID, "", int32(2)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.CartView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Lines, 1)
		s.Equal(int64(199800), response.TotalCents)
	})

	s.Run("success: ring size is trimmed before it reaches the command", func() {
		size := "  7  "
		body := builder.NewCartBuilder().BuildAddItemDTO(productID, &size, 1)
		view := builder.NewCartBuilder().BuildView()
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), productID, "7", int32(1)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: maps command failures to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown product", err: errs.ErrProductNotFound, expectCode: http.StatusNotFound},
			{name: "unavailable product", err: errs.ErrProductUnavailable, expectCode: http.StatusUnprocessableEntity},
			{name: "missing ring size", err: errs.ErrRingSizeRequired, expectCode: http.StatusUnprocessableEntity},
			{name: "domain validation", err: errs.ErrDomainValidation, expectCode: http.StatusBadRequest},
			{name: "marked domain validation", err: errs.Mark(errs.New("quantity out of range"), errs.ErrDomainValidation), expectCode: http.StatusBadRequest},
			{name: "storage failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), productID, "", int32(2)).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectCode, rec.Code, tc.name)
			})
		}
	})

	s.Run("success: omitted quantity defaults to one", func() {
		view := builder.NewCartBuilder().BuildView()
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), productID, "", int32(1)).
			Return(view, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, tc.name)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestUpdateItem() {
	lineID := uuid.New()
	url := "/cart/items/" + lineID.String()

	s.Run("success: increases the quantity", func() {
		view := builder.NewCartBuilder().BuildView()
		s.mockCommands.EXPECT().ChangeQuantity(gomock.Any(), gomock.Any(), lineID, cart.ActionIncrease).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"action": "increase"}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for unknown actions", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"action": "double"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown lines", func() {
		s.mockCommands.EXPECT().ChangeQuantity(gomock.Any(), gomock.Any(), lineID, cart.ActionDecrease).
			Return(nil, errs.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"action": "decrease"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})

	s.Run("error: 404 for malformed line ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/not-a-uuid",
			map[string]string{"action": "increase"}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	lineID := uuid.New()
	url := "/cart/items/" + lineID.String()

	s.Run("success: returns the cart without the removed line", func() {
		view := builder.NewCartBuilder().BuildView()
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), gomock.Any(), lineID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var response queries.CartView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Lines)
	})

	s.Run("error: 404 for unknown lines", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), gomock.Any(), lineID).
			Return(nil, errs.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}
