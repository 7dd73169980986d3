package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"calmora/models"
	"calmora/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeBookingService struct {
	cancelled []string
}

func (s *fakeBookingService) AvailableSlots() (*booking.AvailabilityResult, error) {
	return nil, nil
}
func (s *fakeBookingService) Confirm(context.Context, booking.ConfirmRequest) (*models.BookingConfirmation, error) {
	return nil, nil
}
func (s *fakeBookingService) GetBooking(string) (*models.Booking, error) { return nil, nil }
func (s *fakeBookingService) ListForUser(string) ([]models.Booking, error) {
	return nil, nil
}
func (s *fakeBookingService) ListForTherapist(string) ([]models.Booking, error) {
	return nil, nil
}
func (s *fakeBookingService) ListAll() ([]models.Booking, error) { return nil, nil }

func (s *fakeBookingService) Cancel(id, userID string) error {
	if id != "b-1" {
		return booking.ErrBookingNotFound
	}
	s.cancelled = append(s.cancelled, id)
	return nil
}

func newAdminTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ah := NewAdminHandler(nil, nil, svc)
	r := gin.New()
	r.DELETE("/api/admin/bookings/:id", ah.CancelBookingHandler)
	return r
}

func TestAdminCancelBooking(t *testing.T) {
	svc := &fakeBookingService{}
	router := newAdminTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/b-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"b-1"}, svc.cancelled)
}

func TestAdminCancelUnknownBookingReturns404(t *testing.T) {
	router := newAdminTestRouter(&fakeBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
