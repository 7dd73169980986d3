package therapist

import (
	"testing"
	"time"

	"calmora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeTherapistRepo struct {
	therapists map[string]*models.Therapist
	updateDocs []bson.M
}

func newFakeTherapistRepo(recs ...*models.Therapist) *fakeTherapistRepo {
	r := &fakeTherapistRepo{therapists: map[string]*models.Therapist{}}
	for _, rec := range recs {
		r.therapists[rec.ID] = rec
	}
	return r
}

func (r *fakeTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	return r.therapists[id], nil
}
func (r *fakeTherapistRepo) GetByEmail(string) (*models.Therapist, error) { return nil, nil }
func (r *fakeTherapistRepo) GetAll() ([]models.Therapist, error)          { return nil, nil }
func (r *fakeTherapistRepo) Search(string, string) ([]models.Therapist, error) {
	return nil, nil
}
func (r *fakeTherapistRepo) Create(rec *models.Therapist) error {
	r.therapists[rec.ID] = rec
	return nil
}
func (r *fakeTherapistRepo) Delete(id string) error { return nil }

func (r *fakeTherapistRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.updateDocs = append(r.updateDocs, updateDoc)
	rec := r.therapists[id]
	if v, ok := updateDoc["name"].(string); ok {
		rec.Name = v
	}
	if v, ok := updateDoc["phone_number"].(string); ok {
		rec.PhoneNumber = v
	}
	if v, ok := updateDoc["specialty"].(string); ok {
		rec.Specialty = v
	}
	if v, ok := updateDoc["bio"].(string); ok {
		rec.Bio = v
	}
	if v, ok := updateDoc["session_fee"].(float64); ok {
		rec.SessionFee = v
	}
	return nil
}

func (r *fakeTherapistRepo) PushNotification(string, models.Notification) error {
	return nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (r *fakeBookingRepo) GetByID(string) (*models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) GetAll() ([]models.Booking, error)       { return nil, nil }
func (r *fakeBookingRepo) GetByUser(string) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) GetByTherapist(therapistID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TherapistID == therapistID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeBookingRepo) GetByTherapistAndDate(therapistID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TherapistID == therapistID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeBookingRepo) Create(*models.Booking) error      { return nil }
func (r *fakeBookingRepo) UpdateStatus(string, string) error { return nil }

func existingTherapist() *models.Therapist {
	return &models.Therapist{
		ID:           "th-1",
		Name:         "Dr. Achieng",
		Email:        "achieng@example.com",
		PhoneNumber:  "+254700000001",
		PasswordHash: "bcrypt-hash",
		TokenHash:    "token-hash",
		Specialty:    "anxiety",
		Bio:          "old bio",
		SessionFee:   80,
		Active:       true,
	}
}

func TestUpdateTherapistWritesOnlySuppliedFields(t *testing.T) {
	repo := newFakeTherapistRepo(existingTherapist())
	svc := &DefaultTherapistService{Repo: repo}

	rec, err := svc.UpdateTherapist(models.TherapistUpdateRequest{ID: "th-1", Bio: "new bio"})
	require.NoError(t, err)
	assert.Equal(t, "new bio", rec.Bio)

	require.Len(t, repo.updateDocs, 1)
	doc := repo.updateDocs[0]
	assert.Contains(t, doc, "bio")
	assert.Contains(t, doc, "updated_at")
	assert.NotContains(t, doc, "password_hash")
	assert.NotContains(t, doc, "token_hash")
	assert.NotContains(t, doc, "active")
	assert.NotContains(t, doc, "session_fee")
	assert.NotContains(t, doc, "name")

	// Everything the request omitted is untouched.
	assert.Equal(t, "bcrypt-hash", rec.PasswordHash)
	assert.True(t, rec.Active)
	assert.Equal(t, float64(80), rec.SessionFee)
	assert.Equal(t, "Dr. Achieng", rec.Name)
}

func TestUpdateTherapistSessionFee(t *testing.T) {
	repo := newFakeTherapistRepo(existingTherapist())
	svc := &DefaultTherapistService{Repo: repo}

	fee := 95.0
	rec, err := svc.UpdateTherapist(models.TherapistUpdateRequest{ID: "th-1", SessionFee: &fee})
	require.NoError(t, err)
	assert.Equal(t, 95.0, rec.SessionFee)
	assert.Equal(t, "bcrypt-hash", rec.PasswordHash)
}

func TestUpdateTherapistRejectsNonPositiveFee(t *testing.T) {
	repo := newFakeTherapistRepo(existingTherapist())
	svc := &DefaultTherapistService{Repo: repo}

	fee := 0.0
	_, err := svc.UpdateTherapist(models.TherapistUpdateRequest{ID: "th-1", SessionFee: &fee})
	require.Error(t, err)
	assert.Empty(t, repo.updateDocs)
}

func TestUpdateTherapistEmptyRequestWritesNothing(t *testing.T) {
	repo := newFakeTherapistRepo(existingTherapist())
	svc := &DefaultTherapistService{Repo: repo}

	rec, err := svc.UpdateTherapist(models.TherapistUpdateRequest{ID: "th-1"})
	require.NoError(t, err)
	assert.Empty(t, repo.updateDocs)
	assert.Equal(t, "old bio", rec.Bio)
}

func TestGetScheduleFiltersByDate(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b-1", TherapistID: "th-1", Date: "2026-03-10", Slot: "9:00"},
		{ID: "b-2", TherapistID: "th-1", Date: "2026-03-11", Slot: "10:00"},
		{ID: "b-3", TherapistID: "th-2", Date: "2026-03-10", Slot: "9:00"},
	}}
	svc := &DefaultTherapistService{Repo: newFakeTherapistRepo(), Bookings: bookings}

	schedule, err := svc.GetSchedule("th-1", "2026-03-10")
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "b-1", schedule[0].ID)
}

func TestGetScheduleDefaultsToTomorrow(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b-1", TherapistID: "th-1", Date: tomorrow, Slot: "9:00"},
	}}
	svc := &DefaultTherapistService{Repo: newFakeTherapistRepo(), Bookings: bookings}

	schedule, err := svc.GetSchedule("th-1", "")
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "b-1", schedule[0].ID)
}

func TestGetScheduleRejectsBadDate(t *testing.T) {
	svc := &DefaultTherapistService{Repo: newFakeTherapistRepo(), Bookings: &fakeBookingRepo{}}

	_, err := svc.GetSchedule("th-1", "next tuesday")
	assert.Error(t, err)
}
