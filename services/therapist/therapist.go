package therapist

import (
	"context"
	"fmt"
	"time"

	"calmora/models"
	"calmora/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// RegisterTherapist onboards a therapist and signs them in.
func (s *DefaultTherapistService) RegisterTherapist(data models.TherapistRegistrationData) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterTherapist: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	rec := &models.Therapist{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: string(hash),
		Specialty:    data.Specialty,
		Bio:          data.Bio,
		SessionFee:   data.SessionFee,
		Active:       true,
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to create therapist: %w", err)
	}

	return s.issueToken(rec)
}

// AuthenticateTherapist verifies credentials and issues a fresh token.
func (s *DefaultTherapistService) AuthenticateTherapist(email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateTherapist: failed to fetch therapist", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !rec.Active {
		return nil, fmt.Errorf("this account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(rec)
}

func (s *DefaultTherapistService) issueToken(rec *models.Therapist) (*AuthResponse, error) {
	token, err := utils.GenerateToken(rec.ID, rec.Email, "therapist", tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(rec.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + rec.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &AuthResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Specialty: rec.Specialty,
		Token:     token,
	}, nil
}

// RevokeTherapistAuthToken clears the stored token hash and cache entry.
func (s *DefaultTherapistService) RevokeTherapistAuthToken(therapistID string) error {
	if err := s.Repo.UpdateSetDocument(therapistID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+therapistID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeTherapistAuthToken: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

// SearchTherapists lists the public directory, optionally filtered.
func (s *DefaultTherapistService) SearchTherapists(specialty, name string) ([]models.TherapistPublicView, error) {
	therapists, err := s.Repo.Search(specialty, name)
	if err != nil {
		return nil, err
	}
	views := make([]models.TherapistPublicView, 0, len(therapists))
	for _, t := range therapists {
		views = append(views, t.PublicView())
	}
	return views, nil
}

// GetTherapistProfile returns the public profile for one therapist.
func (s *DefaultTherapistService) GetTherapistProfile(therapistID string) (*models.TherapistPublicView, error) {
	rec, err := s.Repo.GetByID(therapistID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Active {
		return nil, fmt.Errorf("therapist not found")
	}
	view := rec.PublicView()
	return &view, nil
}

// GetTherapistByID retrieves the full therapist record.
func (s *DefaultTherapistService) GetTherapistByID(therapistID string) (*models.Therapist, error) {
	rec, err := s.Repo.GetByID(therapistID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("therapist not found")
	}
	return rec, nil
}

// UpdateTherapist applies the supplied profile fields only; everything
// else on the document is left untouched.
func (s *DefaultTherapistService) UpdateTherapist(req models.TherapistUpdateRequest) (*models.Therapist, error) {
	updateDoc := bson.M{}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateDoc["phone_number"] = req.PhoneNumber
	}
	if req.Specialty != "" {
		updateDoc["specialty"] = req.Specialty
	}
	if req.Bio != "" {
		updateDoc["bio"] = req.Bio
	}
	if req.SessionFee != nil {
		if *req.SessionFee <= 0 {
			return nil, fmt.Errorf("session fee must be positive")
		}
		updateDoc["session_fee"] = *req.SessionFee
	}
	if len(updateDoc) > 0 {
		updateDoc["updated_at"] = time.Now()
		if err := s.Repo.UpdateSetDocument(req.ID, updateDoc); err != nil {
			return nil, err
		}
	}
	return s.GetTherapistByID(req.ID)
}

// DeleteTherapist removes a therapist account.
func (s *DefaultTherapistService) DeleteTherapist(therapistID string) error {
	return s.Repo.Delete(therapistID)
}

// GetPatientRoster derives the set of patients who have booked with the
// therapist from the booking history.
func (s *DefaultTherapistService) GetPatientRoster(therapistID string) ([]models.User, error) {
	bookings, err := s.Bookings.GetByTherapist(therapistID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var roster []models.User
	for _, b := range bookings {
		if seen[b.UserID] {
			continue
		}
		seen[b.UserID] = true

		patient, err := s.Users.GetByID(b.UserID)
		if err != nil {
			utils.GetLogger().Warn("GetPatientRoster: failed to fetch patient",
				zap.String("user", b.UserID), zap.Error(err))
			continue
		}
		if patient != nil {
			roster = append(roster, *patient)
		}
	}
	return roster, nil
}

// GetSchedule lists the therapist's bookings for one calendar date,
// defaulting to tomorrow (the bookable day).
func (s *DefaultTherapistService) GetSchedule(therapistID, date string) ([]models.Booking, error) {
	if date == "" {
		date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.Bookings.GetByTherapistAndDate(therapistID, date)
}

// GetAllTherapists lists every therapist account (admin).
func (s *DefaultTherapistService) GetAllTherapists() ([]models.Therapist, error) {
	return s.Repo.GetAll()
}
