package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"yungwing/config"
	bookingRepo "yungwing/database/repository/booking"
	paymentRepo "yungwing/database/repository/payment"
	userRepo "yungwing/database/repository/user"
	"yungwing/models"
	"yungwing/utils"
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Logger   *zap.Logger
}

// NewDefaultUserService constructs the service with its dependencies.
func NewDefaultUserService(repo userRepo.UserRepository, bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository) *DefaultUserService {
	return &DefaultUserService{
		Repo:     repo,
		Bookings: bookings,
		Payments: payments,
		Logger:   utils.GetLogger().Named("user"),
	}
}

func tokenExpiry() time.Duration {
	hours := config.AppConfig.JWTExpiryHours
	if hours <= 0 {
		hours = 168
	}
	return time.Duration(hours) * time.Hour
}

// issueToken generates a JWT and caches its hash so the auth middleware
// can validate without a database read.
func issueToken(u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.IsAdmin, tokenExpiry())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		// The middleware falls through to signature validation when the
		// cache misses, so a failed write only costs performance.
		utils.GetLogger().Warn("failed to cache auth token", zap.String("user_id", u.ID), zap.Error(err))
	}
	return token, nil
}

func authResponse(u *models.User, token string) *AuthResponse {
	return &AuthResponse{
		ID:          u.ID,
		Token:       token,
		Name:        u.Name,
		Phone:       u.Phone,
		MemberLevel: u.MemberLevel,
		IsAdmin:     u.IsAdmin,
	}
}

// Register creates a new member account and signs them in.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, fmt.Errorf("name and phone number are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}

	existing, err := s.Repo.GetByPhone(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hashed),
		MemberLevel:  models.MemberBasic,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.Logger.Info("member registered", zap.String("user_id", u.ID))

	token, err := issueToken(u)
	if err != nil {
		return nil, err
	}
	return authResponse(u, token), nil
}

// Authenticate verifies phone and password and returns a fresh token.
func (s *DefaultUserService) Authenticate(phone, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := issueToken(u)
	if err != nil {
		return nil, err
	}
	return authResponse(u, token), nil
}

// LineLogin signs a member in via their LINE identity, creating the
// account on first contact. Display name and avatar follow the LINE
// profile on every login.
func (s *DefaultUserService) LineLogin(lineUserID, displayName, avatar string) (*AuthResponse, error) {
	if lineUserID == "" {
		return nil, fmt.Errorf("LINE user ID is required")
	}

	u, err := s.Repo.GetByLineUserID(lineUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up LINE user: %w", err)
	}
	if u == nil {
		now := time.Now()
		u = &models.User{
			ID:          uuid.NewString(),
			Name:        displayName,
			LineUserID:  lineUserID,
			Avatar:      avatar,
			MemberLevel: models.MemberBasic,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Repo.Create(u); err != nil {
			return nil, fmt.Errorf("failed to create LINE user: %w", err)
		}
		s.Logger.Info("member registered via LINE", zap.String("user_id", u.ID))
	} else {
		if !u.IsActive {
			return nil, ErrAccountDisabled
		}
		if (displayName != "" && displayName != u.Name) || (avatar != "" && avatar != u.Avatar) {
			update := bson.M{"updated_at": time.Now()}
			if displayName != "" {
				update["name"] = displayName
				u.Name = displayName
			}
			if avatar != "" {
				update["avatar"] = avatar
				u.Avatar = avatar
			}
			if err := s.Repo.UpdateSetDocument(u.ID, update); err != nil {
				utils.GetLogger().Warn("failed to refresh LINE profile", zap.String("user_id", u.ID), zap.Error(err))
			}
		}
	}

	token, err := issueToken(u)
	if err != nil {
		return nil, err
	}
	return authResponse(u, token), nil
}

// GetProfile fetches the member's own record.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies the supplied fields and returns the updated
// record.
func (s *DefaultUserService) UpdateProfile(userID string, req UpdateProfileRequest) (*models.User, error) {
	update := bson.M{"updated_at": time.Now()}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Email != nil {
		update["email"] = *req.Email
	}
	if req.Gender != nil {
		update["gender"] = *req.Gender
	}
	if req.Birthday != nil {
		update["birthday"] = *req.Birthday
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.Avatar != nil {
		update["avatar"] = *req.Avatar
	}
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(userID)
}

// Stats summarises the member's activity for the profile screen.
func (s *DefaultUserService) Stats(userID string) (*models.MemberStats, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	total, err := s.Bookings.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.Bookings.CountByUserAndStatus(userID, models.BookingCompleted)
	if err != nil {
		return nil, err
	}
	return &models.MemberStats{
		TotalBookings:     total,
		CompletedBookings: completed,
		TotalSpent:        u.TotalSpent,
		CurrentPoints:     u.Points,
		MemberSince:       u.CreatedAt,
	}, nil
}

// PointsHistory pages the member's loyalty ledger.
func (s *DefaultUserService) PointsHistory(userID, entryType string, page, limit int) ([]models.PointsEntry, models.Pagination, error) {
	entries, total, err := s.Payments.ListPointsByUser(userID, entryType, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return entries, models.NewPagination(page, limit, total), nil
}
