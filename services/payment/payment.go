package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookingRepo "yungwing/database/repository/booking"
	paymentRepo "yungwing/database/repository/payment"
	userRepo "yungwing/database/repository/user"
	"yungwing/models"
	userSvc "yungwing/services/user"
	"yungwing/utils"
)

// DefaultPaymentService is the production implementation of PaymentService.
type DefaultPaymentService struct {
	Repo     paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Logger   *zap.Logger
}

// NewDefaultPaymentService constructs the service with its dependencies.
func NewDefaultPaymentService(repo paymentRepo.PaymentRepository, bookings bookingRepo.BookingRepository, users userRepo.UserRepository) *DefaultPaymentService {
	return &DefaultPaymentService{
		Repo:     repo,
		Bookings: bookings,
		Users:    users,
		Logger:   utils.GetLogger().Named("payment"),
	}
}

func validMethod(method string) bool {
	for _, m := range models.ValidPaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

// chargeCard creates and captures a Stripe PaymentIntent for the
// amount, charged against the studio's saved terminal flow. The intent
// ID becomes the payment's transaction reference.
func chargeCard(amount float64, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyTWD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", bookingID)
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ID, nil
}

// Record settles a charge for one of the member's bookings.
func (s *DefaultPaymentService) Record(userID string, req RecordRequest) (*models.Payment, error) {
	if !validMethod(req.Method) {
		return nil, ErrInvalidMethod
	}

	booking, err := s.Bookings.GetByIDForUser(req.BookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == models.BookingCancelled || booking.Status == models.BookingNoShow {
		return nil, ErrBookingNotPayable
	}

	amount := req.Amount
	if amount == 0 && booking.Service != nil {
		amount = booking.Service.Price
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	record := &models.Payment{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		UserID:    userID,
		Amount:    amount,
		Method:    req.Method,
		Status:    models.PaymentCompleted,
	}
	if req.Method == models.PayCard {
		txID, err := chargeCard(amount, booking.ID)
		if err != nil {
			return nil, err
		}
		record.TransactionID = txID
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}
	s.Logger.Info("payment recorded",
		zap.String("payment_id", record.ID),
		zap.String("booking_id", booking.ID),
		zap.String("method", record.Method),
		zap.Float64("amount", amount))

	if err := s.accruePoints(userID, booking.ID, amount); err != nil {
		// Points are derivable from the payment record, so a failed
		// accrual is recoverable and must not fail the charge.
		s.Logger.Error("failed to accrue points",
			zap.String("payment_id", record.ID), zap.Error(err))
	}
	return record, nil
}

// accruePoints credits loyalty points for a completed payment and
// promotes the member's level when a spend threshold is crossed.
func (s *DefaultPaymentService) accruePoints(userID, bookingID string, amount float64) error {
	points := userSvc.PointsForAmount(amount)
	if err := s.Users.AddSpendAndPoints(userID, amount, points); err != nil {
		return err
	}
	if points > 0 {
		entry := &models.PointsEntry{
			ID:          uuid.NewString(),
			UserID:      userID,
			Points:      points,
			Type:        models.PointsEarned,
			Description: fmt.Sprintf("Earned from payment of %.0f", amount),
			BookingID:   bookingID,
		}
		if err := s.Repo.AddPointsEntry(entry); err != nil {
			return err
		}
	}

	u, err := s.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}
	if level := userSvc.LevelForSpend(u.TotalSpent); level != u.MemberLevel {
		if err := s.Users.UpdateSetDocument(userID, bson.M{"member_level": level, "updated_at": time.Now()}); err != nil {
			return err
		}
		s.Logger.Info("member level upgraded",
			zap.String("user_id", userID), zap.String("level", level))
	}
	return nil
}

// GetForUser fetches one of the member's payments.
func (s *DefaultPaymentService) GetForUser(id, userID string) (*models.PaymentDetail, error) {
	detail, err := s.Repo.GetByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrPaymentNotFound
	}
	return detail, nil
}

// ListForUser pages the member's payment history.
func (s *DefaultPaymentService) ListForUser(userID, status string, page, limit int) ([]models.PaymentDetail, models.Pagination, error) {
	details, total, err := s.Repo.ListByUser(userID, status, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return details, models.NewPagination(page, limit, total), nil
}
