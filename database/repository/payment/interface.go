package paymentRepo

import "yungwing/models"

// PaymentRepository defines persistence for payments and the loyalty
// points ledger.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByIDForUser(id, userID string) (*models.PaymentDetail, error)
	ListByUser(userID, status string, page, limit int) ([]models.PaymentDetail, int64, error)

	AddPointsEntry(entry *models.PointsEntry) error
	ListPointsByUser(userID, entryType string, page, limit int) ([]models.PointsEntry, int64, error)

	SumCompleted() (float64, error)
	Revenue(startDate, endDate string) (*models.RevenueReport, error)
}
