package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingDomain "github.com/bookbnb/service-booking/internal/domain/booking"
	"github.com/bookbnb/service-booking/pkg/domain"
)

const bookingNotFoundMessage = "No booking by that id was found."

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID                        int64     `gorm:"primaryKey;autoIncrement"`
	TenantID                  int64     `gorm:"index;not null"`
	PublicationID             int64     `gorm:"index;not null"`
	TotalPrice                float64   `gorm:"not null"`
	InitialDate               time.Time `gorm:"type:date;not null"`
	FinalDate                 time.Time `gorm:"type:date;not null"`
	BookingDate               time.Time `gorm:"index;not null"`
	BookingStatus             string    `gorm:"size:20;not null;index"`
	BlockchainStatus          string    `gorm:"size:20;not null;index"`
	BlockchainTransactionHash *string   `gorm:"size:128"`
	BlockchainID              *int64    `gorm:""`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of the booking
// Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create inserts a booking after checking the no-overlap invariant. The
// candidate load and the insert run in one transaction holding a
// per-publication advisory lock, so concurrent creates for the same
// publication serialize even when no live row exists yet to lock.
func (r *GormBookingRepository) Create(ctx context.Context, bk *bookingDomain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", bk.PublicationID()).Error; err != nil {
			return domain.NewUnavailableError("failed to lock publication", err)
		}

		var models []BookingModel
		err := tx.Where("publication_id = ?", bk.PublicationID()).
			Where("booking_status IN ?", statusStrings(bookingDomain.LiveStatuses)).
			Where("blockchain_status IN ?", chainStatusStrings(bookingDomain.LiveChainStatuses)).
			Find(&models).Error
		if err != nil {
			return domain.NewUnavailableError("failed to load live bookings", err)
		}

		candidates := make([]*bookingDomain.Booking, len(models))
		for i, m := range models {
			candidates[i] = toDomainBooking(&m)
		}

		if conflict := bookingDomain.FindConflict(candidates, bk.Dates()); conflict != nil {
			return domain.NewPreconditionFailedError("The intent booking has overlapping dates")
		}

		model := toBookingModel(bk)
		if err := tx.Create(model).Error; err != nil {
			return domain.NewUnavailableError("failed to save booking", err)
		}
		bk.SetID(model.ID)
		return nil
	})
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", bookingNotFoundMessage)
		}
		return nil, domain.NewUnavailableError("failed to find booking", err)
	}
	return toDomainBooking(&model), nil
}

// List retrieves bookings matching the conjunction of the given
// conditions.
func (r *GormBookingRepository) List(ctx context.Context, conditions []bookingDomain.Condition) ([]*bookingDomain.Booking, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{})
	for _, cond := range conditions {
		query = applyCondition(query, cond)
	}

	var models []BookingModel
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list bookings", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(&m)
	}
	return bookings, nil
}

// UpdateFields applies a partial lifecycle update to the stored row,
// touching only the fields the patch names.
func (r *GormBookingRepository) UpdateFields(ctx context.Context, id int64, patch bookingDomain.Patch) (*bookingDomain.Booking, error) {
	var result *bookingDomain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model BookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("Booking", bookingNotFoundMessage)
			}
			return domain.NewUnavailableError("failed to find booking for update", err)
		}

		bk := toDomainBooking(&model)
		if err := bk.ApplyPatch(patch); err != nil {
			return err
		}

		updates := patchUpdates(patch)
		if len(updates) > 0 {
			if err := tx.Model(&BookingModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return domain.NewUnavailableError("failed to update booking", err)
			}
		}

		result = bk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RevenueByDay aggregates revenue of accepted, chain-confirmed bookings
// by the calendar day of booking_date within the closed window.
func (r *GormBookingRepository) RevenueByDay(ctx context.Context, start, end bookingDomain.Date) ([]bookingDomain.DayRevenue, error) {
	type row struct {
		Day   time.Time
		Value float64
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("CAST(booking_date AS date) AS day, SUM(total_price) AS value").
		Where("booking_status = ?", string(bookingDomain.StatusAccepted)).
		Where("blockchain_status = ?", string(bookingDomain.ChainConfirmed)).
		Where("CAST(booking_date AS date) BETWEEN ? AND ?", start.Time(), end.Time()).
		Group("CAST(booking_date AS date)").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewUnavailableError("failed to aggregate revenue", err)
	}

	revenue := make([]bookingDomain.DayRevenue, len(rows))
	for i, r := range rows {
		revenue[i] = bookingDomain.DayRevenue{
			Day:   bookingDomain.DateOf(r.Day),
			Value: r.Value,
		}
	}
	return revenue, nil
}

// --- Query helpers ---

// applyCondition maps one filter condition onto a gorm WHERE clause.
// booking_date is a timestamp filtered by its calendar day.
func applyCondition(query *gorm.DB, cond bookingDomain.Condition) *gorm.DB {
	column := cond.Field
	value := cond.Value
	if d, ok := value.(bookingDomain.Date); ok {
		value = d.Time()
	}
	if cond.Field == "booking_date" {
		column = "CAST(booking_date AS date)"
	}

	switch cond.Op {
	case bookingDomain.OpGte:
		return query.Where(column+" >= ?", value)
	case bookingDomain.OpLte:
		return query.Where(column+" <= ?", value)
	default:
		return query.Where(column+" = ?", value)
	}
}

func patchUpdates(patch bookingDomain.Patch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Status != nil {
		updates["booking_status"] = string(*patch.Status)
	}
	if patch.ChainStatus != nil {
		updates["blockchain_status"] = string(*patch.ChainStatus)
	}
	if patch.TransactionHash != nil {
		updates["blockchain_transaction_hash"] = *patch.TransactionHash
	}
	if patch.ChainID != nil {
		updates["blockchain_id"] = *patch.ChainID
	}
	return updates
}

func statusStrings(statuses []bookingDomain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func chainStatusStrings(statuses []bookingDomain.ChainStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:                        bk.ID(),
		TenantID:                  bk.TenantID(),
		PublicationID:             bk.PublicationID(),
		TotalPrice:                bk.TotalPrice(),
		InitialDate:               bk.InitialDate().Time(),
		FinalDate:                 bk.FinalDate().Time(),
		BookingDate:               bk.BookingDate(),
		BookingStatus:             string(bk.Status()),
		BlockchainStatus:          string(bk.ChainStatus()),
		BlockchainTransactionHash: bk.TransactionHash(),
		BlockchainID:              bk.ChainID(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.TenantID,
		m.PublicationID,
		m.TotalPrice,
		bookingDomain.DateOf(m.InitialDate),
		bookingDomain.DateOf(m.FinalDate),
		m.BookingDate,
		bookingDomain.Status(m.BookingStatus),
		bookingDomain.ChainStatus(m.BlockchainStatus),
		m.BlockchainTransactionHash,
		m.BlockchainID,
	)
}
