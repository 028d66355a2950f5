package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/bookbnb/service-booking/internal/domain/booking"
	"github.com/bookbnb/service-booking/pkg/domain"
)

// CreateBookingRequest holds the data needed to create a new booking.
// Dates arrive as ISO-8601 YYYY-MM-DD strings.
type CreateBookingRequest struct {
	TenantID      int64    `json:"tenant_id" binding:"required"`
	PublicationID int64    `json:"publication_id" binding:"required"`
	TotalPrice    *float64 `json:"total_price" binding:"required"`
	InitialDate   string   `json:"initial_date" binding:"required"`
	FinalDate     string   `json:"final_date" binding:"required"`
}

// PatchBookingRequest holds the lifecycle fields a PATCH may change.
// Absent fields leave the stored values untouched.
type PatchBookingRequest struct {
	BookingStatus             *string `json:"booking_status"`
	BlockchainStatus          *string `json:"blockchain_status"`
	BlockchainTransactionHash *string `json:"blockchain_transaction_hash"`
	BlockchainID              *int64  `json:"blockchain_id"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                        int64              `json:"id"`
	TenantID                  int64              `json:"tenant_id"`
	PublicationID             int64              `json:"publication_id"`
	TotalPrice                float64            `json:"total_price"`
	InitialDate               bookingDomain.Date `json:"initial_date"`
	FinalDate                 bookingDomain.Date `json:"final_date"`
	BookingDate               time.Time          `json:"booking_date"`
	BookingStatus             string             `json:"booking_status"`
	BlockchainStatus          string             `json:"blockchain_status"`
	BlockchainTransactionHash *string            `json:"blockchain_transaction_hash"`
	BlockchainID              *int64             `json:"blockchain_id"`
}

// EventPublisher publishes booking lifecycle events. Implementations are
// best effort: a publish failure never fails the request.
type EventPublisher interface {
	BookingCreated(ctx context.Context, bk *bookingDomain.Booking)
	BookingStatusChanged(ctx context.Context, bk *bookingDomain.Booking)
}

// BookingService is the application service orchestrating booking use
// cases.
type BookingService struct {
	repo      bookingDomain.Repository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(repo bookingDomain.Repository, publisher EventPublisher, logger *zap.Logger) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking validates the request, runs the overlap gate and persists
// the booking with its initial lifecycle state.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	if req.TotalPrice == nil {
		return nil, domain.NewValidationError("total_price is required")
	}
	initialDate, err := bookingDomain.ParseDate(req.InitialDate)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid initial_date: %v", err))
	}
	finalDate, err := bookingDomain.ParseDate(req.FinalDate)
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid final_date: %v", err))
	}

	bk, err := bookingDomain.NewBooking(req.TenantID, req.PublicationID, *req.TotalPrice, initialDate, finalDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, bk); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("publication_id", bk.PublicationID()),
	)
	s.publisher.BookingCreated(ctx, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings retrieves bookings matching the given filter conditions.
func (s *BookingService) ListBookings(ctx context.Context, conditions []bookingDomain.Condition) ([]BookingDTO, error) {
	bookings, err := s.repo.List(ctx, conditions)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}

// GetBooking retrieves a single booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id int64) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// PatchBooking applies a partial lifecycle update. Unknown enum values
// are rejected; transitions themselves are unrestricted.
func (s *BookingService) PatchBooking(ctx context.Context, id int64, req PatchBookingRequest) (*BookingDTO, error) {
	patch, err := toDomainPatch(req)
	if err != nil {
		return nil, err
	}

	bk, err := s.repo.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil || patch.ChainStatus != nil {
		s.logger.Info("booking status changed",
			zap.Int64("booking_id", bk.ID()),
			zap.String("booking_status", bk.Status().String()),
			zap.String("blockchain_status", bk.ChainStatus().String()),
		)
		s.publisher.BookingStatusChanged(ctx, bk)
	}

	result := toBookingDTO(bk)
	return &result, nil
}

// --- Helpers ---

func toDomainPatch(req PatchBookingRequest) (bookingDomain.Patch, error) {
	var patch bookingDomain.Patch

	if req.BookingStatus != nil {
		status, err := bookingDomain.ParseStatus(*req.BookingStatus)
		if err != nil {
			return patch, domain.NewValidationError(err.Error())
		}
		patch.Status = &status
	}
	if req.BlockchainStatus != nil {
		status, err := bookingDomain.ParseChainStatus(*req.BlockchainStatus)
		if err != nil {
			return patch, domain.NewValidationError(err.Error())
		}
		patch.ChainStatus = &status
	}
	patch.TransactionHash = req.BlockchainTransactionHash
	patch.ChainID = req.BlockchainID
	return patch, nil
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:                        bk.ID(),
		TenantID:                  bk.TenantID(),
		PublicationID:             bk.PublicationID(),
		TotalPrice:                bk.TotalPrice(),
		InitialDate:               bk.InitialDate(),
		FinalDate:                 bk.FinalDate(),
		BookingDate:               bk.BookingDate(),
		BookingStatus:             bk.Status().String(),
		BlockchainStatus:          bk.ChainStatus().String(),
		BlockchainTransactionHash: bk.TransactionHash(),
		BlockchainID:              bk.ChainID(),
	}
}
