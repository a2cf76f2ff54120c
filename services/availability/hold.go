package availability

import (
	"context"
	"errors"
	"time"

	bookingRepo "pawbooker/database/repository/booking"
	"pawbooker/models"
	"pawbooker/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HoldSlot re-checks availability for the draft's window and, if some open
// interval fully contains it, creates a time-boxed HELD booking. The
// availability check alone is not a sufficient guard against concurrent
// holds, so the insert goes through a transaction that re-validates capacity
// at write time.
func (e *DefaultEngine) HoldSlot(draft models.BookingDraft) (string, error) {
	logger := utils.GetLogger()

	start, end := draft.StartDateTime.UTC(), draft.EndDateTime.UTC()
	if !end.After(start) {
		return "", newError(CodeInvalidInterval, "booking end must be after start")
	}

	service, err := e.ServiceRepo.GetByID(draft.ServiceID)
	if err != nil {
		return "", err
	}
	if service == nil {
		return "", newError(CodeNotFound, "service %s not found", draft.ServiceID)
	}

	open, err := e.OpenIntervals(draft.ServiceID, start, end)
	if err != nil {
		return "", err
	}
	contained := false
	for _, interval := range open {
		if interval.Contains(start, end) {
			contained = true
			break
		}
	}
	if !contained {
		return "", newError(CodeSlotUnavailable, "slot %s to %s is no longer available",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	now := time.Now().UTC()
	expiresAt := now.Add(e.holdTTL())
	booking := &models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     draft.ServiceID,
		ClientID:      draft.ClientID,
		PetID:         draft.PetID,
		StartDateTime: start,
		EndDateTime:   end,
		Status:        models.BookingHeld,
		HoldExpiresAt: &expiresAt,
		PriceCents:    draft.PriceCents,
		Notes:         draft.Notes,
		CreatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.BookingRepo.HoldTransactionally(ctx, booking, service.Capacity); err != nil {
		if errors.Is(err, bookingRepo.ErrCapacityExceeded) {
			return "", newError(CodeSlotUnavailable, "slot %s to %s just reached capacity",
				start.Format(time.RFC3339), end.Format(time.RFC3339))
		}
		return "", err
	}

	logger.Info("slot held",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", draft.ServiceID),
		zap.Time("start", start),
		zap.Time("expiresAt", expiresAt))
	return booking.ID, nil
}

// ConfirmHeldBooking transitions a non-expired HELD booking to CONFIRMED and
// clears its hold deadline.
func (e *DefaultEngine) ConfirmHeldBooking(bookingID string) error {
	booking, err := e.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return newError(CodeNotFound, "booking %s not found", bookingID)
	}
	if booking.Status != models.BookingHeld {
		return newError(CodeInvalidState, "booking %s is %s, not HELD", bookingID, booking.Status)
	}
	if booking.HoldExpired(time.Now().UTC()) {
		return newError(CodeHoldExpired, "hold on booking %s has expired", bookingID)
	}

	if err := e.BookingRepo.UpdateStatus(bookingID, models.BookingConfirmed, true); err != nil {
		return err
	}
	utils.GetLogger().Info("booking confirmed", zap.String("bookingID", bookingID))
	return nil
}

// CancelBooking transitions a pending, held or confirmed booking to CANCELED.
func (e *DefaultEngine) CancelBooking(bookingID string) error {
	booking, err := e.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return newError(CodeNotFound, "booking %s not found", bookingID)
	}
	switch booking.Status {
	case models.BookingPending, models.BookingHeld, models.BookingConfirmed:
	default:
		return newError(CodeInvalidState, "booking %s is %s and cannot be canceled", bookingID, booking.Status)
	}

	if err := e.BookingRepo.UpdateStatus(bookingID, models.BookingCanceled, true); err != nil {
		return err
	}
	utils.GetLogger().Info("booking canceled", zap.String("bookingID", bookingID))
	return nil
}

// CleanupExpiredHolds removes every lapsed hold. Idempotent: running it
// concurrently or repeatedly only ever deletes each row once.
func (e *DefaultEngine) CleanupExpiredHolds() (int64, error) {
	count, err := e.BookingRepo.DeleteExpiredHeld(time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		utils.GetLogger().Info("expired holds removed", zap.Int64("count", count))
	}
	return count, nil
}
