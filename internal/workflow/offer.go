package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ats-backend/internal/model"
)

// OfferRequest is the content of an offer
type OfferRequest struct {
	ApplicationID uint
	Salary        float64
	JoiningDate   time.Time
}

// GenerateOffer creates a pending offer for an interviewed application and moves it to Offered.
func (c *Coordinator) GenerateOffer(ctx context.Context, caller Caller, req OfferRequest) (model.Offer, error) {
	if req.Salary <= 0 {
		return model.Offer{}, invalidInput("salary must be positive")
	}
	if req.JoiningDate.IsZero() {
		return model.Offer{}, invalidInput("joining date is required")
	}

	var (
		offer model.Offer
		read  applicationRead
	)
	err := c.store.Atomically(ctx, func(tx Tx) error {
		var err error
		read, err = lockOwnedApplication(ctx, tx, caller, req.ApplicationID)
		if err != nil {
			return err
		}
		next, err := Next(read.application.Status, TransitionOffer)
		if err != nil {
			return err
		}
		if _, ok, err := tx.FindOfferByApplication(ctx, req.ApplicationID); err != nil {
			return err
		} else if ok {
			return NewError(CodeOfferExists, "offer already exists for this application", nil)
		}

		offer = model.Offer{
			ApplicationID: req.ApplicationID,
			Salary:        req.Salary,
			JoiningDate:   req.JoiningDate.UTC(),
			Status:        model.OfferStatusPending,
		}
		if err := tx.CreateOffer(ctx, &offer); err != nil {
			return err
		}
		return tx.UpdateApplicationStatus(ctx, req.ApplicationID, next)
	})
	if err != nil {
		return model.Offer{}, err
	}

	c.log.Info("offer generated", zap.Uint("offer_id", offer.ID), zap.Uint("application_id", req.ApplicationID))
	c.dispatch(ctx, Notification{
		Kind:        NotifyOfferExtended,
		Recipient:   read.recipient(),
		JobTitle:    read.job.Title,
		Salary:      offer.Salary,
		JoiningDate: offer.JoiningDate,
	})
	return offer, nil
}

// RespondToOffer records the applicant's decision on an offer.
// The application stays Offered whatever the decision.
func (c *Coordinator) RespondToOffer(ctx context.Context, caller Caller, offerID uint, decision model.OfferStatus) (model.Offer, error) {
	if decision != model.OfferStatusAccepted && decision != model.OfferStatusRejected {
		return model.Offer{}, invalidInput("decision must be %q or %q", model.OfferStatusAccepted, model.OfferStatusRejected)
	}

	var offer model.Offer
	err := c.store.Atomically(ctx, func(tx Tx) error {
		var err error
		offer, err = tx.LockOffer(ctx, offerID)
		if err != nil {
			return err
		}
		application, err := tx.GetApplication(ctx, offer.ApplicationID)
		if err != nil {
			return err
		}
		if err := caller.requireOwningApplicant(application.ApplicantID); err != nil {
			return err
		}
		if err := tx.UpdateOfferStatus(ctx, offerID, decision); err != nil {
			return err
		}
		offer.Status = decision
		return nil
	})
	if err != nil {
		return model.Offer{}, err
	}

	c.log.Info("offer answered", zap.Uint("offer_id", offerID), zap.String("decision", string(decision)))
	return offer, nil
}
