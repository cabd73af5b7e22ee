package services

import (
	"github.com/Salimjon123/Alijahon/entity"
	"github.com/sirupsen/logrus"
)

// transitions is the authoritative order state machine. Forward moves
// only: the happy path plus side branches. delivered, canceled and
// archived are terminal; not_call may come back to ready_to_delivery
// once the operator reaches the customer.
var transitions = map[string][]string{
	entity.StatusNew: {
		entity.StatusReadyToDelivery, entity.StatusNotCall,
		entity.StatusCanceled, entity.StatusArchived,
	},
	entity.StatusReadyToDelivery: {
		entity.StatusDelivering, entity.StatusNotCall,
		entity.StatusCanceled, entity.StatusArchived,
	},
	entity.StatusDelivering: {
		entity.StatusDelivered, entity.StatusNotCall,
		entity.StatusCanceled, entity.StatusArchived,
	},
	entity.StatusNotCall: {
		entity.StatusReadyToDelivery, entity.StatusCanceled, entity.StatusArchived,
	},
	entity.StatusDelivered: {},
	entity.StatusCanceled:  {},
	entity.StatusArchived:  {},
}

// CanTransition reports whether from → to is a permitted move.
// Staying put is always fine.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ----- Claim protocol -----

// Claim takes the hold on an order for the operator. The caller sends
// the lock version it last read; if the row moved on since (someone
// else claimed, or an edit bumped the version), the claim fails with
// a conflict and the operator must refresh the queue.
func (s *OrderService) Claim(orderID, operatorID uint, expectedVersion int) (*entity.Order, error) {
	ok, err := s.Repo.Claim(orderID, operatorID, expectedVersion)
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.WithFields(logrus.Fields{
			"order_id":    orderID,
			"operator_id": operatorID,
		}).Warn("order claim conflict")
		return nil, ErrOrderClaimed
	}
	return s.Repo.GetOrder(s.DB, orderID)
}

// ReleaseClaims drops every hold the operator owns. Explicit and
// idempotent; nothing releases holds as a side effect of listing.
func (s *OrderService) ReleaseClaims(operatorID uint) (int64, error) {
	released, err := s.Repo.ReleaseClaims(operatorID)
	if err != nil {
		return 0, err
	}
	if released > 0 {
		logrus.WithFields(logrus.Fields{
			"operator_id": operatorID,
			"released":    released,
		}).Info("operator claims released")
	}
	return released, nil
}
