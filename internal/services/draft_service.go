package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"moving_ops/internal/draft"
	"moving_ops/internal/models"
	"moving_ops/internal/redis"

	"github.com/google/uuid"
)

// DraftService keeps the in-progress edit of an order in Redis, one draft
// per open form. A session is the only writer of its own drafts.
type DraftService interface {
	Open(ctx context.Context, sessionID, orderID string) (*DraftView, error)
	Get(ctx context.Context, sessionID, draftID string) (*DraftView, error)
	Apply(ctx context.Context, sessionID, draftID string, action draft.Action) (*DraftView, error)
	Discard(ctx context.Context, sessionID, draftID string) error
	Submit(ctx context.Context, sessionID, draftID string) (models.Order, error)
}

// DraftView is what the form renders after every change.
type DraftView struct {
	DraftID string           `json:"draftId"`
	Draft   draft.Draft      `json:"draft"`
	Totals  models.Totals    `json:"totals"`
	Roles   []draft.RoleLine `json:"roles"`
}

type draftService struct {
	orderService OrderService
	redis        *redis.Client
	ttl          time.Duration
	now          func() time.Time
	newID        func() string
}

func NewDraftService(orderService OrderService, redis *redis.Client, ttl time.Duration) DraftService {
	return &draftService{
		orderService: orderService,
		redis:        redis,
		ttl:          ttl,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Open starts a draft from the empty template, or from the stored order
// when orderID is set.
func (s *draftService) Open(ctx context.Context, sessionID, orderID string) (*DraftView, error) {
	d := draft.New()
	if orderID != "" {
		order, err := s.orderService.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		d = draft.FromOrder(order)
	}

	draftID := s.newID()
	if err := s.store(ctx, sessionID, draftID, d); err != nil {
		return nil, err
	}
	return newDraftView(draftID, d), nil
}

func (s *draftService) Get(ctx context.Context, sessionID, draftID string) (*DraftView, error) {
	d, err := s.load(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	return newDraftView(draftID, d), nil
}

func (s *draftService) Apply(ctx context.Context, sessionID, draftID string, action draft.Action) (*DraftView, error) {
	d, err := s.load(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	d, err = draft.Apply(d, action, s.now(), s.newID)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, sessionID, draftID, d); err != nil {
		return nil, err
	}
	return newDraftView(draftID, d), nil
}

func (s *draftService) Discard(ctx context.Context, sessionID, draftID string) error {
	return s.redis.DeleteDraft(ctx, sessionID, draftID)
}

// Submit persists the draft. The order identity is written into the draft
// before saving and the draft is removed only once the order is saved, so
// any retry overwrites the same order.
func (s *draftService) Submit(ctx context.Context, sessionID, draftID string) (models.Order, error) {
	d, err := s.load(ctx, sessionID, draftID)
	if err != nil {
		return models.Order{}, err
	}

	if d.Order.ID == "" || d.Order.CreatedAt.IsZero() {
		identity := draft.Finalize(d, s.now(), models.NewOrderID)
		d.Order.ID, d.Order.CreatedAt = identity.ID, identity.CreatedAt
		if err := s.store(ctx, sessionID, draftID, d); err != nil {
			return models.Order{}, err
		}
	}

	order, err := s.orderService.SaveOrder(ctx, d)
	if err != nil {
		return models.Order{}, err
	}

	if err := s.redis.DeleteDraft(ctx, sessionID, draftID); err != nil {
		log.Printf("[DRAFTS] Failed to drop draft %s after submit: %v", draftID, err)
	}
	return order, nil
}

func (s *draftService) load(ctx context.Context, sessionID, draftID string) (draft.Draft, error) {
	var d draft.Draft
	if err := s.redis.GetDraft(ctx, sessionID, draftID, &d); err != nil {
		return draft.Draft{}, err
	}
	return d, nil
}

func (s *draftService) store(ctx context.Context, sessionID, draftID string, d draft.Draft) error {
	if err := s.redis.SetDraft(ctx, sessionID, draftID, d, s.ttl); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func newDraftView(draftID string, d draft.Draft) *DraftView {
	return &DraftView{
		DraftID: draftID,
		Draft:   d,
		Totals:  d.Totals(),
		Roles:   d.Roles(),
	}
}
