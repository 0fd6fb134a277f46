package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"moving_ops/internal/models"
	"moving_ops/internal/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := redis.Initialize("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

type fakeOrderRepo struct {
	orders   map[string]models.Order
	saveErr  error
	getAlls  int
	lastSave models.Order

	// One-shot hooks run inside Save and after GetAll has read the table.
	onSave   func()
	onGetAll func()
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]models.Order{}}
}

func (r *fakeOrderRepo) Save(_ context.Context, o models.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if hook := r.onSave; hook != nil {
		r.onSave = nil
		hook()
	}
	r.lastSave = o
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	return o.Clone(), nil
}

func (r *fakeOrderRepo) GetAll(_ context.Context) ([]models.Order, error) {
	r.getAlls++
	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if hook := r.onGetAll; hook != nil {
		r.onGetAll = nil
		hook()
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	delete(r.orders, id)
	return nil
}

type fakeTxRepo struct {
	txs []models.Transaction
}

func (r *fakeTxRepo) Create(_ context.Context, tx models.Transaction) error {
	r.txs = append(r.txs, tx)
	return nil
}

func (r *fakeTxRepo) GetAll(_ context.Context) ([]models.Transaction, error) {
	return r.txs, nil
}

func (r *fakeTxRepo) Delete(_ context.Context, id string) error {
	for i, tx := range r.txs {
		if tx.ID == id {
			r.txs = append(r.txs[:i], r.txs[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeTxRepo) SumByType(_ context.Context) (map[models.TransactionType]float64, error) {
	sums := map[models.TransactionType]float64{}
	for _, tx := range r.txs {
		sums[tx.Type] += tx.Amount
	}
	return sums, nil
}

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return errors.New("duplicate username")
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.Username] = user
	return nil
}
