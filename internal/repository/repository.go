// Package repository exposes typed CRUD operations over the expense API.
// It maps methods to endpoints and nothing more; transport errors pass
// through unmodified for the command layer to translate.
package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/trackwise-dev/trackwise/internal/model"
	"github.com/trackwise-dev/trackwise/internal/transport"
)

// ErrMutationInFlight is returned when a mutating operation targets a
// record that already has one outstanding.
var ErrMutationInFlight = errors.New("a change to this transaction is already in flight")

// Repository wraps the transport client with typed operations.
type Repository struct {
	client *transport.Client

	mu       sync.Mutex
	inflight map[int]struct{}
}

// New creates a Repository over the given transport client.
func New(client *transport.Client) *Repository {
	return &Repository{client: client, inflight: make(map[int]struct{})}
}

// List fetches every transaction.
func (r *Repository) List(ctx context.Context) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.client.Do(ctx, http.MethodGet, "/all", nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// ListByMonth fetches transactions filtered server-side by a "YYYY-MM"
// month prefix.
func (r *Repository) ListByMonth(ctx context.Context, yearMonth string) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.client.Do(ctx, http.MethodGet, "/by-month/"+yearMonth, nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// Create adds a new transaction and returns it with its assigned ID.
func (r *Repository) Create(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	var created model.Transaction
	if err := r.client.Do(ctx, http.MethodPost, "/add", t, &created); err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

// Update replaces an existing transaction. The ID must be set.
func (r *Repository) Update(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	if t.ID == nil {
		return model.Transaction{}, errors.New("update requires a transaction ID")
	}
	release, err := r.acquire(*t.ID)
	if err != nil {
		return model.Transaction{}, err
	}
	defer release()

	var updated model.Transaction
	if err := r.client.Do(ctx, http.MethodPut, "/updateExpense", t, &updated); err != nil {
		return model.Transaction{}, err
	}
	return updated, nil
}

// Delete removes a transaction by ID and returns the server's
// confirmation message.
func (r *Repository) Delete(ctx context.Context, id int) (string, error) {
	release, err := r.acquire(id)
	if err != nil {
		return "", err
	}
	defer release()

	var confirmation string
	if err := r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/delete/%d", id), nil, &confirmation); err != nil {
		return "", err
	}
	return confirmation, nil
}

// RegisterUser creates a new account. A taken username surfaces as a
// transport.ConflictError.
func (r *Repository) RegisterUser(ctx context.Context, username, password string) (model.User, error) {
	var created model.User
	payload := model.User{Username: username, Password: password}
	if err := r.client.Do(ctx, http.MethodPost, "/register", payload, &created); err != nil {
		return model.User{}, err
	}
	return created, nil
}

// acquire marks a record as having a mutation in flight. At most one
// outstanding mutation per ID; distinct IDs are unconstrained.
func (r *Repository) acquire(id int) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.inflight[id]; busy {
		return nil, ErrMutationInFlight
	}
	r.inflight[id] = struct{}{}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.inflight, id)
	}, nil
}
