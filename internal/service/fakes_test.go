package service_test

import (
	"context"
	"sort"
	"sync"

	"github.com/msomdec/social-media-api/internal/domain"
)

// fakeAccounts is an in-memory domain.AccountRepository. Setting err makes
// every call fail with it.
type fakeAccounts struct {
	mu      sync.Mutex
	rows    map[int64]domain.Account
	nextID  int64
	inserts int
	err     error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{rows: make(map[int64]domain.Account)}
}

func (f *fakeAccounts) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAccounts) GetAll(context.Context) ([]domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Account{}
	for _, a := range f.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAccounts) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.rows {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccounts) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := f.FindByUsername(ctx, username)
	if err == domain.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeAccounts) Insert(_ context.Context, a *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, row := range f.rows {
		if row.Username == a.Username {
			return domain.ErrDuplicateUsername
		}
	}
	f.nextID++
	f.inserts++
	a.ID = f.nextID
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAccounts) Update(_ context.Context, a *domain.Account) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.rows[a.ID]; !ok {
		return false, nil
	}
	f.rows[a.ID] = *a
	return true, nil
}

func (f *fakeAccounts) Delete(_ context.Context, a *domain.Account) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.rows[a.ID]; !ok {
		return false, nil
	}
	delete(f.rows, a.ID)
	return true, nil
}

// fakeMessages is an in-memory domain.MessageRepository.
type fakeMessages struct {
	mu     sync.Mutex
	rows   map[int64]domain.Message
	nextID int64
	err    error
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{rows: make(map[int64]domain.Message)}
}

func (f *fakeMessages) GetByID(_ context.Context, id int64) (*domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (f *fakeMessages) GetAll(context.Context) ([]domain.Message, error) {
	return f.filter(func(domain.Message) bool { return true })
}

func (f *fakeMessages) ListByAccount(_ context.Context, accountID int64) ([]domain.Message, error) {
	return f.filter(func(m domain.Message) bool { return m.PostedBy == accountID })
}

func (f *fakeMessages) filter(keep func(domain.Message) bool) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Message{}
	for _, m := range f.rows {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMessages) Insert(_ context.Context, m *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	m.ID = f.nextID
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeMessages) Update(_ context.Context, m *domain.Message) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.rows[m.ID]; !ok {
		return false, nil
	}
	f.rows[m.ID] = *m
	return true, nil
}

func (f *fakeMessages) Delete(_ context.Context, m *domain.Message) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.rows[m.ID]; !ok {
		return false, nil
	}
	delete(f.rows, m.ID)
	return true, nil
}
