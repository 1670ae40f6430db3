package test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/domain/model"
	"github.com/polkiloo/toymix/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MemoryStore keeps customers and sales in memory and serves the customer,
// sale and stats repositories with the same semantics as PostgreSQL.
type MemoryStore struct {
	mu        sync.Mutex
	customers map[int64]model.Customer
	sales     map[int64]model.Sale
	nextCust  int64
	nextSale  int64

	// Err, when set, is returned by every repository call.
	Err error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[int64]model.Customer),
		sales:     make(map[int64]model.Sale),
		nextCust:  1,
		nextSale:  1,
	}
}

func (m *MemoryStore) Customers() repository.CustomerRepository { return memoryCustomers{m} }
func (m *MemoryStore) Sales() repository.SaleRepository         { return memorySales{m} }
func (m *MemoryStore) Stats() repository.StatsRepository        { return memoryStats{m} }

// MustAddCustomer inserts a customer and returns its id.
func (m *MemoryStore) MustAddCustomer(name, email string) int64 {
	c, err := m.Customers().Create(context.Background(), model.Customer{
		Name: name, Email: email, BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}
	return c.ID
}

// MustAddSale inserts a sale dated YYYY-MM-DD with the given amount.
func (m *MemoryStore) MustAddSale(customerID int64, day string, amount string) int64 {
	d, err := time.Parse(time.DateOnly, day)
	if err != nil {
		panic(err)
	}
	s, err := m.Sales().Create(context.Background(), model.Sale{
		CustomerID: customerID, Date: d, Amount: decimal.RequireFromString(amount),
	})
	if err != nil {
		panic(err)
	}
	return s.ID
}

type memoryCustomers struct{ m *MemoryStore }

func (r memoryCustomers) List(ctx context.Context, filter model.CustomerFilter, page model.Page) (*model.CustomerPage, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}

	matches := make([]model.Customer, 0)
	for _, c := range r.m.customers {
		if filter.ID != nil && c.ID != *filter.ID {
			continue
		}
		if filter.Name != "" && !containsFold(c.Name, filter.Name) {
			continue
		}
		if filter.Email != "" && !containsFold(c.Email, filter.Email) {
			continue
		}
		matches = append(matches, c)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID > matches[j].ID })

	if filter.ID != nil {
		return &model.CustomerPage{Items: matches, Total: int64(len(matches))}, nil
	}
	return &model.CustomerPage{Items: paginate(matches, page), Total: int64(len(matches))}, nil
}

func (r memoryCustomers) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	c, ok := r.m.customers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

func (r memoryCustomers) Create(ctx context.Context, c model.Customer) (*model.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	if r.m.emailTaken(c.Email, 0) {
		return nil, domainErrors.ErrAlreadyExists
	}
	now := time.Now()
	c.ID = r.m.nextCust
	c.CreatedAt, c.UpdatedAt = now, now
	r.m.nextCust++
	r.m.customers[c.ID] = c
	return &c, nil
}

func (r memoryCustomers) Update(ctx context.Context, id int64, patch model.CustomerPatch) (*model.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	c, ok := r.m.customers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Email != nil && r.m.emailTaken(*patch.Email, id) {
		return nil, domainErrors.ErrAlreadyExists
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.BirthDate != nil {
		c.BirthDate = *patch.BirthDate
	}
	c.UpdatedAt = time.Now()
	r.m.customers[id] = c
	return &c, nil
}

func (r memoryCustomers) Delete(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return r.m.Err
	}
	if _, ok := r.m.customers[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.m.customers, id)
	for sid, s := range r.m.sales {
		if s.CustomerID == id {
			delete(r.m.sales, sid)
		}
	}
	return nil
}

type memorySales struct{ m *MemoryStore }

func (r memorySales) List(ctx context.Context, filter model.SaleFilter, page model.Page) (*model.SalePage, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}

	matches := make([]model.Sale, 0)
	total := decimal.Zero
	for _, s := range r.m.sales {
		if filter.CustomerID != nil && s.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.From != nil && s.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.Date.After(*filter.To) {
			continue
		}
		s.CustomerName = r.m.customers[s.CustomerID].Name
		matches = append(matches, s)
		total = total.Add(s.Amount)
	}
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.After(matches[j].Date)
		}
		return matches[i].ID > matches[j].ID
	})

	return &model.SalePage{
		Items:       paginate(matches, page),
		Total:       int64(len(matches)),
		TotalAmount: total,
	}, nil
}

func (r memorySales) Create(ctx context.Context, s model.Sale) (*model.Sale, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	c, ok := r.m.customers[s.CustomerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	now := time.Now()
	s.ID = r.m.nextSale
	s.CreatedAt, s.UpdatedAt = now, now
	r.m.nextSale++
	r.m.sales[s.ID] = s
	s.CustomerName = c.Name
	return &s, nil
}

func (r memorySales) Update(ctx context.Context, id int64, patch model.SalePatch) (*model.Sale, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	s, ok := r.m.sales[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.CustomerID != nil {
		if _, ok := r.m.customers[*patch.CustomerID]; !ok {
			return nil, domainErrors.ErrNotFound
		}
		s.CustomerID = *patch.CustomerID
	}
	if patch.Date != nil {
		s.Date = *patch.Date
	}
	if patch.Amount != nil {
		s.Amount = *patch.Amount
	}
	s.UpdatedAt = time.Now()
	r.m.sales[id] = s
	s.CustomerName = r.m.customers[s.CustomerID].Name
	return &s, nil
}

func (r memorySales) Delete(ctx context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return r.m.Err
	}
	if _, ok := r.m.sales[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.m.sales, id)
	return nil
}

type memoryStats struct{ m *MemoryStore }

func (r memoryStats) DailyTotals(ctx context.Context) ([]model.DailyTotal, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	byDay := make(map[time.Time]decimal.Decimal)
	for _, s := range r.m.sales {
		byDay[s.Date] = byDay[s.Date].Add(s.Amount)
	}
	result := make([]model.DailyTotal, 0, len(byDay))
	for d, total := range byDay {
		result = append(result, model.DailyTotal{Date: d, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

type customerAgg struct {
	id    int64
	sum   decimal.Decimal
	count int64
	days  map[time.Time]struct{}
}

func (r memoryStats) aggregate() []*customerAgg {
	byCustomer := make(map[int64]*customerAgg)
	for _, s := range r.m.sales {
		a, ok := byCustomer[s.CustomerID]
		if !ok {
			a = &customerAgg{id: s.CustomerID, days: make(map[time.Time]struct{})}
			byCustomer[s.CustomerID] = a
		}
		a.sum = a.sum.Add(s.Amount)
		a.count++
		a.days[s.Date] = struct{}{}
	}
	result := make([]*customerAgg, 0, len(byCustomer))
	for _, a := range byCustomer {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].id < result[j].id })
	return result
}

// best picks the highest metric; ties go to the highest customer id.
func (r memoryStats) best(metric func(*customerAgg) decimal.Decimal) (*customerAgg, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	var top *customerAgg
	for _, a := range r.aggregate() {
		if top == nil || !metric(a).LessThan(metric(top)) {
			top = a
		}
	}
	return top, nil
}

func (r memoryStats) ranking(a *customerAgg) *model.ClientRanking {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c := r.m.customers[a.id]
	return &model.ClientRanking{CustomerID: a.id, Name: c.Name, Email: c.Email}
}

func (r memoryStats) TopByVolume(ctx context.Context) (*model.ClientRanking, error) {
	a, err := r.best(func(a *customerAgg) decimal.Decimal { return a.sum })
	if err != nil || a == nil {
		return nil, err
	}
	rk := r.ranking(a)
	rk.TotalAmount = a.sum
	return rk, nil
}

func (r memoryStats) TopByAverage(ctx context.Context) (*model.ClientRanking, error) {
	avg := func(a *customerAgg) decimal.Decimal { return a.sum.Div(decimal.NewFromInt(a.count)) }
	a, err := r.best(avg)
	if err != nil || a == nil {
		return nil, err
	}
	rk := r.ranking(a)
	rk.AvgAmount = avg(a).Round(2)
	return rk, nil
}

func (r memoryStats) TopByFrequency(ctx context.Context) (*model.ClientRanking, error) {
	days := func(a *customerAgg) decimal.Decimal { return decimal.NewFromInt(int64(len(a.days))) }
	a, err := r.best(days)
	if err != nil || a == nil {
		return nil, err
	}
	rk := r.ranking(a)
	rk.UniqueDays = int64(len(a.days))
	return rk, nil
}

func (r memoryStats) Summary(ctx context.Context) (*model.Summary, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	s := &model.Summary{CustomerCount: int64(len(r.m.customers))}
	for _, sale := range r.m.sales {
		s.TotalAmount = s.TotalAmount.Add(sale.Amount)
		s.SaleCount++
	}
	return s, nil
}

func (m *MemoryStore) emailTaken(email string, except int64) bool {
	for id, c := range m.customers {
		if id != except && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func paginate[T any](items []T, page model.Page) []T {
	offset := page.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if page.Size > 0 && offset+page.Size < end {
		end = offset + page.Size
	}
	return items[offset:end]
}
