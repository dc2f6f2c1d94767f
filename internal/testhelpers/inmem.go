// Package testhelpers provides in-memory repository implementations
// for exercising services, middleware and controllers without a
// database.
package testhelpers

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/akibsaleh/dwellife-server/internal/models"
)

// ---------------------------------------------------------------------------
// Apartments
// ---------------------------------------------------------------------------

type InMemApartmentRepo struct {
	mu         sync.Mutex
	Apartments []*models.Apartment
}

func NewInMemApartmentRepo() *InMemApartmentRepo {
	return &InMemApartmentRepo{}
}

func (r *InMemApartmentRepo) Create(_ context.Context, a *models.Apartment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Apartments {
		if existing.ID == a.ID {
			return nil
		}
	}
	cp := *a
	r.Apartments = append(r.Apartments, &cp)
	return nil
}

func (r *InMemApartmentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.Apartments)), nil
}

func (r *InMemApartmentRepo) ListPage(_ context.Context, offset, limit int) ([]*models.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.Apartments) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.Apartments) {
		end = len(r.Apartments)
	}
	out := make([]*models.Apartment, end-offset)
	copy(out, r.Apartments[offset:end])
	return out, nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type InMemUserRepo struct {
	mu    sync.Mutex
	Users map[string]*models.User // keyed by email
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{Users: make(map[string]*models.User)}
}

func (r *InMemUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.Users[u.Email] = &cp
	return nil
}

func (r *InMemUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *InMemUserRepo) ListByRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.Users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *InMemUserRepo) UpdateRole(_ context.Context, email string, role models.RoleType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[email]
	if !ok {
		return 0, nil
	}
	u.Role = role
	return 1, nil
}

func (r *InMemUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.Users)), nil
}

func (r *InMemUserRepo) CountByRole(_ context.Context, role models.RoleType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.Users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Agreements
// ---------------------------------------------------------------------------

type InMemAgreementRepo struct {
	mu         sync.Mutex
	Agreements map[uuid.UUID]*models.Agreement
}

func NewInMemAgreementRepo() *InMemAgreementRepo {
	return &InMemAgreementRepo{Agreements: make(map[uuid.UUID]*models.Agreement)}
}

func (r *InMemAgreementRepo) Create(_ context.Context, a *models.Agreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.Agreements[a.ID] = &cp
	return nil
}

func (r *InMemAgreementRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.Agreements[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *InMemAgreementRepo) GetByEmail(_ context.Context, email string) (*models.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *models.Agreement
	for _, a := range r.Agreements {
		if a.Email != email {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *InMemAgreementRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.AgreementStatusType, acceptDate string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.Agreements[id]
	if !ok {
		return 0, nil
	}
	a.Status = status
	a.AcceptDate = &acceptDate
	return 1, nil
}

// updatePaymentInfo mirrors the agreement side of the payment
// transaction.
func (r *InMemAgreementRepo) updatePaymentInfo(email, paymentDate, month string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Agreements {
		if a.Email == email {
			a.LastPayment = &paymentDate
			a.Month = &month
		}
	}
}

// ---------------------------------------------------------------------------
// Announcements
// ---------------------------------------------------------------------------

type InMemAnnouncementRepo struct {
	mu            sync.Mutex
	Announcements []*models.Announcement
}

func NewInMemAnnouncementRepo() *InMemAnnouncementRepo {
	return &InMemAnnouncementRepo{}
}

func (r *InMemAnnouncementRepo) Create(_ context.Context, a *models.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.Announcements = append(r.Announcements, &cp)
	return nil
}

func (r *InMemAnnouncementRepo) ListAll(_ context.Context) ([]*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Announcement, len(r.Announcements))
	copy(out, r.Announcements)
	return out, nil
}

// ---------------------------------------------------------------------------
// Coupons
// ---------------------------------------------------------------------------

type InMemCouponRepo struct {
	mu      sync.Mutex
	Coupons map[uuid.UUID]*models.Coupon
}

func NewInMemCouponRepo() *InMemCouponRepo {
	return &InMemCouponRepo{Coupons: make(map[uuid.UUID]*models.Coupon)}
}

func (r *InMemCouponRepo) Create(_ context.Context, c *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.Coupons[c.ID] = &cp
	return nil
}

func (r *InMemCouponRepo) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Coupons {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *InMemCouponRepo) ListAll(_ context.Context) ([]*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Coupon
	for _, c := range r.Coupons {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *InMemCouponRepo) ListAvailable(_ context.Context) ([]*models.Coupon, error) {
	all, _ := r.ListAll(context.Background())
	var out []*models.Coupon
	for _, c := range all {
		if c.Available {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemCouponRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.Coupons[id]
	if !ok {
		return 0, nil
	}
	c.Available = available
	return 1, nil
}

func (r *InMemCouponRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Coupons[id]; !ok {
		return 0, nil
	}
	delete(r.Coupons, id)
	return 1, nil
}

// ---------------------------------------------------------------------------
// Payment history
// ---------------------------------------------------------------------------

// InMemPaymentHistoryRepo mirrors the real repository's transactional
// contract: recording a payment also updates the matching agreement.
type InMemPaymentHistoryRepo struct {
	mu         sync.Mutex
	Payments   []*models.PaymentHistory
	Agreements *InMemAgreementRepo
}

func NewInMemPaymentHistoryRepo(agreements *InMemAgreementRepo) *InMemPaymentHistoryRepo {
	return &InMemPaymentHistoryRepo{Agreements: agreements}
}

func (r *InMemPaymentHistoryRepo) Record(_ context.Context, p *models.PaymentHistory) error {
	r.mu.Lock()
	cp := *p
	r.Payments = append(r.Payments, &cp)
	r.mu.Unlock()

	if r.Agreements != nil {
		r.Agreements.updatePaymentInfo(p.Email, p.PaymentDate, p.Month)
	}
	return nil
}

func (r *InMemPaymentHistoryRepo) FindByEmail(_ context.Context, email, month string) ([]*models.PaymentHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.PaymentHistory
	for _, p := range r.Payments {
		if p.Email != email {
			continue
		}
		if month != "" && p.Month != month {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
