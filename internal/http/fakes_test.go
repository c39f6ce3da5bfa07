package http

import (
	"context"
	"errors"
	"time"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

// In-memory repository fakes shared by the handler tests. Each carries an
// optional err that, when set, every method returns.

type fakeUserRepo struct {
	users    map[string]entity.User
	products map[string][]string
	err      error
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:    make(map[string]entity.User),
		products: make(map[string][]string),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.ID]; ok {
		return errors.New("duplicate user id")
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (entity.User, error) {
	if r.err != nil {
		return entity.User{}, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return entity.User{}, usecase.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByMobileNumber(_ context.Context, mobile string) (entity.User, error) {
	if r.err != nil {
		return entity.User{}, r.err
	}
	for _, u := range r.users {
		if u.MobileNumber == mobile {
			return u, nil
		}
	}
	return entity.User{}, usecase.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) MobileTaken(_ context.Context, mobile string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.MobileNumber == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) IDTaken(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID, hash string) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[userID]
	if !ok {
		return usecase.ErrNotFound
	}
	u.Password = hash
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u entity.User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.ID]; !ok {
		return usecase.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePlan(_ context.Context, userID, planID string) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[userID]
	if !ok {
		return usecase.ErrNotFound
	}
	u.PlanID = planID
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[userID]; !ok {
		return usecase.ErrNotFound
	}
	delete(r.users, userID)
	delete(r.products, userID)
	return nil
}

func (r *fakeUserRepo) AddProduct(_ context.Context, userID, productID string) error {
	if r.err != nil {
		return r.err
	}
	r.products[userID] = append(r.products[userID], productID)
	return nil
}

func (r *fakeUserRepo) ProductIDs(_ context.Context, userID string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.products[userID], nil
}

type fakeSessionRepo struct {
	sessions map[string]entity.Session
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]entity.Session)}
}

func (r *fakeSessionRepo) Put(_ context.Context, s *entity.Session) error {
	if r.err != nil {
		return r.err
	}
	s.CreatedAt = time.Now()
	r.sessions[s.UserID] = *s
	return nil
}

func (r *fakeSessionRepo) GetByRefreshToken(_ context.Context, token string) (entity.Session, error) {
	if r.err != nil {
		return entity.Session{}, r.err
	}
	for _, s := range r.sessions {
		if s.RefreshToken == token {
			return s, nil
		}
	}
	return entity.Session{}, usecase.ErrNotFound
}

func (r *fakeSessionRepo) GetByUser(_ context.Context, userID string) (entity.Session, error) {
	if r.err != nil {
		return entity.Session{}, r.err
	}
	s, ok := r.sessions[userID]
	if !ok {
		return entity.Session{}, usecase.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) ExtendExpiry(_ context.Context, token string, expiresAt time.Time) error {
	if r.err != nil {
		return r.err
	}
	for userID, s := range r.sessions {
		if s.RefreshToken == token {
			s.ExpiresAt = expiresAt
			r.sessions[userID] = s
			return nil
		}
	}
	return usecase.ErrNotFound
}

func (r *fakeSessionRepo) Delete(_ context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.sessions, userID)
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeProductRepo struct {
	products map[string]entity.Product
	faults   map[string][]string
	err      error
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[string]entity.Product),
		faults:   make(map[string][]string),
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Get(_ context.Context, productID string) (entity.Product, error) {
	if r.err != nil {
		return entity.Product{}, r.err
	}
	p, ok := r.products[productID]
	if !ok {
		return entity.Product{}, usecase.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) IDTaken(_ context.Context, productID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.products[productID]
	return ok, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p entity.Product) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.products[p.ID]; !ok {
		return usecase.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, productID string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.products[productID]; !ok {
		return usecase.ErrNotFound
	}
	delete(r.products, productID)
	delete(r.faults, productID)
	return nil
}

func (r *fakeProductRepo) AddFault(_ context.Context, productID, fault string) error {
	if r.err != nil {
		return r.err
	}
	r.faults[productID] = append(r.faults[productID], fault)
	return nil
}

func (r *fakeProductRepo) RemoveFault(_ context.Context, productID, fault string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.faults[productID][:0]
	for _, f := range r.faults[productID] {
		if f != fault {
			kept = append(kept, f)
		}
	}
	r.faults[productID] = kept
	return nil
}

func (r *fakeProductRepo) Faults(_ context.Context, productID string) ([]entity.ProductFault, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.ProductFault, 0, len(r.faults[productID]))
	for _, f := range r.faults[productID] {
		out = append(out, entity.ProductFault{ProductID: productID, Fault: f})
	}
	return out, nil
}

type fakeComplaintRepo struct {
	complaints map[string]entity.Complaint
	err        error
}

func newFakeComplaintRepo(complaints ...entity.Complaint) *fakeComplaintRepo {
	r := &fakeComplaintRepo{complaints: make(map[string]entity.Complaint)}
	for _, c := range complaints {
		r.complaints[c.ID] = c
	}
	return r
}

func (r *fakeComplaintRepo) Create(_ context.Context, c *entity.Complaint) error {
	if r.err != nil {
		return r.err
	}
	r.complaints[c.ID] = *c
	return nil
}

func (r *fakeComplaintRepo) Get(_ context.Context, complaintID string) (entity.Complaint, error) {
	if r.err != nil {
		return entity.Complaint{}, r.err
	}
	c, ok := r.complaints[complaintID]
	if !ok {
		return entity.Complaint{}, usecase.ErrNotFound
	}
	return c, nil
}

func (r *fakeComplaintRepo) IDTaken(_ context.Context, complaintID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.complaints[complaintID]
	return ok, nil
}

func (r *fakeComplaintRepo) ListByUser(_ context.Context, userID string) ([]entity.Complaint, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Complaint
	for _, c := range r.complaints {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeComplaintRepo) ListByStatus(_ context.Context, status int) ([]entity.Complaint, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Complaint
	for _, c := range r.complaints {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeComplaintRepo) UpdateStatus(_ context.Context, complaintID string, status int) error {
	if r.err != nil {
		return r.err
	}
	c, ok := r.complaints[complaintID]
	if !ok {
		return usecase.ErrNotFound
	}
	c.Status = status
	r.complaints[complaintID] = c
	return nil
}

func (r *fakeComplaintRepo) UpdateCost(_ context.Context, complaintID string, cost float64) error {
	if r.err != nil {
		return r.err
	}
	c, ok := r.complaints[complaintID]
	if !ok {
		return usecase.ErrNotFound
	}
	c.Cost = cost
	r.complaints[complaintID] = c
	return nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, c entity.Complaint) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.complaints[c.ID]; !ok {
		return usecase.ErrNotFound
	}
	r.complaints[c.ID] = c
	return nil
}

func (r *fakeComplaintRepo) Delete(_ context.Context, complaintID string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.complaints[complaintID]; !ok {
		return usecase.ErrNotFound
	}
	delete(r.complaints, complaintID)
	return nil
}

type fakePlanRepo struct {
	plans    map[string]entity.Plan
	products map[string][]string
	err      error
}

func newFakePlanRepo(plans ...entity.Plan) *fakePlanRepo {
	r := &fakePlanRepo{
		plans:    make(map[string]entity.Plan),
		products: make(map[string][]string),
	}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) Create(_ context.Context, p *entity.Plan) error {
	if r.err != nil {
		return r.err
	}
	r.plans[p.ID] = *p
	return nil
}

func (r *fakePlanRepo) Get(_ context.Context, planID string) (entity.Plan, error) {
	if r.err != nil {
		return entity.Plan{}, r.err
	}
	p, ok := r.plans[planID]
	if !ok {
		return entity.Plan{}, usecase.ErrNotFound
	}
	return p, nil
}

func (r *fakePlanRepo) List(_ context.Context) ([]entity.Plan, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlanRepo) IDTaken(_ context.Context, planID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.plans[planID]
	return ok, nil
}

func (r *fakePlanRepo) UpdateCost(_ context.Context, planID string, cost float64) error {
	if r.err != nil {
		return r.err
	}
	p, ok := r.plans[planID]
	if !ok {
		return usecase.ErrNotFound
	}
	p.Cost = cost
	r.plans[planID] = p
	return nil
}

func (r *fakePlanRepo) UpdateName(_ context.Context, planID, name string) error {
	if r.err != nil {
		return r.err
	}
	p, ok := r.plans[planID]
	if !ok {
		return usecase.ErrNotFound
	}
	p.Name = name
	r.plans[planID] = p
	return nil
}

func (r *fakePlanRepo) UpdateDescription(_ context.Context, planID, description string) error {
	if r.err != nil {
		return r.err
	}
	p, ok := r.plans[planID]
	if !ok {
		return usecase.ErrNotFound
	}
	p.Description = description
	r.plans[planID] = p
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, planID string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.plans[planID]; !ok {
		return usecase.ErrNotFound
	}
	delete(r.plans, planID)
	delete(r.products, planID)
	return nil
}

func (r *fakePlanRepo) AddProduct(_ context.Context, planID, productName string) error {
	if r.err != nil {
		return r.err
	}
	r.products[planID] = append(r.products[planID], productName)
	return nil
}

func (r *fakePlanRepo) RemoveProduct(_ context.Context, planID, productName string) error {
	if r.err != nil {
		return r.err
	}
	kept := r.products[planID][:0]
	removed := false
	for _, p := range r.products[planID] {
		if p == productName {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	r.products[planID] = kept
	if !removed {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *fakePlanRepo) Products(_ context.Context, planID string) ([]entity.PlanProduct, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.PlanProduct, 0, len(r.products[planID]))
	for _, p := range r.products[planID] {
		out = append(out, entity.PlanProduct{PlanID: planID, ProductName: p})
	}
	return out, nil
}

func (r *fakePlanRepo) HasProduct(_ context.Context, planID, productName string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, p := range r.products[planID] {
		if p == productName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlanRepo) UsersOnPlan(_ context.Context, _ string) ([]entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return nil, nil
}

var _ usecase.UserRepository = (*fakeUserRepo)(nil)
var _ usecase.SessionRepository = (*fakeSessionRepo)(nil)
var _ usecase.ProductRepository = (*fakeProductRepo)(nil)
var _ usecase.ComplaintRepository = (*fakeComplaintRepo)(nil)
var _ usecase.PlanRepository = (*fakePlanRepo)(nil)
