package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// ----------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ----------------------------------------------------------------------------

type snapshotter interface {
	snapshot() (restore func())
}

// stubTx serialises transactions and rolls back every registered store when
// fn fails.
type stubTx struct {
	mu     sync.Mutex
	stores []snapshotter
	calls  int
}

func newStubTx(stores ...snapshotter) *stubTx {
	return &stubTx{stores: stores}
}

func (tx *stubTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.calls++

	restores := make([]func(), 0, len(tx.stores))
	for _, s := range tx.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

// ---- directory -------------------------------------------------------------

type stubDirectory struct {
	mu          sync.Mutex
	seq         int64
	clients     map[int64]*domain.Client
	freelancers map[int64]*domain.Freelancer
	categories  map[int64]*domain.Category
	listErr     error
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{
		clients:     map[int64]*domain.Client{},
		freelancers: map[int64]*domain.Freelancer{},
		categories:  map[int64]*domain.Category{},
	}
}

func cloneFreelancer(f *domain.Freelancer) *domain.Freelancer {
	c := *f
	c.CategoryIDs = append([]int64(nil), f.CategoryIDs...)
	return &c
}

func cloneClient(c *domain.Client) *domain.Client {
	cp := *c
	return &cp
}

func (d *stubDirectory) snapshot() func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	seq := d.seq
	clients := make(map[int64]*domain.Client, len(d.clients))
	for k, v := range d.clients {
		clients[k] = cloneClient(v)
	}
	freelancers := make(map[int64]*domain.Freelancer, len(d.freelancers))
	for k, v := range d.freelancers {
		freelancers[k] = cloneFreelancer(v)
	}
	categories := make(map[int64]*domain.Category, len(d.categories))
	for k, v := range d.categories {
		c := *v
		categories[k] = &c
	}
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.seq, d.clients, d.freelancers, d.categories = seq, clients, freelancers, categories
	}
}

func (d *stubDirectory) FindClientByID(_ context.Context, id int64) (*domain.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.clients[id]; ok {
		return cloneClient(c), nil
	}
	return nil, domain.NotFound("client", id)
}

func (d *stubDirectory) FindClientByOwner(_ context.Context, userID int64) (*domain.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.clients {
		if c.OwnerUserID == userID {
			return cloneClient(c), nil
		}
	}
	return nil, domain.NotFound("client", 0)
}

func (d *stubDirectory) FindFreelancerByID(_ context.Context, id int64) (*domain.Freelancer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f, ok := d.freelancers[id]; ok {
		return cloneFreelancer(f), nil
	}
	return nil, domain.NotFound("freelancer", id)
}

func (d *stubDirectory) FindFreelancerByOwner(_ context.Context, userID int64) (*domain.Freelancer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.freelancers {
		if f.OwnerUserID == userID {
			return cloneFreelancer(f), nil
		}
	}
	return nil, domain.NotFound("freelancer", 0)
}

func (d *stubDirectory) ListFreelancers(_ context.Context) ([]*domain.Freelancer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listErr != nil {
		return nil, d.listErr
	}
	out := make([]*domain.Freelancer, 0, len(d.freelancers))
	for _, f := range d.freelancers {
		out = append(out, cloneFreelancer(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (d *stubDirectory) SaveClient(_ context.Context, c *domain.Client) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.ID == 0 {
		d.seq++
		c.ID = d.seq
	}
	d.clients[c.ID] = cloneClient(c)
	return nil
}

func (d *stubDirectory) SaveFreelancer(_ context.Context, f *domain.Freelancer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f.ID == 0 {
		d.seq++
		f.ID = d.seq
	}
	d.freelancers[f.ID] = cloneFreelancer(f)
	return nil
}

func (d *stubDirectory) FindOrCreateCategory(_ context.Context, name string) (*domain.Category, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	d.seq++
	c := &domain.Category{ID: d.seq, Name: name}
	d.categories[c.ID] = c
	cp := *c
	return &cp, nil
}

func (d *stubDirectory) FindCategoriesByIDs(_ context.Context, ids []int64) ([]*domain.Category, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*domain.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := d.categories[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (d *stubDirectory) ListCategories(_ context.Context) ([]*domain.Category, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*domain.Category, 0, len(d.categories))
	for _, c := range d.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

// ---- engagement store ------------------------------------------------------

type stubStore struct {
	mu       sync.Mutex
	seq      int64
	requests map[int64]*domain.Request
	projects map[int64]*domain.Project
	reviews  map[int64]*domain.Review

	createProjectErr         error
	reviewLookups            int
	reviewsByFreelancerCalls int
}

func newStubStore() *stubStore {
	return &stubStore{
		requests: map[int64]*domain.Request{},
		projects: map[int64]*domain.Project{},
		reviews:  map[int64]*domain.Review{},
	}
}

func cloneRequest(r *domain.Request) *domain.Request {
	c := *r
	return &c
}

func cloneProject(p *domain.Project) *domain.Project {
	c := *p
	if p.Salary != nil {
		v := *p.Salary
		c.Salary = &v
	}
	return &c
}

func cloneReview(r *domain.Review) *domain.Review {
	c := *r
	return &c
}

func (s *stubStore) snapshot() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.seq
	requests := make(map[int64]*domain.Request, len(s.requests))
	for k, v := range s.requests {
		requests[k] = cloneRequest(v)
	}
	projects := make(map[int64]*domain.Project, len(s.projects))
	for k, v := range s.projects {
		projects[k] = cloneProject(v)
	}
	reviews := make(map[int64]*domain.Review, len(s.reviews))
	for k, v := range s.reviews {
		reviews[k] = cloneReview(v)
	}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.seq, s.requests, s.projects, s.reviews = seq, requests, projects, reviews
	}
}

func (s *stubStore) FindRequestByID(_ context.Context, id int64) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.requests[id]; ok {
		return cloneRequest(r), nil
	}
	return nil, domain.NotFound("request", id)
}

func (s *stubStore) FindRequestByIdempotencyKey(_ context.Context, clientID int64, key string) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ClientID == clientID && r.IdempotencyKey == key {
			return cloneRequest(r), nil
		}
	}
	return nil, domain.NotFound("request", 0)
}

func (s *stubStore) CreateRequest(_ context.Context, r *domain.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	r.ID = s.seq
	s.requests[r.ID] = cloneRequest(r)
	return nil
}

func (s *stubStore) TransitionRequest(_ context.Context, id int64, from, to domain.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return domain.NotFound("request", id)
	}
	if r.Status != from {
		return domain.StatusConflict("request", id, string(from), string(r.Status))
	}
	r.Status = to
	return nil
}

func (s *stubStore) FindRequestsByFreelancer(_ context.Context, freelancerID int64) ([]*domain.Request, error) {
	return s.filterRequests(func(r *domain.Request) bool { return r.FreelancerID == freelancerID }), nil
}

func (s *stubStore) FindRequestsByClient(_ context.Context, clientID int64) ([]*domain.Request, error) {
	return s.filterRequests(func(r *domain.Request) bool { return r.ClientID == clientID }), nil
}

func (s *stubStore) filterRequests(keep func(*domain.Request) bool) []*domain.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Request
	for _, r := range s.requests {
		if keep(r) {
			out = append(out, cloneRequest(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *stubStore) FindProjectByID(_ context.Context, id int64) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, domain.NotFound("project", id)
}

func (s *stubStore) FindProjectByIdempotencyKey(_ context.Context, clientID int64, key string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ClientID == clientID && p.IdempotencyKey == key {
			return cloneProject(p), nil
		}
	}
	return nil, domain.NotFound("project", 0)
}

func (s *stubStore) CreateProject(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createProjectErr != nil {
		return s.createProjectErr
	}
	s.seq++
	p.ID = s.seq
	s.projects[p.ID] = cloneProject(p)
	return nil
}

func (s *stubStore) TransitionProject(_ context.Context, id int64, from []domain.ProjectStatus, to domain.ProjectStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return domain.NotFound("project", id)
	}
	for _, f := range from {
		if p.Status == f {
			p.Status = to
			return nil
		}
	}
	return domain.StatusConflict("project", id, string(to), string(p.Status))
}

func (s *stubStore) FindProjectsByClient(_ context.Context, clientID int64) ([]*domain.Project, error) {
	return s.filterProjects(func(p *domain.Project) bool { return p.ClientID == clientID }), nil
}

func (s *stubStore) FindProjectsByFreelancer(_ context.Context, freelancerID int64) ([]*domain.Project, error) {
	return s.filterProjects(func(p *domain.Project) bool { return p.FreelancerID == freelancerID }), nil
}

func (s *stubStore) filterProjects(keep func(*domain.Project) bool) []*domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Project
	for _, p := range s.projects {
		if keep(p) {
			out = append(out, cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *stubStore) FindReviewByProject(_ context.Context, projectID int64) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewLookups++
	for _, r := range s.reviews {
		if r.ProjectID == projectID {
			return cloneReview(r), nil
		}
	}
	return nil, domain.NotFound("review", 0)
}

// CreateReview mimics the unique index on project_id.
func (s *stubStore) CreateReview(_ context.Context, r *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reviews {
		if existing.ProjectID == r.ProjectID {
			return domain.Conflict("review", r.ProjectID, "project already has a review")
		}
	}
	s.seq++
	r.ID = s.seq
	s.reviews[r.ID] = cloneReview(r)
	return nil
}

func (s *stubStore) FindReviewsByFreelancer(_ context.Context, freelancerID int64) ([]*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewsByFreelancerCalls++
	var out []*domain.Review
	for _, r := range s.reviews {
		if r.FreelancerID == freelancerID {
			out = append(out, cloneReview(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubStore) reviewCount(projectID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.reviews {
		if r.ProjectID == projectID {
			n++
		}
	}
	return n
}

// ---- rating cache ----------------------------------------------------------

type stubCache struct {
	mu          sync.Mutex
	values      map[int64]float64
	invalidated []int64
	err         error
}

func newStubCache() *stubCache {
	return &stubCache{values: map[int64]float64{}}
}

func (c *stubCache) Get(_ context.Context, id int64) (float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, false, c.err
	}
	v, ok := c.values[id]
	return v, ok, nil
}

func (c *stubCache) Set(_ context.Context, id int64, avg float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.values[id] = avg
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, id)
	if c.err != nil {
		return c.err
	}
	delete(c.values, id)
	return nil
}

// ---- accounts --------------------------------------------------------------

type stubAuthRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	seq := r.seq
	users := make(map[string]*domain.User, len(r.users))
	for k, v := range r.users {
		users[k] = cloneUser(v)
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.seq, r.users = seq, users
	}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = r.seq
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.NotFound("user", 0)
}

func (r *stubAuthRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NotFound("user", id)
}
