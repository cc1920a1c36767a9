package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/domain/share"
	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/domain/user"
	"github.com/proofdeck/server/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	EmailIndex  map[string]*user.User
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[int64]*user.User),
		EmailIndex: make(map[string]*user.User),
		NextID:     1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.EmailIndex[email]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Users[u.ID]; !ok {
		return errors.NotFound("User")
	}
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	var result []*user.User
	for _, u := range m.Users {
		result = append(result, u)
	}
	return result, int64(len(result)), nil
}

// MockFormRepository is a mock implementation of form.Repository
type MockFormRepository struct {
	Forms       map[int64]*form.Form
	SlugIndex   map[string]*form.Form
	NextID      int64
	CreateError error
}

func NewMockFormRepository() *MockFormRepository {
	return &MockFormRepository{
		Forms:     make(map[int64]*form.Form),
		SlugIndex: make(map[string]*form.Form),
		NextID:    1,
	}
}

func (m *MockFormRepository) Create(ctx context.Context, f *form.Form) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	f.ID = m.NextID
	m.NextID++
	m.Forms[f.ID] = f
	m.SlugIndex[f.Slug] = f
	return nil
}

func (m *MockFormRepository) GetByID(ctx context.Context, userID, id int64) (*form.Form, error) {
	f, ok := m.Forms[id]
	if !ok || f.UserID != userID {
		return nil, errors.NotFound("Form")
	}
	return f, nil
}

func (m *MockFormRepository) GetBySlug(ctx context.Context, slug string) (*form.Form, error) {
	f, ok := m.SlugIndex[slug]
	if !ok {
		return nil, errors.NotFound("Form")
	}
	return f, nil
}

func (m *MockFormRepository) Update(ctx context.Context, f *form.Form) error {
	if _, ok := m.Forms[f.ID]; !ok {
		return errors.NotFound("Form")
	}
	m.Forms[f.ID] = f
	m.SlugIndex[f.Slug] = f
	return nil
}

func (m *MockFormRepository) Delete(ctx context.Context, userID, id int64) error {
	if f, ok := m.Forms[id]; ok && f.UserID == userID {
		delete(m.SlugIndex, f.Slug)
		delete(m.Forms, id)
		return nil
	}
	return errors.NotFound("Form")
}

func (m *MockFormRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*form.Form, int64, error) {
	var matching []*form.Form
	for _, f := range m.Forms {
		if f.UserID == userID {
			matching = append(matching, f)
		}
	}
	// Newest first, matching the SQL repository's ORDER BY id DESC
	sort.Slice(matching, func(i, j int) bool { return matching[i].ID > matching[j].ID })

	total := int64(len(matching))
	if offset >= len(matching) {
		return nil, total, nil
	}
	matching = matching[offset:]
	if limit > 0 && limit < len(matching) {
		matching = matching[:limit]
	}
	return matching, total, nil
}

// MockResponseRepository is a mock implementation of response.Repository.
// Ownership checks require the forms map to be shared with a
// MockFormRepository.
type MockResponseRepository struct {
	Responses   map[int64]*response.Response
	Forms       map[int64]*form.Form
	NextID      int64
	CreateError error
}

func NewMockResponseRepository(forms map[int64]*form.Form) *MockResponseRepository {
	return &MockResponseRepository{
		Responses: make(map[int64]*response.Response),
		Forms:     forms,
		NextID:    1,
	}
}

func (m *MockResponseRepository) Create(ctx context.Context, r *response.Response) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	r.ID = m.NextID
	m.NextID++
	m.Responses[r.ID] = r
	return nil
}

func (m *MockResponseRepository) owns(userID, formID int64) bool {
	f, ok := m.Forms[formID]
	return ok && f.UserID == userID
}

func (m *MockResponseRepository) GetByID(ctx context.Context, userID, id int64) (*response.Response, error) {
	r, ok := m.Responses[id]
	if !ok || !m.owns(userID, r.FormID) {
		return nil, errors.NotFound("Response")
	}
	return r, nil
}

func (m *MockResponseRepository) ListByForm(ctx context.Context, formID int64, limit, offset int) ([]*response.Response, int64, error) {
	all, err := m.AllByForm(ctx, formID)
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (m *MockResponseRepository) AllByForm(ctx context.Context, formID int64) ([]*response.Response, error) {
	var result []*response.Response
	for id := int64(1); id < m.NextID; id++ {
		if r, ok := m.Responses[id]; ok && r.FormID == formID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *MockResponseRepository) Delete(ctx context.Context, userID, id int64) error {
	r, ok := m.Responses[id]
	if !ok || !m.owns(userID, r.FormID) {
		return errors.NotFound("Response")
	}
	delete(m.Responses, id)
	return nil
}

// MockFeedbackRepository is a mock implementation of feedback.Repository
type MockFeedbackRepository struct {
	Requests    map[int64]*feedback.Request
	TokenIndex  map[string]*feedback.Request
	NextID      int64
	CreateError error
}

func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{
		Requests:   make(map[int64]*feedback.Request),
		TokenIndex: make(map[string]*feedback.Request),
		NextID:     1,
	}
}

func (m *MockFeedbackRepository) Create(ctx context.Context, r *feedback.Request) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	r.ID = m.NextID
	m.NextID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.Requests[r.ID] = r
	m.TokenIndex[r.Token] = r
	return nil
}

func (m *MockFeedbackRepository) GetByID(ctx context.Context, userID, id int64) (*feedback.Request, error) {
	r, ok := m.Requests[id]
	if !ok || r.UserID != userID {
		return nil, errors.NotFound("Feedback request")
	}
	return r, nil
}

func (m *MockFeedbackRepository) GetByToken(ctx context.Context, token string) (*feedback.Request, error) {
	r, ok := m.TokenIndex[token]
	if !ok {
		return nil, errors.NotFound("Feedback request")
	}
	return r, nil
}

func (m *MockFeedbackRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*feedback.Request, int64, error) {
	var result []*feedback.Request
	for id := int64(1); id < m.NextID; id++ {
		if r, ok := m.Requests[id]; ok && r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, int64(len(result)), nil
}

func (m *MockFeedbackRepository) MarkResponded(ctx context.Context, token string) error {
	r, ok := m.TokenIndex[token]
	if !ok {
		return errors.NotFound("Feedback request")
	}
	r.Status = feedback.StatusResponded
	return nil
}

func (m *MockFeedbackRepository) ListDueReminders(ctx context.Context, cutoff time.Time, limit int) ([]*feedback.Request, error) {
	var result []*feedback.Request
	for id := int64(1); id < m.NextID; id++ {
		r, ok := m.Requests[id]
		if !ok {
			continue
		}
		if r.Status == feedback.StatusSent && r.ReminderSentAt == nil && r.CreatedAt.Before(cutoff) {
			result = append(result, r)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

func (m *MockFeedbackRepository) MarkReminderSent(ctx context.Context, id int64) error {
	r, ok := m.Requests[id]
	if !ok {
		return errors.NotFound("Feedback request")
	}
	now := time.Now()
	r.ReminderSentAt = &now
	return nil
}

// MockShareRepository is a mock implementation of share.Repository
type MockShareRepository struct {
	Shares      map[int64]*share.Share
	NextID      int64
	CreateError error
}

func NewMockShareRepository() *MockShareRepository {
	return &MockShareRepository{
		Shares: make(map[int64]*share.Share),
		NextID: 1,
	}
}

func (m *MockShareRepository) Create(ctx context.Context, s *share.Share) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	s.ID = m.NextID
	m.NextID++
	m.Shares[s.ID] = s
	return nil
}

func (m *MockShareRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*share.Share, int64, error) {
	var result []*share.Share
	for id := int64(1); id < m.NextID; id++ {
		if s, ok := m.Shares[id]; ok && s.UserID == userID {
			result = append(result, s)
		}
	}
	return result, int64(len(result)), nil
}

// MockUsageRepository is a mock implementation of usage.Repository.
// A mutex keeps the increments atomic so concurrent service tests see
// the same guarantees the SQL upsert gives.
type MockUsageRepository struct {
	mu             sync.Mutex
	Records        map[string]*usage.Record
	NextID         int64
	GetError       error
	IncrementError error
}

func NewMockUsageRepository() *MockUsageRepository {
	return &MockUsageRepository{
		Records: make(map[string]*usage.Record),
		NextID:  1,
	}
}

func usageKey(userID int64, month string) string {
	return fmt.Sprintf("%d:%s", userID, month)
}

func (m *MockUsageRepository) GetForMonth(ctx context.Context, userID int64, month string) (*usage.Record, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.Records[usageKey(userID, month)]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (m *MockUsageRepository) IncrementFeedbackRequests(ctx context.Context, userID int64, month string) error {
	return m.increment(userID, month, 1, 0)
}

func (m *MockUsageRepository) IncrementSocialShares(ctx context.Context, userID int64, month string) error {
	return m.increment(userID, month, 0, 1)
}

func (m *MockUsageRepository) increment(userID int64, month string, requests, shares int) error {
	if m.IncrementError != nil {
		return m.IncrementError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := usageKey(userID, month)
	rec, ok := m.Records[key]
	if !ok {
		rec = &usage.Record{
			ID:        m.NextID,
			UserID:    userID,
			Month:     month,
			CreatedAt: time.Now(),
		}
		m.NextID++
		m.Records[key] = rec
	}
	rec.FeedbackRequests += requests
	rec.SocialShares += shares
	rec.UpdatedAt = time.Now()
	return nil
}

// Seed sets a ledger row directly, for arranging quota states in tests
func (m *MockUsageRepository) Seed(userID int64, month string, requests, shares int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records[usageKey(userID, month)] = &usage.Record{
		ID:               m.NextID,
		UserID:           userID,
		Month:            month,
		FeedbackRequests: requests,
		SocialShares:     shares,
	}
	m.NextID++
}
