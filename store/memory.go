package store

import (
	"sort"
	"sync"
	"time"

	"literacy_app_backend/models"
)

// MemoryStore is an in-memory Store used in tests. The progress merge is
// guarded by the store mutex, matching the atomicity the SQL upsert provides.
type MemoryStore struct {
	mu        sync.Mutex
	users     map[string]*models.User
	sessions  map[string]*models.Session
	modules   []models.Module
	questions []models.Question
	results   []models.QuizResult
	progress  map[string]*models.UserProgress // keyed by userID + "/" + moduleID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
		progress: make(map[string]*models.UserProgress),
	}
}

// SeedCatalog loads modules and questions into the store.
func (s *MemoryStore) SeedCatalog(modules []models.Module, questions []models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules = append([]models.Module(nil), modules...)
	s.questions = append([]models.Question(nil), questions...)
}

func copyUser(u *models.User) *models.User {
	cp := *u
	return &cp
}

func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByVerificationToken(token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByResetToken(token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = copyUser(u)
	return nil
}

func (s *MemoryStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	u.UpdatedAt = time.Now()
	s.users[u.ID] = copyUser(u)
	return nil
}

func (s *MemoryStore) CreateSession(sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	cp := *sess
	s.sessions[sess.Token] = &cp
	return nil
}

func (s *MemoryStore) GetSession(token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || sess.Expired(time.Now()) {
		return nil, ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) DeleteUserSessions(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, token)
		}
	}
	return nil
}

func (s *MemoryStore) ListModules() ([]models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	modules := append([]models.Module(nil), s.modules...)
	sort.Slice(modules, func(i, j int) bool { return modules[i].OrderIndex < modules[j].OrderIndex })
	return modules, nil
}

func (s *MemoryStore) GetModule(id string) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.modules {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListQuestions(moduleID string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	questions := make([]models.Question, 0)
	for _, q := range s.questions {
		if q.ModuleID == moduleID {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].OrderIndex < questions[j].OrderIndex })
	return questions, nil
}

func (s *MemoryStore) CreateQuizResult(r *models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.CompletedAt.IsZero() {
		r.CompletedAt = time.Now()
	}
	s.results = append(s.results, *r)
	return nil
}

func (s *MemoryStore) ListQuizResults(userID string) ([]models.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.QuizResult, 0)
	for _, r := range s.results {
		if r.UserID == userID {
			results = append(results, r)
		}
	}
	return results, nil
}

func (s *MemoryStore) GetProgress(userID, moduleID string) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[userID+"/"+moduleID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) ListProgress(userID string) ([]models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	progress := make([]models.UserProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID {
			progress = append(progress, *p)
		}
	}
	return progress, nil
}

func (s *MemoryStore) UpsertProgress(userID, moduleID string, patch models.ProgressPatch) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID + "/" + moduleID
	p, ok := s.progress[key]
	if !ok {
		p = &models.UserProgress{
			ID:       newID(),
			UserID:   userID,
			ModuleID: moduleID,
		}
		s.progress[key] = p
	}

	if patch.ContentCompleted != nil {
		p.ContentCompleted = *patch.ContentCompleted
	}
	if patch.QuizCompleted != nil {
		p.QuizCompleted = *patch.QuizCompleted
	}
	if patch.BestScore != nil {
		merged := *patch.BestScore
		if p.BestScore != nil && *p.BestScore > merged {
			merged = *p.BestScore
		}
		p.BestScore = &merged
	}
	p.UpdatedAt = time.Now()

	cp := *p
	return &cp, nil
}
