package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/sales-intake/internal/models"
	"go.uber.org/zap"
)

// SubmitState is the submission pipeline state of one session.
type SubmitState string

const (
	SubmitIdle    SubmitState = "idle"
	SubmitSending SubmitState = "sending"
	SubmitSent    SubmitState = "sent"
	SubmitFailed  SubmitState = "send-failed"
)

// Deliverer performs the side effects of an accepted submission.
type Deliverer interface {
	Deliver(ctx context.Context, d models.Draft) (models.Application, error)
}

// SessionView is a point-in-time copy of a session for rendering.
type SessionView struct {
	ID                 string                  `json:"id"`
	Step               Step                    `json:"step"`
	StepSeq            int                     `json:"stepSeq"`
	Draft              models.Draft            `json:"draft"`
	Errors             models.FieldErrors      `json:"errors"`
	SubmitState        SubmitState             `json:"submitState"`
	Sending            bool                    `json:"sending"`
	SendFailed         bool                    `json:"sendFailed"`
	LoginFailed        bool                    `json:"loginFailed"`
	RemainingLanguages []models.LanguageOption `json:"remainingLanguages"`
}

// Session is one visitor's form. All intents are serialized by mu.
type Session struct {
	ID string

	mu          sync.Mutex
	draft       models.Draft
	errors      models.FieldErrors
	nav         *Navigator
	state       SubmitState
	loginFailed bool
	touched     time.Time

	deliverer Deliverer
	gate      HRGate
	metrics   *Metrics
}

func newSession(id string, deliverer Deliverer, gate HRGate, metrics *Metrics) *Session {
	return &Session{
		ID:        id,
		draft:     models.NewDraft(),
		errors:    models.FieldErrors{},
		nav:       NewNavigator(),
		state:     SubmitIdle,
		touched:   time.Now(),
		deliverer: deliverer,
		gate:      gate,
		metrics:   metrics,
	}
}

// SetField edits a scalar field and clears that field's error.
// Multi-valued fields have their own intents.
func (s *Session) SetField(field models.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editable(); err != nil {
		return err
	}

	switch field {
	case models.FieldName:
		s.draft.Name = value
	case models.FieldPhone:
		s.draft.Phone = NormalizePhone(value)
	case models.FieldCity:
		s.draft.City = value
	case models.FieldSchedule:
		id := models.ScheduleID(value)
		if _, ok := models.FindSchedule(id); !ok && id != "" {
			return ErrUnknownOption
		}
		s.draft.Schedule = id
	case models.FieldExperience:
		s.draft.Experience = value
	case models.FieldSalary:
		s.draft.Salary = value
	case models.FieldStartDate:
		s.draft.StartDate = value
	case models.FieldAbout:
		s.draft.About = value
	case models.FieldSource:
		s.draft.Source = value
	default:
		return ErrUnknownField
	}
	delete(s.errors, field)
	return nil
}

// ToggleSalesType selects or deselects id, keeping selection order.
func (s *Session) ToggleSalesType(id models.SalesTypeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editable(); err != nil {
		return err
	}
	if _, ok := models.FindSalesType(id); !ok {
		return ErrUnknownOption
	}

	next := make([]models.SalesTypeID, 0, len(s.draft.SalesType)+1)
	found := false
	for _, t := range s.draft.SalesType {
		if t == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, id)
	}
	s.draft.SalesType = next
	delete(s.errors, models.FieldSalesType)
	return nil
}

func (s *Session) AddLanguage(id string) error {
	return s.editLanguages(func(p *ProficiencyList) { p.Add(id) })
}

func (s *Session) RemoveLanguage(id string) error {
	return s.editLanguages(func(p *ProficiencyList) { p.Remove(id) })
}

func (s *Session) SetLanguageLevel(id string, level models.Level) error {
	if !level.Valid() {
		return ErrUnknownOption
	}
	return s.editLanguages(func(p *ProficiencyList) { p.SetLevel(id, level) })
}

func (s *Session) editLanguages(edit func(p *ProficiencyList)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editable(); err != nil {
		return err
	}
	p := NewProficiencyList(models.LanguageCatalog, s.draft.Languages)
	edit(p)
	s.draft.Languages = p.Entries()
	delete(s.errors, models.FieldLanguages)
	return nil
}

// Submit validates the draft and, when valid, starts delivery on a detached
// goroutine. The returned channel receives the delivery result once. The
// delivery is not cancelled if the caller goes away.
func (s *Session) Submit() (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	if s.nav.Step() != StepForm {
		return nil, ErrWrongStep
	}
	if s.state == SubmitSending {
		return nil, ErrSubmitInFlight
	}

	errs, ok := ValidateDraft(s.draft)
	s.errors = errs
	if !ok {
		s.metrics.submission("invalid")
		return nil, ErrInvalidDraft
	}

	s.state = SubmitSending
	draft := s.draft.Clone()
	done := make(chan error, 1)
	go func() {
		_, err := s.deliverer.Deliver(context.Background(), draft)
		s.finish(err)
		done <- err
	}()
	return done, nil
}

func (s *Session) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = SubmitFailed
		return
	}
	s.state = SubmitSent
	s.nav.Submitted()
}

func (s *Session) OpenLogin() error {
	return s.navigate(s.nav.OpenLogin)
}

// Login reports whether secret opened the admin screen. A wrong secret keeps
// the session on the login screen with the failure flag set.
func (s *Session) Login(secret string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	if s.nav.Step() != StepLogin {
		return false, ErrWrongStep
	}

	ok := s.gate.Check(secret)
	s.metrics.login(ok)
	if !ok {
		s.loginFailed = true
		return false, nil
	}
	s.loginFailed = false
	return true, s.nav.Authenticated()
}

func (s *Session) Back() error {
	return s.navigate(s.nav.Back)
}

// StartOver leaves the confirmation screen with a fresh draft.
func (s *Session) StartOver() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	if err := s.nav.StartOver(); err != nil {
		return err
	}
	s.draft = models.NewDraft()
	s.errors = models.FieldErrors{}
	s.state = SubmitIdle
	return nil
}

// RequireAdmin guards the review endpoints.
func (s *Session) RequireAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	if s.nav.Step() != StepAdmin {
		return ErrWrongStep
	}
	return nil
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(models.FieldErrors, len(s.errors))
	for k, v := range s.errors {
		errs[k] = v
	}
	return SessionView{
		ID:                 s.ID,
		Step:               s.nav.Step(),
		StepSeq:            s.nav.Seq(),
		Draft:              s.draft.Clone(),
		Errors:             errs,
		SubmitState:        s.state,
		Sending:            s.state == SubmitSending,
		SendFailed:         s.state == SubmitFailed,
		LoginFailed:        s.loginFailed,
		RemainingLanguages: NewProficiencyList(models.LanguageCatalog, s.draft.Languages).Remaining(),
	}
}

func (s *Session) navigate(move func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	return move()
}

// editable must be called with mu held.
func (s *Session) editable() error {
	s.touched = time.Now()
	if s.nav.Step() != StepForm {
		return ErrWrongStep
	}
	return nil
}

func (s *Session) idleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != SubmitSending && s.touched.Before(t)
}

// SessionStore keeps live sessions in memory.
type SessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	deliverer Deliverer
	gate      HRGate
	metrics   *Metrics
	logger    *zap.Logger
}

func NewSessionStore(deliverer Deliverer, gate HRGate, metrics *Metrics, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions:  make(map[string]*Session),
		deliverer: deliverer,
		gate:      gate,
		metrics:   metrics,
		logger:    logger.Named("sessions"),
	}
}

func (st *SessionStore) Create() *Session {
	s := newSession(uuid.NewString(), st.deliverer, st.gate, st.metrics)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Prune drops sessions untouched for ttl. Sessions with a send in flight stay.
func (st *SessionStore) Prune(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if s.idleSince(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// StartJanitor prunes idle sessions every interval until ctx is done.
func (st *SessionStore) StartJanitor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := st.Prune(ttl); n > 0 {
					st.logger.Info("pruned idle sessions", zap.Int("count", n))
				}
			}
		}
	}()
}
