package services

import (
	"context"
	"testing"
	"time"

	"github.com/justsurfingit/sales-intake/internal/database"
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSender records payloads. When release is set, Send blocks until it is closed.
type fakeSender struct {
	err      error
	release  chan struct{}
	payloads []models.SheetsPayload
}

func (f *fakeSender) Send(_ context.Context, p models.SheetsPayload) error {
	if f.release != nil {
		<-f.release
	}
	f.payloads = append(f.payloads, p)
	return f.err
}

type sessionFixture struct {
	sender  *fakeSender
	log     *ApplicationLog
	metrics *Metrics
	store   *SessionStore
}

func newSessionFixture(t *testing.T, sender *fakeSender) *sessionFixture {
	t.Helper()
	logger := zap.NewNop()
	log := LoadApplicationLog(context.Background(), database.NewMemorySlotStore(), testKey, logger)
	metrics := NewMetrics(prometheus.NewRegistry())
	intake := NewIntakeService(fixedAssembler(), sender, log, nil, metrics, logger)
	return &sessionFixture{
		sender:  sender,
		log:     log,
		metrics: metrics,
		store:   NewSessionStore(intake, NewHRGate("hr2024"), metrics, logger),
	}
}

func fillValid(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SetField(models.FieldName, "Алиев Азамат"))
	require.NoError(t, s.SetField(models.FieldPhone, "0700123456"))
	require.NoError(t, s.SetField(models.FieldCity, "Бишкек"))
	require.NoError(t, s.SetField(models.FieldSchedule, string(models.ScheduleMorning)))
	require.NoError(t, s.SetField(models.FieldExperience, models.ExperienceOptions[2]))
}

func waitResult(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not finish")
		return nil
	}
}

func TestSessionStartsWithDefaults(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	v := f.store.Create().View()

	assert.Equal(t, StepForm, v.Step)
	assert.Equal(t, SubmitIdle, v.SubmitState)
	assert.Empty(t, v.Errors)
	assert.Equal(t, models.NewDraft(), v.Draft)
	require.Len(t, v.RemainingLanguages, 3)
	assert.Equal(t, "en", v.RemainingLanguages[0].ID)
}

func TestSessionSubmitSuccess(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()
	fillValid(t, s)
	require.NoError(t, s.ToggleSalesType(models.SalesB2B))

	done, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, waitResult(t, done))

	v := s.View()
	assert.Equal(t, StepThanks, v.Step)
	assert.Equal(t, SubmitSent, v.SubmitState)
	require.Len(t, f.sender.payloads, 1)
	assert.Equal(t, "B2B", f.sender.payloads[0].SalesType)

	apps := f.log.All()
	require.Len(t, apps, 1)
	assert.Equal(t, "+996 (700) 123-456", apps[0].Phone)
	assert.Equal(t, "Кыргызча — Эркин; Орусча — Жакшы", apps[0].Languages)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.submissions.WithLabelValues("sent")))
}

func TestSessionSubmitInvalid(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()
	require.NoError(t, s.SetField(models.FieldName, "А"))

	done, err := s.Submit()
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.Nil(t, done)

	v := s.View()
	assert.Equal(t, StepForm, v.Step)
	assert.Equal(t, MsgName, v.Errors[models.FieldName])
	assert.Len(t, v.Errors, 5)
	assert.Empty(t, f.sender.payloads)
	assert.Zero(t, f.log.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.submissions.WithLabelValues("invalid")))
}

func TestSessionSubmitSendFailure(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{err: errors.New("connection refused")})
	s := f.store.Create()
	fillValid(t, s)

	done, err := s.Submit()
	require.NoError(t, err)
	assert.Error(t, waitResult(t, done))

	v := s.View()
	assert.Equal(t, StepForm, v.Step)
	assert.True(t, v.SendFailed)
	assert.Zero(t, f.log.Len())

	// a retry clears the failure flag immediately
	f.sender.err = nil
	done, err = s.Submit()
	require.NoError(t, err)
	require.NoError(t, waitResult(t, done))
	v = s.View()
	assert.False(t, v.SendFailed)
	assert.Equal(t, StepThanks, v.Step)
	assert.Equal(t, 1, f.log.Len())
}

func TestSessionRejectsSubmitInFlight(t *testing.T) {
	sender := &fakeSender{release: make(chan struct{})}
	f := newSessionFixture(t, sender)
	s := f.store.Create()
	fillValid(t, s)

	done, err := s.Submit()
	require.NoError(t, err)
	assert.True(t, s.View().Sending)

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(sender.release)
	require.NoError(t, waitResult(t, done))
	assert.Equal(t, 1, f.log.Len())
}

func TestSessionCompletionWhileOnLoginScreen(t *testing.T) {
	sender := &fakeSender{release: make(chan struct{})}
	f := newSessionFixture(t, sender)
	s := f.store.Create()
	fillValid(t, s)

	done, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, s.OpenLogin())

	close(sender.release)
	require.NoError(t, waitResult(t, done))
	assert.Equal(t, StepThanks, s.View().Step)
}

func TestSessionSetFieldClearsOnlyThatError(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()
	_, err := s.Submit()
	require.ErrorIs(t, err, ErrInvalidDraft)

	require.NoError(t, s.SetField(models.FieldName, "x"))
	errs := s.View().Errors
	assert.NotContains(t, errs, models.FieldName)
	assert.Contains(t, errs, models.FieldPhone)
	assert.Contains(t, errs, models.FieldCity)
}

func TestSessionSetFieldRejects(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()

	assert.ErrorIs(t, s.SetField("nickname", "x"), ErrUnknownField)
	assert.ErrorIs(t, s.SetField(models.FieldLanguages, "x"), ErrUnknownField)
	assert.ErrorIs(t, s.SetField(models.FieldSchedule, "night"), ErrUnknownOption)
	assert.ErrorIs(t, s.ToggleSalesType("door-to-door"), ErrUnknownOption)
	assert.ErrorIs(t, s.SetLanguageLevel("ky", 6), ErrUnknownOption)

	require.NoError(t, s.OpenLogin())
	assert.ErrorIs(t, s.SetField(models.FieldName, "Алиев"), ErrWrongStep)
}

func TestSessionToggleSalesTypeKeepsOrder(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()

	require.NoError(t, s.ToggleSalesType(models.SalesTele))
	require.NoError(t, s.ToggleSalesType(models.SalesB2C))
	require.NoError(t, s.ToggleSalesType(models.SalesOnline))
	require.NoError(t, s.ToggleSalesType(models.SalesB2C))

	assert.Equal(t, []models.SalesTypeID{models.SalesTele, models.SalesOnline}, s.View().Draft.SalesType)
}

func TestSessionLanguages(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()

	require.NoError(t, s.AddLanguage("en"))
	require.NoError(t, s.SetLanguageLevel("en", models.LevelFluent))
	require.NoError(t, s.RemoveLanguage("ru"))

	v := s.View()
	assert.Equal(t, []models.LanguageEntry{
		{ID: "ky", Label: "Кыргызча", Level: models.LevelFluent},
		{ID: "en", Label: "Англисче", Level: models.LevelFluent},
	}, v.Draft.Languages)
	assert.Len(t, v.RemainingLanguages, 3)
}

func TestSessionLogin(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()

	_, err := s.Login("hr2024")
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.ErrorIs(t, s.RequireAdmin(), ErrWrongStep)

	require.NoError(t, s.OpenLogin())
	ok, err := s.Login("wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	v := s.View()
	assert.True(t, v.LoginFailed)
	assert.Equal(t, StepLogin, v.Step)

	ok, err = s.Login("hr2024")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, s.View().LoginFailed)
	assert.NoError(t, s.RequireAdmin())

	require.NoError(t, s.Back())
	assert.Equal(t, StepForm, s.View().Step)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.logins.WithLabelValues("denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.logins.WithLabelValues("ok")))
}

func TestSessionStartOverResets(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()
	fillValid(t, s)
	require.NoError(t, s.AddLanguage("tr"))

	assert.ErrorIs(t, s.StartOver(), ErrWrongStep)

	done, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, waitResult(t, done))
	seq := s.View().StepSeq

	require.NoError(t, s.StartOver())
	v := s.View()
	assert.Equal(t, StepForm, v.Step)
	assert.Equal(t, models.NewDraft(), v.Draft)
	assert.Empty(t, v.Errors)
	assert.Equal(t, SubmitIdle, v.SubmitState)
	assert.Equal(t, seq+1, v.StepSeq)
	assert.Equal(t, 1, f.log.Len())
}

func TestSessionViewIsACopy(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	s := f.store.Create()

	v := s.View()
	v.Draft.Languages[0].Level = models.LevelBeginner
	v.Errors[models.FieldName] = "x"

	again := s.View()
	assert.Equal(t, models.LevelFluent, again.Draft.Languages[0].Level)
	assert.Empty(t, again.Errors)
}

func TestSessionStore(t *testing.T) {
	f := newSessionFixture(t, &fakeSender{})
	a := f.store.Create()
	b := f.store.Create()
	assert.NotEqual(t, a.ID, b.ID)

	got, err := f.store.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = f.store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Zero(t, f.store.Prune(time.Hour))
	assert.Equal(t, 2, f.store.Prune(-time.Second))
	_, err = f.store.Get(a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreKeepsSendingSessions(t *testing.T) {
	sender := &fakeSender{release: make(chan struct{})}
	f := newSessionFixture(t, sender)
	s := f.store.Create()
	fillValid(t, s)
	done, err := s.Submit()
	require.NoError(t, err)

	assert.Zero(t, f.store.Prune(-time.Second))

	close(sender.release)
	require.NoError(t, waitResult(t, done))
}
