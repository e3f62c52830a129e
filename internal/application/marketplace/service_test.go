package marketplace

import (
	"context"
	"errors"
	"testing"

	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/infrastructure/database"
	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	name       string
	failIDs    map[string]bool
	published  []uint
	suspended  []string
	suspendErr error
}

func (f *fakePublisher) Name() string { return f.name }

func (f *fakePublisher) Publish(_ context.Context, l *domain.Listing) (Result, error) {
	if f.failIDs[l.Name] {
		return Result{Status: 500}, errors.New("boom")
	}
	f.published = append(f.published, l.ID)
	return Result{Status: 200, Body: "ok"}, nil
}

func (f *fakePublisher) Suspend(_ context.Context, id string) (Result, error) {
	if f.suspendErr != nil || f.failIDs[id] {
		return Result{Status: 500}, errors.New("suspend failed")
	}
	f.suspended = append(f.suspended, id)
	return Result{Status: 200}, nil
}

type fakeReporter struct {
	calls    int
	uploaded []*domain.Listing
}

func (f *fakeReporter) SendUploadReport(_ context.Context, _ string, uploaded []*domain.Listing) error {
	f.calls++
	f.uploaded = uploaded
	return nil
}

func setup(t *testing.T, pubs ...Publisher) (*Service, *fakeReporter) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	rep := &fakeReporter{}
	return &Service{
		Listings: &listings.Service{DB: db},
		Registry: NewRegistry(pubs...),
		Reports:  rep,
	}, rep
}

func seed(t *testing.T, s *Service, ls ...*domain.Listing) {
	for _, l := range ls {
		require.NoError(t, s.Listings.Create(context.Background(), l))
	}
}

func TestPublishPending(t *testing.T) {
	pub := &fakePublisher{name: NameImmovlan, failIDs: map[string]bool{"Broken": true}}
	s, rep := setup(t, pub)
	ctx := context.Background()
	seed(t, s,
		&domain.Listing{URL: "a", Name: "Villa", Price: "€1", UploadToImmovlan: true, ImmovlanSuspended: true, Images: []string{"1", "2"}},
		&domain.Listing{URL: "b", Name: "Broken", Price: "€1", UploadToImmovlan: true},
		&domain.Listing{URL: "c", Name: "Done", Price: "€1"},
	)

	lines, err := s.PublishPending(ctx, NameImmovlan)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "UPLOADED: Villa (2 images) with result ok", lines[0])
	assert.Contains(t, lines[1], "FAILED: Broken")
	assert.Equal(t, 1, rep.calls)
	require.Len(t, rep.uploaded, 1)
	assert.Equal(t, "Villa", rep.uploaded[0].Name)

	pending, err := s.Listings.GetPending(ctx, listings.FlagImmovlan)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Broken", pending[0].Name)

	villa, err := s.Listings.GetByURL(ctx, "a")
	require.NoError(t, err)
	assert.False(t, villa.ImmovlanSuspended)
}

func TestPublishPending_Unknown(t *testing.T) {
	s, _ := setup(t)
	_, err := s.PublishPending(context.Background(), "zimmo")
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeNotFound))
}

func TestSuspend_FailureLeavesFlag(t *testing.T) {
	pub := &fakePublisher{name: NameSpotto, suspendErr: errors.New("down")}
	s, _ := setup(t, pub)
	ctx := context.Background()
	l := &domain.Listing{URL: "a", Name: "Villa", Price: "€1", UploadToSpotto: true}
	seed(t, s, l)

	_, err := s.Suspend(ctx, NameSpotto, l.ID)
	require.Error(t, err)

	got, err := s.Listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, got.UploadToSpotto)
}

func TestSuspend_ClearsFlag(t *testing.T) {
	pub := &fakePublisher{name: NameImmovlan}
	s, _ := setup(t, pub)
	ctx := context.Background()
	l := &domain.Listing{URL: "a", Name: "Villa", Price: "€1", UploadToImmovlan: true}
	seed(t, s, l)

	lines, err := s.Suspend(ctx, NameImmovlan, l.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Property Villa suspended."}, lines)

	got, err := s.Listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.False(t, got.UploadToImmovlan)
	assert.True(t, got.ImmovlanSuspended)

	_, err = s.Suspend(ctx, NameImmovlan, 999)
	assert.ErrorIs(t, err, listings.ErrListingNotFound)
}

func TestSuspendAll_KeepsRecords(t *testing.T) {
	a := &domain.Listing{URL: "a", Name: "A", Price: "€1"}
	b := &domain.Listing{URL: "b", Name: "B", Price: "€1"}
	pub := &fakePublisher{name: NameImmovlan, failIDs: map[string]bool{}}
	s, _ := setup(t, pub)
	ctx := context.Background()
	seed(t, s, a, b)
	pub.failIDs["2"] = true

	lines, err := s.SuspendAll(ctx, NameImmovlan)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	all, err := s.Listings.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].UploadToImmovlan)
	assert.True(t, all[0].ImmovlanSuspended)
	assert.False(t, all[1].UploadToImmovlan)
}

func TestPurgeAll_DeletesSuspended(t *testing.T) {
	pub := &fakePublisher{name: NameSpotto, failIDs: map[string]bool{"2": true}}
	s, _ := setup(t, pub)
	ctx := context.Background()
	seed(t, s, &domain.Listing{URL: "a", Name: "A", Price: "€1"}, &domain.Listing{URL: "b", Name: "B", Price: "€1"})

	_, err := s.PurgeAll(ctx, NameSpotto)
	require.NoError(t, err)

	all, err := s.Listings.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B", all[0].Name)
}

func TestResetStatuses(t *testing.T) {
	s, _ := setup(t, &fakePublisher{name: NameSpotto}, &fakePublisher{name: NameImmovlan})
	ctx := context.Background()
	seed(t, s,
		&domain.Listing{URL: "a", Name: "A", Price: "€1", Status: "Te Koop"},
		&domain.Listing{URL: "b", Name: "B", Price: "", Status: "Te Koop"},
		&domain.Listing{URL: "c", Name: "C", Price: "€1", Status: "Realisatie"},
	)

	lines, err := s.ResetStatuses(ctx, NameSpotto)
	require.NoError(t, err)
	assert.Equal(t, []string{"Status reset for A"}, lines)

	lines, err = s.ResetStatuses(ctx, NameImmovlan)
	require.NoError(t, err)
	assert.Len(t, lines, 3)

	pending, err := s.Listings.GetPending(ctx, listings.FlagImmovlan)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}
