package service

import (
	"testing"
	"time"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/repository"
)

type fakeAuditRepo struct {
	lastFilter repository.AuditLogFilter
	lastCutoff time.Time
	deleted    int64
}

func (r *fakeAuditRepo) Create(log *domain.AuditLog) error { return nil }
func (r *fakeAuditRepo) FindByID(id uint) (*domain.AuditLog, error) {
	return nil, repository.ErrAuditLogNotFound
}
func (r *fakeAuditRepo) List(filter repository.AuditLogFilter) ([]domain.AuditLog, error) {
	r.lastFilter = filter
	return nil, nil
}
func (r *fakeAuditRepo) Stats(dateFrom, dateTo *time.Time) (*repository.AuditLogStats, error) {
	return &repository.AuditLogStats{}, nil
}
func (r *fakeAuditRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	r.lastCutoff = cutoff
	return r.deleted, nil
}

func TestAuditListClampsPagination(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo)

	cases := []struct {
		skip, limit     int
		wantSkip, wantL int
	}{
		{skip: -5, limit: 0, wantSkip: 0, wantL: repository.DefaultLimit},
		{skip: 10, limit: 5000, wantSkip: 10, wantL: repository.MaxLimit},
		{skip: 0, limit: 50, wantSkip: 0, wantL: 50},
	}
	for _, tc := range cases {
		if _, err := svc.List(repository.AuditLogFilter{Skip: tc.skip, Limit: tc.limit}); err != nil {
			t.Fatalf("list: %v", err)
		}
		if repo.lastFilter.Skip != tc.wantSkip || repo.lastFilter.Limit != tc.wantL {
			t.Fatalf("skip=%d limit=%d: got %d/%d want %d/%d",
				tc.skip, tc.limit, repo.lastFilter.Skip, repo.lastFilter.Limit, tc.wantSkip, tc.wantL)
		}
	}
}

func TestAuditCleanupValidatesRetention(t *testing.T) {
	svc := NewAuditService(&fakeAuditRepo{})
	if _, _, err := svc.Cleanup(0); err == nil {
		t.Fatal("expected error for zero retention")
	}
	if _, _, err := svc.Cleanup(-3); err == nil {
		t.Fatal("expected error for negative retention")
	}
}

func TestAuditCleanupComputesCutoff(t *testing.T) {
	repo := &fakeAuditRepo{deleted: 7}
	svc := NewAuditService(repo)

	deleted, cutoff, err := svc.Cleanup(30)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if deleted != 7 {
		t.Fatalf("expected 7 deleted, got %d", deleted)
	}
	want := time.Now().AddDate(0, 0, -30)
	if diff := want.Sub(cutoff); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("cutoff %v not near %v", cutoff, want)
	}
	if !repo.lastCutoff.Equal(cutoff) {
		t.Fatalf("repo received cutoff %v, service reported %v", repo.lastCutoff, cutoff)
	}
}
