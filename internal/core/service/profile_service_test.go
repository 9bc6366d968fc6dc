package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func newProfileService(dir *stubDirectory, store *stubStore) *ProfileService {
	ratings := NewRatingAggregator(store, nil, zerolog.Nop())
	return NewProfileService(dir, NewDiscoveryService(dir, store, ratings, zerolog.Nop()), zerolog.Nop())
}

func TestProfileService_UpdateClientProfile_OnlyGivenFields(t *testing.T) {
	dir := newStubDirectory()
	_ = dir.SaveClient(context.Background(), &domain.Client{OwnerUserID: 1, FullName: "Ana", Company: "Acme"})
	svc := newProfileService(dir, newStubStore())
	actor := domain.Actor{UserID: 1, Role: domain.RoleClient}

	c, err := svc.UpdateClientProfile(context.Background(), actor, ports.ClientProfilePatch{ProfilePhotoURL: strPtr("https://img/ana.png")})
	if err != nil {
		t.Fatalf("UpdateClientProfile returned error: %v", err)
	}
	if c.FullName != "Ana" || c.Company != "Acme" || c.ProfilePhotoURL != "https://img/ana.png" {
		t.Fatalf("unexpected client %+v", c)
	}

	stored, _ := svc.GetClientProfile(context.Background(), actor)
	if stored.ProfilePhotoURL != "https://img/ana.png" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestProfileService_UpdateClientProfile_BlankName(t *testing.T) {
	dir := newStubDirectory()
	_ = dir.SaveClient(context.Background(), &domain.Client{OwnerUserID: 1, FullName: "Ana"})
	svc := newProfileService(dir, newStubStore())

	_, err := svc.UpdateClientProfile(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleClient}, ports.ClientProfilePatch{FullName: strPtr(" ")})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestProfileService_UpdateFreelancerProfile_ReplacesCategories(t *testing.T) {
	ctx := context.Background()
	dir := newStubDirectory()
	design, _ := dir.FindOrCreateCategory(ctx, "Design")
	_ = dir.SaveFreelancer(ctx, &domain.Freelancer{OwnerUserID: 2, FullName: "Fred", Bio: "old", CategoryIDs: []int64{design.ID}})
	svc := newProfileService(dir, newStubStore())
	actor := domain.Actor{UserID: 2, Role: domain.RoleFreelancer}

	d, err := svc.UpdateFreelancerProfile(ctx, actor, ports.FreelancerProfilePatch{
		Skills:        strPtr("Go"),
		CategoryNames: []string{" Backend ", "", "Backend", "Writing"},
	})
	if err != nil {
		t.Fatalf("UpdateFreelancerProfile returned error: %v", err)
	}
	if d.Bio != "old" || d.Skills != "Go" {
		t.Fatalf("unexpected profile %+v", d)
	}
	if len(d.Categories) != 2 || d.Categories[0] != "Backend" || d.Categories[1] != "Writing" {
		t.Fatalf("expected [Backend Writing], got %v", d.Categories)
	}

	cats, _ := svc.ListCategories(ctx)
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
}

func TestProfileService_GetFreelancerProfile_WrongRole(t *testing.T) {
	svc := newProfileService(newStubDirectory(), newStubStore())

	_, err := svc.GetFreelancerProfile(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleClient})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
}

func TestProfileService_ListCategories_SharedAcrossFreelancers(t *testing.T) {
	ctx := context.Background()
	dir := newStubDirectory()
	svc := newProfileService(dir, newStubStore())

	for _, names := range [][]string{{"Web", " Design "}, {"Design", ""}} {
		if _, err := resolveCategories(ctx, dir, names); err != nil {
			t.Fatalf("resolveCategories returned error: %v", err)
		}
	}

	cats, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories returned error: %v", err)
	}
	if len(cats) != 2 || cats[0].Name != "Design" || cats[1].Name != "Web" {
		t.Fatalf("unexpected categories %+v", cats)
	}
}
