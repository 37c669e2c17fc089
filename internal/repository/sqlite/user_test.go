package sqlite_test

import (
	"context"
	"testing"

	"github.com/nightset/nightset/pkg/models"
)

func TestUserCollection(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// missing key: nil row, no error
	got, err := repo.GetUser(ctx, 999)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing user got %#v", got)
	}

	ok, err := repo.ContainsUser(ctx, 999)
	if err != nil || ok {
		t.Fatalf("ContainsUser on missing key: ok=%v err=%v", ok, err)
	}

	u := &models.User{ID: 1, Name: "Alice", Contact: "alice@example.com", Status: models.UserActive, Role: models.RoleRegular, CreatedAt: 1000}
	if err := repo.InsertUser(ctx, u); err != nil {
		t.Fatalf("InsertUser error: %v", err)
	}

	got, err = repo.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got == nil || got.Name != "Alice" || got.Role != models.RoleRegular || got.Points != 0 {
		t.Fatalf("GetUser wrong result: %#v", got)
	}

	// insert with the same key overwrites the whole row
	u.Name = "Alice B"
	u.Status = models.UserDeactivated
	if err := repo.InsertUser(ctx, u); err != nil {
		t.Fatalf("InsertUser overwrite error: %v", err)
	}
	got, _ = repo.GetUser(ctx, 1)
	if got.Name != "Alice B" || got.Status != models.UserDeactivated {
		t.Fatalf("overwrite not applied: %#v", got)
	}

	if err := repo.InsertUser(ctx, nil); err == nil {
		t.Fatalf("expected error inserting nil user")
	}

	removed, err := repo.RemoveUser(ctx, 1)
	if err != nil {
		t.Fatalf("RemoveUser error: %v", err)
	}
	if removed == nil || removed.Name != "Alice B" {
		t.Fatalf("RemoveUser should return the removed row: %#v", removed)
	}

	removed, err = repo.RemoveUser(ctx, 1)
	if err != nil || removed != nil {
		t.Fatalf("RemoveUser on missing key: row=%#v err=%v", removed, err)
	}
}

func TestListUsersOrderAndRoleFilter(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	users := []models.User{
		{ID: 3, Name: "Cleo", Contact: "c@x", Status: models.UserActive, Role: models.RoleDJ, CreatedAt: 3},
		{ID: 1, Name: "Ana", Contact: "a@x", Status: models.UserActive, Role: models.RoleRegular, CreatedAt: 1},
		{ID: 2, Name: "Ben", Contact: "b@x", Status: models.UserActive, Role: models.RoleDJ, CreatedAt: 2},
	}
	for i := range users {
		if err := repo.InsertUser(ctx, &users[i]); err != nil {
			t.Fatalf("InsertUser error: %v", err)
		}
	}

	all, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(all) != 3 || all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 3 {
		t.Fatalf("ListUsers should be ascending by id: %#v", all)
	}

	djs, err := repo.ListUsersByRole(ctx, models.RoleDJ)
	if err != nil {
		t.Fatalf("ListUsersByRole error: %v", err)
	}
	if len(djs) != 2 || djs[0].ID != 2 || djs[1].ID != 3 {
		t.Fatalf("role filter wrong: %#v", djs)
	}

	none, err := repo.ListUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("ListUsersByRole error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result: %#v", none)
	}
}

func TestAddUserPointsAndStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	u := &models.User{ID: 1, Name: "Ana", Contact: "a@x", Status: models.UserActive, Role: models.RoleRegular, CreatedAt: 1}
	if err := repo.InsertUser(ctx, u); err != nil {
		t.Fatalf("InsertUser error: %v", err)
	}

	ok, err := repo.AddUserPoints(ctx, 1, 10)
	if err != nil || !ok {
		t.Fatalf("AddUserPoints: ok=%v err=%v", ok, err)
	}
	ok, err = repo.AddUserPoints(ctx, 1, 5)
	if err != nil || !ok {
		t.Fatalf("AddUserPoints: ok=%v err=%v", ok, err)
	}

	got, _ := repo.GetUser(ctx, 1)
	if got.Points != 15 {
		t.Fatalf("expected 15 points got %d", got.Points)
	}

	ok, err = repo.AddUserPoints(ctx, 42, 10)
	if err != nil || ok {
		t.Fatalf("AddUserPoints on missing user should report false: ok=%v err=%v", ok, err)
	}

	ok, err = repo.SetUserStatus(ctx, 1, models.UserDeactivated)
	if err != nil || !ok {
		t.Fatalf("SetUserStatus: ok=%v err=%v", ok, err)
	}
	got, _ = repo.GetUser(ctx, 1)
	if got.Status != models.UserDeactivated {
		t.Fatalf("status not updated: %#v", got)
	}
}
