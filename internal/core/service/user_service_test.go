package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

func newUserFixture() (*stubUserRepo, *stubActivityRepo, *stubPublisher, *UserService) {
	repo := newStubUserRepo()
	activityRepo := &stubActivityRepo{}
	pub := &stubPublisher{}
	activities := NewActivityService(activityRepo, pub)
	svc := NewUserService(repo, activities, pub, zerolog.Nop())
	return repo, activityRepo, pub, svc
}

func TestUserService_Create_BroadcastsAndLogs(t *testing.T) {
	_, activityRepo, pub, svc := newUserFixture()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Xavier",
		Email: "x@example.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.Role != domain.RoleUser || created.Status != domain.StatusActive {
		t.Fatalf("expected defaults, got role=%s status=%s", created.Role, created.Status)
	}

	names := pub.names()
	if len(names) != 2 || names[0] != domain.EventUserAdded || names[1] != domain.EventNewActivity {
		t.Fatalf("expected userAdded then newActivity, got %v", names)
	}

	entries, _ := activityRepo.ListRecent(context.Background(), 10)
	if len(entries) != 1 || !strings.Contains(entries[0].Description, "Xavier") {
		t.Fatalf("expected an activity naming the user, got %+v", entries)
	}
}

func TestUserService_Create_HashesOptionalPassword(t *testing.T) {
	repo, _, _, svc := newUserFixture()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Yara",
		Email:    "y@example.com",
		Password: "plaintext",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.PasswordHash == "" || stored.PasswordHash == "plaintext" {
		t.Fatalf("expected hashed password, got %q", stored.PasswordHash)
	}
}

func TestUserService_Update_UnknownID(t *testing.T) {
	_, _, pub, svc := newUserFixture()

	name := "Nobody"
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: &name}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(pub.names()) != 0 {
		t.Fatalf("no events expected on a failed update, got %v", pub.names())
	}
}

func TestUserService_Update_Broadcasts(t *testing.T) {
	_, _, pub, svc := newUserFixture()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Zoe", Email: "z@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := domain.StatusInactive
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusInactive {
		t.Fatalf("expected status updated, got %s", updated.Status)
	}
	if updated.Name != "Zoe" {
		t.Fatalf("expected untouched fields preserved, got %s", updated.Name)
	}

	names := pub.names()
	if names[len(names)-2] != domain.EventUserUpdated {
		t.Fatalf("expected userUpdated event, got %v", names)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo, _, pub, svc := newUserFixture()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Walt", Email: "w@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected record gone, got %v", err)
	}

	var sawDeleted bool
	for _, e := range pub.events {
		if d, ok := e.(domain.UserDeletedEvent); ok {
			sawDeleted = true
			if d.ID != created.ID {
				t.Fatalf("userDeleted carries wrong id: %s", d.ID)
			}
		}
	}
	if !sawDeleted {
		t.Fatalf("expected a userDeleted event, got %v", pub.names())
	}

	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_List_AllStatusMeansNoFilter(t *testing.T) {
	_, _, _, svc := newUserFixture()

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "A", Email: "a@example.com", Status: domain.StatusActive}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "B", Email: "b@example.com", Status: domain.StatusPending}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.List(context.Background(), ports.ListUsersInput{Status: "all"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both users with status=all, got %d", len(all))
	}
}
