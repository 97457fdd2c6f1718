package services

import (
	"testing"

	"investdesk/internal/pagination"
	"investdesk/internal/testutil"
)

func TestCreateClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		client, err := svc.CreateClient("Maria Silva", "maria@example.com")
		testutil.AssertNoError(t, err)

		if client.ID == 0 {
			t.Error("expected non-zero client ID")
		}
		if !client.IsActive {
			t.Error("expected new client to be active")
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.CreateClient("", "maria@example.com")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.CreateClient("Maria Silva", "maria@example.com")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateClient("Other Maria", "maria@example.com")
		testutil.AssertAppError(t, err, "DUPLICATE_CLIENT_EMAIL")
	})
}

func TestGetClientByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClientService(db)
	client := testutil.CreateTestClient(t, db)

	t.Run("found", func(t *testing.T) {
		found, err := svc.GetClientByID(client.ID)
		testutil.AssertNoError(t, err)
		if found.Email != client.Email {
			t.Errorf("expected email %q, got %q", client.Email, found.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetClientByID(99999)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestGetClientByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClientService(db)
	client := testutil.CreateTestClient(t, db)

	t.Run("found", func(t *testing.T) {
		found, err := svc.GetClientByEmail(client.Email)
		testutil.AssertNoError(t, err)
		if found.ID != client.ID {
			t.Errorf("expected client %d, got %d", client.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetClientByEmail("nobody@test.com")
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestListClients(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClientService(db)

	first, err := svc.CreateClient("Alice Alpha", "alice@example.com")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateClient("Bob Beta", "bob@example.com")
	testutil.AssertNoError(t, err)
	inactive := false
	_, err = svc.UpdateClient(first.ID, "", "", &inactive)
	testutil.AssertNoError(t, err)

	t.Run("all", func(t *testing.T) {
		resp, err := svc.ListClients(pagination.PageRequest{}, "", nil)
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 2 {
			t.Errorf("expected 2 clients, got %d", resp.TotalItems)
		}
	})

	t.Run("active_only", func(t *testing.T) {
		active := true
		resp, err := svc.ListClients(pagination.PageRequest{}, "", &active)
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 1 || resp.Data[0].Name != "Bob Beta" {
			t.Errorf("expected only the active client, got %+v", resp.Data)
		}
	})

	t.Run("search", func(t *testing.T) {
		resp, err := svc.ListClients(pagination.PageRequest{}, "alice@", nil)
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 1 || resp.Data[0].ID != first.ID {
			t.Errorf("expected search to match by email, got %+v", resp.Data)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.ListClients(pagination.PageRequest{Page: 1, PageSize: 1}, "", nil)
		testutil.AssertNoError(t, err)
		if len(resp.Data) != 1 || resp.TotalItems != 2 || resp.TotalPages != 2 {
			t.Errorf("expected 1 of 2 across 2 pages, got %+v", resp)
		}
	})
}

func TestUpdateClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClientService(db)
	client := testutil.CreateTestClient(t, db)

	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		updated, err := svc.UpdateClient(client.ID, "Renamed Client", "", nil)
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed Client" {
			t.Errorf("expected name updated, got %q", updated.Name)
		}
		if updated.Email != client.Email {
			t.Errorf("expected email untouched, got %q", updated.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		other := testutil.CreateTestClient(t, db)
		_, err := svc.UpdateClient(other.ID, "", client.Email, nil)
		testutil.AssertAppError(t, err, "DUPLICATE_CLIENT_EMAIL")
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.UpdateClient(99999, "X", "", nil)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestDeactivateClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClientService(db)
	client := testutil.CreateTestClient(t, db)

	testutil.AssertNoError(t, svc.DeactivateClient(client.ID))

	// Record survives deactivation; only the flag changes.
	found, err := svc.GetClientByID(client.ID)
	testutil.AssertNoError(t, err)
	if found.IsActive {
		t.Error("expected client to be inactive after deactivation")
	}

	testutil.AssertAppError(t, svc.DeactivateClient(99999), "CLIENT_NOT_FOUND")
}
