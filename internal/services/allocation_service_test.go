package services

import (
	"testing"
	"time"

	"investdesk/internal/pagination"
	"investdesk/internal/testutil"
)

func TestCreateAllocation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		clientSvc := NewClientService(db)
		assetSvc := NewAssetService(db, &mockMarketProvider{})
		svc := NewAllocationService(db, clientSvc, assetSvc)
		client := testutil.CreateTestClient(t, db)
		asset := testutil.CreateTestAsset(t, db)

		allocation, err := svc.CreateAllocation(client.ID, asset.ID, 10, 150.50, time.Now())
		testutil.AssertNoError(t, err)

		if allocation.ID == 0 {
			t.Error("expected non-zero allocation ID")
		}
		if allocation.Client.ID != client.ID || allocation.Asset.ID != asset.ID {
			t.Error("expected client and asset attached to the result")
		}
	})

	t.Run("invalid_quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
		client := testutil.CreateTestClient(t, db)
		asset := testutil.CreateTestAsset(t, db)

		_, err := svc.CreateAllocation(client.ID, asset.ID, 0, 150.50, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
		client := testutil.CreateTestClient(t, db)
		asset := testutil.CreateTestAsset(t, db)

		_, err := svc.CreateAllocation(client.ID, asset.ID, 10, -1, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_client", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
		asset := testutil.CreateTestAsset(t, db)

		_, err := svc.CreateAllocation(99999, asset.ID, 10, 150.50, time.Now())
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})

	t.Run("unknown_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
		client := testutil.CreateTestClient(t, db)

		_, err := svc.CreateAllocation(client.ID, 99999, 10, 150.50, time.Now())
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestListAllocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
	clientA := testutil.CreateTestClient(t, db)
	clientB := testutil.CreateTestClient(t, db)
	asset := testutil.CreateTestAsset(t, db)
	testutil.CreateTestAllocation(t, db, clientA.ID, asset.ID, 10, 100)
	testutil.CreateTestAllocation(t, db, clientA.ID, asset.ID, 5, 200)
	testutil.CreateTestAllocation(t, db, clientB.ID, asset.ID, 2, 50)

	t.Run("all", func(t *testing.T) {
		resp, err := svc.ListAllocations(pagination.PageRequest{}, nil)
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 3 {
			t.Errorf("expected 3 allocations, got %d", resp.TotalItems)
		}
		if resp.Data[0].Asset.ID != asset.ID {
			t.Error("expected asset preloaded on list results")
		}
	})

	t.Run("client_filter", func(t *testing.T) {
		resp, err := svc.ListAllocations(pagination.PageRequest{}, &clientA.ID)
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 2 {
			t.Errorf("expected 2 allocations for client A, got %d", resp.TotalItems)
		}
	})
}

func TestGetClientAllocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
	client := testutil.CreateTestClient(t, db)
	asset := testutil.CreateTestAsset(t, db)
	testutil.CreateTestAllocation(t, db, client.ID, asset.ID, 10, 100)

	t.Run("found", func(t *testing.T) {
		allocations, err := svc.GetClientAllocations(client.ID)
		testutil.AssertNoError(t, err)
		if len(allocations) != 1 {
			t.Fatalf("expected 1 allocation, got %d", len(allocations))
		}
		if allocations[0].Asset.Ticker != asset.Ticker {
			t.Error("expected asset preloaded")
		}
	})

	t.Run("unknown_client", func(t *testing.T) {
		_, err := svc.GetClientAllocations(99999)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestTotalAllocationValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
	clientA := testutil.CreateTestClient(t, db)
	clientB := testutil.CreateTestClient(t, db)
	asset := testutil.CreateTestAsset(t, db)
	testutil.CreateTestAllocation(t, db, clientA.ID, asset.ID, 10, 100) // 1000
	testutil.CreateTestAllocation(t, db, clientB.ID, asset.ID, 5, 50)  // 250

	t.Run("global", func(t *testing.T) {
		total, err := svc.TotalAllocationValue(nil)
		testutil.AssertNoError(t, err)
		if total != 1250 {
			t.Errorf("expected 1250, got %v", total)
		}
	})

	t.Run("per_client", func(t *testing.T) {
		total, err := svc.TotalAllocationValue(&clientB.ID)
		testutil.AssertNoError(t, err)
		if total != 250 {
			t.Errorf("expected 250, got %v", total)
		}
	})

	t.Run("no_allocations_is_zero", func(t *testing.T) {
		empty := testutil.CreateTestClient(t, db)
		total, err := svc.TotalAllocationValue(&empty.ID)
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected 0, got %v", total)
		}
	})
}

func TestUpdateAllocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
	client := testutil.CreateTestClient(t, db)
	asset := testutil.CreateTestAsset(t, db)
	allocation := testutil.CreateTestAllocation(t, db, client.ID, asset.ID, 10, 100)

	t.Run("valid", func(t *testing.T) {
		updated, err := svc.UpdateAllocation(allocation.ID, client.ID, asset.ID, 20, 90, time.Now())
		testutil.AssertNoError(t, err)
		if updated.Quantity != 20 || updated.BuyPrice != 90 {
			t.Errorf("expected updated lot, got %+v", updated)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.UpdateAllocation(99999, client.ID, asset.ID, 20, 90, time.Now())
		testutil.AssertAppError(t, err, "ALLOCATION_NOT_FOUND")
	})
}

func TestDeleteAllocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAllocationService(db, NewClientService(db), NewAssetService(db, &mockMarketProvider{}))
	client := testutil.CreateTestClient(t, db)
	asset := testutil.CreateTestAsset(t, db)
	allocation := testutil.CreateTestAllocation(t, db, client.ID, asset.ID, 10, 100)

	testutil.AssertNoError(t, svc.DeleteAllocation(allocation.ID))

	_, err := svc.GetAllocationByID(allocation.ID)
	testutil.AssertAppError(t, err, "ALLOCATION_NOT_FOUND")

	testutil.AssertAppError(t, svc.DeleteAllocation(allocation.ID), "ALLOCATION_NOT_FOUND")
}
