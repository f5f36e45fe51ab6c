package sqlite

import (
	"testing"
	"time"

	"github.com/wellandco/wishwell/internal/constants"
	"github.com/wellandco/wishwell/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	setClock(store, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	d := addTestDesire(t, store, "Sail the coast")
	health := models.LifeAreaHealth
	if err := store.PatchDesire(d.ID, models.DesirePatch{Area: &health}); err != nil {
		t.Fatalf("PatchDesire() failed: %v", err)
	}
	done := addTestDesire(t, store, "Finished already")
	if err := store.MarkDesireCompleted(done.ID); err != nil {
		t.Fatalf("MarkDesireCompleted() failed: %v", err)
	}

	if _, err := store.UpsertTodayContact(d.ID, models.ContactEntry, "checked the charts"); err != nil {
		t.Fatalf("UpsertTodayContact() failed: %v", err)
	}
	if _, err := store.AddActionItem(d.ID, "buy charts", nil); err != nil {
		t.Fatalf("AddActionItem() failed: %v", err)
	}
	if _, err := store.SetLifeAreaScore(models.LifeAreaHealth, 6); err != nil {
		t.Fatalf("SetLifeAreaScore() failed: %v", err)
	}
	rating := 5
	if _, err := store.AddFeedback("smooth sailing", &rating); err != nil {
		t.Fatalf("AddFeedback() failed: %v", err)
	}

	snap, err := store.ExportData()
	if err != nil {
		t.Fatalf("ExportData() failed: %v", err)
	}
	if snap.Version != constants.SnapshotFormatVersion {
		t.Errorf("snapshot version = %d, want %d", snap.Version, constants.SnapshotFormatVersion)
	}
	if len(snap.Desires) != 2 {
		t.Errorf("exported desires = %d, want 2 (completed included)", len(snap.Desires))
	}
	if len(snap.Contacts) != 1 || len(snap.ActionItems) != 1 || len(snap.Feedbacks) != 1 {
		t.Errorf("exported contacts/items/feedbacks = %d/%d/%d, want 1/1/1",
			len(snap.Contacts), len(snap.ActionItems), len(snap.Feedbacks))
	}
	if len(snap.LifeAreas) != len(models.AllLifeAreas) {
		t.Errorf("exported life areas = %d, want %d", len(snap.LifeAreas), len(models.AllLifeAreas))
	}

	// Import into a fresh store and compare.
	fresh, freshCleanup := setupTestStore(t)
	defer freshCleanup()

	if err := fresh.ImportData(snap); err != nil {
		t.Fatalf("ImportData() failed: %v", err)
	}

	got, err := fresh.GetDesire(d.ID)
	if err != nil {
		t.Fatalf("GetDesire() after import failed: %v", err)
	}
	if got.Title != d.Title || got.Area != models.LifeAreaHealth {
		t.Errorf("imported desire = %q/%q, want %q/health", got.Title, got.Area, d.Title)
	}

	contacts, err := fresh.GetContacts(d.ID)
	if err != nil {
		t.Fatalf("GetContacts() after import failed: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Text != "checked the charts" {
		t.Errorf("imported contacts = %+v, want the original one", contacts)
	}

	items, err := fresh.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() after import failed: %v", err)
	}
	if len(items) != 1 || items[0].Text != "buy charts" {
		t.Errorf("imported items = %+v, want the original one", items)
	}

	ratings, err := fresh.GetLifeAreas()
	if err != nil {
		t.Fatalf("GetLifeAreas() after import failed: %v", err)
	}
	for _, r := range ratings {
		want := 0
		if r.Area == models.LifeAreaHealth {
			want = 6
		}
		if r.Score != want {
			t.Errorf("imported %s score = %d, want %d", r.Area, r.Score, want)
		}
	}

	feedbacks, err := fresh.GetAllFeedbacks()
	if err != nil {
		t.Fatalf("GetAllFeedbacks() after import failed: %v", err)
	}
	if len(feedbacks) != 1 || feedbacks[0].Rating == nil || *feedbacks[0].Rating != 5 {
		t.Errorf("imported feedbacks = %+v, want the rated one", feedbacks)
	}
}

func TestImportReplacesExistingData(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	old := addTestDesire(t, store, "Old world")
	if _, err := store.UpsertTodayContact(old.ID, models.ContactEntry, "stale"); err != nil {
		t.Fatalf("UpsertTodayContact() failed: %v", err)
	}

	snap := models.Snapshot{
		Version:    constants.SnapshotFormatVersion,
		ExportedAt: time.Now(),
		Desires: []models.Desire{{
			ID:        "new-1",
			Title:     "New world",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	if err := store.ImportData(snap); err != nil {
		t.Fatalf("ImportData() failed: %v", err)
	}

	desires, err := store.GetAllDesires(true)
	if err != nil {
		t.Fatalf("GetAllDesires() failed: %v", err)
	}
	if len(desires) != 1 || desires[0].ID != "new-1" {
		t.Errorf("desires after import = %+v, want only the snapshot's", desires)
	}

	contacts, err := store.GetContacts(old.ID)
	if err != nil {
		t.Fatalf("GetContacts() failed: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("old contacts survived the import: %d", len(contacts))
	}

	// The fixed rating rows are re-seeded even when the snapshot omits them.
	ratings, err := store.GetLifeAreas()
	if err != nil {
		t.Fatalf("GetLifeAreas() failed: %v", err)
	}
	if len(ratings) != len(models.AllLifeAreas) {
		t.Errorf("life areas after import = %d, want %d re-seeded", len(ratings), len(models.AllLifeAreas))
	}
}

func TestImportInvalidSnapshotLeavesDataIntact(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	keeper := addTestDesire(t, store, "Keeper")

	t.Run("missing desires collection", func(t *testing.T) {
		snap := models.Snapshot{Version: constants.SnapshotFormatVersion, ExportedAt: time.Now()}
		if err := store.ImportData(snap); err == nil {
			t.Fatal("ImportData() without desires should fail")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		snap := models.Snapshot{
			Version:    constants.SnapshotFormatVersion + 1,
			ExportedAt: time.Now(),
			Desires:    []models.Desire{},
		}
		if err := store.ImportData(snap); err == nil {
			t.Fatal("ImportData() with a newer version should fail")
		}
	})

	t.Run("invalid contact type", func(t *testing.T) {
		snap := models.Snapshot{
			Version:    constants.SnapshotFormatVersion,
			ExportedAt: time.Now(),
			Desires:    []models.Desire{},
			Contacts: []models.Contact{{
				ID: "c1", DesireID: "d1", Day: "2026-01-01",
				Type: "hunch", Text: "x", CreatedAt: time.Now(),
			}},
		}
		if err := store.ImportData(snap); err == nil {
			t.Fatal("ImportData() with an unknown contact type should fail")
		}
	})

	if _, err := store.GetDesire(keeper.ID); err != nil {
		t.Errorf("existing data was touched by a rejected import: %v", err)
	}
}
