package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
)

// addTestItems appends n items and returns them in position order.
func addTestItems(t *testing.T, store *Store, desireID string, texts ...string) []models.ActionItem {
	t.Helper()

	var items []models.ActionItem
	for _, text := range texts {
		item, err := store.AddActionItem(desireID, text, nil)
		if err != nil {
			t.Fatalf("AddActionItem(%q) failed: %v", text, err)
		}
		items = append(items, item)
	}
	return items
}

func positions(items []models.ActionItem) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.Position
	}
	return out
}

func TestAddActionItemAppends(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Build a shed")
	items := addTestItems(t, store, d.ID, "buy lumber", "pour foundation", "raise walls")

	for i, item := range items {
		if item.Position != i {
			t.Errorf("item %q position = %d, want %d", item.Text, item.Position, i)
		}
	}

	got, err := store.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("items = %d, want 3", len(got))
	}
	if got[0].Text != "buy lumber" || got[2].Text != "raise walls" {
		t.Errorf("order = [%s, %s, %s], want insertion order", got[0].Text, got[1].Text, got[2].Text)
	}
}

func TestAddActionItemAtPosition(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Plan a trip")
	addTestItems(t, store, d.ID, "book flights", "pack bags")

	pos := 1
	inserted, err := store.AddActionItem(d.ID, "get visa", &pos)
	if err != nil {
		t.Fatalf("AddActionItem(position) failed: %v", err)
	}
	if inserted.Position != 1 {
		t.Errorf("inserted position = %d, want 1", inserted.Position)
	}

	got, err := store.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() failed: %v", err)
	}
	wantOrder := []string{"book flights", "get visa", "pack bags"}
	for i, want := range wantOrder {
		if got[i].Text != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Text, want)
		}
		if got[i].Position != i {
			t.Errorf("position field at index %d = %d, want %d", i, got[i].Position, i)
		}
	}
}

func TestToggleActionItem(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	at := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)
	setClock(store, at)

	d := addTestDesire(t, store, "Declutter")
	items := addTestItems(t, store, d.ID, "sort closet")

	toggled, err := store.ToggleActionItem(items[0].ID)
	if err != nil {
		t.Fatalf("ToggleActionItem() failed: %v", err)
	}
	if !toggled.IsCompleted {
		t.Error("first toggle should complete the item")
	}
	if toggled.CompletedAt == nil || !toggled.CompletedAt.Equal(at) {
		t.Errorf("completed_at = %v, want %v", toggled.CompletedAt, at)
	}

	back, err := store.ToggleActionItem(items[0].ID)
	if err != nil {
		t.Fatalf("ToggleActionItem() failed: %v", err)
	}
	if back.IsCompleted {
		t.Error("second toggle should uncomplete the item")
	}
	if back.CompletedAt != nil {
		t.Errorf("completed_at = %v, want cleared", back.CompletedAt)
	}

	if _, err := store.ToggleActionItem("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("ToggleActionItem(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestPatchActionItem(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Study")
	items := addTestItems(t, store, d.ID, "read chapter 1")

	text := "read chapters 1-2"
	if err := store.PatchActionItem(items[0].ID, models.ActionItemPatch{Text: &text}); err != nil {
		t.Fatalf("PatchActionItem() failed: %v", err)
	}

	got, err := store.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() failed: %v", err)
	}
	if got[0].Text != text {
		t.Errorf("text = %q, want %q", got[0].Text, text)
	}

	err = store.PatchActionItem("nope", models.ActionItemPatch{Text: &text})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("PatchActionItem(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestDeleteActionItemRenumbers(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Renovate")
	items := addTestItems(t, store, d.ID, "a", "b", "c", "d")

	if err := store.DeleteActionItem(items[1].ID); err != nil {
		t.Fatalf("DeleteActionItem() failed: %v", err)
	}

	got, err := store.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("items = %d, want 3", len(got))
	}

	wantTexts := []string{"a", "c", "d"}
	for i, want := range wantTexts {
		if got[i].Text != want {
			t.Errorf("index %d = %q, want %q", i, got[i].Text, want)
		}
	}
	wantPositions := []int{0, 1, 2}
	for i, want := range wantPositions {
		if got[i].Position != want {
			t.Errorf("positions = %v, want dense %v", positions(got), wantPositions)
			break
		}
	}

	if err := store.DeleteActionItem("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteActionItem(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestReorderActionItems(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Release v2")
	items := addTestItems(t, store, d.ID, "a", "b", "c")

	if err := store.ReorderActionItems(d.ID, []string{items[2].ID, items[0].ID, items[1].ID}); err != nil {
		t.Fatalf("ReorderActionItems() failed: %v", err)
	}

	got, err := store.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() failed: %v", err)
	}
	wantOrder := []string{"c", "a", "b"}
	for i, want := range wantOrder {
		if got[i].Text != want {
			t.Errorf("index %d = %q, want %q", i, got[i].Text, want)
		}
	}

	t.Run("incomplete list rejected", func(t *testing.T) {
		err := store.ReorderActionItems(d.ID, []string{items[0].ID})
		if err == nil {
			t.Error("ReorderActionItems() with a partial list should fail")
		}
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		err := store.ReorderActionItems(d.ID, []string{items[0].ID, items[0].ID, items[1].ID})
		if err == nil {
			t.Fatal("ReorderActionItems() with a repeated id should fail")
		}

		// Positions stay dense and unchanged.
		after, err := store.GetActionItems(d.ID)
		if err != nil {
			t.Fatalf("GetActionItems() failed: %v", err)
		}
		for i, item := range after {
			if item.Position != i {
				t.Errorf("positions = %v, want dense 0..n-1 untouched", positions(after))
				break
			}
		}
		if after[0].Text != "c" || after[1].Text != "a" || after[2].Text != "b" {
			t.Errorf("order = [%s, %s, %s], want the previous order kept", after[0].Text, after[1].Text, after[2].Text)
		}
	})

	t.Run("foreign item rejected", func(t *testing.T) {
		other := addTestDesire(t, store, "Other")
		foreign := addTestItems(t, store, other.ID, "x")

		err := store.ReorderActionItems(d.ID, []string{items[0].ID, items[1].ID, foreign[0].ID})
		if err == nil {
			t.Error("ReorderActionItems() with a foreign id should fail")
		}
	})
}

func TestAllActionItemsCompleted(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Checklist")

	t.Run("empty checklist is not complete", func(t *testing.T) {
		done, err := store.AllActionItemsCompleted(d.ID)
		if err != nil {
			t.Fatalf("AllActionItemsCompleted() failed: %v", err)
		}
		if done {
			t.Error("empty checklist reported as all completed")
		}
	})

	items := addTestItems(t, store, d.ID, "a", "b")

	t.Run("partially complete", func(t *testing.T) {
		if _, err := store.ToggleActionItem(items[0].ID); err != nil {
			t.Fatalf("ToggleActionItem() failed: %v", err)
		}
		done, err := store.AllActionItemsCompleted(d.ID)
		if err != nil {
			t.Fatalf("AllActionItemsCompleted() failed: %v", err)
		}
		if done {
			t.Error("half-done checklist reported as all completed")
		}
	})

	t.Run("fully complete", func(t *testing.T) {
		if _, err := store.ToggleActionItem(items[1].ID); err != nil {
			t.Fatalf("ToggleActionItem() failed: %v", err)
		}
		done, err := store.AllActionItemsCompleted(d.ID)
		if err != nil {
			t.Fatalf("AllActionItemsCompleted() failed: %v", err)
		}
		if !done {
			t.Error("fully-done checklist reported as incomplete")
		}
	})
}

func TestDeleteActionItemsForDesire(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	d := addTestDesire(t, store, "Wipe me")
	other := addTestDesire(t, store, "Keep me")
	addTestItems(t, store, d.ID, "a", "b")
	addTestItems(t, store, other.ID, "kept")

	if err := store.DeleteActionItemsForDesire(d.ID); err != nil {
		t.Fatalf("DeleteActionItemsForDesire() failed: %v", err)
	}

	gone, err := store.GetActionItems(d.ID)
	if err != nil {
		t.Fatalf("GetActionItems() failed: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("items = %d, want 0", len(gone))
	}

	kept, err := store.GetActionItems(other.ID)
	if err != nil {
		t.Fatalf("GetActionItems(other) failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("other desire's items = %d, want 1 untouched", len(kept))
	}
}
