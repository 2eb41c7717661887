package menu

import "testing"

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range Categories() {
		for _, it := range cat.Items {
			if seen[it.ID] {
				t.Fatalf("duplicate menu id %q", it.ID)
			}
			seen[it.ID] = true
			if it.Price < 0 {
				t.Fatalf("%s has negative price %v", it.ID, it.Price)
			}
		}
	}
	if len(seen) != len(byID) {
		t.Fatalf("lookup index has %d items, catalog has %d", len(byID), len(seen))
	}
}

func TestLookup(t *testing.T) {
	it, ok := Lookup("tilapia_fries")
	if !ok || it.Name != "Tilapia & Fries" || it.Price != 12 {
		t.Fatalf("got %+v, %v", it, ok)
	}
	if _, ok := Lookup("lobster"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Items[0].Price = 999
	if it, _ := Lookup(cats[0].Items[0].ID); it.Price == 999 {
		t.Fatal("mutating the returned catalog leaked into the source")
	}
	if Categories()[0].Items[0].Price == 999 {
		t.Fatal("mutating the returned catalog leaked into later calls")
	}
}
