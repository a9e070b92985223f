package export

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/louisbranch/charmap/internal/charset"
)

func TestStoreReplaceAndListRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.db")
	store, err := OpenStore(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	first := []charset.Record{{Symbol: "A", Hex: "0041", Code: charset.CodeOf(65), Name: "a"}}
	if err := store.ReplaceRecords(ctx, first); err != nil {
		t.Fatalf("replace: %v", err)
	}
	second := []charset.Record{
		{Symbol: "©", Hex: "00A9", Code: charset.CodeOf(169), Name: "copyright sign", Category: "Latin-1 Supplement", Entities: "copy", Tags: "legal"},
		{Symbol: "😀", Hex: "1F600", Name: "grinning face", Category: "smileys-emotion", Tags: "emoji"},
	}
	if err := store.ReplaceRecords(ctx, second); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	got, err := store.ListRecords(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Fatalf("records = %+v, want %+v", got, second)
	}
}

func TestOpenStoreRequiresPath(t *testing.T) {
	if _, err := OpenStore(context.Background(), " "); err == nil {
		t.Fatal("expected path error")
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	var store *Store
	if err := store.ReplaceRecords(context.Background(), nil); err == nil {
		t.Fatal("expected configuration error")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}
