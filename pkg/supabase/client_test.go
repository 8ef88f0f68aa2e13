package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestNew はハンドルの生成を検証する。
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("URLとキーがあれば生成できること", func(t *testing.T) {
		t.Parallel()

		c, err := New("https://project.supabase.co/", "anon")
		if err != nil {
			t.Fatalf("New()でエラーが発生: %v", err)
		}
		if c.URL() != "https://project.supabase.co" {
			t.Errorf("URL() = %q, want %q", c.URL(), "https://project.supabase.co")
		}
	})

	t.Run("キーが空の場合はErrKeyRequiredが返ること", func(t *testing.T) {
		t.Parallel()

		if _, err := New("https://project.supabase.co", ""); !errors.Is(err, ErrKeyRequired) {
			t.Errorf("err = %v, want %v", err, ErrKeyRequired)
		}
	})

	t.Run("URLが空の場合はErrURLRequiredが返ること", func(t *testing.T) {
		t.Parallel()

		if _, err := New("", "anon"); !errors.Is(err, ErrURLRequired) {
			t.Errorf("err = %v, want %v", err, ErrURLRequired)
		}
	})

	t.Run("スキームの無いURLはエラーになること", func(t *testing.T) {
		t.Parallel()

		if _, err := New("project.supabase.co", "anon"); err == nil {
			t.Fatal("New()がエラーを返すべきだが、nilが返った")
		}
	})
}

// TestSelect はREST APIの呼び出しを検証する。
func TestSelect(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotKey, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","title":"Monday"}]`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, "anon-key")
	if err != nil {
		t.Fatalf("New()でエラーが発生: %v", err)
	}

	var rows []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := c.Select(context.Background(), "entries", "select=*", &rows); err != nil {
		t.Fatalf("Select()でエラーが発生: %v", err)
	}

	if gotPath != "/rest/v1/entries" {
		t.Errorf("path = %q, want %q", gotPath, "/rest/v1/entries")
	}
	if gotQuery != "select=*" {
		t.Errorf("query = %q, want %q", gotQuery, "select=*")
	}
	if gotKey != "anon-key" {
		t.Errorf("apikey = %q, want %q", gotKey, "anon-key")
	}
	if gotAuth != "Bearer anon-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer anon-key")
	}
	if len(rows) != 1 || rows[0].Title != "Monday" {
		t.Errorf("rows = %+v", rows)
	}
}
