package pagination

import "testing"

func TestPageRequestDefaults(t *testing.T) {
	t.Run("fills_missing_values", func(t *testing.T) {
		p := PageRequest{}
		p.Defaults()
		if p.Page != 1 || p.PageSize != 10 {
			t.Errorf("expected defaults 1/10, got %d/%d", p.Page, p.PageSize)
		}
	})

	t.Run("keeps_explicit_values", func(t *testing.T) {
		p := PageRequest{Page: 3, PageSize: 25}
		p.Defaults()
		if p.Page != 3 || p.PageSize != 25 {
			t.Errorf("expected 3/25 unchanged, got %d/%d", p.Page, p.PageSize)
		}
	})
}

func TestOffset(t *testing.T) {
	p := PageRequest{Page: 4, PageSize: 10}
	if p.Offset() != 30 {
		t.Errorf("expected offset 30, got %d", p.Offset())
	}
}

func TestWindow(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	t.Run("middle_page", func(t *testing.T) {
		got := Window(items, PageRequest{Page: 2, PageSize: 3})
		if len(got) != 3 || got[0] != 3 || got[2] != 5 {
			t.Errorf("expected [3 4 5], got %v", got)
		}
	})

	t.Run("final_partial_page", func(t *testing.T) {
		got := Window(items, PageRequest{Page: 4, PageSize: 3})
		if len(got) != 1 || got[0] != 9 {
			t.Errorf("expected [9], got %v", got)
		}
	})

	t.Run("past_the_end", func(t *testing.T) {
		got := Window(items, PageRequest{Page: 5, PageSize: 3})
		if len(got) != 0 {
			t.Errorf("expected empty slice, got %v", got)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		got := Window([]int{}, PageRequest{Page: 1, PageSize: 10})
		if len(got) != 0 {
			t.Errorf("expected empty slice, got %v", got)
		}
	})
}

func TestNewPageResponse(t *testing.T) {
	t.Run("computes_total_pages", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2}, 1, 2, 5)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", resp.TotalPages)
		}
	})

	t.Run("nil_data_becomes_empty_slice", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 10, 0)
		if resp.Data == nil {
			t.Error("expected non-nil data slice")
		}
		if resp.TotalPages != 0 {
			t.Errorf("expected 0 total pages, got %d", resp.TotalPages)
		}
	})
}
