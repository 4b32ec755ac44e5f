package shaheen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestLands_List_FiltersAndPagination(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/api/v1/admin/lands")
		q := r.URL.Query()
		if q.Get("status") != StatusUnderReview {
			t.Fatalf("status query = %q", q.Get("status"))
		}
		if q.Get("page") != "2" || q.Get("per_page") != "15" {
			t.Fatalf("page/per_page = %q/%q", q.Get("page"), q.Get("per_page"))
		}
		writeEnvelope(t, w, []Land{
			{ID: 16, Title: "مخطط الياسمين", City: "الرياض", Status: StatusUnderReview},
			{ID: 17, Title: "أرض تجارية", City: "جدة", Status: StatusUnderReview},
		}, &Pagination{CurrentPage: 2, LastPage: 3, PerPage: 15, Total: 42, From: 16, To: 30})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := urlValues("status", StatusUnderReview, "page", "2", "per_page", "15")
	res, err := cl.ListLands(ctx, q)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("items = %d", len(res.Items))
	}
	if res.Items[0].EntityID() != 16 || res.Items[0].EntityStatus() != StatusUnderReview {
		t.Fatalf("entity accessors: %+v", res.Items[0])
	}
	if res.Pagination.Total != 42 || res.Pagination.LastPage != 3 {
		t.Fatalf("pagination: %+v", res.Pagination)
	}
}

func TestLands_List_SinglePageFallback(t *testing.T) {
	// No pagination block in the response: the SDK synthesizes a single page.
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, []Land{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	})
	defer srv.Close()

	res, err := cl.ListLands(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	p := res.Pagination
	if p.CurrentPage != 1 || p.LastPage != 1 || p.Total != 3 {
		t.Fatalf("synthesized pagination: %+v", p)
	}
}

func TestLands_UpdateStatus(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/api/v1/admin/lands/7/status")
		if r.Method != http.MethodPatch {
			t.Fatalf("method = %s", r.Method)
		}
		var body StatusChange
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Status != StatusRejected || body.Reason == "" {
			t.Fatalf("body = %+v", body)
		}
		writeEnvelope(t, w, Land{ID: 7, Status: StatusRejected, RejectReason: body.Reason}, nil)
	})
	defer srv.Close()

	land, err := cl.UpdateLandStatus(context.Background(), 7, StatusChange{
		Status: StatusRejected,
		Reason: "صك غير مطابق",
	})
	if err != nil {
		t.Fatal(err)
	}
	if land.Status != StatusRejected {
		t.Fatalf("status = %q", land.Status)
	}
}

func TestLands_UpdateStatus_ValidationErrors(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "بيانات غير صالحة",
			"errors":  map[string][]string{"reason": {"سبب الرفض مطلوب"}},
		})
	})
	defer srv.Close()

	_, err := cl.UpdateLandStatus(context.Background(), 7, StatusChange{Status: StatusRejected})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	}
	if !apiErr.IsValidation() {
		t.Fatalf("IsValidation = false for %d", apiErr.StatusCode)
	}
	if got := apiErr.Errors["reason"]; len(got) != 1 || got[0] != "سبب الرفض مطلوب" {
		t.Fatalf("field errors = %v", apiErr.Errors)
	}
}

func TestLands_Delete(t *testing.T) {
	var called bool
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/api/v1/admin/lands/12")
		if r.Method != http.MethodDelete {
			t.Fatalf("method = %s", r.Method)
		}
		called = true
		writeEnvelope(t, w, nil, nil)
	})
	defer srv.Close()

	if err := cl.DeleteLand(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("delete never reached the server")
	}
}

func TestLands_List_BackendFailureEnvelope(t *testing.T) {
	// 200 with success=false still surfaces as an APIError.
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "خطأ داخلي"})
	})
	defer srv.Close()

	_, err := cl.ListLands(context.Background(), nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	}
	if apiErr.Message != "خطأ داخلي" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}
