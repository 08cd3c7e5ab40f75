package gymclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeAPI mimics the gymlog endpoints the client talks to and counts every hit.
type fakeAPI struct {
	server *httptest.Server

	mutex      sync.Mutex
	hits       map[string]int
	savedDays  []DayInput
	lastAuth   string
	validToken string

	// a save with notes "block" waits for unblock before answering
	blocked chan struct{}
	unblock chan struct{}

	// when holdAnalytics is set, the analytics summary is computed first and
	// answered only once holdAnalytics is closed
	holdAnalytics chan struct{}
	analyticsHeld chan struct{}
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{
		hits:       map[string]int{},
		validToken: "tok-1",
		blocked:    make(chan struct{}, 1),
		unblock:    make(chan struct{}),

		analyticsHeld: make(chan struct{}, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/exercises/", api.handle(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeFake(w, http.StatusCreated, `{"id":2,"name":"Squat","muscle_group":"legs"}`)
			return
		}
		writeFake(w, http.StatusOK, `[{"id":1,"name":"Bench","muscle_group":"chest"}]`)
	}))
	mux.HandleFunc("/cardio-types/", api.handle(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeFake(w, http.StatusCreated, `{"id":2,"name":"Row"}`)
			return
		}
		writeFake(w, http.StatusOK, `[{"id":1,"name":"Run"}]`)
	}))
	mux.HandleFunc("/workouts/day/", api.handle(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeFake(w, http.StatusOK, dayJSON(r.URL.Query().Get("date"), ""))
			return
		}

		var input DayInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeFake(w, http.StatusBadRequest, `{"error":"bad json"}`)
			return
		}
		if input.Notes == "invalid" {
			writeFake(w, http.StatusBadRequest, `{"error":"notes too long","field":"notes"}`)
			return
		}
		if input.Notes == "block" {
			api.blocked <- struct{}{}
			<-api.unblock
		}

		api.mutex.Lock()
		api.savedDays = append(api.savedDays, input)
		api.mutex.Unlock()
		writeFake(w, http.StatusCreated, dayJSON(input.Date, input.Notes))
	}))
	mux.HandleFunc("/workouts/month/", api.handle(func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusOK, fmt.Sprintf(
			`{"year":%s,"month":%s,"days_with_workouts":["2025-03-05"],"days":[{"date":"2025-03-05","day_total_weight":"1000.00","day_total_reps":20,"day_total_cardio_minutes":0}],"month_total_weight":"1000.00","month_total_reps":20,"month_total_cardio_minutes":0}`,
			r.URL.Query().Get("year"), r.URL.Query().Get("month"),
		))
	}))
	mux.HandleFunc("/analytics/summary/", api.handle(func(w http.ResponseWriter, r *http.Request) {
		api.mutex.Lock()
		workouts := 1 + len(api.savedDays)
		hold := api.holdAnalytics
		api.mutex.Unlock()

		if hold != nil {
			api.analyticsHeld <- struct{}{}
			<-hold
		}
		writeFake(w, http.StatusOK, fmt.Sprintf(
			`{"overall":{"total_workouts":%d,"total_weight":"1000.00","total_reps":20},"by_muscle_group":[{"muscle_group":"chest","total_sets":2,"total_weight":"1000.00"}],"cardio_overall":{"total_minutes":0,"total_distance":null},"by_cardio_type":[]}`,
			workouts,
		))
	}))
	mux.HandleFunc("/analytics/exercise-history/", api.handle(func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusOK, fmt.Sprintf(
			`{"exercise":{"id":%s,"name":"Bench","muscle_group":"chest"},"points":[{"date":"2025-03-05","total_volume":"1000.00","total_reps":20,"avg_weight_per_rep":"50.00"}]}`,
			r.URL.Query().Get("exercise_id"),
		))
	}))
	mux.HandleFunc("/a/login", api.handlePublic(func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret1" {
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		writeFake(w, http.StatusOK, `{"token":"tok-1"}`)
	}))
	mux.HandleFunc("/a/register", api.handlePublic(func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusCreated, `{"user":{"id":7,"username":"serj"},"token":"tok-1"}`)
	}))
	mux.HandleFunc("/a/logout", api.handle(func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusOK, "logged-out")
	}))
	mux.HandleFunc("/a/me", api.handle(func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusOK, `{"id":7,"username":"serj"}`)
	}))

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)
	return api
}

func (api *fakeAPI) handlePublic(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.mutex.Lock()
		api.hits[hitKey(r)]++
		api.lastAuth = r.Header.Get("Authorization")
		api.mutex.Unlock()
		next(w, r)
	}
}

func (api *fakeAPI) handle(next http.HandlerFunc) http.HandlerFunc {
	return api.handlePublic(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+api.validToken {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		next(w, r)
	})
}

func (api *fakeAPI) client(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(api.server.Client()), WithToken(api.validToken)}, opts...)
	c, err := New(api.server.URL, opts...)
	if err != nil {
		t.Fatalf("new client: %s", err)
	}
	return c
}

func (api *fakeAPI) hitCount(key string) int {
	api.mutex.Lock()
	defer api.mutex.Unlock()
	return api.hits[key]
}

func (api *fakeAPI) saved() []DayInput {
	api.mutex.Lock()
	defer api.mutex.Unlock()
	return append([]DayInput(nil), api.savedDays...)
}

func hitKey(r *http.Request) string {
	key := r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}
	return key
}

func writeFake(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func dayJSON(date, notes string) string {
	return fmt.Sprintf(
		`{"date":%q,"notes":%q,"entries":[{"id":1,"exercise_id":1,"exercise_name":"Bench","muscle_group":"chest","sets":2,"reps":10,"weight":"50.00","total_weight":"1000.00"}],"cardio_entries":[{"id":1,"cardio_type_id":1,"cardio_type":{"id":1,"name":"Run"},"minutes":30,"distance":null}],"day_total_weight":"1000.00","day_total_reps":20,"day_total_cardio_minutes":30}`,
		date, notes,
	)
}
