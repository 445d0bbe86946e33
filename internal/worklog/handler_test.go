package worklog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/vesotel/worklog-management/internal/worklog"
)

var _ = Describe("WorkLog Handler Integration", func() {
	var (
		handler *worklog.Handler
		router  *chi.Mux
		userID  uuid.UUID
	)

	BeforeEach(func() {
		mockRepo := newMockWorkLogRepository()
		mockSettings := newMockSettingsGetter()
		userID = uuid.New()

		mockSettings.settings[userID] = newSettings(userID)

		service := worklog.NewService(mockRepo, mockSettings, nil, testLogger())
		handler = worklog.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/work-logs", handler.CreateWorkLog)
		router.Get("/work-logs", handler.ListWorkLogs)
		router.Get("/work-logs/{id}", handler.GetWorkLog)
		router.Get("/users/{userID}/work-logs", handler.ListUserWorkLogs)
	})

	Describe("POST /work-logs", func() {
		It("should create a work log and return the computed amount", func() {
			body := `{"user_id":"` + userID.String() + `","type":"particular","duration_hours":2}`
			req := httptest.NewRequest(http.MethodPost, "/work-logs", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var response worklog.WorkLog
			err := json.NewDecoder(w.Body).Decode(&response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Amount).To(Equal(50.0))
			Expect(response.RateApplied).To(Equal(25.0))
		})

		It("should return 400 for an unknown log type", func() {
			body := `{"user_id":"` + userID.String() + `","type":"freelance"}`
			req := httptest.NewRequest(http.MethodPost, "/work-logs", strings.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/work-logs", strings.NewReader("{nope"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /work-logs/{id}", func() {
		It("should return 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/work-logs/"+uuid.NewString(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-uuid id", func() {
			req := httptest.NewRequest(http.MethodGet, "/work-logs/abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /users/{userID}/work-logs", func() {
		BeforeEach(func() {
			for i := 0; i < 3; i++ {
				body := `{"user_id":"` + userID.String() + `","type":"particular","duration_hours":1}`
				req := httptest.NewRequest(http.MethodPost, "/work-logs", strings.NewReader(body))
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				Expect(w.Code).To(Equal(http.StatusCreated))
			}
		})

		It("should return the user's logs as a bare array", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/work-logs", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response []*worklog.WorkLog
			err := json.NewDecoder(w.Body).Decode(&response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(HaveLen(3))
		})

		It("should honor skip and limit query params", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/work-logs?skip=1&limit=1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var response []*worklog.WorkLog
			err := json.NewDecoder(w.Body).Decode(&response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(HaveLen(1))
		})

		It("should return an empty array for a user without logs", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString()+"/work-logs", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
		})
	})
})
