package user_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
	userDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/user"
	"github.com/saifuldipak/eoffice/internal/transport"
	"github.com/saifuldipak/eoffice/internal/user"
	userPostgres "github.com/saifuldipak/eoffice/internal/user/postgres"
)

var _ = Describe("User Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *user.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		err = db.AutoMigrate(&roleDatamodel.Role{}, &userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := userPostgres.NewUserRepository(db)
		service := user.NewService(repo, bcrypt.MinCost, slogger)
		handler = user.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Post("/users", handler.CreateUser)
		router.Get("/users/{username}", handler.GetUsers)
		router.Delete("/users/{username}", handler.DeleteUser)
		router.Patch("/users/{username}", handler.UpdateUser)
	})

	createBody := func() []byte {
		body, err := json.Marshal(map[string]any{
			"username":   "saiful",
			"first_name": "Saiful",
			"last_name":  "Dipak",
			"email":      "saiful@eoffice",
			"password":   "secret123",
		})
		Expect(err).NotTo(HaveOccurred())
		return body
	}

	doRequest := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("POST /users", func() {
		It("should create a user and omit the password from the response", func() {
			w := doRequest(http.MethodPost, "/users", createBody())
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["username"]).To(Equal("saiful"))
			Expect(resp["id"]).To(BeNumerically(">", 0))
			Expect(resp["is_active"]).To(BeTrue())
			Expect(resp).NotTo(HaveKey("password"))
		})

		It("should answer 409 for a duplicate user", func() {
			Expect(doRequest(http.MethodPost, "/users", createBody()).Code).To(Equal(http.StatusCreated))
			Expect(doRequest(http.MethodPost, "/users", createBody()).Code).To(Equal(http.StatusConflict))
		})

		It("should answer 400 when required fields are missing", func() {
			body, _ := json.Marshal(map[string]any{"username": "saiful"})
			Expect(doRequest(http.MethodPost, "/users", body).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /users/{username}", func() {
		BeforeEach(func() {
			Expect(doRequest(http.MethodPost, "/users", createBody()).Code).To(Equal(http.StatusCreated))
		})

		It("should list users matching the prefix", func() {
			w := doRequest(http.MethodGet, "/users/sai", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var users []map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&users)).To(Succeed())
			Expect(users).To(HaveLen(1))
			Expect(users[0]["username"]).To(Equal("saiful"))
		})

		It("should answer 404 when nothing matches", func() {
			Expect(doRequest(http.MethodGet, "/users/zz", nil).Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /users/{username}", func() {
		BeforeEach(func() {
			Expect(doRequest(http.MethodPost, "/users", createBody()).Code).To(Equal(http.StatusCreated))
		})

		It("should delete and confirm", func() {
			w := doRequest(http.MethodDelete, "/users/saiful", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp user.DeleteUserResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Message).To(Equal("User saiful successfully deleted"))

			Expect(doRequest(http.MethodGet, "/users/saiful", nil).Code).To(Equal(http.StatusNotFound))
		})

		It("should answer 404 for an unknown username", func() {
			Expect(doRequest(http.MethodDelete, "/users/ghost", nil).Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("PATCH /users/{username}", func() {
		BeforeEach(func() {
			Expect(doRequest(http.MethodPost, "/users", createBody()).Code).To(Equal(http.StatusCreated))
		})

		It("should apply a partial update", func() {
			body, _ := json.Marshal(map[string]any{"first_name": "Changed"})
			w := doRequest(http.MethodPatch, "/users/saiful", body)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["first_name"]).To(Equal("Changed"))
			Expect(resp["last_name"]).To(Equal("Dipak"))
		})

		It("should answer 400 for an empty patch", func() {
			Expect(doRequest(http.MethodPatch, "/users/saiful", []byte(`{}`)).Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer 404 for an unknown username", func() {
			body, _ := json.Marshal(map[string]any{"first_name": "X"})
			Expect(doRequest(http.MethodPatch, "/users/ghost", body).Code).To(Equal(http.StatusNotFound))
		})

		It("should answer 409 when the patch takes another user's email", func() {
			other, _ := json.Marshal(map[string]any{
				"username":   "karim",
				"first_name": "Karim",
				"last_name":  "Uddin",
				"email":      "karim@eoffice",
				"password":   "secret123",
			})
			Expect(doRequest(http.MethodPost, "/users", other).Code).To(Equal(http.StatusCreated))

			body, _ := json.Marshal(map[string]any{"email": "saiful@eoffice"})
			Expect(doRequest(http.MethodPatch, "/users/karim", body).Code).To(Equal(http.StatusConflict))
		})
	})
})
