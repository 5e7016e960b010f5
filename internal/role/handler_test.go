package role_test

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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
	"github.com/saifuldipak/eoffice/internal/role"
	rolePostgres "github.com/saifuldipak/eoffice/internal/role/postgres"
	"github.com/saifuldipak/eoffice/internal/transport"
)

var _ = Describe("Role Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *role.Handler
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

		err = db.AutoMigrate(&roleDatamodel.Role{}, &roleDatamodel.RolePermission{})
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := rolePostgres.NewRoleRepository(db)
		service := role.NewService(repo, slogger)
		handler = role.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Post("/users/roles", handler.CreateRole)
		router.Post("/users/roles/permissions", handler.AddPermission)
	})

	doRequest := func(path string, payload map[string]any) *httptest.ResponseRecorder {
		body, err := json.Marshal(payload)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("POST /users/roles", func() {
		It("should create a role and echo name, description, and id", func() {
			w := doRequest("/users/roles", map[string]any{
				"name":        "test_role",
				"description": "A test role for testing",
			})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["name"]).To(Equal("test_role"))
			Expect(resp["description"]).To(Equal("A test role for testing"))
			Expect(resp).To(HaveKey("id"))
		})

		It("should answer 409 when the same role is submitted twice", func() {
			payload := map[string]any{
				"name":        "duplicate_role",
				"description": "This role should only be created once",
			}
			Expect(doRequest("/users/roles", payload).Code).To(Equal(http.StatusCreated))
			Expect(doRequest("/users/roles", payload).Code).To(Equal(http.StatusConflict))
		})

		It("should answer 400 when name is missing", func() {
			w := doRequest("/users/roles", map[string]any{"description": "A role without a name"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should allow a null description", func() {
			w := doRequest("/users/roles", map[string]any{
				"name":        "no_description_role",
				"description": nil,
			})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["description"]).To(BeNil())
		})

		It("should allow omitting the description field entirely", func() {
			w := doRequest("/users/roles", map[string]any{"name": "minimal_role"})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(HaveKey("description"))
		})
	})

	Describe("POST /users/roles/permissions", func() {
		var roleID float64

		BeforeEach(func() {
			w := doRequest("/users/roles", map[string]any{"name": "ticket_manager"})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			roleID = resp["id"].(float64)
		})

		It("should attach a permission and return it with an id", func() {
			w := doRequest("/users/roles/permissions", map[string]any{
				"role_id":    roleID,
				"permission": "manage_ticket",
			})
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["permission"]).To(Equal("manage_ticket"))
			Expect(resp["id"]).To(BeNumerically(">", 0))
		})

		It("should answer 409 for a duplicate pair", func() {
			payload := map[string]any{"role_id": roleID, "permission": "manage_ticket"}
			Expect(doRequest("/users/roles/permissions", payload).Code).To(Equal(http.StatusCreated))
			Expect(doRequest("/users/roles/permissions", payload).Code).To(Equal(http.StatusConflict))
		})

		It("should answer 400 for a token outside the permission set", func() {
			w := doRequest("/users/roles/permissions", map[string]any{
				"role_id":    roleID,
				"permission": "MANAGE_TICKET",
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
