package swagger_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/saifuldipak/eoffice/internal/transport/swagger"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("LoadSpec", func() {
	It("should load and validate the shipped OpenAPI document", func() {
		doc, err := swagger.LoadSpec("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Info.Title).NotTo(BeEmpty())

		for _, path := range []string{"/users", "/users/{username}", "/users/roles", "/users/roles/permissions"} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "path %s missing from document", path)
		}
	})

	It("should fail on a missing file", func() {
		_, err := swagger.LoadSpec("does-not-exist.yml")
		Expect(err).To(HaveOccurred())
	})
})
