package api_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPISpec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Spec Suite")
}

var _ = Describe("openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every workflow route", func() {
		for _, path := range []string{
			"/documents",
			"/documents/{id}",
			"/documents/{id}/status",
			"/documents/{id}/referrals",
			"/documents/{id}/comments",
			"/documents/{id}/trail",
			"/recipients",
			"/users/{id}",
			"/document-types",
			"/health",
			"/ping",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("declares the four workflow statuses", func() {
		status := doc.Components.Schemas["DocumentStatus"]
		Expect(status).NotTo(BeNil())
		Expect(status.Value.Enum).To(ConsistOf("pending", "in-review", "referred", "completed"))
	})

	It("declares the four trail entry kinds", func() {
		record := doc.Components.Schemas["ActivityRecord"]
		Expect(record).NotTo(BeNil())
		kind := record.Value.Properties["kind"]
		Expect(kind.Value.Enum).To(ConsistOf("upload", "referral", "comment", "status-change"))
	})
})
