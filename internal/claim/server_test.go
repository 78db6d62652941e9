package claim

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/zombor/flightclaim/internal/extraction"
)

func multipartUpload(url, field, filename string, data []byte) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(data)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	return http.Post(url, writer.FormDataContentType(), &body)
}

var _ = Describe("Server", func() {
	var (
		db          *mockDB
		extractor   *mockExtractor
		service     *Service
		server      *Server
		auth        BasicAuth
		ghttpServer *ghttp.Server
	)

	setupServer := func() {
		if ghttpServer != nil {
			ghttpServer.Close()
		}
		service = NewServiceWithDeps(db, extractor, newMockStorage(), 0.6,
			&mockIDGenerator{id: "claim-1"}, &defaultTimeSource{})
		server = NewServerWithMux(service, auth, http.NewServeMux())
		ghttpServer = ghttp.NewServer()
		// some specs issue more than one request
		ghttpServer.AppendHandlers(server.ServeHTTP, server.ServeHTTP, server.ServeHTTP)
	}

	BeforeEach(func() {
		db = newMockDB()
		extractor = &mockExtractor{result: highConfidenceResult()}
		auth = BasicAuth{}
	})

	JustBeforeEach(func() {
		setupServer()
	})

	AfterEach(func() {
		if ghttpServer != nil {
			ghttpServer.Close()
		}
	})

	Describe("handleUploadClaim", func() {
		When("a document is uploaded", func() {
			It("should return status Created with the claim", func() {
				resp, err := multipartUpload(ghttpServer.URL()+"/api/claims", "file", "pass.png", []byte("image bytes"))
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusCreated))

				var claim Claim
				Expect(json.NewDecoder(resp.Body).Decode(&claim)).To(Succeed())
				Expect(claim.ID).To(Equal("claim-1"))
				Expect(claim.Status).To(Equal(StatusExtracted))
				Expect(claim.Extraction.Segments[0].FlightNumber).To(Equal("LH1234"))
			})
		})

		When("no file field is present", func() {
			It("should return status Bad Request", func() {
				resp, err := multipartUpload(ghttpServer.URL()+"/api/claims", "wrong", "pass.png", []byte("image bytes"))
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})

		When("the document is unprocessable", func() {
			BeforeEach(func() {
				extractor.result = nil
				extractor.err = extraction.ErrFatalInput
			})

			It("should return status Unprocessable Entity with an error body", func() {
				resp, err := multipartUpload(ghttpServer.URL()+"/api/claims", "file", "junk.bin", []byte("junk"))
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusUnprocessableEntity))

				var body map[string]string
				Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
				Expect(body).To(HaveKey("error"))
			})
		})
	})

	Describe("handleListClaims", func() {
		When("claims exist", func() {
			BeforeEach(func() {
				db.claims["id1"] = &Claim{ID: "id1"}
				db.claims["id2"] = &Claim{ID: "id2"}
			})

			It("should return all claims as JSON", func() {
				resp, err := http.Get(ghttpServer.URL() + "/api/claims")
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Header.Get("Content-Type")).To(Equal("application/json"))

				var claims []*Claim
				Expect(json.NewDecoder(resp.Body).Decode(&claims)).To(Succeed())
				Expect(claims).To(HaveLen(2))
			})
		})
	})

	Describe("handleGetClaim", func() {
		BeforeEach(func() {
			db.claims["id1"] = &Claim{ID: "id1", Status: StatusNeedsReview}
		})

		It("should return the claim", func() {
			resp, err := http.Get(ghttpServer.URL() + "/api/claims/id1")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var claim Claim
			Expect(json.NewDecoder(resp.Body).Decode(&claim)).To(Succeed())
			Expect(claim.Status).To(Equal(StatusNeedsReview))
		})

		It("should return Not Found for an unknown ID", func() {
			resp, err := http.Get(ghttpServer.URL() + "/api/claims/missing")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("handleGetClaimFile", func() {
		It("should serve the uploaded bytes with the stored content type", func() {
			resp, err := multipartUpload(ghttpServer.URL()+"/api/claims", "file", "pass.png", []byte("image bytes"))
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()

			resp, err = http.Get(ghttpServer.URL() + "/api/claims/claim-1/file")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(Equal("image/png"))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal([]byte("image bytes")))
		})
	})

	Describe("handleDeleteClaim", func() {
		BeforeEach(func() {
			db.claims["id1"] = &Claim{ID: "id1"}
		})

		It("should return No Content and remove the claim", func() {
			req, err := http.NewRequest("DELETE", ghttpServer.URL()+"/api/claims/id1", nil)
			Expect(err).NotTo(HaveOccurred())
			resp, err := http.DefaultClient.Do(req)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
			Expect(db.claims).To(BeEmpty())
		})
	})

	Describe("basic auth", func() {
		BeforeEach(func() {
			auth = BasicAuth{Username: "admin", Password: "secret"}
		})

		It("should reject requests without credentials", func() {
			resp, err := http.Get(ghttpServer.URL() + "/api/claims")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(resp.Header.Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
		})

		It("should accept requests with valid credentials", func() {
			req, err := http.NewRequest("GET", ghttpServer.URL()+"/api/claims", nil)
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
			resp, err := http.DefaultClient.Do(req)
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("should leave the health endpoint open", func() {
			resp, err := http.Get(ghttpServer.URL() + "/healthz")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})
})
