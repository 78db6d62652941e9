package claim

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zombor/flightclaim/internal/extraction"
)

var _ = Describe("BoltDB", func() {
	var (
		tmpDir string
		dbPath string
		db     *BoltDB
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		dbPath = filepath.Join(tmpDir, "test.db")
		var err error
		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Describe("SaveClaim", func() {
		var (
			claim *Claim
			err   error
		)

		BeforeEach(func() {
			claim = &Claim{
				ID:          "test-id",
				Filename:    "test-id_pass.png",
				ContentType: "image/png",
				Extraction:  highConfidenceResult(),
				Status:      StatusExtracted,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
		})

		JustBeforeEach(func() {
			err = db.SaveClaim(claim)
		})

		When("saving succeeds", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should save the claim to the database", func() {
				saved, getErr := db.GetClaim("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal("test-id"))
				Expect(saved.Status).To(Equal(StatusExtracted))
			})

			It("should round-trip the nested extraction result", func() {
				saved, getErr := db.GetClaim("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(saved.Extraction.Segments).To(HaveLen(1))
				Expect(saved.Extraction.Segments[0].FlightNumber).To(Equal("LH1234"))
				Expect(saved.Extraction.Method).To(Equal(extraction.MethodBarcode("qr_code")))
				Expect(saved.Extraction.FieldConfidence[extraction.FieldFlightNumber]).To(Equal(0.95))
			})
		})
	})

	Describe("GetClaim", func() {
		When("the claim does not exist", func() {
			It("should return an error", func() {
				_, err := db.GetClaim("missing")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("claim not found"))
			})
		})
	})

	Describe("ListClaims", func() {
		BeforeEach(func() {
			for _, id := range []string{"a", "b", "c"} {
				Expect(db.SaveClaim(&Claim{ID: id, Status: StatusNeedsReview})).To(Succeed())
			}
		})

		It("should return all saved claims", func() {
			claims, err := db.ListClaims()
			Expect(err).NotTo(HaveOccurred())
			Expect(claims).To(HaveLen(3))
		})
	})

	Describe("DeleteClaim", func() {
		BeforeEach(func() {
			Expect(db.SaveClaim(&Claim{ID: "test-id"})).To(Succeed())
		})

		It("should remove the claim", func() {
			Expect(db.DeleteClaim("test-id")).To(Succeed())
			_, err := db.GetClaim("test-id")
			Expect(err).To(HaveOccurred())
		})

		It("should fail for an unknown claim", func() {
			Expect(db.DeleteClaim("missing")).NotTo(Succeed())
		})
	})
})
