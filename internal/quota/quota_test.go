package quota

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestQuota(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Quota Suite")
}

// mockTimeSource returns a fixed time for testing
type mockTimeSource struct {
	fixedTime time.Time
}

func (m *mockTimeSource) Now() time.Time {
	return m.fixedTime
}

var _ = Describe("BoltCounter", func() {
	var (
		tempDir string
		counter *BoltCounter
		clock   *mockTimeSource
		limit   int
		err     error
	)

	BeforeEach(func() {
		tempDir, err = os.MkdirTemp("", "quota-test-*")
		Expect(err).ToNot(HaveOccurred())
		clock = &mockTimeSource{fixedTime: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
		limit = 3
	})

	JustBeforeEach(func() {
		counter, err = NewBoltCounterWithTimeSource(filepath.Join(tempDir, "quota.db"), limit, clock)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		counter.Close()
		os.RemoveAll(tempDir)
	})

	When("calls stay under the limit", func() {
		It("should allow each call and count them", func() {
			for i := 1; i <= 3; i++ {
				allowed, count, err := counter.CheckAndIncrement()
				Expect(err).ToNot(HaveOccurred())
				Expect(allowed).To(BeTrue())
				Expect(count).To(Equal(i))
			}
		})

		It("should report the remaining budget", func() {
			_, _, err := counter.CheckAndIncrement()
			Expect(err).ToNot(HaveOccurred())

			remaining, err := counter.Remaining()
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(2))
		})
	})

	When("the limit is reached", func() {
		JustBeforeEach(func() {
			for i := 0; i < 3; i++ {
				_, _, err := counter.CheckAndIncrement()
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("should deny further calls without counting them", func() {
			allowed, count, err := counter.CheckAndIncrement()
			Expect(err).ToNot(HaveOccurred())
			Expect(allowed).To(BeFalse())
			Expect(count).To(Equal(3))

			remaining, err := counter.Remaining()
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(0))
		})

		It("should allow calls again after the month rolls over", func() {
			clock.fixedTime = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

			allowed, count, err := counter.CheckAndIncrement()
			Expect(err).ToNot(HaveOccurred())
			Expect(allowed).To(BeTrue())
			Expect(count).To(Equal(1))
		})
	})

	When("the limit is disabled", func() {
		BeforeEach(func() {
			limit = 0
		})

		It("should always allow calls", func() {
			for i := 0; i < 10; i++ {
				allowed, _, err := counter.CheckAndIncrement()
				Expect(err).ToNot(HaveOccurred())
				Expect(allowed).To(BeTrue())
			}
		})

		It("should report an unbounded budget", func() {
			remaining, err := counter.Remaining()
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(-1))
		})
	})

	When("the counter is reopened", func() {
		It("should keep the month's count", func() {
			_, _, err := counter.CheckAndIncrement()
			Expect(err).ToNot(HaveOccurred())
			_, _, err = counter.CheckAndIncrement()
			Expect(err).ToNot(HaveOccurred())
			Expect(counter.Close()).To(Succeed())

			counter, err = NewBoltCounterWithTimeSource(filepath.Join(tempDir, "quota.db"), limit, clock)
			Expect(err).ToNot(HaveOccurred())

			remaining, err := counter.Remaining()
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(1))
		})
	})
})
