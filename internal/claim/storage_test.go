package claim

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalStorage", func() {
	var (
		tmpDir  string
		storage Storage
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		var err error
		storage, err = NewLocalStorage(tmpDir)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Save", func() {
		var (
			filename  string
			data      []byte
			savedPath string
			err       error
		)

		BeforeEach(func() {
			filename = "pass.png"
			data = []byte("test file content")
		})

		JustBeforeEach(func() {
			savedPath, err = storage.Save(filename, data)
		})

		When("the filename carries path separators", func() {
			BeforeEach(func() {
				filename = filepath.Join("..", "..", "escape.png")
			})

			It("should store under the base name inside the directory", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(savedPath).To(Equal("escape.png"))
				written, readErr := os.ReadFile(filepath.Join(tmpDir, "escape.png"))
				Expect(readErr).NotTo(HaveOccurred())
				Expect(written).To(Equal(data))
			})

			It("should not write outside the directory", func() {
				_, statErr := os.Stat(filepath.Join(tmpDir, "..", "escape.png"))
				Expect(os.IsNotExist(statErr)).To(BeTrue())
			})
		})

		When("saving succeeds", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the correct path", func() {
				Expect(savedPath).To(Equal(filename))
			})

			It("should save the file to disk", func() {
				written, readErr := os.ReadFile(filepath.Join(tmpDir, filename))
				Expect(readErr).NotTo(HaveOccurred())
				Expect(written).To(Equal(data))
			})
		})
	})

	Describe("Get", func() {
		BeforeEach(func() {
			_, err := storage.Save("pass.png", []byte("stored bytes"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the stored data", func() {
			data, err := storage.Get("pass.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte("stored bytes")))
		})

		It("should fail for a missing file", func() {
			_, err := storage.Get("missing.png")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			_, err := storage.Save("pass.png", []byte("stored bytes"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should remove the file", func() {
			Expect(storage.Delete("pass.png")).To(Succeed())
			_, err := os.Stat(filepath.Join(tmpDir, "pass.png"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should fail for a missing file", func() {
			Expect(storage.Delete("missing.png")).NotTo(Succeed())
		})
	})

	Describe("NewLocalStorage", func() {
		It("should create the base directory", func() {
			nested := filepath.Join(tmpDir, "a", "b")
			_, err := NewLocalStorage(nested)
			Expect(err).NotTo(HaveOccurred())
			info, statErr := os.Stat(nested)
			Expect(statErr).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})
	})
})
