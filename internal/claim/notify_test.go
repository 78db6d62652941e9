package claim

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("WebhookNotifier", func() {
	var (
		webhook  *ghttp.Server
		notifier *WebhookNotifier
	)

	BeforeEach(func() {
		webhook = ghttp.NewServer()
		var err error
		notifier, err = NewWebhookNotifier(webhook.URL())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		webhook.Close()
	})

	When("the endpoint accepts the alert", func() {
		BeforeEach(func() {
			webhook.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/"),
				ghttp.VerifyContentType("application/json"),
				ghttp.VerifyJSON(`{"source": "flightclaim", "message": "AI extraction quota exhausted at 50 calls this month"}`),
				ghttp.RespondWith(http.StatusOK, ""),
			))
		})

		It("should post the message", func() {
			err := notifier.Alert(context.Background(), "AI extraction quota exhausted at 50 calls this month")
			Expect(err).NotTo(HaveOccurred())
			Expect(webhook.ReceivedRequests()).To(HaveLen(1))
		})
	})

	When("the endpoint rejects the alert", func() {
		BeforeEach(func() {
			webhook.AppendHandlers(ghttp.RespondWith(http.StatusBadGateway, "upstream down"))
		})

		It("should return an error with the status", func() {
			err := notifier.Alert(context.Background(), "test")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("502"))
		})
	})

	Describe("NewWebhookNotifier", func() {
		It("should require a URL", func() {
			_, err := NewWebhookNotifier("")
			Expect(err).To(HaveOccurred())
		})
	})
})
