package assistant_test

import (
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"breeze/internal/assistant"
)

var _ = Describe("BuildPrompt", func() {
	It("returns the bare utterance when nothing is known", func() {
		Expect(assistant.BuildPrompt(" add a task ", assistant.ProvidedFields{})).To(Equal("add a task"))
	})

	It("appends known fields as key value pairs", func() {
		got := assistant.BuildPrompt("it's for the Q1 budget", assistant.ProvidedFields{
			Title:    "submit the report",
			DueDate:  "2025-01-15",
			Priority: "high",
		})
		Expect(got).To(Equal("it's for the Q1 budget, title submit the report, dueDate 2025-01-15, priority high"))
	})
})

var _ = Describe("DecodeIntentResponse", func() {
	DescribeTable("accepted outputs",
		func(raw string, wantTitle string) {
			out, err := assistant.DecodeIntentResponse(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Intent).To(Equal("create"))
			Expect(out.ProvidedFields.Title).To(Equal(wantTitle))
		},
		Entry("json fence", "Sure!\n```json\n{\"intent\":\"create\",\"providedFields\":{\"title\":\"Pay rent\"},\"message\":\"\"}\n```", "Pay rent"),
		Entry("bare fence", "```\n{\"intent\":\"create\",\"providedFields\":{\"title\":\"Gym\"}}\n```", "Gym"),
		Entry("first of two blocks", "```json\n{\"intent\":\"create\",\"providedFields\":{\"title\":\"A\"}}\n```\n```json\n{\"intent\":\"delete\"}\n```", "A"),
	)

	It("fails when no fenced block is present", func() {
		_, err := assistant.DecodeIntentResponse(`{"intent":"create"}`)
		Expect(errors.Is(err, assistant.ErrNoJSONBlock)).To(BeTrue())
	})

	It("fails on invalid json inside the fence", func() {
		_, err := assistant.DecodeIntentResponse("```json\n{intent: create}\n```")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SystemInstruction", func() {
	It("embeds today's date and the response schema", func() {
		got := assistant.SystemInstruction(time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC))
		Expect(got).To(ContainSubstring("today is 2025-01-14"))
		Expect(got).To(ContainSubstring(`"providedFields"`))
		Expect(strings.Count(got, "```")).To(BeNumerically(">=", 2))
	})
})
