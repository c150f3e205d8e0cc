package assistant_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"breeze/internal/assistant"
	"breeze/pkg/datemath"
)

var _ = Describe("Resolver", func() {
	var (
		resolver *assistant.Resolver
		now      = time.Date(2025, 1, 14, 9, 30, 0, 0, time.UTC) // a Tuesday
	)

	BeforeEach(func() {
		dates, err := datemath.NewParser("UTC")
		Expect(err).NotTo(HaveOccurred())
		resolver = assistant.NewResolver(dates).WithClock(func() time.Time { return now })
	})

	Describe("merging across turns", func() {
		It("never reverts a known field when a later response omits or invalidates it", func() {
			prior := assistant.ProvidedFields{}
			responses := []assistant.ProvidedFields{
				{Title: "Pay rent", Priority: "high"},
				{Priority: "HIGH", DueDate: "someday"},
				{Description: "  ", DueDate: "2025-02-01"},
				{Title: "", DueDate: "2025-02-30"},
				{Priority: "urgent"},
			}

			for _, incoming := range responses {
				out, err := resolver.Resolve(assistant.IntentResponse{Intent: "create", ProvidedFields: incoming}, assistant.Draft{Fields: prior})
				Expect(err).NotTo(HaveOccurred())

				if prior.Title != "" {
					Expect(out.Fields.Title).To(Equal(prior.Title))
				}
				if prior.Priority != "" {
					Expect(out.Fields.Priority).To(Equal(prior.Priority))
				}
				if prior.DueDate != "" {
					Expect(out.Fields.DueDate).To(Equal(prior.DueDate))
				}
				prior = out.Fields
			}

			Expect(prior).To(Equal(assistant.ProvidedFields{
				Title:    "Pay rent",
				Priority: "high",
				DueDate:  "2025-02-01",
			}))
		})

		It("lets a newer valid value overwrite an older one", func() {
			prior := assistant.ProvidedFields{Title: "Old", Priority: "low"}
			out, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "create",
				ProvidedFields: assistant.ProvidedFields{Title: "New", Priority: "medium"},
			}, assistant.Draft{Fields: prior})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Fields.Title).To(Equal("New"))
			Expect(out.Fields.Priority).To(Equal("medium"))
		})

		It("normalises relative due dates", func() {
			out, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "create",
				ProvidedFields: assistant.ProvidedFields{DueDate: "tomorrow"},
			}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Fields.DueDate).To(Equal("2025-01-15"))
		})
	})

	DescribeTable("create completeness gate",
		func(fields assistant.ProvidedFields, wantReady bool, wantMissing []string) {
			out, err := resolver.Resolve(assistant.IntentResponse{Intent: "create", ProvidedFields: fields}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Ready).To(Equal(wantReady))
			if wantReady {
				Expect(out.Missing).To(BeEmpty())
			} else {
				Expect(out.Missing).To(Equal(wantMissing))
			}
		},
		Entry("all four valid", assistant.ProvidedFields{Title: "t", Description: "d", DueDate: "2025-03-01", Priority: "low"}, true, nil),
		Entry("missing description", assistant.ProvidedFields{Title: "t", DueDate: "2025-03-01", Priority: "low"}, false, []string{"description"}),
		Entry("priority wrong case", assistant.ProvidedFields{Title: "t", Description: "d", DueDate: "2025-03-01", Priority: "Low"}, false, []string{"priority"}),
		Entry("priority padded with spaces", assistant.ProvidedFields{Title: "t", Description: "d", DueDate: "2025-03-01", Priority: " high "}, false, []string{"priority"}),
		Entry("priority outside enum", assistant.ProvidedFields{Title: "t", Description: "d", DueDate: "2025-03-01", Priority: "urgent"}, false, []string{"priority"}),
		Entry("impossible calendar date", assistant.ProvidedFields{Title: "t", Description: "d", DueDate: "2025-02-30", Priority: "low"}, false, []string{"dueDate"}),
		Entry("nothing provided", assistant.ProvidedFields{}, false, []string{"title", "description", "dueDate", "priority"}),
	)

	DescribeTable("update and delete need an identifier",
		func(intent string, fields assistant.ProvidedFields, wantReady bool) {
			out, err := resolver.Resolve(assistant.IntentResponse{Intent: intent, ProvidedFields: fields}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Ready).To(Equal(wantReady))
		},
		Entry("update with id and change", "update", assistant.ProvidedFields{TaskID: "t1", Priority: "high"}, true),
		Entry("update without change", "update", assistant.ProvidedFields{TaskID: "t1"}, false),
		Entry("update without id", "update", assistant.ProvidedFields{Title: "x"}, false),
		Entry("delete with id", "delete", assistant.ProvidedFields{TaskID: "t1"}, true),
		Entry("delete without id", "delete", assistant.ProvidedFields{Title: "x"}, false),
	)

	Describe("clarification message", func() {
		It("uses the provider message verbatim when present", func() {
			out, err := resolver.Resolve(assistant.IntentResponse{
				Intent:  "create",
				Message: "What should the task be called?",
			}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Message).To(Equal("What should the task be called?"))
		})

		It("falls back to listing the missing fields", func() {
			out, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "create",
				ProvidedFields: assistant.ProvidedFields{Title: "t", DueDate: "2025-03-01"},
			}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Message).To(Equal("Please provide the following fields: description, priority."))
		})
	})

	Describe("intent tags", func() {
		It("rejects an unknown tag", func() {
			_, err := resolver.Resolve(assistant.IntentResponse{Intent: "archive"}, assistant.Draft{})
			Expect(errors.Is(err, assistant.ErrUnknownIntent)).To(BeTrue())
		})

		It("continues the pending intent when the tag is empty", func() {
			out, err := resolver.Resolve(assistant.IntentResponse{}, assistant.Draft{Intent: assistant.IntentCreate, Fields: assistant.ProvidedFields{Title: "t"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Intent).To(Equal(assistant.IntentCreate))
		})

		It("treats tags as case-sensitive", func() {
			_, err := resolver.Resolve(assistant.IntentResponse{Intent: "CREATE"}, assistant.Draft{})
			Expect(errors.Is(err, assistant.ErrUnknownIntent)).To(BeTrue())

			_, err = resolver.Resolve(assistant.IntentResponse{Intent: " update"}, assistant.Draft{})
			Expect(errors.Is(err, assistant.ErrUnknownIntent)).To(BeTrue())
		})

		It("rejects an empty tag with nothing pending", func() {
			_, err := resolver.Resolve(assistant.IntentResponse{}, assistant.Draft{})
			Expect(errors.Is(err, assistant.ErrUnknownIntent)).To(BeTrue())
		})
	})

	Describe("switching intent", func() {
		It("does not count an abandoned create draft as update changes", func() {
			draft, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "create",
				ProvidedFields: assistant.ProvidedFields{Title: "Draft title", Description: "draft body"},
			}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())

			bare, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "update",
				ProvidedFields: assistant.ProvidedFields{TaskID: "t9"},
			}, draft.Draft())
			Expect(err).NotTo(HaveOccurred())
			Expect(bare.Ready).To(BeFalse())
			Expect(bare.Missing).To(Equal([]string{"at least one of title, description, dueDate, priority"}))
			Expect(bare.Fields.Title).To(Equal("Draft title"))

			ready, err := resolver.Resolve(assistant.IntentResponse{
				ProvidedFields: assistant.ProvidedFields{Priority: "low"},
			}, bare.Draft())
			Expect(err).NotTo(HaveOccurred())
			Expect(ready.Ready).To(BeTrue())
			Expect(ready.Intent).To(Equal(assistant.IntentUpdate))
			Expect(ready.Changed.Title).To(BeEmpty())
			Expect(ready.Changed.Description).To(BeEmpty())
			Expect(ready.Changed.Priority).To(Equal("low"))
		})

		It("keeps accumulating changes while the same intent is pending", func() {
			first, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "update",
				ProvidedFields: assistant.ProvidedFields{Title: "Renamed"},
			}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Ready).To(BeFalse())

			second, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "update",
				ProvidedFields: assistant.ProvidedFields{TaskID: "t1"},
			}, first.Draft())
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Ready).To(BeTrue())
			Expect(second.Changed.Title).To(Equal("Renamed"))
		})
	})

	Describe("report conversation", func() {
		It("asks for the description, then becomes ready once it arrives", func() {
			tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

			first, err := resolver.Resolve(assistant.IntentResponse{
				Intent: "create",
				ProvidedFields: assistant.ProvidedFields{
					Title:    "submit the report",
					DueDate:  tomorrow,
					Priority: "high",
				},
			}, assistant.Draft{})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Ready).To(BeFalse())
			Expect(first.Message).To(Equal("Please provide the following fields: description."))

			second, err := resolver.Resolve(assistant.IntentResponse{
				Intent:         "create",
				ProvidedFields: assistant.ProvidedFields{Description: "for the Q1 budget"},
			}, first.Draft())
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Ready).To(BeTrue())
			Expect(second.Intent).To(Equal(assistant.IntentCreate))
			Expect(second.Fields).To(Equal(assistant.ProvidedFields{
				Title:       "submit the report",
				Description: "for the Q1 budget",
				DueDate:     tomorrow,
				Priority:    "high",
			}))
		})
	})
})
