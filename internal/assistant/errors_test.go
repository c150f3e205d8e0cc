package assistant_test

import (
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"breeze/internal/assistant"
	"breeze/internal/task"
	"breeze/pkg/llmprovider"
)

var _ = Describe("error mapping", func() {
	DescribeTable("StatusFor and ReplyFor",
		func(err error, wantStatus int, wantReply string) {
			Expect(assistant.StatusFor(err)).To(Equal(wantStatus))
			Expect(assistant.ReplyFor(err)).To(Equal(wantReply))
		},
		Entry("exhausted chain is transient",
			fmt.Errorf("%w: last error", llmprovider.ErrChainExhausted),
			http.StatusServiceUnavailable, assistant.MessageExhausted),
		Entry("malformed provider output is a server fault",
			&llmprovider.ProviderError{Provider: "p", Kind: llmprovider.FailureMalformed, Err: errors.New("no block")},
			http.StatusInternalServerError, assistant.MessageFailure),
		Entry("unknown intent is a server fault",
			assistant.ErrUnknownIntent,
			http.StatusInternalServerError, assistant.MessageFailure),
		Entry("missing task",
			fmt.Errorf("%w: %w", assistant.ErrDispatchFailure, task.ErrTaskNotFound),
			http.StatusUnprocessableEntity, assistant.MessageNotFound),
		Entry("rejected due date",
			fmt.Errorf("%w: %w", assistant.ErrDispatchFailure, task.ErrInvalidDueDate),
			http.StatusUnprocessableEntity, assistant.MessageInvalid),
		Entry("empty prompt",
			assistant.ErrEmptyPrompt,
			http.StatusBadRequest, "Please type a request first."),
		Entry("session held by another request",
			assistant.ErrSessionBusy,
			http.StatusConflict, assistant.MessageBusy),
	)
})
