package usecase

import (
	"context"
	"fmt"
	"strings"

	"breeze/internal/assistant"
	"breeze/internal/model"
	"breeze/pkg/llmprovider"
)

// SubmitPrompt runs one chat turn. Turns for the same session are processed one at a time.
func (uc *implUseCase) SubmitPrompt(ctx context.Context, sc model.Scope, input assistant.SubmitInput) (assistant.SubmitOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return assistant.SubmitOutput{}, assistant.ErrEmptyPrompt
	}

	unlock, err := uc.lockSession(ctx, sc.SessionID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.SubmitPrompt lockSession: %v", err)
		return assistant.SubmitOutput{}, err
	}
	defer unlock()

	conv, err := uc.repo.GetConversation(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.SubmitPrompt GetConversation: %v", err)
		return assistant.SubmitOutput{}, err
	}
	uc.appendTurn(&conv, prompt, true)

	resp, err := uc.extractIntent(ctx, prompt, conv.Fields)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.SubmitPrompt extractIntent: %v", err)
		uc.appendTurn(&conv, assistant.ReplyFor(err), false)
		uc.save(ctx, conv)
		return assistant.SubmitOutput{}, err
	}

	outcome, err := uc.resolver.Resolve(resp, conv.Draft())
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.SubmitPrompt Resolve: %v", err)
		uc.appendTurn(&conv, assistant.ReplyFor(err), false)
		uc.save(ctx, conv)
		return assistant.SubmitOutput{}, err
	}

	if !outcome.Ready {
		conv.Intent = outcome.Intent
		conv.Fields = outcome.Fields
		conv.Changed = outcome.Changed
		uc.appendTurn(&conv, outcome.Message, false)
		if err := uc.save(ctx, conv); err != nil {
			return assistant.SubmitOutput{}, err
		}
		return assistant.SubmitOutput{
			Intent:  outcome.Intent,
			Fields:  outcome.Fields,
			Message: outcome.Message,
		}, nil
	}

	t, err := uc.dispatch(ctx, sc, outcome)
	if err != nil {
		// Keep what was collected so the user can retry without repeating it.
		conv.Intent = outcome.Intent
		conv.Fields = outcome.Fields
		conv.Changed = outcome.Changed
		uc.appendTurn(&conv, assistant.ReplyFor(err), false)
		uc.save(ctx, conv)
		return assistant.SubmitOutput{}, fmt.Errorf("%w: %w", assistant.ErrDispatchFailure, err)
	}

	conv.Intent = ""
	conv.Fields = assistant.ProvidedFields{}
	conv.Changed = assistant.ProvidedFields{}
	uc.appendTurn(&conv, confirmation(outcome.Intent), false)
	if err := uc.save(ctx, conv); err != nil {
		return assistant.SubmitOutput{}, err
	}

	return assistant.SubmitOutput{
		Intent:     outcome.Intent,
		Fields:     outcome.Fields,
		Dispatched: true,
		Task:       t,
	}, nil
}

// extractIntent asks the provider chain for a structured intent.
func (uc *implUseCase) extractIntent(ctx context.Context, prompt string, known assistant.ProvidedFields) (assistant.IntentResponse, error) {
	var parsed assistant.IntentResponse
	decode := func(r *llmprovider.Response) error {
		out, err := assistant.DecodeIntentResponse(r.Text)
		if err != nil {
			return err
		}
		parsed = out
		return nil
	}

	_, err := uc.chain.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: assistant.SystemInstruction(uc.now()),
		Prompt:            assistant.BuildPrompt(prompt, known),
		Temperature:       defaultTemperature,
		MaxTokens:         defaultMaxTokens,
	}, decode)
	if err != nil {
		return assistant.IntentResponse{}, err
	}
	return parsed, nil
}

func (uc *implUseCase) appendTurn(conv *assistant.Conversation, text string, isUser bool) {
	id := 1
	if n := len(conv.Turns); n > 0 {
		id = conv.Turns[n-1].ID + 1
	}
	conv.Turns = append(conv.Turns, assistant.ConversationTurn{
		ID:        id,
		Text:      text,
		IsUser:    isUser,
		Timestamp: uc.now(),
	})
	if len(conv.Turns) > MaxTurns {
		conv.Turns = conv.Turns[len(conv.Turns)-MaxTurns:]
	}
}

func (uc *implUseCase) save(ctx context.Context, conv assistant.Conversation) error {
	conv.UpdatedAt = uc.now()
	if err := uc.repo.SaveConversation(ctx, conv); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.save: %v", err)
		return err
	}
	return nil
}

func confirmation(intent assistant.Intent) string {
	switch intent {
	case assistant.IntentUpdate:
		return "Task successfully updated"
	case assistant.IntentDelete:
		return "Task successfully deleted"
	default:
		return "Task successfully created"
	}
}
