package usecase

import (
	"context"

	"breeze/internal/assistant"
	"breeze/internal/model"
)

// History returns the session transcript and the fields collected so far.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (assistant.HistoryOutput, error) {
	conv, err := uc.repo.GetConversation(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.History GetConversation: %v", err)
		return assistant.HistoryOutput{}, err
	}
	return assistant.HistoryOutput{
		Intent: conv.Intent,
		Fields: conv.Fields,
		Turns:  conv.Turns,
	}, nil
}

// Reset drops the session's transcript and collected fields.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	unlock, err := uc.lockSession(ctx, sc.SessionID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.Reset lockSession: %v", err)
		return err
	}
	defer unlock()

	if err := uc.repo.DeleteConversation(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Reset DeleteConversation: %v", err)
		return err
	}
	return nil
}
