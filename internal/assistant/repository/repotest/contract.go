// Package repotest holds the behaviour every conversation Repository must satisfy.
package repotest

import (
	"context"
	"errors"
	"testing"
	"time"

	"breeze/internal/assistant"
	"breeze/internal/assistant/repository"
)

// Run exercises repo against the Repository contract. sessionID must be unused.
func Run(t *testing.T, repo repository.Repository, sessionID string) {
	t.Helper()
	ctx := context.Background()

	t.Run("unknown session is empty", func(t *testing.T) {
		conv, err := repo.GetConversation(ctx, sessionID)
		if err != nil {
			t.Fatalf("GetConversation: %v", err)
		}
		if conv.SessionID != sessionID || !conv.Fields.IsEmpty() || len(conv.Turns) != 0 {
			t.Errorf("expected empty conversation, got %+v", conv)
		}
	})

	t.Run("save then get", func(t *testing.T) {
		want := assistant.Conversation{
			SessionID: sessionID,
			Intent:    assistant.IntentCreate,
			Fields:    assistant.ProvidedFields{Title: "Pay rent", Priority: "high"},
			Turns: []assistant.ConversationTurn{
				{ID: 1, Text: "pay rent", IsUser: true, Timestamp: time.Unix(1700000000, 0).UTC()},
			},
		}
		if err := repo.SaveConversation(ctx, want); err != nil {
			t.Fatalf("SaveConversation: %v", err)
		}

		got, err := repo.GetConversation(ctx, sessionID)
		if err != nil {
			t.Fatalf("GetConversation: %v", err)
		}
		if got.Intent != want.Intent || got.Fields != want.Fields {
			t.Errorf("got %+v, want %+v", got, want)
		}
		if len(got.Turns) != 1 || got.Turns[0].Text != "pay rent" || !got.Turns[0].Timestamp.Equal(want.Turns[0].Timestamp) {
			t.Errorf("turns = %+v", got.Turns)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.DeleteConversation(ctx, sessionID); err != nil {
			t.Fatalf("DeleteConversation: %v", err)
		}
		got, err := repo.GetConversation(ctx, sessionID)
		if err != nil {
			t.Fatalf("GetConversation: %v", err)
		}
		if !got.Fields.IsEmpty() || len(got.Turns) != 0 {
			t.Errorf("expected empty after delete, got %+v", got)
		}
	})

	t.Run("empty session id", func(t *testing.T) {
		if _, err := repo.GetConversation(ctx, ""); !errors.Is(err, repository.ErrSessionRequired) {
			t.Errorf("err = %v, want ErrSessionRequired", err)
		}
		if err := repo.SaveConversation(ctx, assistant.Conversation{}); !errors.Is(err, repository.ErrSessionRequired) {
			t.Errorf("err = %v, want ErrSessionRequired", err)
		}
	})
}
