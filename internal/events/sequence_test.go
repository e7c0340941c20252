package events

import (
	"context"
	"testing"
)

func TestNextSequenceIncrementsPerPartition(t *testing.T) {
	seqs := NewSequences()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := seqs.NextSequence(ctx, "session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("sequence = %d, want %d", got, want)
		}
	}
}

func TestNextSequencePartitionsAreIndependent(t *testing.T) {
	seqs := NewSequences()
	ctx := context.Background()

	if _, err := seqs.NextSequence(ctx, "session-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := seqs.NextSequence(ctx, "session-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := seqs.NextSequence(ctx, "session-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("fresh partition sequence = %d, want 1", got)
	}
}

func TestNextSequenceRequiresPartitionKey(t *testing.T) {
	seqs := NewSequences()

	if _, err := seqs.NextSequence(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty partition key")
	}
}
