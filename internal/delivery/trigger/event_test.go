package trigger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docPrefix = "projects/demo/databases/(default)/documents/"

func TestEvent_IsCreate(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{
			name:  "creation has only a new value",
			event: Event{Value: Value{Name: docPrefix + "messages/m1"}},
			want:  true,
		},
		{
			name: "update carries both values",
			event: Event{
				OldValue: Value{Name: docPrefix + "messages/m1"},
				Value:    Value{Name: docPrefix + "messages/m1"},
			},
			want: false,
		},
		{
			name:  "deletion has only an old value",
			event: Event{OldValue: Value{Name: docPrefix + "messages/m1"}},
			want:  false,
		},
		{
			name:  "empty envelope",
			event: Event{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.IsCreate())
		})
	}
}

func TestValue_PathAccessors(t *testing.T) {
	tests := []struct {
		name           string
		resource       string
		wantCollection string
		wantDocID      string
	}{
		{
			name:           "top level document",
			resource:       docPrefix + "messages/m1",
			wantCollection: "messages",
			wantDocID:      "m1",
		},
		{
			name:           "subcollection document",
			resource:       docPrefix + "chats/c1/messages/m1",
			wantCollection: "chats",
			wantDocID:      "m1",
		},
		{
			name:           "collection path without document",
			resource:       docPrefix + "messages",
			wantCollection: "",
			wantDocID:      "",
		},
		{
			name:           "dangling collection segment",
			resource:       docPrefix + "chats/c1/messages",
			wantCollection: "chats",
			wantDocID:      "",
		},
		{
			name:           "missing documents marker",
			resource:       "projects/demo/databases/(default)",
			wantCollection: "",
			wantDocID:      "",
		},
		{
			name:           "empty name",
			resource:       "",
			wantCollection: "",
			wantDocID:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := Value{Name: tt.resource}
			assert.Equal(t, tt.wantCollection, value.Collection())
			assert.Equal(t, tt.wantDocID, value.DocumentID())
		})
	}
}

func TestValue_FieldDecoding(t *testing.T) {
	raw := `{
		"value": {
			"name": "` + docPrefix + `messages/m1",
			"fields": {
				"chatId": {"stringValue": "c1"},
				"senderId": {"stringValue": "A"},
				"text": {"stringValue": "selam"},
				"count": {"integerValue": "3"},
				"tags": {"arrayValue": {"values": [
					{"stringValue": "one"},
					{"integerValue": "2"},
					{"stringValue": "three"}
				]}}
			}
		}
	}`

	var event Event
	require.NoError(t, json.Unmarshal([]byte(raw), &event))

	doc := &event.Value
	assert.Equal(t, "c1", doc.String("chatId"))
	assert.Equal(t, "A", doc.String("senderId"))

	// Absent or non-string fields decode as empty, not as an error.
	assert.Equal(t, "", doc.String("missing"))
	assert.Equal(t, "", doc.String("count"))

	// Non-string array elements are dropped.
	assert.Equal(t, []string{"one", "three"}, doc.StringSlice("tags"))
	assert.Nil(t, doc.StringSlice("missing"))
	assert.Nil(t, doc.StringSlice("chatId"))
}
